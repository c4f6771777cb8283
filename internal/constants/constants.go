package constants

const (
	AppName            = "rendezvous"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/rendezvous/rendezvous.db"
	ConnectionEnvVar   = "RENDEZVOUS_DB_CONNECTION"
	Version            = "v0.1.0"

	// TimeFormat is the wall-clock format used throughout the application (HH:MM)
	TimeFormat = "15:04"
	// DateFormat is used when showing deletion and creation dates
	DateFormat = "2006-01-02"

	// Recommendation limits
	RecommendationLimit = 20
	TimingLimit         = 20

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "rendezvous-"
	BackupFileSuffix = ".db"

	// Settings keys
	SettingDayStart = "day_start"
	SettingDayEnd   = "day_end"
	SettingDays     = "days"

	// SettingParticipants holds the participants of the most recent meet run
	SettingParticipants = "participants"

	// Default settings values
	DefaultDayStart = "08:00"
	DefaultDayEnd   = "22:00"
	DefaultDays     = "Mon,Tue,Wed,Thu,Fri"
)
