package logger

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func readLog(t *testing.T, configDir string) string {
	t.Helper()
	data, err := os.ReadFile(Path(configDir))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	return string(data)
}

func TestInitLevels(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		want    log.Level
		wantErr bool
	}{
		{name: "default is info", cfg: Config{}, want: log.InfoLevel},
		{name: "named level", cfg: Config{Level: "warn"}, want: log.WarnLevel},
		{name: "debug flag wins", cfg: Config{Level: "error", Debug: true}, want: log.DebugLevel},
		{name: "unknown level", cfg: Config{Level: "chatty"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Logger = nil
			tt.cfg.ConfigDir = t.TempDir()
			err := Init(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Init() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if Logger != nil {
					t.Error("Logger should stay nil after a failed Init")
				}
				return
			}
			if got := Logger.GetLevel(); got != tt.want {
				t.Errorf("level = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInitWritesToLogFile(t *testing.T) {
	configDir := t.TempDir()
	if err := Init(Config{ConfigDir: configDir, Level: "info"}); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	Info("recommendations computed", "count", 3)
	Debug("hidden below info level")

	content := readLog(t, configDir)
	if !strings.Contains(content, "recommendations computed") || !strings.Contains(content, "count=3") {
		t.Errorf("log file missing info line: %q", content)
	}
	if strings.Contains(content, "hidden below info level") {
		t.Errorf("log file contains debug line at info level: %q", content)
	}
}

func TestHelpersBeforeInit(t *testing.T) {
	Logger = nil
	Debug("debug")
	Info("info")
	Warn("warn")
	Error("error")
}
