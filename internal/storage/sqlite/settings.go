package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/julianstephens/rendezvous/internal/constants"
	"github.com/julianstephens/rendezvous/internal/models"
	"github.com/julianstephens/rendezvous/internal/storage"
	"github.com/julianstephens/rendezvous/internal/timeperiod"
)

func (s *Store) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case constants.SettingDayStart:
			settings.DayStart = value
		case constants.SettingDayEnd:
			settings.DayEnd = value
		case constants.SettingDays:
			days, err := timeperiod.ParseDays(value)
			if err != nil {
				return models.Settings{}, fmt.Errorf("parsing %s: %w", constants.SettingDays, err)
			}
			settings.Days = days
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, err
	}

	if count == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	if _, err := stmt.Exec(constants.SettingDayStart, settings.DayStart); err != nil {
		return err
	}
	if _, err := stmt.Exec(constants.SettingDayEnd, settings.DayEnd); err != nil {
		return err
	}
	days := settings.Days
	if len(days) == 0 {
		days = timeperiod.SchoolDays
	}
	if _, err := stmt.Exec(constants.SettingDays, timeperiod.FormatDays(days)); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) SaveParticipants(indices []models.ContactIndex) error {
	_, err := s.db.Exec("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)",
		constants.SettingParticipants, storage.JoinIndices(indices))
	return err
}

func (s *Store) GetParticipants() ([]models.ContactIndex, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", constants.SettingParticipants).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return storage.SplitIndices(value)
}
