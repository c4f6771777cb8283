package postgres

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/rendezvous/internal/models"
	"github.com/julianstephens/rendezvous/internal/storage"
	"github.com/julianstephens/rendezvous/internal/timeperiod"
)

func (s *Store) ReplaceRecommendations(recs []models.Recommendation) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM recommendations"); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO recommendations (idx, location, day, hour, window_rank, location_rank)
		VALUES ($1, $2, $3, $4, $5, $6)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range recs {
		if r.Index <= 0 {
			return fmt.Errorf("recommendation %s has no index", r)
		}
		if _, err := stmt.Exec(int(r.Index), r.Location.Name, int(r.Block.Day), r.Block.Hour, r.WindowRank, r.LocationRank); err != nil {
			return fmt.Errorf("failed to insert recommendation %s: %w", r, err)
		}
	}

	return tx.Commit()
}

func (s *Store) GetRecommendations() ([]models.Recommendation, error) {
	catalog, err := s.catalog()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`
		SELECT idx, location, day, hour, window_rank, location_rank
		FROM recommendations ORDER BY idx`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []models.Recommendation
	for rows.Next() {
		var r models.Recommendation
		var idx, day, hour int
		var name string
		if err := rows.Scan(&idx, &name, &day, &hour, &r.WindowRank, &r.LocationRank); err != nil {
			return nil, err
		}
		block, err := timeperiod.NewHourBlock(hour, timeperiod.Day(day))
		if err != nil {
			return nil, fmt.Errorf("corrupt recommendation %d: %w", idx, err)
		}
		r.Index = models.ContactIndex(idx)
		r.Block = block
		r.Location = lookup(catalog, name)
		recs = append(recs, r)
	}
	return recs, rows.Err()
}

func (s *Store) AddMeetUp(m models.MeetUp) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	_, err := s.db.Exec(`
		INSERT INTO meetups (id, idx, location, day, hour, participants, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID, int(m.Index), m.Location.Name, int(m.Block.Day), m.Block.Hour,
		storage.JoinIndices(m.Participants), m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert meetup %s: %w", m.Index, err)
	}
	return nil
}

func (s *Store) GetMeetUps() ([]models.MeetUp, error) {
	catalog, err := s.catalog()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`
		SELECT id, idx, location, day, hour, participants, created_at
		FROM meetups ORDER BY idx`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meetups []models.MeetUp
	for rows.Next() {
		var m models.MeetUp
		var idx, day, hour int
		var name, participants string
		if err := rows.Scan(&m.ID, &idx, &name, &day, &hour, &participants, &m.CreatedAt); err != nil {
			return nil, err
		}
		block, err := timeperiod.NewHourBlock(hour, timeperiod.Day(day))
		if err != nil {
			return nil, fmt.Errorf("corrupt meetup %d: %w", idx, err)
		}
		m.Index = models.ContactIndex(idx)
		m.Block = block
		m.Location = lookup(catalog, name)
		if m.Participants, err = storage.SplitIndices(participants); err != nil {
			return nil, fmt.Errorf("corrupt meetup %d: %w", idx, err)
		}
		meetups = append(meetups, m)
	}
	return meetups, rows.Err()
}

func (s *Store) DeleteMeetUp(idx models.ContactIndex) error {
	res, err := s.db.Exec("DELETE FROM meetups WHERE idx = $1", int(idx))
	if err != nil {
		return err
	}
	return requireRow(res, "meetup", idx)
}
