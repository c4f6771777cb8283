package sqlite

import (
	"strings"

	"github.com/julianstephens/rendezvous/internal/models"
)

func (s *Store) GetLocations() ([]models.Location, error) {
	rows, err := s.db.Query("SELECT name, region, purposes FROM locations ORDER BY position, name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locs []models.Location
	for rows.Next() {
		var loc models.Location
		var purposes int
		if err := rows.Scan(&loc.Name, &loc.Region, &purposes); err != nil {
			return nil, err
		}
		loc.Purposes = models.Purpose(purposes)
		locs = append(locs, loc)
	}
	return locs, rows.Err()
}

// SaveLocation updates a known location in place or appends a new one at the
// lowest priority. Names match ignoring case, and an update keeps the stored
// spelling.
func (s *Store) SaveLocation(loc models.Location) error {
	res, err := s.db.Exec("UPDATE locations SET region = ?, purposes = ? WHERE lower(trim(name)) = ?",
		loc.Region, int(loc.Purposes), loc.Key())
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil || n > 0 {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO locations (name, region, purposes, position)
		VALUES (?, ?, ?, (SELECT COALESCE(MAX(position) + 1, 0) FROM locations))`,
		strings.TrimSpace(loc.Name), loc.Region, int(loc.Purposes))
	return err
}

func (s *Store) catalog() (map[string]models.Location, error) {
	locs, err := s.GetLocations()
	if err != nil {
		return nil, err
	}
	out := make(map[string]models.Location, len(locs))
	for _, l := range locs {
		out[l.Key()] = l
	}
	return out, nil
}
