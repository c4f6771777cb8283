package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/rendezvous/internal/models"
	"github.com/julianstephens/rendezvous/internal/storage"
	"github.com/julianstephens/rendezvous/internal/timeperiod"
)

func (s *Store) AddPerson(p models.Person) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var deletedAt sql.NullString
	if p.DeletedAt != nil {
		deletedAt = sql.NullString{String: p.DeletedAt.Format(time.RFC3339), Valid: true}
	}
	_, err = tx.Exec(`
		INSERT INTO people (idx, name, email, phone, created_at, deleted_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		int(p.Index), p.Name, p.Email, p.Phone, p.CreatedAt.Format(time.RFC3339), deletedAt)
	if err != nil {
		return fmt.Errorf("failed to insert person %s: %w", p.Index, err)
	}

	for _, b := range p.Busy {
		if err := insertBusy(tx, p.Index, b); err != nil {
			return err
		}
	}
	for i, v := range p.Visits {
		if err := insertVisit(tx, p.Index, v, i); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *Store) GetPerson(idx models.ContactIndex) (models.Person, error) {
	row := s.db.QueryRow(`
		SELECT idx, name, email, phone, created_at, deleted_at
		FROM people WHERE idx = ? AND deleted_at IS NULL`, int(idx))

	p, err := scanPerson(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Person{}, fmt.Errorf("person %s: %w", idx, storage.ErrNotFound)
	}
	if err != nil {
		return models.Person{}, err
	}

	people := []models.Person{p}
	if err := s.loadSchedules(people); err != nil {
		return models.Person{}, err
	}
	return people[0], nil
}

func (s *Store) GetAllPeople() ([]models.Person, error) {
	return s.queryPeople(`
		SELECT idx, name, email, phone, created_at, deleted_at
		FROM people WHERE deleted_at IS NULL ORDER BY idx`)
}

func (s *Store) GetAllPeopleIncludingDeleted() ([]models.Person, error) {
	return s.queryPeople(`
		SELECT idx, name, email, phone, created_at, deleted_at
		FROM people ORDER BY idx`)
}

func (s *Store) queryPeople(query string) ([]models.Person, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var people []models.Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := s.loadSchedules(people); err != nil {
		return nil, err
	}
	return people, nil
}

func (s *Store) UpdatePerson(p models.Person) error {
	if err := p.Validate(); err != nil {
		return err
	}
	res, err := s.db.Exec(`
		UPDATE people SET name = ?, email = ?, phone = ?
		WHERE idx = ? AND deleted_at IS NULL`,
		p.Name, p.Email, p.Phone, int(p.Index))
	if err != nil {
		return err
	}
	return requireRow(res, "person", p.Index)
}

func (s *Store) DeletePerson(idx models.ContactIndex) error {
	res, err := s.db.Exec("UPDATE people SET deleted_at = ? WHERE idx = ? AND deleted_at IS NULL",
		time.Now().Format(time.RFC3339), int(idx))
	if err != nil {
		return err
	}
	return requireRow(res, "person", idx)
}

func (s *Store) RestorePerson(idx models.ContactIndex) error {
	res, err := s.db.Exec("UPDATE people SET deleted_at = NULL WHERE idx = ? AND deleted_at IS NOT NULL", int(idx))
	if err != nil {
		return err
	}
	return requireRow(res, "deleted person", idx)
}

func (s *Store) AddBusy(idx models.ContactIndex, period timeperiod.Period) error {
	if period.Kind() != timeperiod.KindBusy {
		return fmt.Errorf("schedule entry %s is not a busy period", period)
	}
	if _, err := s.GetPerson(idx); err != nil {
		return err
	}
	return insertBusy(s.db, idx, period)
}

func (s *Store) RemoveBusy(idx models.ContactIndex, period timeperiod.Period) error {
	res, err := s.db.Exec(`
		DELETE FROM busy_periods
		WHERE person_idx = ? AND day = ? AND start_min = ? AND end_min = ?`,
		int(idx), int(period.Day()), int(period.Start()), int(period.End()))
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("busy period %s for %s: %w", period, idx, storage.ErrNotFound)
	}
	return nil
}

func (s *Store) AddVisit(idx models.ContactIndex, visit models.Visit) error {
	if _, err := s.GetPerson(idx); err != nil {
		return err
	}
	var next int
	if err := s.db.QueryRow("SELECT COALESCE(MAX(position) + 1, 0) FROM visits WHERE person_idx = ?", int(idx)).Scan(&next); err != nil {
		return err
	}
	return insertVisit(s.db, idx, visit, next)
}

func (s *Store) DeleteVisit(id string) error {
	res, err := s.db.Exec("DELETE FROM visits WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("visit %s: %w", id, storage.ErrNotFound)
	}
	return nil
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

type scanner interface {
	Scan(dest ...any) error
}

func insertBusy(db execer, idx models.ContactIndex, b timeperiod.Period) error {
	_, err := db.Exec(`
		INSERT INTO busy_periods (id, person_idx, day, start_min, end_min)
		VALUES (?, ?, ?, ?, ?)`,
		uuid.New().String(), int(idx), int(b.Day()), int(b.Start()), int(b.End()))
	if err != nil {
		return fmt.Errorf("failed to insert busy period %s: %w", b, err)
	}
	return nil
}

func insertVisit(db execer, idx models.ContactIndex, v models.Visit, position int) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	_, err := db.Exec(`
		INSERT INTO visits (id, person_idx, day, start_min, end_min, location, position)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		v.ID, int(idx), int(v.Period.Day()), int(v.Period.Start()), int(v.Period.End()), v.Location.Name, position)
	if err != nil {
		return fmt.Errorf("failed to insert visit %s: %w", v.Period, err)
	}
	return nil
}

func scanPerson(row scanner) (models.Person, error) {
	var p models.Person
	var idx int
	var createdAt string
	var deletedAt sql.NullString
	if err := row.Scan(&idx, &p.Name, &p.Email, &p.Phone, &createdAt, &deletedAt); err != nil {
		return models.Person{}, err
	}
	p.Index = models.ContactIndex(idx)
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		p.CreatedAt = t
	}
	if deletedAt.Valid {
		if t, err := time.Parse(time.RFC3339, deletedAt.String); err == nil {
			p.DeletedAt = &t
		}
	}
	return p, nil
}

// loadSchedules fills in the busy periods and visits of each person.
func (s *Store) loadSchedules(people []models.Person) error {
	if len(people) == 0 {
		return nil
	}
	byIndex := make(map[models.ContactIndex]*models.Person, len(people))
	for i := range people {
		byIndex[people[i].Index] = &people[i]
	}

	catalog, err := s.catalog()
	if err != nil {
		return err
	}

	busyRows, err := s.db.Query(`
		SELECT person_idx, day, start_min, end_min FROM busy_periods
		ORDER BY person_idx, day, start_min, end_min`)
	if err != nil {
		return err
	}
	defer busyRows.Close()
	for busyRows.Next() {
		var idx, day, start, end int
		if err := busyRows.Scan(&idx, &day, &start, &end); err != nil {
			return err
		}
		p, ok := byIndex[models.ContactIndex(idx)]
		if !ok {
			continue
		}
		period, err := timeperiod.New(timeperiod.KindBusy, timeperiod.Clock(start), timeperiod.Clock(end), timeperiod.Day(day))
		if err != nil {
			return fmt.Errorf("corrupt busy period for %s: %w", p.Index, err)
		}
		p.Busy = append(p.Busy, period)
	}
	if err := busyRows.Err(); err != nil {
		return err
	}

	visitRows, err := s.db.Query(`
		SELECT id, person_idx, day, start_min, end_min, location FROM visits
		ORDER BY person_idx, position`)
	if err != nil {
		return err
	}
	defer visitRows.Close()
	for visitRows.Next() {
		var id, name string
		var idx, day, start, end int
		if err := visitRows.Scan(&id, &idx, &day, &start, &end, &name); err != nil {
			return err
		}
		p, ok := byIndex[models.ContactIndex(idx)]
		if !ok {
			continue
		}
		period, err := timeperiod.New(timeperiod.KindWindow, timeperiod.Clock(start), timeperiod.Clock(end), timeperiod.Day(day))
		if err != nil {
			return fmt.Errorf("corrupt visit for %s: %w", p.Index, err)
		}
		loc := lookup(catalog, name)
		p.Visits = append(p.Visits, models.Visit{ID: id, Period: period, Location: loc})
	}
	return visitRows.Err()
}

func requireRow(res sql.Result, what string, idx models.ContactIndex) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", what, idx, storage.ErrNotFound)
	}
	return nil
}
