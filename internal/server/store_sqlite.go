package server

import (
	"database/sql"
	"errors"
)

type SQLiteStore struct {
	DB *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{DB: db}
}

func (s *SQLiteStore) Get(id int64) (*UserRecord, error) {
	row := s.DB.QueryRow(
		`SELECT id, name, date, service FROM users WHERE id = ?`, id,
	)

	var rec UserRecord
	if err := row.Scan(&rec.ID, &rec.Name, &rec.Date, &rec.Service); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (s *SQLiteStore) Create(name, date, service string) (*UserRecord, error) {
	// Single statement: max scan and insert cannot interleave with
	// another create.
	row := s.DB.QueryRow(
		`INSERT INTO users (id, name, date, service)
		 VALUES ((SELECT COALESCE(MAX(id), 0) + 1 FROM users), ?, ?, ?)
		 RETURNING id`,
		name, date, service,
	)

	var id int64
	if err := row.Scan(&id); err != nil {
		return nil, err
	}

	return &UserRecord{ID: id, Name: name, Date: date, Service: service}, nil
}

func (s *SQLiteStore) Count() (int, error) {
	var n int
	if err := s.DB.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
