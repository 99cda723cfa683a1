package server

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("record not found")

type UserRecord struct {
	ID      int64
	Name    string
	Date    string
	Service string
}

// seedRecord is inserted when a store is created, so a fresh service
// always answers GET /user/111.
var seedRecord = UserRecord{
	ID:      111,
	Name:    "Alice",
	Date:    "2025-04-25",
	Service: "DemoService",
}

type Store interface {
	// Get returns the record for id, or ErrNotFound.
	Get(id int64) (*UserRecord, error)

	// Create inserts a record under max existing id + 1 (1 when the
	// store is empty) and returns it with the assigned id. Two
	// concurrent calls never receive the same id.
	Create(name, date, service string) (*UserRecord, error)

	Count() (int, error)
}

type MemStore struct {
	mu      sync.RWMutex
	records map[int64]*UserRecord
}

func NewMemStore() *MemStore {
	s := &MemStore{records: map[int64]*UserRecord{}}
	rec := seedRecord
	s.records[rec.ID] = &rec
	return s
}

func (s *MemStore) Get(id int64) (*UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *rec
	return &out, nil
}

func (s *MemStore) Create(name, date, service string) (*UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Max scan and insert share the lock; ids cannot collide.
	var id int64
	for k := range s.records {
		if k > id {
			id = k
		}
	}
	id++

	rec := &UserRecord{ID: id, Name: name, Date: date, Service: service}
	s.records[id] = rec

	out := *rec
	return &out, nil
}

func (s *MemStore) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}
