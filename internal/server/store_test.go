package server

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStoreSeed(t *testing.T) {
	s := NewMemStore()

	rec, err := s.Get(111)
	require.NoError(t, err)
	assert.Equal(t, "Alice", rec.Name)
	assert.Equal(t, "2025-04-25", rec.Date)
	assert.Equal(t, "DemoService", rec.Service)

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMemStoreGetMissing(t *testing.T) {
	s := NewMemStore()

	_, err := s.Get(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemStoreCreateMaxPlusOne(t *testing.T) {
	s := NewMemStore()

	rec, err := s.Create("Bob", "2025-01-01", "X")
	require.NoError(t, err)
	assert.Equal(t, int64(112), rec.ID)

	rec, err = s.Create("Carol", "2025-01-02", "Y")
	require.NoError(t, err)
	assert.Equal(t, int64(113), rec.ID)
}

func TestMemStoreEmptyStartsAtOne(t *testing.T) {
	s := &MemStore{records: map[int64]*UserRecord{}}

	rec, err := s.Create("Bob", "2025-01-01", "X")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rec.ID)
}

func TestMemStoreGetReturnsCopy(t *testing.T) {
	s := NewMemStore()

	rec, err := s.Get(111)
	require.NoError(t, err)
	rec.Name = "Mallory"

	again, err := s.Get(111)
	require.NoError(t, err)
	assert.Equal(t, "Alice", again.Name)
}

func TestMemStoreConcurrentCreates(t *testing.T) {
	s := NewMemStore()

	const n = 100
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec, err := s.Create("N", "2025-01-01", "S")
			if err != nil {
				t.Error(err)
				return
			}
			ids <- rec.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int64]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	require.Len(t, seen, n)

	count, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, n+1, count) // seed plus n creates
}
