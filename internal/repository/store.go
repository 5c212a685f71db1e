package repository

import (
	"context"
	"errors"
	"log"
	"sync"

	"orchid/internal/models"
	"orchid/internal/storage"
)

// ErrNotFound is returned by Update when no entry carries the requested Id.
var ErrNotFound = errors.New("not found")

// ContentStore is the shared handle every repository goes through. It owns
// the backend and serializes read-modify-write cycles with a process-wide
// mutex. Two processes (or two stores over one backend) can still race and
// lose an update; that is the accepted single-writer assumption.
type ContentStore struct {
	backend storage.Backend
	mu      sync.Mutex
}

func NewContentStore(backend storage.Backend) *ContentStore {
	return &ContentStore{backend: backend}
}

// Load returns the current blob. A failed read is logged and degraded to
// the default blob; callers never see a read error.
func (s *ContentStore) Load(ctx context.Context) *models.DataStore {
	data, err := s.backend.Load(ctx)
	if err != nil {
		log.Printf("storage: read failed, serving defaults: %v", err)
		return models.DefaultStore()
	}
	normalize(data)
	return data
}

// Mutate runs fn on a fresh copy of the blob under the store lock and
// persists it when fn reports a change. Write failures propagate.
func (s *ContentStore) Mutate(ctx context.Context, fn func(*models.DataStore) (bool, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.Load(ctx)
	changed, err := fn(data)
	if err != nil || !changed {
		return err
	}
	return s.backend.Save(ctx, data)
}

// normalize guards against hand-edited or legacy blobs with missing keys.
func normalize(data *models.DataStore) {
	if data.Portfolio == nil {
		data.Portfolio = []models.Video{}
	}
	if data.Tournaments == nil {
		data.Tournaments = []models.Tournament{}
	}
	if data.Disciplines == nil {
		data.Disciplines = []models.Discipline{}
	}
}
