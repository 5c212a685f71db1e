package storage

import (
	"context"
	"encoding/json"
	"sync"

	"orchid/internal/models"
)

// MemoryBackend is a non-persistent backend for tests and local scratch
// runs. It stores the serialized blob so Load hands out copies, the same
// way the real backends do.
type MemoryBackend struct {
	mu  sync.Mutex
	raw []byte

	// Error injection for failure-path tests.
	LoadErr error
	SaveErr error
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (b *MemoryBackend) Load(ctx context.Context) (*models.DataStore, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.LoadErr != nil {
		return nil, b.LoadErr
	}
	if b.raw == nil {
		return models.DefaultStore(), nil
	}
	var data models.DataStore
	if err := json.Unmarshal(b.raw, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (b *MemoryBackend) Save(ctx context.Context, data *models.DataStore) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.SaveErr != nil {
		return b.SaveErr
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	b.raw = raw
	return nil
}

// Raw returns the stored serialized blob, nil before the first Save.
func (b *MemoryBackend) Raw() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.raw
}
