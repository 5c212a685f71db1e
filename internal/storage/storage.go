package storage

import (
	"context"
	"errors"
	"fmt"

	"orchid/config"
	"orchid/internal/models"
)

// StoreKey is the key the blob lives under in the remote key-value stores.
const StoreKey = "orchid-data"

// ErrNotConfigured is returned by Save when no writable backend exists
// (read-only host without a remote store). Reads never return it; they
// degrade to the default blob instead.
var ErrNotConfigured = errors.New("database not configured")

// Backend reads and writes the whole content blob. There are no partial
// updates at this layer; every Save overwrites whatever was stored before.
type Backend interface {
	Load(ctx context.Context) (*models.DataStore, error)
	Save(ctx context.Context, data *models.DataStore) error
}

// New builds the backend selected by the resolved storage config.
func New(cfg *config.StorageConfig) (Backend, error) {
	switch cfg.Mode {
	case config.ModeKVRest:
		return NewRESTBackend(cfg.KVRestURL, cfg.KVRestToken), nil
	case config.ModeUpstash:
		return NewRESTBackend(cfg.UpstashURL, cfg.UpstashToken), nil
	case config.ModeRedis:
		return NewRedisBackend(cfg.RedisURL)
	case config.ModeFile:
		return NewFileBackend(cfg.FilePath), nil
	case config.ModeNone:
		return NoneBackend{}, nil
	default:
		return nil, fmt.Errorf("unknown storage mode %q", cfg.Mode)
	}
}

// NoneBackend serves the default blob and rejects every write. Used on
// read-only hosts when no remote store is configured.
type NoneBackend struct{}

func (NoneBackend) Load(ctx context.Context) (*models.DataStore, error) {
	return models.DefaultStore(), nil
}

func (NoneBackend) Save(ctx context.Context, data *models.DataStore) error {
	return ErrNotConfigured
}
