package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"orchid/internal/models"
)

// FileBackend keeps the blob in a pretty-printed JSON file. Used for local
// development; the file is created with the default blob on first load.
type FileBackend struct {
	path string
}

func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

func (b *FileBackend) Load(ctx context.Context) (*models.DataStore, error) {
	raw, err := os.ReadFile(b.path)
	if os.IsNotExist(err) {
		data := models.DefaultStore()
		if err := b.Save(ctx, data); err != nil {
			return nil, fmt.Errorf("init data file: %w", err)
		}
		return data, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}
	var data models.DataStore
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse data file: %w", err)
	}
	return &data, nil
}

func (b *FileBackend) Save(ctx context.Context, data *models.DataStore) error {
	if err := os.MkdirAll(filepath.Dir(b.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	if err := os.WriteFile(b.path, raw, 0o644); err != nil {
		return fmt.Errorf("write data file: %w", err)
	}
	return nil
}
