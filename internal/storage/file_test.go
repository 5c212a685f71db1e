package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"orchid/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileBackendCreatesDefaultOnFirstLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "store.json")
	backend := NewFileBackend(path)

	data, err := backend.Load(context.Background())
	require.NoError(t, err)

	assert.Empty(t, data.Portfolio)
	assert.Empty(t, data.Tournaments)
	assert.Empty(t, data.Disciplines)
	require.NotNil(t, data.Settings)
	assert.Equal(t, models.DefaultSettings(), data.Settings)

	// First load writes the file so later runs start from the same blob.
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestFileBackendRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	backend := NewFileBackend(path)
	ctx := context.Background()

	price := 50000.0
	teams := 8
	seed := models.DefaultStore()
	seed.Tournaments = []models.Tournament{
		{Id: 1, Name: "Final", Price: &price, Date: "2024-05-01", Game: "CS2", Comands: &teams},
		{Id: 2, Name: "Open Qualifier", Price: nil, Date: "2024-06-01", Game: "Dota 2", Comands: nil},
	}
	seed.Disciplines = []models.Discipline{{Id: 1, Name: "CS2", RegistrationLink: "https://example.com/cs2"}}
	require.NoError(t, backend.Save(ctx, seed))

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	loaded, err := backend.Load(ctx)
	require.NoError(t, err)
	require.NoError(t, backend.Save(ctx, loaded))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after, "save(load()) must not change the persisted bytes")
}

func TestFileBackendLoadReadsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	backend := NewFileBackend(path)
	ctx := context.Background()

	seed := models.DefaultStore()
	seed.Portfolio = []models.Video{{Id: 3, Name: "Grand Final", LinkYT: "https://youtu.be/x"}}
	require.NoError(t, backend.Save(ctx, seed))

	loaded, err := backend.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Portfolio, 1)
	assert.Equal(t, 3, loaded.Portfolio[0].Id)
	assert.Equal(t, "Grand Final", loaded.Portfolio[0].Name)
}

func TestFileBackendLoadRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileBackend(path).Load(context.Background())
	assert.Error(t, err)
}
