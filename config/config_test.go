package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func clearStorageEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"KV_REST_API_URL", "KV_REST_API_TOKEN",
		"REDIS_URL",
		"UPSTASH_REDIS_REST_URL", "UPSTASH_REDIS_REST_TOKEN",
		"VERCEL", "READ_ONLY_FS", "DATA_FILE",
	} {
		t.Setenv(k, "")
	}
}

func TestStorageModeDefaultsToFile(t *testing.T) {
	clearStorageEnv(t)
	sc := loadStorage()
	assert.Equal(t, ModeFile, sc.Mode)
	assert.Equal(t, "data/store.json", sc.FilePath)
}

func TestStorageModeKVRestWinsOverRedis(t *testing.T) {
	clearStorageEnv(t)
	t.Setenv("KV_REST_API_URL", "https://kv.example.com")
	t.Setenv("KV_REST_API_TOKEN", "tok")
	t.Setenv("REDIS_URL", "redis://localhost:6379")

	assert.Equal(t, ModeKVRest, loadStorage().Mode)
}

func TestStorageModeRedis(t *testing.T) {
	clearStorageEnv(t)
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	assert.Equal(t, ModeRedis, loadStorage().Mode)
}

func TestStorageModeUpstash(t *testing.T) {
	clearStorageEnv(t)
	t.Setenv("UPSTASH_REDIS_REST_URL", "https://up.example.com")
	t.Setenv("UPSTASH_REDIS_REST_TOKEN", "tok")
	assert.Equal(t, ModeUpstash, loadStorage().Mode)
}

func TestStorageModeNoneOnReadOnlyHost(t *testing.T) {
	clearStorageEnv(t)
	t.Setenv("VERCEL", "1")
	assert.Equal(t, ModeNone, loadStorage().Mode)
}

func TestKVTokenAloneIsNotEnough(t *testing.T) {
	clearStorageEnv(t)
	t.Setenv("KV_REST_API_TOKEN", "tok")
	assert.Equal(t, ModeFile, loadStorage().Mode)
}
