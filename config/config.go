package config

import (
	"os"
	"time"
)

type Config struct {
	Server     ServerConfig
	Admin      AdminConfig
	Storage    StorageConfig
	Cloudinary CloudinaryConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type AdminConfig struct {
	Password     string
	CookieMaxAge time.Duration
}

// StorageMode selects the backend holding the content blob. It is resolved
// once at startup; nothing below the config layer reads the environment.
type StorageMode string

const (
	ModeFile    StorageMode = "file"    // local JSON file
	ModeRedis   StorageMode = "redis"   // Redis over the wire protocol
	ModeKVRest  StorageMode = "kv"      // Vercel-KV style REST endpoint
	ModeUpstash StorageMode = "upstash" // Upstash Redis REST endpoint
	ModeNone    StorageMode = "none"    // read-only host, nothing configured
)

type StorageConfig struct {
	Mode         StorageMode
	FilePath     string
	RedisURL     string
	KVRestURL    string
	KVRestToken  string
	UpstashURL   string
	UpstashToken string
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getenv("PORT", "8080"),
			Env:          getenv("APP_ENV", "development"),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Admin: AdminConfig{
			Password:     getenv("ADMIN_PASSWORD", "admin123"),
			CookieMaxAge: 30 * 24 * time.Hour,
		},
		Storage: loadStorage(),
		Cloudinary: CloudinaryConfig{
			CloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
			APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
			APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		},
	}
}

// loadStorage picks exactly one backend. Remote stores win over the local
// file; a read-only host without any remote store ends up with ModeNone,
// which serves defaults and rejects writes.
func loadStorage() StorageConfig {
	sc := StorageConfig{
		FilePath:     getenv("DATA_FILE", "data/store.json"),
		RedisURL:     os.Getenv("REDIS_URL"),
		KVRestURL:    os.Getenv("KV_REST_API_URL"),
		KVRestToken:  os.Getenv("KV_REST_API_TOKEN"),
		UpstashURL:   os.Getenv("UPSTASH_REDIS_REST_URL"),
		UpstashToken: os.Getenv("UPSTASH_REDIS_REST_TOKEN"),
	}
	readOnlyFS := os.Getenv("VERCEL") != "" || os.Getenv("READ_ONLY_FS") != ""

	switch {
	case sc.KVRestURL != "" && sc.KVRestToken != "":
		sc.Mode = ModeKVRest
	case sc.RedisURL != "":
		sc.Mode = ModeRedis
	case sc.UpstashURL != "" && sc.UpstashToken != "":
		sc.Mode = ModeUpstash
	case readOnlyFS:
		sc.Mode = ModeNone
	default:
		sc.Mode = ModeFile
	}
	return sc
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
