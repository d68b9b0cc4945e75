package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers understood by the storage module.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string

	Logger LoggerConfig
	Store  StoreConfig

	SeedDemo bool
}

type LoggerConfig struct {
	Level string
}

// StoreConfig selects and parameterizes the blob store backend.
type StoreConfig struct {
	Driver     string
	SQLitePath string
	RedisAddr  string
	RedisDB    int
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("FOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app_service", "folio")
	v.SetDefault("app_version", "0.1.0")
	v.SetDefault("environment", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("store_driver", StoreSQLite)
	v.SetDefault("store_sqlite_path", "folio.db")
	v.SetDefault("store_redis_addr", "localhost:6379")
	v.SetDefault("store_redis_db", 0)
	v.SetDefault("seed_demo", false)

	return Config{
		AppName:     v.GetString("app_service"),
		AppVersion:  v.GetString("app_version"),
		Environment: v.GetString("environment"),
		Logger: LoggerConfig{
			Level: v.GetString("log_level"),
		},
		Store: StoreConfig{
			Driver:     normalizeDriver(v.GetString("store_driver")),
			SQLitePath: v.GetString("store_sqlite_path"),
			RedisAddr:  v.GetString("store_redis_addr"),
			RedisDB:    v.GetInt("store_redis_db"),
		},
		SeedDemo: v.GetBool("seed_demo"),
	}
}

func normalizeDriver(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case StoreMemory:
		return StoreMemory
	case StoreRedis:
		return StoreRedis
	case StoreSQLite, "":
		return StoreSQLite
	default:
		return StoreSQLite
	}
}
