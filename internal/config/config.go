package config

import (
	"os"
	"strings"
)

// Session and snapshot backend names
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendMongo  = "mongo"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendNone   = "none"
)

type Config struct {
	Port            string
	MongoURI        string
	MongoDB         string
	RedisURI        string
	SessionBackend  string
	SnapshotBackend string
	ShareCache      string // Share-link cache: none or redis
	SQLitePath      string
	SnapshotPath    string
	AdminUsername   string
	AdminPassword   string
	JWTSecret       string
	LogMode         string
	CORSOrigins     string
	EngineConfig    string // Optional YAML tuning file
	BankFile        string // Optional YAML question catalog
}

func Load() *Config {
	return &Config{
		Port:            getEnvOrDefault("PORT", "8080"),
		MongoURI:        getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:         getEnvOrDefault("MONGO_DB", "navigator"),
		RedisURI:        getEnvOrDefault("REDIS_URI", "localhost:6379"),
		SessionBackend:  strings.ToLower(getEnvOrDefault("SESSION_BACKEND", BackendMemory)),
		SnapshotBackend: strings.ToLower(getEnvOrDefault("SNAPSHOT_BACKEND", BackendMemory)),
		ShareCache:      strings.ToLower(getEnvOrDefault("SHARE_CACHE", BackendNone)),
		SQLitePath:      getEnvOrDefault("SQLITE_PATH", "navigator.db"),
		SnapshotPath:    getEnvOrDefault("SNAPSHOT_PATH", "stats.json"),
		AdminUsername:   getEnvOrDefault("ADMIN_USERNAME", "admin"),
		AdminPassword:   getEnvOrDefault("ADMIN_PASSWORD", "password"),
		JWTSecret:       getEnvOrDefault("JWT_SECRET", "dev-secret-change-in-production"),
		LogMode:         getEnvOrDefault("LOG_MODE", "dev"),
		CORSOrigins:     getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*"),
		EngineConfig:    os.Getenv("ENGINE_CONFIG"),
		BankFile:        os.Getenv("BANK_FILE"),
	}
}

// RedisAddr strips an optional redis:// prefix
func (c *Config) RedisAddr() string {
	return strings.TrimPrefix(c.RedisURI, "redis://")
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS on commas
func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
