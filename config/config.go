package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// devTokenSecret signs tokens when JWT_SECRET is unset outside production.
// It is public knowledge, so production refuses to start with it.
const devTokenSecret = "dev-jwt-secret"

var ErrMissingTokenSecret = errors.New("JWT_SECRET must be set in production")

// Config holds application configuration loaded from environment variables
// Provide sane defaults for local development.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Port    string
	GinMode string

	// MongoDB
	MongoURI            string
	MongoDatabase       string
	MongoConnectTimeout time.Duration

	// Auth
	JWTSecret  string
	JWTTTL     time.Duration
	BcryptCost int

	// CORS
	CORSAllowedOrigins string // comma-separated; empty allows every origin

	// HTTP access log toggle
	HTTPLogEnabled bool

	// GET /crash-test panics on purpose to exercise recovery
	CrashTestEnabled bool

	// Debug metrics (/debug/vars)
	DebugMetricsEnabled bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		AppName: getenv("APP_NAME", "photocards"),
		Env:     getenv("APP_ENV", "development"),
		Port:    getenv("PORT", "3000"),
		GinMode: getenv("GIN_MODE", "release"),

		MongoURI:            getenv("MONGO_URI", "mongodb://127.0.0.1:27017"),
		MongoDatabase:       getenv("MONGO_DB", "mestodb"),
		MongoConnectTimeout: getdur("MONGO_CONNECT_TIMEOUT", 10*time.Second),

		JWTSecret:  getenv("JWT_SECRET", ""),
		JWTTTL:     getdur("JWT_TTL", 7*24*time.Hour),
		BcryptCost: getint("BCRYPT_COST", 10),

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", ""),

		HTTPLogEnabled:      getbool("HTTP_LOG_ENABLED", false),
		CrashTestEnabled:    getbool("CRASH_TEST_ENABLED", false),
		DebugMetricsEnabled: getbool("DEBUG_METRICS_ENABLED", false),
	}
}

// IsProduction reports whether APP_ENV is production
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// TokenSecret returns the signing secret. The second value is true when the
// development fallback is in use.
func (c *Config) TokenSecret() (string, bool, error) {
	if c.JWTSecret != "" {
		return c.JWTSecret, false, nil
	}
	if c.IsProduction() {
		return "", false, ErrMissingTokenSecret
	}
	return devTokenSecret, true, nil
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
