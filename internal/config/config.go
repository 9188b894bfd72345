package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	// Demo directory shared secret; every account uses the same one.
	DemoPassword string

	// Path of the persisted session snapshot, the server-side analogue of a
	// browser's saved session record.
	SessionSnapshotPath string

	// Simulated network latency applied to login.
	LoginDelay time.Duration

	JWTPrivateKeyPath string
	JWTPublicKeyPath  string
	JWTExpiry         time.Duration

	// Notification store retention and background generator tuning.
	NotificationCap      int
	GeneratorInterval    time.Duration
	GeneratorProbability float64

	AllowedOrigins []string // CORS allowed origins
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "3000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		DemoPassword:        getEnv("DEMO_PASSWORD", "123456"),
		SessionSnapshotPath: getEnv("SESSION_SNAPSHOT_PATH", "./session.json"),
		LoginDelay:          getEnvDuration("LOGIN_DELAY", time.Second),

		JWTPrivateKeyPath: getEnv("JWT_PRIVATE_KEY_PATH", "./private_key.pem"),
		JWTPublicKeyPath:  getEnv("JWT_PUBLIC_KEY_PATH", "./public_key.pem"),
		JWTExpiry:         time.Duration(getEnvInt("JWT_EXPIRY_DAYS", 7)) * 24 * time.Hour,

		NotificationCap:      getEnvInt("NOTIFICATION_CAP", 500),
		GeneratorInterval:    getEnvDuration("GENERATOR_INTERVAL", 30*time.Second),
		GeneratorProbability: getEnvFloat("GENERATOR_PROBABILITY", 0.3),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
