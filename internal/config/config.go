// Package config loads application configuration.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Sink type selectors for the nota print surface.
const (
	SinkChromium = "chromium"
	SinkFile     = "file"
)

// NotaConfig configures the nota printing subsystem.
type NotaConfig struct {
	// ValidationBaseURL is the public base of the validation endpoint. When
	// empty, printed notes carry no QR block.
	ValidationBaseURL string
	// RendererURL is the Chromium HTML-to-PDF converter endpoint.
	RendererURL string
	// SpoolDir receives converted PDFs for the print queue.
	SpoolDir string
	// ArchiveDir receives plain-paper PDF archive copies.
	ArchiveDir string
	// Sink selects the document sink implementation.
	Sink string
}

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	HTTPAddr    string
	LogLevel    string
	LogFormat   string

	DBType            string
	DBHost            string
	DBPort            string
	DBName            string
	DBUser            string
	DBPassword        string
	DBSSLMode         string
	DBMaxIdleConn     int
	DBMaxOpenConn     int
	DBConnMaxLifetime int

	Nota NotaConfig
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:     getenv("APP_SERVICE", "pos-emas"),
		AppVersion:  getenv("APP_VERSION", "0.1.0"),
		Environment: getenv("ENVIRONMENT", "development"),
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		LogFormat:   getenv("LOG_FORMAT", "json"),

		DBType:            getenv("DATABASE_TYPE", "postgres"),
		DBHost:            getenv("DATABASE_HOST", "localhost"),
		DBPort:            getenv("DATABASE_PORT", "5432"),
		DBName:            getenv("DATABASE_NAME", "posemas"),
		DBUser:            getenv("DATABASE_USER", "postgres"),
		DBPassword:        getenv("DATABASE_PASSWORD", ""),
		DBSSLMode:         getenv("DATABASE_SSLMODE", "disable"),
		DBMaxIdleConn:     getenvInt("DATABASE_MAX_IDLE_CONN", 5),
		DBMaxOpenConn:     getenvInt("DATABASE_MAX_OPEN_CONN", 20),
		DBConnMaxLifetime: getenvInt("DATABASE_CONN_MAX_LIFETIME", 3600),

		Nota: NotaConfig{
			ValidationBaseURL: strings.TrimSpace(getenv("NOTA_VALIDATION_BASE_URL", "")),
			RendererURL:       getenv("NOTA_RENDERER_URL", "http://localhost:3000"),
			SpoolDir:          getenv("NOTA_SPOOL_DIR", "spool"),
			ArchiveDir:        getenv("NOTA_ARCHIVE_DIR", "archive"),
			Sink:              getenv("NOTA_SINK", SinkChromium),
		},
	}
}

// Debug reports whether the app runs outside production.
func (c Config) Debug() bool {
	return c.Environment != "production"
}

var Module = fx.Module("config",
	fx.Provide(Load),
)

func getenv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
