package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverNone     = "none"
)

const defaultMaxFileSize = 10 << 20

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Providers ProvidersConfig
	Storage   StorageConfig
	Archive   ArchiveConfig
	Qdrant    QdrantConfig
}

type ServerConfig struct {
	Port     string
	Env      string
	LogLevel string
}

type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	Path     string
}

type ProvidersConfig struct {
	Groq    GroqConfig
	Gemini  GeminiConfig
	Claude  ClaudeConfig
	Timeout time.Duration
}

type GroqConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type GeminiConfig struct {
	APIKey     string
	Model      string
	EmbedModel string
	BaseURL    string
}

type ClaudeConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type StorageConfig struct {
	MaxFileSize int64
}

type ArchiveConfig struct {
	Bucket    string
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
}

type QdrantConfig struct {
	URL        string
	APIKey     string
	Collection string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found. Using environment and default values.")
	}

	maxFileSize := getEnvAsInt64("MAX_FILE_SIZE", defaultMaxFileSize)
	if maxFileSize <= 0 {
		log.Warnf("MAX_FILE_SIZE must be positive, got %d. Using %d.", maxFileSize, defaultMaxFileSize)
		maxFileSize = defaultMaxFileSize
	}

	return &Config{
		Server: ServerConfig{
			Port:     getEnv("PORT", "8003"),
			Env:      getEnv("ENV", "development"),
			LogLevel: getEnv("LOG_LEVEL", "info"),
		},
		Database: DatabaseConfig{
			Driver:   strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "studymate"),
			Path:     getEnv("DB_PATH", "resume_analyzer.db"),
		},
		Providers: ProvidersConfig{
			Groq: GroqConfig{
				APIKey:  getEnv("GROQ_API_KEY", ""),
				Model:   getEnv("GROQ_MODEL", "llama-3.1-70b-versatile"),
				BaseURL: getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
			},
			Gemini: GeminiConfig{
				APIKey:     getEnv("GEMINI_API_KEY", ""),
				Model:      getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
				EmbedModel: getEnv("GEMINI_EMBED_MODEL", "text-embedding-004"),
				BaseURL:    getEnv("GEMINI_BASE_URL", ""),
			},
			Claude: ClaudeConfig{
				APIKey:  getEnv("ANTHROPIC_API_KEY", ""),
				Model:   getEnv("CLAUDE_MODEL", "claude-3-7-sonnet-latest"),
				BaseURL: getEnv("ANTHROPIC_BASE_URL", ""),
			},
			Timeout: getEnvAsDuration("PROVIDER_TIMEOUT", "60s"),
		},
		Storage: StorageConfig{
			MaxFileSize: maxFileSize,
		},
		Archive: ArchiveConfig{
			Bucket:    getEnv("ARCHIVE_BUCKET", ""),
			Endpoint:  getEnv("ARCHIVE_ENDPOINT", ""),
			Region:    getEnv("ARCHIVE_REGION", "auto"),
			AccessKey: getEnv("ARCHIVE_ACCESS_KEY", ""),
			SecretKey: getEnv("ARCHIVE_SECRET_KEY", ""),
		},
		Qdrant: QdrantConfig{
			URL:        getEnv("QDRANT_URL", ""),
			APIKey:     getEnv("QDRANT_API_KEY", ""),
			Collection: getEnv("QDRANT_COLLECTION", "resume_analyses"),
		},
	}
}

func (c *Config) GetDatabaseDSN() string {
	if c.Database.Driver == DriverSQLite {
		return c.Database.Path
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

// Provider availability is fixed at startup by the presence of a credential.

func (p ProvidersConfig) GroqEnabled() bool   { return p.Groq.APIKey != "" }
func (p ProvidersConfig) GeminiEnabled() bool { return p.Gemini.APIKey != "" }
func (p ProvidersConfig) ClaudeEnabled() bool { return p.Claude.APIKey != "" }

func (a ArchiveConfig) Enabled() bool {
	return a.Bucket != "" && a.AccessKey != "" && a.SecretKey != ""
}

// The index embeds with Gemini, so it needs both Qdrant and a Gemini key.
func (c *Config) IndexEnabled() bool {
	return c.Qdrant.URL != "" && c.Providers.GeminiEnabled()
}

// Level maps LOG_LEVEL onto fiber's logger levels.
func (s ServerConfig) Level() log.Level {
	switch strings.ToLower(s.LogLevel) {
	case "trace":
		return log.LevelTrace
	case "debug":
		return log.LevelDebug
	case "warn", "warning":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
