package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Session   SessionConfig
	Redis     RedisConfig
	NATS      NATSConfig
	Log       LogConfig
	Scheduler SchedulerConfig
	Mail      MailConfig
	Tokens    TokenStorageConfig
	Telegram  TelegramConfig
}

type AppConfig struct {
	Name string
	Port string
	Env  string
}

type DatabaseConfig struct {
	Driver   string // postgres, sqlite
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	// SQLitePath is used when Driver is sqlite.
	SQLitePath string
}

type SessionConfig struct {
	Secret   string
	TTLHours int
}

type RedisConfig struct {
	URL      string // redis://localhost:6379; empty disables Redis sessions
	Password string
	DB       int
}

// NATSConfig is optional; when URL is empty reminder notifications are not published.
type NATSConfig struct {
	URL     string
	Subject string
}

type LogConfig struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, file, both
	FilePath   string
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

type SchedulerConfig struct {
	Enabled  bool
	Timezone string
}

type MailConfig struct {
	LookbackDays        int
	GoogleClientSecrets string // path to OAuth client file (client_secret.json)
	GoogleTokenDir      string
	OutlookAppConfig    string // path to app_config.json {client_id, client_secret, tenant}
	OutlookTokenDir     string
	OutlookRedirectURL  string
	GoogleRedirectURL   string
	HTTPTimeoutSeconds  int
}

type TokenStorageConfig struct {
	Type     string // local, s3
	BasePath string
	S3       S3Config
}

type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	Region    string
}

// TelegramConfig enables reminder alerts to a Telegram chat when both fields are set.
type TelegramConfig struct {
	BotToken string
	ChatID   string
}

func LoadConfig() (*Config, error) {
	// Missing .env is fine; plain environment variables are used instead.
	_ = godotenv.Load()

	dataDir := getEnv("DATA_DIR", "./data")

	logMaxSize, _ := strconv.Atoi(getEnv("LOG_MAX_SIZE", "100"))
	logMaxBackups, _ := strconv.Atoi(getEnv("LOG_MAX_BACKUPS", "5"))
	logMaxAge, _ := strconv.Atoi(getEnv("LOG_MAX_AGE", "30"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	sessionTTL, _ := strconv.Atoi(getEnv("SESSION_TTL_HOURS", "168"))
	lookbackDays, _ := strconv.Atoi(getEnv("EMAIL_LOOKBACK_DAYS", "5"))
	mailTimeout, _ := strconv.Atoi(getEnv("MAIL_HTTP_TIMEOUT_SECONDS", "20"))

	config := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "DeskHub"),
			Port: getEnv("APP_PORT", "8080"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", "postgres"),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			User:       getEnv("DB_USER", "postgres"),
			Password:   getEnv("DB_PASSWORD", ""),
			DBName:     getEnv("DB_NAME", "deskhub"),
			SSLMode:    getEnv("DB_SSL_MODE", "disable"),
			SQLitePath: getEnv("DB_SQLITE_PATH", filepath.Join(dataDir, "app.db")),
		},
		Session: SessionConfig{
			Secret:   getEnv("SECRET_KEY", "dev-secret"),
			TTLHours: sessionTTL,
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		NATS: NATSConfig{
			URL:     getEnv("NATS_URL", ""),
			Subject: getEnv("NATS_REMINDER_SUBJECT", "deskhub.reminders"),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "stdout"),
			FilePath:   getEnv("LOG_FILE", "logs/app.log"),
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAge,
			Compress:   getEnv("LOG_COMPRESS", "true") == "true",
		},
		Scheduler: SchedulerConfig{
			Enabled:  getEnv("SCHEDULER_ENABLED", "true") == "true",
			Timezone: getEnv("TIMEZONE", "UTC"),
		},
		Mail: MailConfig{
			LookbackDays:        lookbackDays,
			GoogleClientSecrets: getEnv("GOOGLE_CLIENT_SECRETS", filepath.Join(dataDir, "gmail", "client_secret.json")),
			GoogleTokenDir:      getEnv("GOOGLE_TOKEN_DIR", filepath.Join(dataDir, "gmail", "tokens")),
			GoogleRedirectURL:   getEnv("GOOGLE_REDIRECT_URL", "http://localhost:8080/api/v1/mail/gmail/callback"),
			OutlookAppConfig:    getEnv("OUTLOOK_APP_CONFIG", filepath.Join(dataDir, "outlook", "app_config.json")),
			OutlookTokenDir:     getEnv("OUTLOOK_TOKEN_DIR", filepath.Join(dataDir, "outlook", "tokens")),
			OutlookRedirectURL:  getEnv("OUTLOOK_REDIRECT_URL", "http://localhost:8080/api/v1/mail/outlook/callback"),
			HTTPTimeoutSeconds:  mailTimeout,
		},
		Tokens: TokenStorageConfig{
			Type:     getEnv("TOKEN_STORAGE_TYPE", "local"),
			BasePath: getEnv("TOKEN_STORAGE_PATH", dataDir),
			S3: S3Config{
				Endpoint:  getEnv("S3_ENDPOINT", "localhost:9000"),
				AccessKey: getEnv("S3_ACCESS_KEY", "minioadmin"),
				SecretKey: getEnv("S3_SECRET_KEY", "minioadmin"),
				Bucket:    getEnv("S3_BUCKET", "deskhub-tokens"),
				UseSSL:    getEnv("S3_USE_SSL", "false") == "true",
				Region:    getEnv("S3_REGION", "auto"),
			},
		},
		Telegram: TelegramConfig{
			BotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
			ChatID:   getEnv("TELEGRAM_CHAT_ID", ""),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
