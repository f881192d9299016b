package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	CatalogSourceStatic   = "static"
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"

	devJWTSecret = "dev_secret_change_me"
)

// Configはアプリ全体の設定
type Config struct {
	Port  string // サーバーポート（8080）
	GoEnv string // dev/prod

	JWTSecret  string        // セッショントークン署名シークレット
	SessionTTL time.Duration // セッショントークンの有効期限

	CatalogSource string // static/file/postgres
	CatalogFile   string // CATALOG_SOURCE=file のときのYAML

	DatabaseURL      string // あれば最優先（postgres）
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     int
	PostgresSSLMode  string

	LogLevel        string        // debug/info/warn/error
	ShutdownTimeout time.Duration // graceful shutdown の上限
}

func (c Config) IsProd() bool {
	return c.GoEnv == "prod"
}

// Addr は echo.Start に渡す形（":8080"）
func (c Config) Addr() string {
	if c.Port != "" && c.Port[0] == ':' {
		return c.Port
	}
	return ":" + c.Port
}

// Loadは環境変数
func Load() (Config, error) {
	pgPort, err := intEnv("POSTGRES_PORT", 5432)
	if err != nil {
		return Config{}, err
	}
	sessionTTL, err := durationEnv("SESSION_TTL", 24*time.Hour)
	if err != nil {
		return Config{}, err
	}
	shutdownTimeout, err := durationEnv("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:  getenv("PORT", "8080"),
		GoEnv: getenv("GO_ENV", "dev"),

		JWTSecret:  os.Getenv("JWT_SECRET"),
		SessionTTL: sessionTTL,

		CatalogSource: getenv("CATALOG_SOURCE", CatalogSourceStatic),
		CatalogFile:   os.Getenv("CATALOG_FILE"),

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "app"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresPort:     pgPort,
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		LogLevel:        getenv("LOG_LEVEL", "info"),
		ShutdownTimeout: shutdownTimeout,
	}

	//必須チェック
	switch cfg.GoEnv {
	case "dev", "prod", "test":
	default:
		return Config{}, fmt.Errorf("GO_ENV must be dev, prod or test: %q", cfg.GoEnv)
	}
	if cfg.JWTSecret == "" {
		if cfg.IsProd() {
			return Config{}, fmt.Errorf("JWT_SECRET is required")
		}
		cfg.JWTSecret = devJWTSecret
	}
	if cfg.SessionTTL <= 0 {
		return Config{}, fmt.Errorf("SESSION_TTL must be positive")
	}

	switch cfg.CatalogSource {
	case CatalogSourceStatic, CatalogSourcePostgres:
	case CatalogSourceFile:
		if cfg.CatalogFile == "" {
			return Config{}, fmt.Errorf("CATALOG_FILE is required when CATALOG_SOURCE=file")
		}
	default:
		return Config{}, fmt.Errorf("CATALOG_SOURCE must be static, file or postgres: %q", cfg.CatalogSource)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("LOG_LEVEL must be debug, info, warn or error: %q", cfg.LogLevel)
	}

	return cfg, nil
}

// DSN は gorm(postgres) 用の接続文字列
func (c Config) DSN() string {
	// DATABASE_URL があれば最優先で使う
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresSSLMode,
	)
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be duration: %w", key, err)
	}
	return d, nil
}
