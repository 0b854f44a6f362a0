package config

import (
	"net"
	"net/url"
	"os"
	"strconv"
)

// Config 应用配置
type Config struct {
	Env                  string
	Port                 string
	DatabaseURL          string
	DBMaxOpenConns       int
	DBMaxIdleConns       int
	DBAutoMigrate        bool
	LogLevel             string
	LogFormat            string
	TopFilmsDefaultCount int
}

// Load 加载配置
func Load() *Config {
	env := getEnv("APP_ENV", "development")

	dbUser := getEnv("DB_USER", "postgres")
	dbPass := getEnv("DB_PASSWORD", "postgres")
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbName := getEnv("DB_NAME", "filmorate")
	dbSSL := getEnv("DB_SSLMODE", "disable")

	dbURL := (&url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(dbUser, dbPass),
		Host:     net.JoinHostPort(dbHost, dbPort),
		Path:     "/" + dbName,
		RawQuery: "sslmode=" + url.QueryEscape(dbSSL),
	}).String()

	logFormat := "console"
	if env == "production" {
		logFormat = "json"
	}

	return &Config{
		Env:                  env,
		Port:                 getEnv("PORT", "8080"),
		DatabaseURL:          dbURL,
		DBMaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
		DBAutoMigrate:        getEnvBool("DB_AUTO_MIGRATE", true),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		LogFormat:            getEnv("LOG_FORMAT", logFormat),
		TopFilmsDefaultCount: getEnvInt("TOP_FILMS_DEFAULT_COUNT", 10),
	}
}

// IsProduction 是否生产环境
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt 解析失败或非正数时使用默认值
func getEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	b, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return b
}
