package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	BackendBadger = "badger"
	BackendRedis  = "redis"
	BackendMySQL  = "mysql"
	BackendMemory = "memory"
)

type Config struct {
	AppHost           string
	AppPort           string
	LogLevel          string
	TranslationFolder string
	TrustedProxies    []string

	StoreBackend string
	BadgerPath   string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string

	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	DbParams   string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppHost:           getEnv("APP_HOST", "127.0.0.1"),
		AppPort:           getEnv("APP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		TranslationFolder: getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),
		TrustedProxies:    parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
		StoreBackend:      strings.ToLower(getEnv("STORE_BACKEND", BackendBadger)),
		BadgerPath:        getEnv("BADGER_PATH", defaultBadgerPath()),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisDB:           getEnvInt("REDIS_DB", 0),
		RedisPrefix:       getEnv("REDIS_PREFIX", "tasktracker:"),
		DbHost:            getEnv("MYSQL_HOST", "127.0.0.1"),
		DbPort:            getEnv("MYSQL_PORT", "3306"),
		DbUser:            getEnv("MYSQL_USER", "tasktracker"),
		DbPassword:        getEnv("MYSQL_PASSWORD", "tasktracker"),
		DbName:            getEnv("MYSQL_DATABASE", "tasktracker"),
		DbParams:          getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
	}
}

func defaultBadgerPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".tasktracker/data"
	}
	return dir + "/tasktracker/data"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
