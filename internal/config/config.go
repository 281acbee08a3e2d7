package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env          string
	HTTPPort     string
	DatabaseDSN  string
	JWTSecret    string
	JWTTTL       time.Duration
	CORSOrigins  string
	BcryptCost   int
	LogLevel     string
	LogFile      string // empty = stdout only
	DocsUser     string
	DocsPassword string
	OpenAPIPath  string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Env:          getEnv("APP_ENV", "development"),
		HTTPPort:     getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:  getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=pos port=5432 sslmode=disable"),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		JWTTTL:       getDuration("JWT_TTL", 24*time.Hour),
		CORSOrigins:  getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		BcryptCost:   getInt("BCRYPT_COST", 10),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFile:      getEnv("LOG_FILE", ""),
		DocsUser:     getEnv("DOCS_USER", "docs"),
		DocsPassword: getEnv("DOCS_PASSWORD", ""),
		OpenAPIPath:  getEnv("OPENAPI_PATH", "./api/openapi.yaml"),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET is not set; it is mandatory in every environment")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET must be at least 32 characters")
	}
	if cfg.Env == "production" && cfg.DocsPassword == "" {
		log.Println("[WARN] DOCS_PASSWORD is empty, the docs endpoint will reject every request")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		// plain integers are read as seconds
		if secs, convErr := strconv.Atoi(v); convErr == nil {
			return time.Duration(secs) * time.Second
		}
		return def
	}
	return d
}
