package config

import "os"

type Config struct {
	ServerPort      string
	StoreEngine     string
	DBPath          string
	ContentDir      string
	ContentBaseURL  string
	ContentRetryMax string
	JWTSecret       string
}

func Load() *Config {
	return &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		StoreEngine:     getEnv("STORE_ENGINE", "sqlite"),
		DBPath:          getEnv("DB_PATH", "lovelanguage.db"),
		ContentDir:      getEnv("CONTENT_DIR", "assets/data"),
		ContentBaseURL:  getEnv("CONTENT_BASE_URL", ""),
		ContentRetryMax: getEnv("CONTENT_RETRY_MAX", "3"),
		JWTSecret:       getEnv("JWT_SECRET", "super-secret-key-change-me"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
