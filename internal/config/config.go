package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DBDSN         string
	MediaDir      string
	LogFile       string
	LogLevel      string
	JWTSecret     string
	AdminEmail    string
	AdminPassword string
	// OrderEndpoint, when set, makes checkout post orders to a remote
	// order-creation service instead of writing them locally.
	OrderEndpoint string
}

func Load() Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := Config{
		Port:          getenv("PORT", "8080"),
		DBDSN:         getenv("DB_DSN", "dunestore.db"),
		MediaDir:      getenv("MEDIA_DIR", "./media"),
		LogFile:       getenv("LOG_FILE", "./dunestore.log"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		JWTSecret:     getenv("JWT_SECRET", "dev-secret-change-me"),
		AdminEmail:    getenv("ADMIN_EMAIL", "admin@dunestore.test"),
		AdminPassword: getenv("ADMIN_PASSWORD", "Passw0rd!"),
		OrderEndpoint: os.Getenv("ORDER_ENDPOINT"),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s MEDIA_DIR=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.MediaDir, cfg.LogFile)
	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
