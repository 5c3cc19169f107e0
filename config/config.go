package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server Settings
	AppPort     string
	Host        string
	DatabaseURL string

	// JWT Settings
	JWTSecret          string
	JWTExpirationHours int

	// Bootstrap admin account
	AdminEmail    string
	AdminPassword string

	// CORS Settings
	CORSAllowOrigins string
	CORSAllowMethods string
	CORSAllowHeaders string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	config := &Config{
		AppPort:     getEnv("PORT", "8080"),
		Host:        getEnv("HOST", "0.0.0.0"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		JWTSecret:          getEnv("JWT_SECRET", "change-me"),
		JWTExpirationHours: getEnvInt("JWT_EXPIRES_IN_HOURS", 24),

		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@greenmed.local"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),

		CORSAllowOrigins: "*",
		CORSAllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		CORSAllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}

	return config
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
