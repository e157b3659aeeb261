package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"vaultdrive/models"
)

type Config struct {
	Port string
	Env  string

	// DataPath is the bbolt database file holding the whole library.
	DataPath string

	MaxFileSize int64
	DefaultRole models.Role

	AllowedOrigins []string
}

var AppConfig *Config

func LoadConfig() {
	AppConfig = &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		DataPath: getEnv("DATA_PATH", "vaultdrive.db"),

		MaxFileSize: parseInt64(getEnv("MAX_FILE_SIZE", "104857600")),
		DefaultRole: parseRole(getEnv("DEFAULT_ROLE", "admin")),

		AllowedOrigins: parseStringSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
	}

	logConfig()
	validateConfig()
}

func logConfig() {
	log.Println("Configuration loaded:")
	log.Printf("  Port: %s", AppConfig.Port)
	log.Printf("  Environment: %s", AppConfig.Env)
	log.Printf("  Data Path: %s", AppConfig.DataPath)
	log.Printf("  Max File Size: %d bytes", AppConfig.MaxFileSize)
	log.Printf("  Default Role: %s", AppConfig.DefaultRole)
	log.Printf("  Allowed Origins: %v", AppConfig.AllowedOrigins)
}

func validateConfig() {
	if AppConfig.DataPath == "" {
		log.Fatal("DATA_PATH must not be empty")
	}
	if AppConfig.MaxFileSize <= 0 {
		log.Fatal("MAX_FILE_SIZE must be a positive byte count")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseInt64(s string) int64 {
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		log.Fatalf("Failed to parse int64: %s", s)
	}
	return i
}

func parseRole(s string) models.Role {
	role, err := models.ParseRole(s)
	if err != nil {
		log.Fatalf("Failed to parse role: %v", err)
	}
	return role
}

func parseStringSlice(s string) []string {
	if s == "" {
		return []string{}
	}

	parts := strings.Split(s, ",")
	var result []string
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
