package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds configuration for every service in the platform. Each binary
// reads only the fields it needs; values come from the environment with an
// optional .env file for local development.
type Config struct {
	AppMode string

	AuthPort      string
	ChatsPort     string
	UsersPort     string
	MessagingPort string
	GatewayPort   string

	// Gateway upstreams
	AuthURL      string
	ChatsURL     string
	UsersURL     string
	MessagingURL string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret      string
	JWTExpiryHours int

	S3Region     string
	S3Bucket     string
	S3AccessKey  string
	S3SecretKey  string
	S3Endpoint   string
	S3PresignTTL int // minutes
}

// LoadConfig loads configuration from environment variables, reading a .env
// file first when one exists.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		AppMode: getEnv("APP_MODE", "debug"),

		AuthPort:      getEnv("AUTH_PORT", "8082"),
		ChatsPort:     getEnv("CHATS_PORT", "8081"),
		UsersPort:     getEnv("USERS_PORT", "8083"),
		MessagingPort: getEnv("MESSAGING_PORT", "8084"),
		GatewayPort:   getEnv("GATEWAY_PORT", "8080"),

		AuthURL:      getEnv("AUTH_URL", "http://localhost:8082"),
		ChatsURL:     getEnv("CHATS_URL", "http://localhost:8081"),
		UsersURL:     getEnv("USERS_URL", "http://localhost:8083"),
		MessagingURL: getEnv("MESSAGING_URL", "http://localhost:8084"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "chat_platform"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		JWTSecret:      getEnv("JWT_SECRET", "dev-secret-change-me"),
		JWTExpiryHours: getEnvAsInt("JWT_EXPIRY_HOURS", 24),

		S3Region:     getEnv("S3_REGION", ""),
		S3Bucket:     getEnv("S3_BUCKET", ""),
		S3AccessKey:  getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:  getEnv("S3_SECRET_KEY", ""),
		S3Endpoint:   getEnv("S3_ENDPOINT", ""),
		S3PresignTTL: getEnvAsInt("S3_PRESIGN_TTL_MINUTES", 15),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
