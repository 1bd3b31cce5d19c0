package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/GDG-Vishnu/community-platform/logx"
)

var (
	JwtSecret  string
	Issuer     string
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	ServerPort string

	// LoginURL is where unauthenticated browser requests are sent.
	LoginURL string

	// CorsOrigins is the comma-separated allow-list for the frontend.
	CorsOrigins []string

	// RevalidateURL/RevalidateSecret configure the frontend page-cache webhook.
	// An empty URL disables revalidation notifications.
	RevalidateURL    string
	RevalidateSecret string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		logx.Info("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("JWT_ISSUER", "community-platform")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "community")
	ServerPort = getEnv("SERVER_PORT", "8080")

	LoginURL = getEnv("LOGIN_URL", "/login")
	CorsOrigins = strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ",")

	RevalidateURL = getEnv("REVALIDATE_URL", "")
	RevalidateSecret = getEnv("REVALIDATE_SECRET", "")

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minio")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minio123")
	MinioBucket = getEnv("MINIO_BUCKET", "community-media")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
