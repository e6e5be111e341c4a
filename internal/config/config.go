package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Nats      NatsConfig
	Providers ProviderConfig
	Banner    BannerConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	MediaRoot          string
	JWTSecret          string
}

type DatabaseConfig struct {
	Connection string
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
}

type RedisConfig struct {
	URL string
}

type NatsConfig struct {
	URL string
}

type ProviderConfig struct {
	SlingAcademyURL string
	IntervalMinutes int
}

type BannerConfig struct {
	BatchSize int
	CacheKey  string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			MediaRoot:          getEnv("MEDIA_ROOT", "./media"),
			JWTSecret:          getEnv("JWT_SECRET", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
			Host:       getEnv("DB_HOST", "db"),
			Port:       getEnv("DB_PORT", "5432"),
			User:       getEnv("DB_USER", "user"),
			Password:   getEnv("DB_PASS", "banner_chat_db"),
			Name:       getEnv("DB_NAME", "banner_chat_db"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL: getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Nats: NatsConfig{
			URL: getEnv("NATS_URL", "nats://localhost:4222"),
		},
		Providers: ProviderConfig{
			SlingAcademyURL: getEnv("API_SLING_ACADEMY_URL", ""),
			IntervalMinutes: getEnvAsInt("PROVIDER_INTERVAL_MINUTES", 1),
		},
		Banner: BannerConfig{
			BatchSize: getEnvAsInt("BULK_CREATE_BATCH_SIZE", 500),
			CacheKey:  getEnv("BANNER_CACHE_KEY", "available_banner_images"),
		},
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
