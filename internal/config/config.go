package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"time"

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort    string        // Application port
	DBUser     string        // Database user
	DBPassword string        // Database password
	DBHost     string        // Database host
	DBPort     string        // Database port
	DBName     string        // Database name
	JWTSecret  string        // JWT secret key
	JWTExpiry  time.Duration // Token lifetime
	RedisAddr  string        // Redis server address
	RedisPass  string        // Redis password
	RedisDB    int           // Redis database number
	CacheTTL   time.Duration // TTL for cached catalog reads
	IsProd     bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	jwtExpiryHours, err := strconv.Atoi(os.Getenv("JWT_EXPIRY_HOURS"))
	if err != nil || jwtExpiryHours <= 0 {
		jwtExpiryHours = 24
	}
	cacheTTLSeconds, err := strconv.Atoi(os.Getenv("CACHE_TTL_SECONDS"))
	if err != nil || cacheTTLSeconds <= 0 {
		cacheTTLSeconds = 60
	}
	return &Config{
		AppPort:    os.Getenv("APP_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBName:     os.Getenv("DB_NAME"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		JWTExpiry:  time.Duration(jwtExpiryHours) * time.Hour,
		RedisAddr:  os.Getenv("REDIS_ADDR"),
		RedisPass:  os.Getenv("REDIS_PASS"),
		RedisDB:    redisDB,
		CacheTTL:   time.Duration(cacheTTLSeconds) * time.Second,
		IsProd:     os.Getenv("IS_PROD") == "true",
	}
}

// DSN builds the MySQL Data Source Name from the database settings.
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}
