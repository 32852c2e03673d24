package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP                 string // Host IP for the server
	RESTPort               int    // Port for the REST API
	GinMode                string // Mode for the Gin framework (e.g., release, debug, test)
	DBHost                 string // Hostname or IP address for the database
	DBPort                 int    // Port number for the database
	DBUser                 string // Username for the database
	DBPassword             string // Password for the database
	DBName                 string // Name of the database
	RedisAddr              string // host:port of the redis server backing the rate limiter
	RedisPassword          string // Password for the redis server
	JWTSecret              string // Secret key for JWT signing
	JWTIssuer              string // Issuer claim for JWTs
	MazeMaxDimension       int    // Largest width or height accepted from authenticated users
	MazePublicMaxDimension int    // Largest width or height served without authentication
	RateLimitRequests      int    // Maze builds allowed per user per window
	RateLimitWindowSeconds int    // Length of the rate limit window
}

// Load reads the configuration from the environment.
// It loads environment variables from a .env file first, when one exists.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:                 getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:               getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:                getEnvWithDefault("GIN_MODE", "release"),
		DBHost:                 mustGetEnv("DB_HOST"),
		DBPort:                 mustGetEnvAsInt("DB_PORT"),
		DBUser:                 mustGetEnv("DB_USER"),
		DBPassword:             mustGetEnv("DB_PASS"),
		DBName:                 mustGetEnv("DB_NAME"),
		RedisAddr:              getEnvWithDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:          getEnvWithDefault("REDIS_PASSWORD", ""),
		JWTSecret:              mustGetEnv("JWT_SECRET"),
		JWTIssuer:              mustGetEnv("JWT_ISSUER"),
		MazeMaxDimension:       getEnvAsIntWithDefault("MAZE_MAX_DIMENSION", 100),
		MazePublicMaxDimension: getEnvAsIntWithDefault("MAZE_PUBLIC_MAX_DIMENSION", 20),
		RateLimitRequests:      getEnvAsIntWithDefault("RATE_LIMIT_REQUESTS", 30),
		RateLimitWindowSeconds: getEnvAsIntWithDefault("RATE_LIMIT_WINDOW_SECONDS", 60),
	}
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer or logs a fatal error if not set or cannot be parsed.
func mustGetEnvAsInt(key string) int {
	valueStr := mustGetEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault is getEnvWithDefault for integers. An unparsable value is fatal.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}
