package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings. It is built once at startup and passed
// by reference to the components that need it.
type Config struct {
	ServerPort  string
	MongoURI    string
	MongoDBName string
	SecretKey   string
	TokenExpiry time.Duration
	CORSOrigins []string
	LogFile     string
	LogLevel    string
}

// Load reads .env (if present) and builds the config from the environment.
func Load() *Config {
	// A missing .env is fine; deployments set real environment variables.
	_ = godotenv.Load(".env")

	expireMinutes := 30
	if v := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			expireMinutes = n
		}
	}

	origins := getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")
	var originList []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			originList = append(originList, o)
		}
	}

	return &Config{
		ServerPort:  getEnv("SERVER_PORT", "8000"),
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName: getEnv("MONGO_DB_NAME", "taskforge"),
		SecretKey:   getEnv("SECRET_KEY", "your-super-secret-key-change-in-production"),
		TokenExpiry: time.Duration(expireMinutes) * time.Minute,
		CORSOrigins: originList,
		LogFile:     getEnv("LOG_FILE", "logs/taskforge.log"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
