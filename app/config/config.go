package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"mergington-admin/app/api"
)

type Config struct {
	ListenAddr        string
	APIBaseURL        string
	APITimeout        time.Duration
	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash string

	API *api.Client
}

var AppConfig *Config

// Load reads configuration from the environment (and .env if present) and
// initializes the school API client.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	cfg := &Config{
		ListenAddr: getenv("LISTEN_ADDR", ":3000"),
		APIBaseURL: getenv("API_BASE_URL", "http://127.0.0.1:8000"),
		APITimeout: getenvDuration("API_TIMEOUT", 10*time.Second),
		JWTSecret:  getenv("JWT_SECRET", "mergington-admin-secret-key"),
		AdminEmail: getenv("ADMIN_EMAIL", "admin@mergington.edu"),
	}

	// ADMIN_PASSWORD_HASH takes precedence; a plain ADMIN_PASSWORD is
	// hashed at startup. The fallback password is for development only.
	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" {
		cfg.AdminPasswordHash = hash
	} else {
		password := getenv("ADMIN_PASSWORD", "mergington")
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("Failed to hash admin password:", err)
		}
		cfg.AdminPasswordHash = string(hashed)
	}

	cfg.API = api.New(cfg.APIBaseURL, cfg.APITimeout)

	AppConfig = cfg
	log.Printf("Configured against school API at %s", cfg.APIBaseURL)
}

func GetAPI() *api.Client {
	return AppConfig.API
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	if val := os.Getenv(key + "_SECONDS"); val != "" {
		if seconds, err := strconv.Atoi(val); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}
