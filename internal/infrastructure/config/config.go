// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Tequila search
	TequilaAPIKey  string
	SearchBaseURL  string
	CarriersURL    string
	FlyFrom        string
	FlyTo          string
	DateFrom       string
	DateTo         string
	NightsInDstMin int
	NightsInDstMax int
	MaxFlyDuration int
	MaxStopovers   int
	SearchLimit    int
	Currency       string
	Locale         string

	// Relational store
	DBDriver string
	DBDSN    string

	// MongoDB raw-response archive (optional)
	MongoURI      string
	MongoDB       string
	MongoUser     string
	MongoPassword string

	// Report & delivery
	ReportLimit     int
	ReportRecipient string
	MailTransport   string

	// SMTP
	SMTPServer   string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string

	// Gmail
	GmailClientID     string
	GmailClientSecret string
	GmailRefreshToken string

	// Scheduling
	FetchInterval time.Duration
	RunOnce       bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	// Set defaults and override with env vars
	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		TequilaAPIKey:  getEnv("TEQUILA_API_KEY", ""),
		SearchBaseURL:  getEnv("TEQUILA_SEARCH_URL", "https://api.tequila.kiwi.com/v2/search"),
		CarriersURL:    getEnv("TEQUILA_CARRIERS_URL", "https://tequila-api.kiwi.com/carriers"),
		FlyFrom:        getEnv("FLY_FROM", "VIE,BUD"),
		FlyTo:          getEnv("FLY_TO", "BKK"),
		DateFrom:       getEnv("DATE_FROM", ""),
		DateTo:         getEnv("DATE_TO", ""),
		NightsInDstMin: getEnvAsInt("NIGHTS_IN_DST_FROM", 7),
		NightsInDstMax: getEnvAsInt("NIGHTS_IN_DST_TO", 14),
		MaxFlyDuration: getEnvAsInt("MAX_FLY_DURATION", 15),
		MaxStopovers:   getEnvAsInt("MAX_STOPOVERS", 1),
		SearchLimit:    getEnvAsInt("SEARCH_LIMIT", 1000),
		Currency:       getEnv("CURRENCY", "HUF"),
		Locale:         getEnv("LOCALE", "hu"),

		DBDriver: getEnv("DB_DRIVER", "sqlite"),
		DBDSN:    getEnv("DB_DSN", "flights.db"),

		MongoURI:      getEnv("MONGODB_DSN", ""),
		MongoDB:       getEnv("MONGO_DB", "cheaptravel"),
		MongoUser:     getEnv("MONGO_USER", ""),
		MongoPassword: getEnv("MONGO_PASSWORD", ""),

		ReportLimit:     getEnvAsInt("REPORT_LIMIT", 5),
		ReportRecipient: getEnv("REPORT_RECIPIENT", ""),
		MailTransport:   getEnv("MAIL_TRANSPORT", "smtp"),

		SMTPServer:   getEnv("SMTP_SERVER", "localhost"),
		SMTPPort:     getEnvAsInt("SMTP_PORT", 25),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),

		GmailClientID:     getEnv("GMAIL_CLIENT_ID", ""),
		GmailClientSecret: getEnv("GMAIL_CLIENT_SECRET", ""),
		GmailRefreshToken: getEnv("GMAIL_REFRESH_TOKEN", ""),

		FetchInterval: time.Duration(getEnvAsInt("FETCH_INTERVAL_HOURS", 24)) * time.Hour,
		RunOnce:       getEnvAsBool("RUN_ONCE", false),
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
