package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort  string
	DBPath   string
	LogLevel string
	LogJSON  bool

	// Fixed enumerations surfaced by the form. Owned here so the sets can be
	// extended in one place instead of scattering literals through handlers.
	UserNames  []string
	Recipients []string
}

const (
	defaultPort   = "8080"
	defaultDBPath = "purchase_orders.db"
)

// Known operators allowed to be named on a purchase order.
var defaultUserNames = []string{"Rami", "Tariq", "Ricky", "New Admin"}

// Recipients of the pre-filled PO notification email. Not user-configurable.
var notificationRecipients = []string{
	"raldoush12@gmail.com",
	"happysweep.cleaning@gmail.com",
	"tarekalkafery@gmail.com",
}

// Load reads configuration from the environment (and .env if present).
// Everything has a sensible default for a local single-operator deployment.
func Load() *Config {
	_ = godotenv.Load()

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = defaultPort
	}

	dbPath := os.Getenv("PO_DB_PATH")
	if dbPath == "" {
		dbPath = defaultDBPath
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return &Config{
		AppPort:    port,
		DBPath:     dbPath,
		LogLevel:   logLevel,
		LogJSON:    os.Getenv("LOG_JSON") == "true",
		UserNames:  defaultUserNames,
		Recipients: notificationRecipients,
	}
}
