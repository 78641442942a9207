package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration loaded from environment variables.
type Config struct {
	Port           string `envconfig:"PORT" default:"8080"`
	GinMode        string `envconfig:"GIN_MODE" default:"release"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
	LogDevelopment bool   `envconfig:"LOG_DEVELOPMENT" default:"false"`
	AllowedOrigins string `envconfig:"ALLOWED_ORIGINS"`

	HomeHealthData      string        `envconfig:"HOME_HEALTH_DATA" default:"data/HH_Provider_Oct2021.csv"`
	HospiceData         string        `envconfig:"HOSPICE_DATA" default:"data/Hospice_-_Provider_Data.csv"`
	HospitalData        string        `envconfig:"HOSPITAL_DATA" default:"data/Payment_and_Value_of_Care-Hospital.csv"`
	DatasetFetchTimeout time.Duration `envconfig:"DATASET_FETCH_TIMEOUT" default:"60s"`

	NewsAPIKey     string        `envconfig:"NEWS_API_KEY"`
	NewsBaseURL    string        `envconfig:"NEWS_BASE_URL" default:"https://newsapi.org"`
	NewsTimeout    time.Duration `envconfig:"NEWS_TIMEOUT" default:"10s"`
	NewsMock       bool          `envconfig:"NEWS_MOCK" default:"false"`
	NewsRatePerSec float64       `envconfig:"NEWS_RATE_PER_SEC" default:"1"`
	NewsBurst      int           `envconfig:"NEWS_BURST" default:"5"`

	FirebaseProjectID   string        `envconfig:"FIREBASE_PROJECT_ID"`
	FirebaseCredsBase64 string        `envconfig:"FIREBASE_CREDS_BASE64"`
	FirebaseCredsFile   string        `envconfig:"FIREBASE_CREDS_FILE"`
	FirestoreTimeout    time.Duration `envconfig:"FIRESTORE_TIMEOUT" default:"5s"`
}

// Load reads environment variables into a Config with sensible defaults.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	cfg.trim()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) trim() {
	for _, s := range []*string{
		&c.Port, &c.GinMode, &c.LogLevel, &c.AllowedOrigins,
		&c.HomeHealthData, &c.HospiceData, &c.HospitalData,
		&c.NewsAPIKey, &c.NewsBaseURL,
		&c.FirebaseProjectID, &c.FirebaseCredsBase64, &c.FirebaseCredsFile,
	} {
		*s = strings.TrimSpace(*s)
	}
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.HomeHealthData == "" || c.HospiceData == "" || c.HospitalData == "" {
		return errors.New("HOME_HEALTH_DATA, HOSPICE_DATA and HOSPITAL_DATA are required")
	}
	if c.NewsTimeout <= 0 {
		return errors.New("NEWS_TIMEOUT must be positive")
	}
	if c.NewsRatePerSec <= 0 || c.NewsBurst <= 0 {
		return errors.New("NEWS_RATE_PER_SEC and NEWS_BURST must be positive")
	}
	if c.FirebaseProjectID != "" && c.FirebaseCredsBase64 == "" && c.FirebaseCredsFile == "" {
		return errors.New("provide FIREBASE_CREDS_BASE64 or FIREBASE_CREDS_FILE for Firestore auth")
	}
	if c.FirestoreEnabled() && c.FirestoreTimeout <= 0 {
		return errors.New("FIRESTORE_TIMEOUT must be positive")
	}
	return nil
}

// FirestoreEnabled reports whether summary publishing is configured.
func (c Config) FirestoreEnabled() bool {
	return c.FirebaseProjectID != "" && (c.FirebaseCredsBase64 != "" || c.FirebaseCredsFile != "")
}

// Warnings lists settings that are allowed but degrade the service.
func (c Config) Warnings() []string {
	var out []string
	if c.NewsAPIKey == "" && !c.NewsMock {
		out = append(out, "NEWS_API_KEY is not set; news endpoints will return empty lists")
	}
	if !c.FirestoreEnabled() {
		out = append(out, "Firestore is not configured; summary publishing is disabled")
	}
	return out
}

// FirebaseCredentialsJSON returns the service account JSON bytes and the source used.
func (c Config) FirebaseCredentialsJSON() ([]byte, string, error) {
	if c.FirebaseCredsBase64 != "" {
		decoded, err := base64.StdEncoding.DecodeString(c.FirebaseCredsBase64)
		if err != nil {
			return nil, "base64", fmt.Errorf("decode FIREBASE_CREDS_BASE64: %w", err)
		}
		return decoded, "base64", nil
	}
	if c.FirebaseCredsFile != "" {
		data, err := os.ReadFile(c.FirebaseCredsFile)
		if err != nil {
			return nil, "file", fmt.Errorf("read FIREBASE_CREDS_FILE: %w", err)
		}
		return data, "file", nil
	}
	return nil, "", errors.New("no firebase credentials found")
}
