package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	GoogleMaps GoogleMapsConfig
	Form       FormConfig
	Log        LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type GoogleMapsConfig struct {
	APIKey         string
	BaseURL        string
	EmbedURL       string
	RequestTimeout int // seconds
}

// FormConfig - значения полей формы по умолчанию
type FormConfig struct {
	StartLocations string
	Destination    string
	ArrivalTime    string
}

type LogConfig struct {
	Level string
}

const (
	defaultBaseURL        = "https://maps.googleapis.com/maps/api"
	defaultEmbedURL       = "https://www.google.com/maps/embed/v1/directions"
	defaultRequestTimeout = 30
	defaultSecretsFile    = "secrets.toml"

	// secretKey is the key of the API credential inside the secrets file.
	secretKey = "auth_key"
)

// Load reads configuration from envFile (ignored when missing) and the process
// environment. The Google Maps credential is taken from the secrets file first
// and from GOOGLE_MAPS_API_KEY otherwise.
func Load(envFile string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("GOOGLE_MAPS_BASE_URL", defaultBaseURL)
	v.SetDefault("GOOGLE_MAPS_EMBED_URL", defaultEmbedURL)
	v.SetDefault("GOOGLE_MAPS_REQUEST_TIMEOUT", defaultRequestTimeout)
	v.SetDefault("SECRETS_FILE", defaultSecretsFile)
	v.SetDefault("DEFAULT_START_LOCATIONS", "Zürich HB, Schweiz; Bern, Schweiz; Basel, Schweiz")
	v.SetDefault("DEFAULT_DESTINATION", "Genève, Schweiz")
	v.SetDefault("DEFAULT_ARRIVAL_TIME", "13.05.2024-19:00")

	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),
		},
		GoogleMaps: GoogleMapsConfig{
			BaseURL:        strings.TrimRight(v.GetString("GOOGLE_MAPS_BASE_URL"), "/"),
			EmbedURL:       v.GetString("GOOGLE_MAPS_EMBED_URL"),
			RequestTimeout: v.GetInt("GOOGLE_MAPS_REQUEST_TIMEOUT"),
		},
		Form: FormConfig{
			StartLocations: v.GetString("DEFAULT_START_LOCATIONS"),
			Destination:    v.GetString("DEFAULT_DESTINATION"),
			ArrivalTime:    v.GetString("DEFAULT_ARRIVAL_TIME"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	apiKey, err := loadSecret(v.GetString("SECRETS_FILE"))
	if err != nil {
		return nil, err
	}
	if apiKey == "" {
		apiKey = v.GetString("GOOGLE_MAPS_API_KEY")
	}
	cfg.GoogleMaps.APIKey = strings.TrimSpace(apiKey)

	if cfg.GoogleMaps.RequestTimeout <= 0 {
		cfg.GoogleMaps.RequestTimeout = defaultRequestTimeout
	}

	return cfg, nil
}

// loadSecret reads auth_key from a TOML secrets file. A missing file is not an
// error.
func loadSecret(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	secrets := viper.New()
	secrets.SetConfigFile(path)
	secrets.SetConfigType("toml")

	if err := secrets.ReadInConfig(); err != nil {
		if isNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read secrets file %s: %w", path, err)
	}

	return secrets.GetString(secretKey), nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *GoogleMapsConfig) Timeout() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}
