package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
	Booking  BookingConfig
	Email    EmailConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type SessionConfig struct {
	ExpiryHours int
}

// BookingConfig carries the checkout policy knobs. The per-customer cap was
// enabled in some storefront variants and disabled in others, so it is
// configuration rather than a constant.
type BookingConfig struct {
	CustomerCapEnabled bool
	CustomerCapMax     int
	DefaultCurrency    string
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	FromName string
}

// Enabled reports whether outbound email is configured at all. Notification
// dispatch is skipped (not failed) when it is not.
func (c EmailConfig) Enabled() bool {
	return c.Host != ""
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("BOOKING_LIMIT_ENABLED", true)
	viper.SetDefault("BOOKING_LIMIT_MAX", 3)
	viper.SetDefault("DEFAULT_CURRENCY", "EUR")
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("EMAIL_FROM_NAME", "FastLane Bookings")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		Booking: BookingConfig{
			CustomerCapEnabled: viper.GetBool("BOOKING_LIMIT_ENABLED"),
			CustomerCapMax:     viper.GetInt("BOOKING_LIMIT_MAX"),
			DefaultCurrency:    viper.GetString("DEFAULT_CURRENCY"),
		},
		Email: EmailConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASS"),
			From:     viper.GetString("EMAIL_FROM"),
			FromName: viper.GetString("EMAIL_FROM_NAME"),
		},
	}

	return config, nil
}
