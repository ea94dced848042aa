package config

import (
	"fmt"
	"net/url"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the process configuration, read once at startup.
// Secrets are not validated here; signing and payment calls fail when they are missing.
type Config struct {
	Port            string
	DBDriver        string
	DatabaseDSN     string
	AccessToken     string
	StripeSecretKey string
	RabbitMQURL     string
	LogLevel        string
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	// .env is optional, mirrors local development setups
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	return FromViper(v)
}

// FromViper builds a Config from v after applying defaults.
func FromViper(v *viper.Viper) *Config {
	v.SetDefault("PORT", "5000")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "bistroDb")
	v.SetDefault("LOG_LEVEL", "info")

	dsn := v.GetString("DATABASE_DSN")
	if dsn == "" && v.GetString("DB_DRIVER") == "postgres" {
		dsn = postgresDSN(v)
	}

	return &Config{
		Port:            v.GetString("PORT"),
		DBDriver:        v.GetString("DB_DRIVER"),
		DatabaseDSN:     dsn,
		AccessToken:     v.GetString("ACCESS_TOKEN"),
		StripeSecretKey: v.GetString("STRIPE_SECRET_KEY"),
		RabbitMQURL:     v.GetString("RABBITMQ_URL"),
		LogLevel:        v.GetString("LOG_LEVEL"),
	}
}

func postgresDSN(v *viper.Viper) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(v.GetString("DB_USER"), v.GetString("DB_PASS")),
		Host:     fmt.Sprintf("%s:%s", v.GetString("DB_HOST"), v.GetString("DB_PORT")),
		Path:     v.GetString("DB_NAME"),
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// ListenAddr returns the fiber listen address for Port.
func (c *Config) ListenAddr() string {
	return ":" + c.Port
}
