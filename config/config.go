package config

import (
	"time"
)

type Config struct {
	Server   ServerConfig   `envPrefix:"SERVER_"`
	Database DatabaseConfig `envPrefix:"DB_"`
	Razorpay RazorpayConfig `envPrefix:"RAZORPAY_"`
	Log      LogConfig      `envPrefix:"LOG_"`
}

type ServerConfig struct {
	Port         string        `env:"PORT" envDefault:"8099"`
	Env          string        `env:"ENV" envDefault:"development"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
}

type DatabaseConfig struct {
	DSN             string        `env:"DSN" envDefault:"selectz:selectz@tcp(localhost:3306)/selectz?charset=utf8mb4&parseTime=True&loc=Local"`
	MaxIdleConns    int           `env:"MAX_IDLE_CONNS" envDefault:"10"`
	MaxOpenConns    int           `env:"MAX_OPEN_CONNS" envDefault:"100"`
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME" envDefault:"1h"`
}

// RazorpayConfig holds the orders API credentials and the webhook shared secret.
// KeyID is public; it is returned to clients so they can launch the checkout UI.
type RazorpayConfig struct {
	BaseURL       string `env:"BASE_URL" envDefault:"https://api.razorpay.com"`
	KeyID         string `env:"KEY_ID"`
	KeySecret     string `env:"KEY_SECRET"`
	WebhookSecret string `env:"WEBHOOK_SECRET"`
}

type LogConfig struct {
	Level string `env:"LEVEL" envDefault:"info"`
}
