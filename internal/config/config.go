package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/spf13/pflag"
)

type Arguments struct {
	ListenAddr   string `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	JWTSecret    string `env:"JWT_SECRET" envDefault:"secret"`
	CheckoutAddr string `env:"CHECKOUT_API_ADDRESS" envDefault:"http://localhost:8081"`
	Timezone     string `env:"DISPLAY_TIMEZONE" envDefault:"Australia/Sydney"`
}

// ServerConfig модель настроек сервера
type ServerConfig struct {
	ListenAddr string
	LogLevel   string
	JWTSecret  string
}

// CheckoutConfig модель настроек callout к API оформления заказа
type CheckoutConfig struct {
	CheckoutAddr string
	Timeout      time.Duration
}

// DisplayConfig модель настроек отображения окон доставки
type DisplayConfig struct {
	Timezone string
}

// Config модель настроек сервиса
type Config struct {
	Server   ServerConfig
	Checkout CheckoutConfig
	Display  DisplayConfig
}

// Таймаут callout, как у исходного шлюза
const DefaultCheckoutTimeout = 30 * time.Second

func NewConfig() Config {

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server   = pflag.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		logLevel = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		secret   = pflag.StringP("secret", "s", args.JWTSecret, "Secret to JWT")
		checkout = pflag.StringP("checkout", "c", args.CheckoutAddr, "Checkout API base URL.")
		timezone = pflag.StringP("timezone", "t", args.Timezone, "Timezone for fulfilment window display.")
	)
	pflag.Parse()

	return Config{
		Server: ServerConfig{
			ListenAddr: *server,
			LogLevel:   *logLevel,
			JWTSecret:  *secret,
		},
		Checkout: CheckoutConfig{
			CheckoutAddr: *checkout,
			Timeout:      DefaultCheckoutTimeout,
		},
		Display: DisplayConfig{
			Timezone: *timezone,
		},
	}
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr: "localhost:8080",
			LogLevel:   "info",
			JWTSecret:  "secret",
		},
		Checkout: CheckoutConfig{
			CheckoutAddr: "http://localhost:8081",
			Timeout:      DefaultCheckoutTimeout,
		},
		Display: DisplayConfig{
			Timezone: "Australia/Sydney",
		},
	}
}
