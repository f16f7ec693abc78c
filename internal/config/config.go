package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Gateway  GatewayConfig  `toml:"gateway"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения PostgreSQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// GatewayConfig настройки платёжного шлюза (Mercado Pago).
// Учётные данные и секрет вебхука задаются явно в конфигурации
// и внедряются в клиент шлюза при создании.
type GatewayConfig struct {
	BaseURL           string `toml:"base_url"`
	AccessToken       string `toml:"access_token"`
	WebhookSecret     string `toml:"webhook_secret"`
	FrontendURL       string `toml:"frontend_url"`
	NotificationURL   string `toml:"notification_url"`
	Currency          string `toml:"currency"`
	DefaultPayerEmail string `toml:"default_payer_email"`
	Timeout           int    `toml:"timeout"`
	Sandbox           bool   `toml:"sandbox"`
}

// Load читает и валидирует конфигурацию из файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Metrics.Enabled && cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Gateway.BaseURL == "" {
		cfg.Gateway.BaseURL = "https://api.mercadopago.com"
	}
	if cfg.Gateway.Currency == "" {
		cfg.Gateway.Currency = "PEN"
	}
	if cfg.Gateway.Timeout == 0 {
		cfg.Gateway.Timeout = 10
	}
	if cfg.Gateway.AccessToken == "" {
		return nil, fmt.Errorf("config: gateway.access_token is required")
	}

	return &cfg, nil
}
