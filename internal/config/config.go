package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Config конфигурация сервиса, загружается из config.toml.
// Секреты (ключи платёжного шлюза) приходят из окружения/.env,
// чтобы не попадать в файл конфигурации.
type Config struct {
	Server       ServerConfig      `toml:"server" validate:"required"`
	Database     DatabaseConfig    `toml:"database" validate:"required"`
	Logs         LogsConfig        `toml:"logs"`
	Metrics      MetricsConfig     `toml:"metrics"`
	Salon        SalonConfig       `toml:"salon" validate:"required"`
	Identity     IntegrationConfig `toml:"identity_service" validate:"required"`
	Notification IntegrationConfig `toml:"notification_service" validate:"required"`
	Referral     IntegrationConfig `toml:"referral_service" validate:"required"`
	Payments     PaymentsConfig    `toml:"payments"`
}

// ServerConfig настройки HTTP-сервера.
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" validate:"required,min=1,max=65535"`
	ReadTimeout     int `toml:"read_timeout" validate:"required"`
	WriteTimeout    int `toml:"write_timeout" validate:"required"`
	IdleTimeout     int `toml:"idle_timeout" validate:"required"`
	ShutdownTimeout int `toml:"shutdown_timeout" validate:"required"`
}

// DatabaseConfig настройки подключения к PostgreSQL.
type DatabaseConfig struct {
	Host            string `toml:"host" validate:"required"`
	Port            int    `toml:"port" validate:"required"`
	User            string `toml:"user" validate:"required"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname" validate:"required"`
	SSLMode         string `toml:"sslmode" validate:"required"`
	MaxOpenConns    int    `toml:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `toml:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" validate:"required"`
}

// DSN собирает строку подключения.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования.
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик.
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SalonConfig бизнес-настройки салона. Рабочее окно салона задается здесь
// и пробрасывается в генератор слотов через main.
type SalonConfig struct {
	OpeningTime        string `toml:"opening_time" validate:"required"`
	ClosingTime        string `toml:"closing_time" validate:"required"`
	SlotCadenceMinutes int    `toml:"slot_cadence_minutes" validate:"required,min=5,max=240"`
	AutoAssignEnabled  bool   `toml:"auto_assign_enabled"`
}

// Opening возвращает время открытия как TimeString.
func (s SalonConfig) Opening() (types.TimeString, error) {
	return types.NewTimeStringFromString(s.OpeningTime)
}

// Closing возвращает время закрытия как TimeString.
func (s SalonConfig) Closing() (types.TimeString, error) {
	return types.NewTimeStringFromString(s.ClosingTime)
}

// IntegrationConfig настройки внешнего HTTP-сервиса.
type IntegrationConfig struct {
	URL     string `toml:"url" validate:"required,url"`
	Timeout int    `toml:"timeout" validate:"required"`
}

// PaymentsConfig настройки платёжного шлюза.
// SecretKey и WebhookSecret читаются из окружения (PAYMENTS_SECRET_KEY,
// PAYMENTS_WEBHOOK_SECRET); в mock-режиме они не обязательны.
type PaymentsConfig struct {
	MockMode        bool   `toml:"mock_mode"`
	MockCheckoutURL string `toml:"mock_checkout_url"`
	SuccessURL      string `toml:"success_url"`
	CancelURL       string `toml:"cancel_url"`
	Currency        string `toml:"currency"`

	SecretKey     string `toml:"-"`
	WebhookSecret string `toml:"-"`
}

// Load читает, валидирует и дополняет конфигурацию секретами из окружения.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	// .env опционален: в проде секреты приходят из окружения напрямую
	_ = godotenv.Load()

	cfg.Payments.SecretKey = os.Getenv("PAYMENTS_SECRET_KEY")
	cfg.Payments.WebhookSecret = os.Getenv("PAYMENTS_WEBHOOK_SECRET")

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	if _, err := cfg.Salon.Opening(); err != nil {
		return nil, fmt.Errorf("config: invalid salon.opening_time: %w", err)
	}
	if _, err := cfg.Salon.Closing(); err != nil {
		return nil, fmt.Errorf("config: invalid salon.closing_time: %w", err)
	}

	if !cfg.Payments.MockMode && cfg.Payments.SecretKey == "" {
		return nil, fmt.Errorf("config: PAYMENTS_SECRET_KEY is required when payments.mock_mode is false")
	}

	return &cfg, nil
}
