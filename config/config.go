package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config настройки сервиса.
// Значения берутся из файла конфигурации, переменных DEBRIS_* и .env.
type Config struct {
	HTTPAddr        string        `mapstructure:"http_addr"`
	MaxUploadMB     int64         `mapstructure:"max_upload_mb"`
	CORSOrigin      string        `mapstructure:"cors_origin"`
	MinContourArea  float64       `mapstructure:"min_contour_area"`
	SuppressNested  bool          `mapstructure:"suppress_nested"`
	TelegramToken   string        `mapstructure:"telegram_token"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Load читает конфигурацию. configFile может быть пустым.
func Load(configFile string) (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("http_addr", ":5000")
	v.SetDefault("max_upload_mb", 16)
	v.SetDefault("cors_origin", "*")
	v.SetDefault("min_contour_area", 100.0)
	v.SetDefault("suppress_nested", false)
	v.SetDefault("telegram_token", "")
	v.SetDefault("shutdown_timeout", 10*time.Second)

	v.SetEnvPrefix("DEBRIS")
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if cfg.TelegramToken == "" {
		cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет, что значения пригодны для запуска
func (c *Config) Validate() error {
	var errs []error
	if c.HTTPAddr == "" {
		errs = append(errs, errors.New("http_addr is required"))
	}
	if c.MaxUploadMB <= 0 {
		errs = append(errs, fmt.Errorf("max_upload_mb must be positive, got %d", c.MaxUploadMB))
	}
	if c.MinContourArea < 0 {
		errs = append(errs, fmt.Errorf("min_contour_area must not be negative, got %v", c.MinContourArea))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("shutdown_timeout must be positive, got %s", c.ShutdownTimeout))
	}
	return errors.Join(errs...)
}

// MaxUploadBytes возвращает лимит загрузки в байтах
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}
