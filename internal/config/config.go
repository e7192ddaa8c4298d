package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StorageMemory = "memory"
	StorageMySQL  = "mysql"
)

var envPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandEnvWithDefaults расширяет переменные окружения с поддержкой дефолтных значений
// Формат: ${VAR:-default}
func expandEnvWithDefaults(s string) string {
	return envPattern.ReplaceAllStringFunc(s, func(match string) string {
		matches := envPattern.FindStringSubmatch(match)
		if len(matches) < 2 {
			return match
		}

		value := os.Getenv(matches[1])
		if value == "" {
			// Переменная не задана - берем значение по умолчанию (может быть пустым)
			return matches[2]
		}
		return value
	})
}

// InitConfig читает конфигурационный файл и возвращает экземпляр конфигурации
// Использует generic для работы с произвольным типом конфигурации
func InitConfig[C any](configFile string) (*C, error) {
	v := viper.New()
	ext := strings.TrimLeft(filepath.Ext(configFile), ".")

	v.SetConfigFile(configFile)
	v.SetConfigType(ext)
	err := v.ReadInConfig()
	if err != nil {
		return nil, fmt.Errorf("v.ReadInConfig: %w", err)
	}

	// Заменяем переменные окружения формата ${VAR:-default} на их значения
	for _, k := range v.AllKeys() {
		value := v.GetString(k)
		if value == "" {
			continue
		}
		// Типы восстанавливает Unmarshal (weakly typed decode): строковые поля
		// сохраняют значение как есть, например пароль "007"
		v.Set(k, expandEnvWithDefaults(value))
	}

	cfg := new(C)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("v.Unmarshal: %w", err)
	}

	return cfg, nil
}

// Load подгружает .env (если он есть), читает конфигурацию сервиса,
// заполняет пропущенные значения и проверяет результат
func Load(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("godotenv.Load: %w", err)
	}

	cfg, err := InitConfig[Config](configFile)
	if err != nil {
		return nil, err
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Logger == nil {
		c.Logger = &ConfigLogger{}
	}
	if c.Logger.Level == "" {
		c.Logger.Level = "info"
	}
	if c.Logger.Format == "" {
		c.Logger.Format = "json"
	}

	if c.Server == nil {
		c.Server = &ConfigServer{}
	}
	setIntDefault(&c.Server.PortHTTP, 8001)
	setIntDefault(&c.Server.HTTPReadTimeout, 10)
	setIntDefault(&c.Server.HTTPWriteTimeout, 10)
	setIntDefault(&c.Server.HTTPIdleTimeout, 60)
	setIntDefault(&c.Server.HTTPReadHeaderTimeout, 5)
	setIntDefault(&c.Server.GracefulShutdownTimeout, 10)

	if c.Gateway == nil {
		c.Gateway = &ConfigGateway{}
	}
	if c.Gateway.CORSAllowedOrigins == "" {
		c.Gateway.CORSAllowedOrigins = "*"
	}

	if c.Storage == nil {
		c.Storage = &ConfigStorage{}
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = StorageMemory
	}

	if c.Metrics == nil {
		c.Metrics = &ConfigMetrics{}
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}

	if c.Swagger == nil {
		c.Swagger = &ConfigSwagger{}
	}
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageMemory:
	case StorageMySQL:
		if c.Storage.MySQL == nil || c.Storage.MySQL.Host == "" || c.Storage.MySQL.Database == "" {
			return errors.New("storage.mysql.host and storage.mysql.database are required for mysql driver")
		}
		setIntDefault(&c.Storage.MySQL.Port, 3306)
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	if c.Server.PortHTTP <= 0 || c.Server.PortHTTP > 65535 {
		return fmt.Errorf("invalid server.port_http %d", c.Server.PortHTTP)
	}

	return nil
}

func setIntDefault(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}
