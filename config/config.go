package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration values. Every key can be set from the
// environment or a config.yaml next to the binary.
type Config struct {
	AppEnv         string `mapstructure:"APP_ENV"`
	Port           string `mapstructure:"PORT"`
	LogLevel       string `mapstructure:"LOG_LEVEL"`
	HotelName      string `mapstructure:"HOTEL_NAME"`
	CORSOrigins    string `mapstructure:"CORS_ORIGINS"`
	SeedSampleData bool   `mapstructure:"SEED_SAMPLE_DATA"`

	// Storage: json, mysql or memory.
	StorageDriver string `mapstructure:"STORAGE_DRIVER"`
	DataDir       string `mapstructure:"DATA_DIR"`

	// MySQL, used when StorageDriver is mysql.
	MySQLURL    string `mapstructure:"MYSQL_URL"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	DBUser      string `mapstructure:"DB_USER"`
	DBPass      string `mapstructure:"DB_PASS"`
	DBHost      string `mapstructure:"DB_HOST"`
	DBPort      string `mapstructure:"DB_PORT"`
	DBName      string `mapstructure:"DB_NAME"`
}

var AppConfig Config

const (
	DriverJSON   = "json"
	DriverMySQL  = "mysql"
	DriverMemory = "memory"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HOTEL_NAME", "Grand Hotel")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("SEED_SAMPLE_DATA", true)
	v.SetDefault("STORAGE_DRIVER", DriverJSON)
	v.SetDefault("DATA_DIR", "data")
	v.SetDefault("MYSQL_URL", "")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_USER", "root")
	v.SetDefault("DB_PASS", "")
	v.SetDefault("DB_HOST", "127.0.0.1")
	v.SetDefault("DB_PORT", "3306")
	v.SetDefault("DB_NAME", "hotel_db")
}

// LoadConfig reads defaults, an optional config.yaml and the environment,
// in increasing order of precedence.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))
	switch cfg.StorageDriver {
	case DriverJSON, DriverMySQL, DriverMemory:
	default:
		return Config{}, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	AppConfig = cfg
	return cfg, nil
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}
