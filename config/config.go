package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// DefaultConfigYAML is the configuration compiled into the binary.
//
//go:embed default.yaml
var DefaultConfigYAML []byte

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Config application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Session  SessionConfig  `mapstructure:"session"`
	Email    EmailConfig    `mapstructure:"email"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	Port    string `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
	BaseURL string `mapstructure:"base_url"`
}

// DatabaseConfig selects the storage adapter and its connection settings.
// Path is used by sqlite; the remaining fields by postgres and mysql.
type DatabaseConfig struct {
	Driver       string `mapstructure:"driver"`
	Path         string `mapstructure:"path"`
	Host         string `mapstructure:"host"`
	Port         string `mapstructure:"port"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	DBName       string `mapstructure:"dbname"`
	Charset      string `mapstructure:"charset"`
	SSLMode      string `mapstructure:"sslmode"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

// SessionConfig session cookie settings
type SessionConfig struct {
	Secret      string        `mapstructure:"secret"`
	CookieName  string        `mapstructure:"cookie_name"`
	ExpireHours int           `mapstructure:"expire_hours"`
	ExpireTime  time.Duration `mapstructure:"-"`
}

// EmailConfig SMTP settings for outgoing mail
type EmailConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// LogConfig logger settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// devSessionSecret signs session cookies when no secret is configured outside release mode.
const devSessionSecret = "auracash-dev-session-secret"

var (
	// GlobalConfig the loaded configuration
	GlobalConfig *Config
)

// LoadConfig loads configuration.
// Precedence: environment (AURACASH_*, .env included) > external file > embedded defaults.
func LoadConfig(configPath string) (*Config, error) {
	// a missing .env is the normal case
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("read embedded config: %w", err)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			log.Warn().Err(err).Str("path", configPath).Msg("cannot read config file")
		} else {
			log.Info().Str("path", configPath).Msg("merged config file")
		}
	} else {
		externalViper := viper.New()
		externalViper.SetConfigName("config")
		externalViper.SetConfigType("yaml")
		externalViper.AddConfigPath(".")
		externalViper.AddConfigPath("./config")
		externalViper.AddConfigPath("/etc/auracash")
		externalViper.AddConfigPath("$HOME/.auracash")

		if err := externalViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(externalViper.AllSettings()); err != nil {
				log.Warn().Err(err).Msg("merge external config failed")
			} else {
				log.Info().Str("path", externalViper.ConfigFileUsed()).Msg("merged config file")
			}
		}
	}

	v.SetEnvPrefix("AURACASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	GlobalConfig = &cfg

	return &cfg, nil
}

func (cfg *Config) normalize() error {
	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))
	switch cfg.Database.Driver {
	case "", DriverSQLite:
		cfg.Database.Driver = DriverSQLite
		if cfg.Database.Path == "" {
			cfg.Database.Path = "auracash.db"
		}
	case "postgresql", "pgx":
		cfg.Database.Driver = DriverPostgres
	case DriverPostgres, DriverMySQL:
	default:
		return fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	if cfg.Session.ExpireHours <= 0 {
		cfg.Session.ExpireHours = 24 * 7
	}
	cfg.Session.ExpireTime = time.Duration(cfg.Session.ExpireHours) * time.Hour
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = "auracash_session"
	}
	if cfg.Session.Secret == "" {
		if cfg.Server.Mode == "release" {
			return errors.New("session.secret must be set in release mode")
		}
		cfg.Session.Secret = devSessionSecret
		log.Warn().Msg("session.secret not set, using development secret")
	}
	return nil
}

// GetConfig returns the global configuration
func GetConfig() *Config {
	if GlobalConfig == nil {
		panic("config not initialised, call LoadConfig first")
	}
	return GlobalConfig
}

// PrintConfig logs the active configuration without secrets
func PrintConfig() {
	if GlobalConfig == nil {
		return
	}
	db := GlobalConfig.Database
	target := db.Path
	if db.Driver != DriverSQLite {
		target = fmt.Sprintf("%s@%s:%s/%s", db.Username, db.Host, db.Port, db.DBName)
	}
	log.Info().
		Str("port", GlobalConfig.Server.Port).
		Str("mode", GlobalConfig.Server.Mode).
		Str("db_driver", db.Driver).
		Str("db_target", target).
		Bool("email", GlobalConfig.Email.Enabled).
		Msg("active configuration")
}

// SafeErrorMessage returns err's text outside release mode and fallback otherwise,
// so internal errors never reach clients of a production deployment.
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig != nil && GlobalConfig.Server.Mode == "release" {
		return fallback
	}
	return err.Error()
}
