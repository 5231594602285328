package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Store    StoreConfig    `mapstructure:"store"`
	OMDb     OMDbConfig     `mapstructure:"omdb"`
	Server   ServerConfig   `mapstructure:"server"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host" validate:"required"`
	Port            int               `mapstructure:"port" validate:"min=1,max=65535"`
	Database        string            `mapstructure:"database" validate:"required"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns" validate:"min=0"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds" validate:"min=0"`
}

// StoreConfig tunes the movies table access.
type StoreConfig struct {
	QueryTimeoutSeconds int  `mapstructure:"query_timeout_seconds" validate:"min=0"`
	MaxResults          int  `mapstructure:"max_results" validate:"min=0"`
	ActorCaseSensitive  bool `mapstructure:"actor_case_sensitive"`
	// AutoMigrate creates the movies table, if missing, when a command opens the store.
	AutoMigrate bool `mapstructure:"auto_migrate"`
	// ClearOnStart empties the table when a command opens the store.
	ClearOnStart bool `mapstructure:"clear_on_start"`
}

type OMDbConfig struct {
	BaseURL                string `mapstructure:"base_url" validate:"required,url"`
	APIKey                 string `mapstructure:"api_key"`
	TimeoutSeconds         int    `mapstructure:"timeout_seconds" validate:"min=0"`
	RetryAttempts          int    `mapstructure:"retry_attempts" validate:"min=0,max=10"`
	RetryDelayMilliseconds int    `mapstructure:"retry_delay_milliseconds" validate:"min=0"`
}

type ServerConfig struct {
	Port int `mapstructure:"port" validate:"min=1,max=65535"`
}

// ErrMissingAPIKey is returned by RequireAPIKey when no OMDb key is configured.
var ErrMissingAPIKey = errors.New("omdb api key is not configured: set OMDB_API_KEY or omdb.api_key")

func (c StoreConfig) QueryTimeout() time.Duration {
	return time.Duration(c.QueryTimeoutSeconds) * time.Second
}

func (c OMDbConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c OMDbConfig) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelayMilliseconds) * time.Millisecond
}

// RequireAPIKey is checked only by commands that call OMDb.
func (c OMDbConfig) RequireAPIKey() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return ErrMissingAPIKey
	}
	return nil
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/moviesearcher")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "movies")
	v.SetDefault("database.username", "user")
	v.SetDefault("store.query_timeout_seconds", 5)
	v.SetDefault("store.max_results", 100)
	v.SetDefault("store.actor_case_sensitive", false)
	v.SetDefault("store.auto_migrate", true)
	v.SetDefault("store.clear_on_start", false)
	v.SetDefault("omdb.base_url", "https://www.omdbapi.com")
	v.SetDefault("omdb.timeout_seconds", 10)
	v.SetDefault("omdb.retry_attempts", 2)
	v.SetDefault("omdb.retry_delay_milliseconds", 200)
	v.SetDefault("server.port", 8080)

	// Secrets come from the environment
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}
	if err := v.BindEnv("omdb.api_key", "OMDB_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind OMDB_API_KEY environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("validate configuration: %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
