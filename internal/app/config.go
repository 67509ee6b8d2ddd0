package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/yungbote/contacts-backend/internal/data/db"
	"github.com/yungbote/contacts-backend/internal/http/response"
	"github.com/yungbote/contacts-backend/internal/realtime/bus"
)

// Config is read once at startup. Values come from defaults, then the YAML
// file named by CONFIG_FILE, then the environment; later sources win.
type Config struct {
	Port            string        `env:"PORT" yaml:"port"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" yaml:"shutdown_timeout"`

	DBDriver         string        `env:"DB_DRIVER" yaml:"db_driver"`
	DBURL            string        `env:"DB_URL" yaml:"db_url"`
	DBName           string        `env:"DB_NAME" yaml:"db_name"`
	DBConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" yaml:"db_connect_timeout"`
	StoreTimeout     time.Duration `env:"STORE_TIMEOUT" yaml:"store_timeout"`

	LogMode             string `env:"LOG_MODE" yaml:"log_mode"`
	LogRedactionEnabled bool   `env:"LOG_REDACTION_ENABLED" yaml:"log_redaction_enabled"`
	LogHashSalt         string `env:"LOG_HASH_SALT" yaml:"log_hash_salt"`

	DuplicateStatus       string   `env:"DUPLICATE_STATUS" yaml:"duplicate_status"`
	EnforceGroupReference bool     `env:"ENFORCE_GROUP_REFERENCE" yaml:"enforce_group_reference"`
	ExposeInternalErrors  bool     `env:"EXPOSE_INTERNAL_ERRORS" yaml:"expose_internal_errors"`
	CORSAllowOrigins      []string `env:"CORS_ALLOW_ORIGINS" envSeparator:"," yaml:"cors_allow_origins"`

	RedisAddr    string `env:"REDIS_ADDR" yaml:"redis_addr"`
	RedisChannel string `env:"REDIS_CHANNEL" yaml:"redis_channel"`

	OtelEnabled     bool    `env:"OTEL_ENABLED" yaml:"otel_enabled"`
	OtelServiceName string  `env:"OTEL_SERVICE_NAME" yaml:"otel_service_name"`
	OtelEndpoint    string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT" yaml:"otel_endpoint"`
	OtelInsecure    bool    `env:"OTEL_EXPORTER_OTLP_INSECURE" yaml:"otel_insecure"`
	OtelHeaders     string  `env:"OTEL_EXPORTER_OTLP_HEADERS" yaml:"otel_headers"`
	OtelSampleRatio float64 `env:"OTEL_SAMPLER_RATIO" yaml:"otel_sampler_ratio"`
	Environment     string  `env:"APP_ENV" yaml:"environment"`
}

func DefaultConfig() Config {
	return Config{
		Port:                 "9000",
		ShutdownTimeout:      15 * time.Second,
		DBDriver:             db.DriverPostgres,
		DBConnectTimeout:     30 * time.Second,
		StoreTimeout:         10 * time.Second,
		LogMode:              "development",
		LogRedactionEnabled:  true,
		DuplicateStatus:      string(response.DuplicateOK),
		ExposeInternalErrors: true,
		CORSAllowOrigins:     []string{"*"},
		RedisChannel:         bus.DefaultChannel,
		OtelServiceName:      "contacts-backend",
		OtelSampleRatio:      0.1,
	}
}

// LoadConfig builds the Config for this process. It does not validate.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.Port) == "" {
		problems = append(problems, "PORT is required")
	}
	switch strings.ToLower(strings.TrimSpace(c.DBDriver)) {
	case db.DriverPostgres:
		if strings.TrimSpace(c.DBURL) == "" {
			problems = append(problems, "DB_URL is required")
		}
	case db.DriverSQLite:
	default:
		problems = append(problems, fmt.Sprintf("DB_DRIVER %q is not supported", c.DBDriver))
	}
	if _, err := response.ParseDuplicatePolicy(c.DuplicateStatus); err != nil {
		problems = append(problems, err.Error())
	}
	if c.StoreTimeout <= 0 {
		problems = append(problems, "STORE_TIMEOUT must be positive")
	}
	if c.DBConnectTimeout <= 0 {
		problems = append(problems, "DB_CONNECT_TIMEOUT must be positive")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
}

func (c Config) DBOptions() db.Options {
	return db.Options{
		Driver:         strings.ToLower(strings.TrimSpace(c.DBDriver)),
		URL:            c.DBURL,
		Name:           c.DBName,
		ConnectTimeout: c.DBConnectTimeout,
	}
}

func (c Config) ErrorMapper() response.Mapper {
	policy, _ := response.ParseDuplicatePolicy(c.DuplicateStatus)
	return response.Mapper{Duplicates: policy, ExposeInternal: c.ExposeInternalErrors}
}
