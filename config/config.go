package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type HTTP struct {
	Addr            string   `yaml:"addr"`
	ReadTimeout     string   `yaml:"readTimeout"`     // 10s
	WriteTimeout    string   `yaml:"writeTimeout"`    // 15s
	IdleTimeout     string   `yaml:"idleTimeout"`     // 60s
	RequestTimeout  string   `yaml:"requestTimeout"`  // 30s
	ShutdownTimeout string   `yaml:"shutdownTimeout"` // 10s
	AllowedOrigins  []string `yaml:"allowedOrigins"`
}

type Logging struct {
	Env       string `yaml:"env"`       // dev|stage|prod
	Service   string `yaml:"service"`   // hotel-rooms
	Version   string `yaml:"version"`   // v0.1.0
	Backend   string `yaml:"backend"`   // std|zap
	Level     string `yaml:"level"`     // debug|info|warn|error
	AddSource bool   `yaml:"addSource"` // false|true
	Debug     bool   `yaml:"debug"`     // false|true
	TraceIDs  bool   `yaml:"traceIds"`  // span на запрос, trace_id в логах
}

type File struct {
	Dir string `yaml:"dir"`
}

type Redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type Postgres struct {
	DSN             string `yaml:"dsn"`
	MaxConns        int32  `yaml:"maxConns"`
	MinConns        int32  `yaml:"minConns"`
	MaxConnLifetime string `yaml:"maxConnLifetime"`
	MaxConnIdleTime string `yaml:"maxConnIdleTime"`
	HealthCheck     string `yaml:"healthCheckPeriod"`
	ApplicationName string `yaml:"applicationName"`
}

type Storage struct {
	Backend  string   `yaml:"backend"` // memory|file|redis|postgres
	Key      string   `yaml:"key"`     // hotelRooms
	File     File     `yaml:"file"`
	Redis    Redis    `yaml:"redis"`
	Postgres Postgres `yaml:"postgres"`
}

type Remote struct {
	URL     string `yaml:"url"` // пусто — шаг fallback пропускается
	Timeout string `yaml:"timeout"`
	Retries int    `yaml:"retries"`
}

type Config struct {
	HTTP    HTTP    `yaml:"http"`
	Logging Logging `yaml:"logging"`
	Storage Storage `yaml:"storage"`
	Remote  Remote  `yaml:"remote"`
}

// LoadConfig читает .env (если есть), затем YAML из CONFIG_PATH.
// ${VAR} внутри YAML подставляются из окружения.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "./config/config.yaml"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.HTTP.Addr == "" {
		return errors.New("http.addr is required")
	}

	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	switch c.Storage.Backend {
	case "":
		c.Storage.Backend = BackendMemory
	case BackendMemory:
	case BackendFile:
		if c.Storage.File.Dir == "" {
			c.Storage.File.Dir = "./data"
		}
	case BackendRedis:
		if c.Storage.Redis.Addr == "" {
			return errors.New("storage.redis.addr is required")
		}
	case BackendPostgres:
		if c.Storage.Postgres.DSN == "" {
			return errors.New("storage.postgres.dsn is required")
		}
	default:
		return fmt.Errorf("storage.backend: unknown backend %q", c.Storage.Backend)
	}

	if c.Remote.Retries < 0 {
		return errors.New("remote.retries must be >= 0")
	}

	// установка дефолтов, если значения не указаны
	if c.Storage.Key == "" {
		c.Storage.Key = "hotelRooms"
	}
	if c.Logging.Service == "" {
		c.Logging.Service = "hotel-rooms"
	}
	if c.Logging.Env == "" {
		c.Logging.Env = "dev"
	}
	if c.Logging.Version == "" {
		c.Logging.Version = "v0.1.0"
	}
	if c.Logging.Backend == "" {
		c.Logging.Backend = "std"
	}
	return nil
}

func (h HTTP) ReadTimeoutOr() time.Duration { return parseDurationOr(10*time.Second, h.ReadTimeout) }
func (h HTTP) WriteTimeoutOr() time.Duration { return parseDurationOr(15*time.Second, h.WriteTimeout) }
func (h HTTP) IdleTimeoutOr() time.Duration { return parseDurationOr(60*time.Second, h.IdleTimeout) }
func (h HTTP) RequestTimeoutOr() time.Duration {
	return parseDurationOr(30*time.Second, h.RequestTimeout)
}
func (h HTTP) ShutdownTimeoutOr() time.Duration {
	return parseDurationOr(10*time.Second, h.ShutdownTimeout)
}

func (r Remote) TimeoutOr() time.Duration { return parseDurationOr(5*time.Second, r.Timeout) }

func (p Postgres) MaxConnLifetimeOr() time.Duration { return parseDurationOr(0, p.MaxConnLifetime) }
func (p Postgres) MaxConnIdleTimeOr() time.Duration { return parseDurationOr(0, p.MaxConnIdleTime) }
func (p Postgres) HealthCheckOr() time.Duration { return parseDurationOr(0, p.HealthCheck) }

// helper для парсинга timeout-ов
func parseDurationOr(def time.Duration, s string) time.Duration {
	if d, err := time.ParseDuration(s); err == nil && d > 0 {
		return d
	}
	return def
}
