package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "config/config.yaml"

// ErrMissingToken возвращается, если не задан токен ClickUp API.
var ErrMissingToken = errors.New("clickup api token is required (clickup.api_token or CLICKUP_API_TOKEN)")

// Config объединяет все аспекты настройки приложения.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	ClickUp   ClickUpConfig   `yaml:"clickup"`
	Breaker   BreakerConfig   `yaml:"breaker"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	CORS      CORSConfig      `yaml:"cors"`
	Database  DatabaseConfig  `yaml:"database"`
	Timeouts  TimeoutConfig   `yaml:"timeouts"`
	Logging   LoggingConfig   `yaml:"logging"`
	Swagger   SwaggerConfig   `yaml:"swagger"`
	LoadTests LoadTestConfig  `yaml:"load_tests"`
}

// HTTPConfig описывает HTTP-сервер.
type HTTPConfig struct {
	Port         string        `yaml:"port" env:"HTTP_PORT"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT"`
}

// ClickUpConfig описывает подключение к ClickUp API.
type ClickUpConfig struct {
	APIToken    string        `yaml:"api_token" env:"CLICKUP_API_TOKEN"`
	TeamID      string        `yaml:"team_id" env:"CLICKUP_TEAM_ID"`
	BaseURL     string        `yaml:"base_url" env:"CLICKUP_BASE_URL"`
	Timeout     time.Duration `yaml:"timeout" env:"CLICKUP_TIMEOUT"`
	HealthCheck bool          `yaml:"health_check" env:"CLICKUP_HEALTH_CHECK"`
}

// BreakerConfig настраивает circuit breaker вокруг запросов к ClickUp.
type BreakerConfig struct {
	Disabled            bool          `yaml:"disabled" env:"BREAKER_DISABLED"`
	MaxRequests         uint32        `yaml:"max_requests" env:"BREAKER_MAX_REQUESTS"`
	Timeout             time.Duration `yaml:"timeout" env:"BREAKER_TIMEOUT"`
	ConsecutiveFailures uint32        `yaml:"consecutive_failures" env:"BREAKER_CONSECUTIVE_FAILURES"`
}

// DashboardConfig параметры агрегации дашборда.
type DashboardConfig struct {
	TeamName           string `yaml:"team_name" env:"DASHBOARD_TEAM_NAME"`
	EmployeeWindowDays int    `yaml:"employee_window_days" env:"DASHBOARD_EMPLOYEE_WINDOW_DAYS"`
	RecentLimit        int    `yaml:"recent_limit" env:"DASHBOARD_RECENT_LIMIT"`
	RecentSpaces       int    `yaml:"recent_spaces" env:"DASHBOARD_RECENT_SPACES"`
	RecentLists        int    `yaml:"recent_lists" env:"DASHBOARD_RECENT_LISTS"`
	RecentPerList      int    `yaml:"recent_per_list" env:"DASHBOARD_RECENT_PER_LIST"`
	MaxParallel        int    `yaml:"max_parallel" env:"DASHBOARD_MAX_PARALLEL"`
}

// CORSConfig задаёт правила CORS для браузерного клиента.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// DatabaseConfig описывает подключение к PostgreSQL для истории отчётов.
// Пустой URL отключает хранение истории.
type DatabaseConfig struct {
	URL             string        `yaml:"url" env:"DATABASE_URL"`
	MigrationsPath  string        `yaml:"migrations_path" env:"MIGRATIONS_PATH"`
	MaxConnections  int32         `yaml:"max_connections" env:"DB_MAX_CONNECTIONS"`
	MinConnections  int32         `yaml:"min_connections" env:"DB_MIN_CONNECTIONS"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DB_MAX_CONN_IDLE_TIME"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime" env:"DB_MAX_CONN_LIFETIME"`
}

// Enabled сообщает, настроено ли хранение истории.
func (d DatabaseConfig) Enabled() bool {
	return d.URL != ""
}

// TimeoutConfig содержит таймауты разного уровня.
type TimeoutConfig struct {
	Operation     time.Duration `yaml:"operation" env:"OPERATION_TIMEOUT"`
	LongOperation time.Duration `yaml:"long_operation" env:"LONG_OPERATION_TIMEOUT"`
	Shutdown      time.Duration `yaml:"shutdown" env:"SHUTDOWN_TIMEOUT"`
}

// LoggingConfig описывает формат и место логов.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Output string `yaml:"output" env:"LOG_OUTPUT"`
}

// SwaggerConfig задаёт путь до OpenAPI-спецификации.
type SwaggerConfig struct {
	SpecPath string `yaml:"spec_path" env:"SWAGGER_SPEC_PATH"`
}

// LoadTestConfig хранит параметры нагрузочного тестирования.
type LoadTestConfig struct {
	TargetsPath string `yaml:"targets_path" env:"LOAD_TEST_TARGETS"`
}

// MustLoad загружает конфигурацию из YAML + ENV и паникует при ошибке.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load загружает конфигурацию, отдавая предпочтение пути из CONFIG_PATH.
func Load() (Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}

	cfg := Config{}
	if err := readYAML(path, &cfg); err != nil {
		return Config{}, err
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env vars: %w", err)
	}
	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config file %s not found", path)
		}
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("decode config yaml: %w", err)
	}
	return nil
}

func (c *Config) validate() error {
	if c.ClickUp.APIToken == "" {
		return ErrMissingToken
	}
	return nil
}

// normalize устанавливает значения по умолчанию для всех полей конфигурации, если они не заданы.
func (c *Config) normalize() {
	// HTTP настройки
	if c.HTTP.Port == "" {
		c.HTTP.Port = "8080"
	}
	if c.HTTP.ReadTimeout <= 0 {
		c.HTTP.ReadTimeout = 5 * time.Second
	}
	if c.HTTP.WriteTimeout <= 0 {
		c.HTTP.WriteTimeout = 90 * time.Second
	}
	if c.HTTP.IdleTimeout <= 0 {
		c.HTTP.IdleTimeout = 5 * time.Minute
	}

	// ClickUp
	if c.ClickUp.BaseURL == "" {
		c.ClickUp.BaseURL = "https://api.clickup.com/api/v2"
	}
	if c.ClickUp.Timeout <= 0 {
		c.ClickUp.Timeout = 10 * time.Second
	}

	// Circuit breaker
	if c.Breaker.MaxRequests == 0 {
		c.Breaker.MaxRequests = 1
	}
	if c.Breaker.Timeout <= 0 {
		c.Breaker.Timeout = 30 * time.Second
	}
	if c.Breaker.ConsecutiveFailures == 0 {
		c.Breaker.ConsecutiveFailures = 5
	}

	// Дашборд
	if c.Dashboard.TeamName == "" {
		c.Dashboard.TeamName = "HR Team"
	}
	if c.Dashboard.EmployeeWindowDays <= 0 {
		c.Dashboard.EmployeeWindowDays = 30
	}
	if c.Dashboard.RecentLimit <= 0 {
		c.Dashboard.RecentLimit = 10
	}
	if c.Dashboard.RecentSpaces <= 0 {
		c.Dashboard.RecentSpaces = 3
	}
	if c.Dashboard.RecentLists <= 0 {
		c.Dashboard.RecentLists = 5
	}
	if c.Dashboard.RecentPerList <= 0 {
		c.Dashboard.RecentPerList = 5
	}
	if c.Dashboard.MaxParallel <= 0 {
		c.Dashboard.MaxParallel = 8
	}

	// CORS
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{"*"}
	}

	// Database настройки
	if c.Database.MigrationsPath == "" {
		c.Database.MigrationsPath = "migrations"
	}
	// Таймауты операций
	if c.Timeouts.Operation <= 0 {
		c.Timeouts.Operation = 30 * time.Second
	}
	if c.Timeouts.LongOperation <= 0 {
		c.Timeouts.LongOperation = 60 * time.Second
	}
	if c.Timeouts.Shutdown <= 0 {
		c.Timeouts.Shutdown = 10 * time.Second
	}
	// Логирование
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}
	// Swagger
	if c.Swagger.SpecPath == "" {
		c.Swagger.SpecPath = "openapi.yml"
	}
}
