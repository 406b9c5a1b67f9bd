package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"procplan/internal/plan"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config - настройки процесса из окружения (.env подхватывается, если есть)
type Config struct {
	PostgresConn  string        `env:"POSTGRES_CONN"`
	ServerAddress string        `env:"SERVER_ADDRESS" envDefault:"0.0.0.0:8080"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat     string        `env:"LOG_FORMAT" envDefault:"json"`
	RulesPath     string        `env:"PLAN_RULES_PATH"`
	RedisURL      string        `env:"REDIS_URL"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	MetricsPath   string        `env:"METRICS_PATH" envDefault:"/metrics"`
}

// Load читает .env-файлы (отсутствующие пропускаются) и переменные окружения
func Load(envFiles ...string) (*Config, error) {
	if err := loadEnvFiles(envFiles); err != nil {
		return nil, fmt.Errorf("config: load env files: %w", err)
	}
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.SessionTTL <= 0 {
		return fmt.Errorf("config: SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: LOG_LEVEL: %w", err)
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("config: LOG_FORMAT must be 'json' or 'text', got '%s'", c.LogFormat)
	}
	return nil
}

// RequireDatabase проверяет, что задана строка подключения к БД
func (c *Config) RequireDatabase() error {
	if strings.TrimSpace(c.PostgresConn) == "" {
		return errors.New("POSTGRES_CONN env variable is not set")
	}
	return nil
}

func loadEnvFiles(files []string) error {
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// rulesFile - формат YAML-файла с правилами планирования
type rulesFile struct {
	CandidateStatuses []string `yaml:"candidate_statuses"`
	ReserveState      string   `yaml:"reserve_state"`
	EngineerRole      string   `yaml:"engineer_role"`
	ExemptCategories  []string `yaml:"exempt_categories"`
}

// ParseRulesYAML разбирает правила; незаданные поля получают значения по умолчанию
func ParseRulesYAML(data []byte) (plan.Rules, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return plan.DefaultRules(), nil
	}
	var f rulesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return plan.Rules{}, fmt.Errorf("rules: decode: %w", err)
	}
	rules := plan.Rules{
		CandidateStatuses: f.CandidateStatuses,
		ReserveState:      f.ReserveState,
		EngineerRole:      f.EngineerRole,
		ExemptCategories:  f.ExemptCategories,
	}
	if err := rules.Validate(); err != nil {
		return plan.Rules{}, err
	}
	return rules.Normalized(), nil
}

// LoadRules читает файл правил; пустой путь - правила по умолчанию.
// Заданный, но отсутствующий файл считается ошибкой конфигурации.
func LoadRules(path string) (plan.Rules, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return plan.DefaultRules(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return plan.Rules{}, fmt.Errorf("rules: read %s: %w", path, err)
	}
	rules, err := ParseRulesYAML(data)
	if err != nil {
		return plan.Rules{}, fmt.Errorf("rules: %s: %w", path, err)
	}
	return rules, nil
}

// NewLogger настраивает logrus по уровню и формату из конфигурации
func (c *Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	if c.LogFormat == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
