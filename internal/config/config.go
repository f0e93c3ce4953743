package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server           ServerConfig      `toml:"server"`
	Logs             LogsConfig        `toml:"logs"`
	Database         DatabaseConfig    `toml:"database"`
	Metrics          MetricsConfig     `toml:"metrics"`
	BookingService   IntegrationConfig `toml:"booking_service"`
	DirectoryService IntegrationConfig `toml:"directory_service"`
	Scheduler        SchedulerConfig   `toml:"scheduler"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// IntegrationConfig настройки клиента внешнего сервиса
type IntegrationConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// SchedulerConfig настройки ядра планировщика
type SchedulerConfig struct {
	// SkillFilterEnabled включает проверку компетенций сотрудника
	// при перетаскивании активности (правило skill match)
	SkillFilterEnabled bool `toml:"skill_filter_enabled"`

	// PersistTimeoutSeconds таймаут на каждый вызов сохранения
	// при подтверждении перемещения
	PersistTimeoutSeconds int `toml:"persist_timeout_seconds"`

	// RefreshDebounceMS дебаунс обновления сетки после смены фильтров
	RefreshDebounceMS int `toml:"refresh_debounce_ms"`

	// SessionTTLMinutes время жизни неактивной сессии планирования
	SessionTTLMinutes int `toml:"session_ttl_minutes"`
}

// Значения по умолчанию для настроек планировщика
const (
	DefaultPersistTimeoutSeconds = 10
	DefaultRefreshDebounceMS     = 100
	DefaultSessionTTLMinutes     = 120
)

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if cfg.Scheduler.PersistTimeoutSeconds <= 0 {
		cfg.Scheduler.PersistTimeoutSeconds = DefaultPersistTimeoutSeconds
	}
	if cfg.Scheduler.RefreshDebounceMS <= 0 {
		cfg.Scheduler.RefreshDebounceMS = DefaultRefreshDebounceMS
	}
	if cfg.Scheduler.SessionTTLMinutes <= 0 {
		cfg.Scheduler.SessionTTLMinutes = DefaultSessionTTLMinutes
	}

	return &cfg, nil
}
