package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.)
// - default: Values common across all environments (intervals, thresholds, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	Jobs   JobsConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

// JobsConfig drives the periodic job runner. Intervals follow the original
// deployment schedule; the weekly report fires on a coarse interval rather
// than a calendar expression.
type JobsConfig struct {
	LogDir             string        `envconfig:"JOBS_LOG_DIR" default:"/tmp"`
	HeartbeatInterval  time.Duration `envconfig:"JOBS_HEARTBEAT_INTERVAL" default:"5m"`
	ReminderInterval   time.Duration `envconfig:"JOBS_REMINDER_INTERVAL" default:"24h"`
	ReportInterval     time.Duration `envconfig:"JOBS_REPORT_INTERVAL" default:"168h"`
	RestockInterval    time.Duration `envconfig:"JOBS_RESTOCK_INTERVAL" default:"12h"`
	ReminderWindowDays int           `envconfig:"JOBS_REMINDER_WINDOW_DAYS" default:"7"`
	RestockThreshold   int32         `envconfig:"JOBS_RESTOCK_THRESHOLD" default:"10"`
	RestockIncrement   int32         `envconfig:"JOBS_RESTOCK_INCREMENT" default:"10"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level:      "error",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Jobs: JobsConfig{
			LogDir:             "/tmp",
			HeartbeatInterval:  5 * time.Minute,
			ReminderInterval:   24 * time.Hour,
			ReportInterval:     168 * time.Hour,
			RestockInterval:    12 * time.Hour,
			ReminderWindowDays: 7,
			RestockThreshold:   10,
			RestockIncrement:   10,
		},
	}
}
