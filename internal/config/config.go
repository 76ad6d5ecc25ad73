package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/DanRulev/vocabdrill/pkg/validator"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

type Config struct {
	App      AppConfig      `mapstructure:"app" validate:"required"`
	BotToken string         `mapstructure:"bot_token" validate:"required"`
	Bot      BotConfig      `mapstructure:"bot"`
	DB       DBConfig       `mapstructure:"db" validate:"required"`
	Reminder ReminderConfig `mapstructure:"reminder"`
	Stats    StatsConfig    `mapstructure:"stats"`
	Env      string         `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	Timeout  time.Duration `mapstructure:"timeout" validate:"min=1"`
	Location string        `mapstructure:"location" validate:"required"`
}

type BotConfig struct {
	Workers       int     `mapstructure:"workers" validate:"min=1,max=64"`
	RatePerSecond float64 `mapstructure:"rate_per_second" validate:"gt=0"`
	UpdateTimeout int     `mapstructure:"update_timeout" validate:"min=1"`
}

type DBConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=postgres sqlite3"`
	Path   string `mapstructure:"path"`
	Conn   DBConn `mapstructure:"conn"`
	Cfg    DBCfg  `mapstructure:"cfg"`
}

type DBConn struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSL      string `mapstructure:"ssl" validate:"omitempty,oneof=disable require verify-full"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

type ReminderConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Hour    int  `mapstructure:"hour" validate:"min=0,max=23"`
}

type StatsConfig struct {
	RetentionDays int `mapstructure:"retention_days" validate:"min=7"`
}

func (a AppConfig) TimeLocation() (*time.Location, error) {
	loc, err := time.LoadLocation(a.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to load location %q: %w", a.Location, err)
	}
	return loc, nil
}

func Init() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()

	v.AutomaticEnv()
	setDefaults(v)

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	bindings := map[string]string{
		"bot_token":        "BOT_TOKEN",
		"env":              "APP_ENV",
		"db.driver":        "DB_DRIVER",
		"db.path":          "DB_PATH",
		"db.conn.host":     "DB_HOST",
		"db.conn.port":     "DB_PORT",
		"db.conn.user":     "DB_USER",
		"db.conn.password": "DB_PASSWORD",
		"db.conn.name":     "DB_NAME",
		"db.conn.ssl":      "DB_SSL",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "production")
	v.SetDefault("app.timeout", 5*time.Second)
	v.SetDefault("app.location", "Europe/Moscow")
	v.SetDefault("bot.workers", 8)
	v.SetDefault("bot.rate_per_second", 25)
	v.SetDefault("bot.update_timeout", 60)
	v.SetDefault("db.driver", DriverPostgres)
	v.SetDefault("db.path", "data/vocabdrill.db")
	v.SetDefault("db.conn.ssl", "disable")
	v.SetDefault("db.cfg.max_open_conns", 10)
	v.SetDefault("db.cfg.max_idle_conns", 5)
	v.SetDefault("db.cfg.conn_max_life_time", 30*time.Minute)
	v.SetDefault("db.cfg.conn_max_idle_time", 5*time.Minute)
	v.SetDefault("reminder.enabled", true)
	v.SetDefault("reminder.hour", 19)
	v.SetDefault("stats.retention_days", 90)
}

func validate(cfg Config) error {
	if err := validator.ValidateStruct(cfg); err != nil {
		return err
	}

	if _, err := cfg.App.TimeLocation(); err != nil {
		return err
	}

	switch cfg.DB.Driver {
	case DriverPostgres:
		c := cfg.DB.Conn
		if c.Host == "" || c.Port == "" || c.User == "" || c.Name == "" {
			return errors.New("validation failed: db.conn host, port, user and name are required for postgres")
		}
	case DriverSQLite:
		if cfg.DB.Path == "" {
			return errors.New("validation failed: db.path is required for sqlite3")
		}
	}

	return nil
}
