package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // zoneinfo for BAR_TIMEZONE

	"github.com/spf13/viper"
	"github.com/yeremiapane/bar-app/utils"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds all application settings
type Config struct {
	Port            string
	GinMode         string
	DBDriver        string // sqlite or mysql
	DBDSN           string
	ManagerPasscode string
	JWTSecret       string
	TokenTTL        time.Duration
	Timezone        string
	PersistInterval time.Duration
	CORSOrigin      string
	LogLevel        string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("gin_mode", "debug")
	v.SetDefault("db_driver", "sqlite")
	v.SetDefault("db_dsn", "bar.db")
	v.SetDefault("manager_passcode", "1234")
	v.SetDefault("jwt_secret", "BarSessionSecret")
	v.SetDefault("token_ttl", "12h")
	v.SetDefault("bar_timezone", "UTC")
	v.SetDefault("persist_interval", "500ms")
	v.SetDefault("cors_origin", "*")
	v.SetDefault("log_level", "info")
}

// Load reads configuration from the environment. Call godotenv.Load first so
// a .env file is visible here.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		Port:            v.GetString("port"),
		GinMode:         v.GetString("gin_mode"),
		DBDriver:        strings.ToLower(v.GetString("db_driver")),
		DBDSN:           v.GetString("db_dsn"),
		ManagerPasscode: v.GetString("manager_passcode"),
		JWTSecret:       v.GetString("jwt_secret"),
		TokenTTL:        v.GetDuration("token_ttl"),
		Timezone:        v.GetString("bar_timezone"),
		PersistInterval: v.GetDuration("persist_interval"),
		CORSOrigin:      v.GetString("cors_origin"),
		LogLevel:        v.GetString("log_level"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be defaulted silently.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "sqlite", "mysql":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.DBDSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	if c.ManagerPasscode == "" {
		return fmt.Errorf("MANAGER_PASSCODE is required")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves the bar timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid BAR_TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// InitDB opens the database configured in cfg.
func InitDB(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "mysql":
		dialector = mysql.Open(cfg.DBDSN)
	default:
		dialector = sqlite.Open(cfg.DBDSN)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.DBDriver, err)
	}

	utils.Info().Printf("Connected to %s database", cfg.DBDriver)
	return db, nil
}
