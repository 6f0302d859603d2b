package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides, e.g. PACKMULE_LOG_DEBUG.
const EnvPrefix = "PACKMULE"

type Config struct {
	Inventory InventoryConfig `mapstructure:"inventory"`
	History   HistoryConfig   `mapstructure:"history"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Log       LogConfig       `mapstructure:"log"`
}

type InventoryConfig struct {
	MaxWeight float64 `mapstructure:"max_weight"`
	Money     string  `mapstructure:"money"`     // "10g 3s"
	CampFile  string  `mapstructure:"camp_file"` // empty = camping disabled
}

type HistoryConfig struct {
	Path string `mapstructure:"path"` // empty = no text history
}

type DatabaseConfig struct {
	Mode         string        `mapstructure:"mode"` // none | sqlite | mysql
	SQLitePath   string        `mapstructure:"sqlite_path"`
	MySQLDSN     string        `mapstructure:"mysql_dsn"`
	MySQLMaxOpen int           `mapstructure:"mysql_max_open"`
	MySQLMaxIdle int           `mapstructure:"mysql_max_idle"`
	MySQLMaxLife time.Duration `mapstructure:"mysql_max_life"`
}

type LogConfig struct {
	Debug bool `mapstructure:"debug"`
}

// Database modes.
const (
	ModeNone   = "none"
	ModeSQLite = "sqlite"
	ModeMySQL  = "mysql"
)

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("inventory.max_weight", 0)
	v.SetDefault("inventory.money", "")
	v.SetDefault("inventory.camp_file", "")
	v.SetDefault("history.path", "")
	v.SetDefault("database.mode", ModeNone)
	v.SetDefault("database.sqlite_path", "./data/packmule.db")
	v.SetDefault("database.mysql_dsn", "")
	v.SetDefault("database.mysql_max_open", 5)
	v.SetDefault("database.mysql_max_idle", 2)
	v.SetDefault("database.mysql_max_life", "1h")
	v.SetDefault("log.debug", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads config from the given YAML file path. An empty path yields the
// defaults with environment overrides applied.
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Default returns the built-in defaults with environment overrides applied.
// Environment values that fail to decode are ignored.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		return &Config{Database: DatabaseConfig{Mode: ModeNone}}
	}
	return cfg
}

// Validate reports every problem found in the configuration at once.
func (c *Config) Validate() error {
	var errs []string

	switch c.Database.Mode {
	case ModeNone:
	case ModeSQLite:
		if c.Database.SQLitePath == "" {
			errs = append(errs, "database.sqlite_path cannot be empty when using sqlite mode")
		}
	case ModeMySQL:
		if c.Database.MySQLDSN == "" {
			errs = append(errs, "database.mysql_dsn cannot be empty when using mysql mode")
		}
		if c.Database.MySQLMaxOpen < 0 {
			errs = append(errs, fmt.Sprintf("invalid database.mysql_max_open %d: must not be negative", c.Database.MySQLMaxOpen))
		}
		if c.Database.MySQLMaxIdle < 0 {
			errs = append(errs, fmt.Sprintf("invalid database.mysql_max_idle %d: must not be negative", c.Database.MySQLMaxIdle))
		}
	default:
		errs = append(errs, fmt.Sprintf("invalid database mode '%s': must be one of [%s %s %s]",
			c.Database.Mode, ModeNone, ModeSQLite, ModeMySQL))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
