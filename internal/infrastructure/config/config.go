package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	sharedConfig "github.com/swiftticket/swiftticket/internal/shared/config"
)

const envPrefix = "SWIFTTICKET"

type Config struct {
	Discord    sharedConfig.DiscordConfig    `mapstructure:"discord"`
	Database   sharedConfig.DatabaseConfig   `mapstructure:"database"`
	Logger     sharedConfig.LoggerConfig     `mapstructure:"logger"`
	Redis      sharedConfig.RedisConfig      `mapstructure:"redis"`
	Ops        sharedConfig.OpsConfig        `mapstructure:"ops"`
	Permission sharedConfig.PermissionConfig `mapstructure:"permission"`
}

// Load reads configs/config.yaml, or path when set, and applies
// SWIFTTICKET_* environment overrides. A missing file is not an error when
// the environment carries the settings.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the settings the bot cannot start without.
func (c *Config) Validate() error {
	if c.Discord.Token == "" {
		return fmt.Errorf("discord.token is required (or %s_DISCORD_TOKEN)", envPrefix)
	}
	switch c.Database.Driver {
	case "mysql", "sqlite":
	default:
		return fmt.Errorf("database.driver must be mysql or sqlite, got %q", c.Database.Driver)
	}
	if c.Database.IsSQLite() && c.Database.SQLitePath == "" {
		return fmt.Errorf("database.sqlite_path is required for the sqlite driver")
	}
	return nil
}

// setDefaults sets default configuration values. Every key needs a default
// so that AutomaticEnv can override it during Unmarshal.
func setDefaults(v *viper.Viper) {
	// Discord defaults
	v.SetDefault("discord.token", "")
	v.SetDefault("discord.app_id", "")
	v.SetDefault("discord.guild_id", "")
	v.SetDefault("discord.default_timezone", "UTC")

	// Database defaults
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "swiftticket")
	v.SetDefault("database.sqlite_path", "swiftticket.db")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 50)
	v.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")
	v.SetDefault("logger.debug", false)

	// Redis defaults
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.settings_ttl_seconds", 300)

	// Ops defaults
	v.SetDefault("ops.enabled", false)
	v.SetDefault("ops.host", "0.0.0.0")
	v.SetDefault("ops.port", 8081)

	v.SetDefault("permission.persist", false)
}
