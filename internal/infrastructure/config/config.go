// Package config loads configuration from file and environment using viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	sharedConfig "switchboard/internal/shared/config"
)

// Config is the full application configuration. It is loaded once at
// startup and handed to components by value; nothing reads it through a
// global afterwards.
type Config struct {
	Server   sharedConfig.ServerConfig   `mapstructure:"server"`
	Database sharedConfig.DatabaseConfig `mapstructure:"database"`
	Logger   sharedConfig.LoggerConfig   `mapstructure:"logger"`
	Redis    sharedConfig.RedisConfig    `mapstructure:"redis"`
	Auth     sharedConfig.AuthConfig     `mapstructure:"auth"`
	Flag     sharedConfig.FlagConfig     `mapstructure:"flag"`
	Badge    sharedConfig.BadgeConfig    `mapstructure:"badge"`
}

// Load reads configs/config.yaml, applies SWITCHBOARD_* environment
// overrides and unmarshals into Config. A non-empty env overrides the
// server mode.
func Load(env string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")

	viper.SetEnvPrefix("SWITCHBOARD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if env != "" && env != "default" {
		viper.Set("server.mode", env)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8081)
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("server.base_url", "http://localhost:8081")
	viper.SetDefault("server.allowed_origins", []string{"http://localhost:8081"})

	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 3306)
	viper.SetDefault("database.username", "root")
	viper.SetDefault("database.password", "password")
	viper.SetDefault("database.database", "switchboard_dev")
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.max_open_conns", 100)
	viper.SetDefault("database.conn_max_lifetime", 60)

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("auth.password.bcrypt_cost", 12)
	viper.SetDefault("auth.jwt.secret", "change-me-in-production")
	viper.SetDefault("auth.jwt.access_exp_minutes", 720)

	viper.SetDefault("flag.cache_ttl_seconds", 300)
	viper.SetDefault("flag.ttl_days", 14)
	viper.SetDefault("flag.enable_full_info_endpoint", false)
	viper.SetDefault("flag.sync_url", "")
	viper.SetDefault("flag.sync_timeout_seconds", 10)

	viper.SetDefault("badge.background_color", "#ff6c6c")
	viper.SetDefault("badge.active_prefix", "on")
	viper.SetDefault("badge.inactive_prefix", "off")
	viper.SetDefault("badge.hidden_prefix", "hidden")
	viper.SetDefault("badge.not_found_prefix", "unknown")
}
