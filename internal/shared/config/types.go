package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

type AuthConfig struct {
	Password PasswordConfig `mapstructure:"password"`
	JWT      JWTConfig      `mapstructure:"jwt"`
}

// FlagConfig tunes flag evaluation and lifecycle behavior. CacheTTLSeconds
// bounds response cache staleness; TTLDays is the default hide delay for
// flags created without an explicit TTL.
type FlagConfig struct {
	CacheTTLSeconds        int    `mapstructure:"cache_ttl_seconds"`
	TTLDays                int    `mapstructure:"ttl_days"`
	EnableFullInfoEndpoint bool   `mapstructure:"enable_full_info_endpoint"`
	SyncURL                string `mapstructure:"sync_url"`
	SyncTimeoutSeconds     int    `mapstructure:"sync_timeout_seconds"`
}

func (f *FlagConfig) CacheTTL() time.Duration {
	return time.Duration(f.CacheTTLSeconds) * time.Second
}

func (f *FlagConfig) SyncTimeout() time.Duration {
	return time.Duration(f.SyncTimeoutSeconds) * time.Second
}

// BadgeConfig styles the status badge. Prefixes become the badge label
// together with the flag name.
type BadgeConfig struct {
	BackgroundColor string `mapstructure:"background_color"`
	ActivePrefix    string `mapstructure:"active_prefix"`
	InactivePrefix  string `mapstructure:"inactive_prefix"`
	HiddenPrefix    string `mapstructure:"hidden_prefix"`
	NotFoundPrefix  string `mapstructure:"not_found_prefix"`
}
