package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds runtime settings for the API server.
type Config struct {
	Addr        string `mapstructure:"addr" yaml:"addr"`
	DBPath      string `mapstructure:"db_path" yaml:"db_path"`
	ReadTimeout string `mapstructure:"read_timeout" yaml:"read_timeout"`

	// Normalization limits
	MaxPayloadBytes int `mapstructure:"max_payload_bytes" yaml:"max_payload_bytes"`
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DASHBOARD")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("addr", ":8080")
	v.SetDefault("db_path", "dashboard.db")
	v.SetDefault("read_timeout", "30s")
	v.SetDefault("max_payload_bytes", 10<<20)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("dashboard")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
