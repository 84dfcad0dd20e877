package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Generator GeneratorConfig
	Export    ExportConfig
	Server    ServerConfig
}

// GeneratorConfig holds code-generation service settings for the editor.
type GeneratorConfig struct {
	Endpoint       string
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// ExportConfig holds settings for the saved script.
type ExportConfig struct {
	Filename string
}

// ServerConfig holds settings for the tkdraftd service.
type ServerConfig struct {
	Addr string
}

// Load reads configuration from file and env. Env var overrides use prefix TKDRAFT_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("generator.endpoint", "http://127.0.0.1:8731/generate_code")
	v.SetDefault("generator.timeout_seconds", 10)
	v.SetDefault("export.filename", "generated_gui.py")
	v.SetDefault("server.addr", "127.0.0.1:8731")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("TKDRAFT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "tkdraft"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TKDRAFT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
