// Package config loads docx-extract settings from defaults, an optional YAML
// file, a .env file and DOCX_EXTRACT_* environment variables.
package config

import (
    "errors"
    "fmt"
    "os"
    "strings"

    "github.com/joho/godotenv"
    "github.com/spf13/viper"

    "github.com/thywilljoshua/docx-extract/internal/extract"
)

const (
    EnvPrefix = "DOCX_EXTRACT"

    DefaultMaxFileBytes = 50 << 20
)

// Config holds the tool configuration.
type Config struct {
    ScratchDir   string        `mapstructure:"scratch_dir"`
    Engine       string        `mapstructure:"engine"`
    MaxFileBytes int64         `mapstructure:"max_file_bytes"`
    Log          LogConfig     `mapstructure:"log"`
    Caption      CaptionConfig `mapstructure:"caption"`
}

type LogConfig struct {
    Level  string `mapstructure:"level"`
    Format string `mapstructure:"format"`
}

// CaptionConfig enables optional alt text for extracted images.
type CaptionConfig struct {
    Enabled bool   `mapstructure:"enabled"`
    Model   string `mapstructure:"model"`
    APIKey  string `mapstructure:"api_key"`
}

func setDefaults(v *viper.Viper) {
    v.SetDefault("scratch_dir", "")
    v.SetDefault("engine", string(extract.EngineGoDocx))
    v.SetDefault("max_file_bytes", DefaultMaxFileBytes)
    v.SetDefault("log.level", "info")
    v.SetDefault("log.format", "console")
    v.SetDefault("caption.enabled", false)
    v.SetDefault("caption.model", "gemini-2.5-flash")
    v.SetDefault("caption.api_key", "")
}

// Load reads configuration. path may be empty, in which case only defaults,
// .env and the environment apply.
func Load(path string) (*Config, error) {
    _ = godotenv.Load() // .env is optional

    v := viper.New()
    setDefaults(v)
    if path != "" {
        v.SetConfigFile(path)
        if err := v.ReadInConfig(); err != nil {
            return nil, fmt.Errorf("failed to read config: %w", err)
        }
    }
    v.SetEnvPrefix(EnvPrefix)
    v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
    v.AutomaticEnv()

    var cfg Config
    if err := v.Unmarshal(&cfg); err != nil {
        return nil, fmt.Errorf("failed to unmarshal config: %w", err)
    }
    if cfg.Caption.APIKey == "" {
        cfg.Caption.APIKey = os.Getenv("GOOGLE_API_KEY")
    }
    if err := cfg.Validate(); err != nil {
        return nil, err
    }
    return &cfg, nil
}

// Validate rejects settings the tool cannot run with.
func (c *Config) Validate() error {
    if _, err := extract.ParseEngine(c.Engine); err != nil {
        return err
    }
    if c.MaxFileBytes < 0 {
        return errors.New("max_file_bytes must not be negative")
    }
    if c.ScratchDir != "" {
        info, err := os.Stat(c.ScratchDir)
        if err != nil {
            return fmt.Errorf("scratch_dir: %w", err)
        }
        if !info.IsDir() {
            return fmt.Errorf("scratch_dir %s is not a directory", c.ScratchDir)
        }
    }
    return nil
}
