package rg

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config manages algorithm configuration using Viper, mirroring the
// teacher's graph-clustering-algorithm/pkg/louvain/config.go layout: a
// viper.Viper with SetDefault calls and a set of typed getters.
type Config struct {
	v *viper.Viper
}

// NewConfig creates a new configuration with defaults for the RG/CGGC core.
func NewConfig() *Config {
	v := viper.New()

	v.SetDefault("algorithm.sample_size", 1)
	v.SetDefault("algorithm.runs", 1)
	v.SetDefault("algorithm.init_clusters", 1)
	v.SetDefault("algorithm.restart_k", 1)
	v.SetDefault("algorithm.iterative", false)
	v.SetDefault("algorithm.random_seed", time.Now().UnixNano())

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.enable_progress", true)

	return &Config{v: v}
}

// LoadFromFile loads configuration overrides from a file (YAML/JSON/TOML,
// whatever viper's SetConfigFile auto-detects from the extension).
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	return c.v.ReadInConfig()
}

// Set allows dynamic configuration changes, e.g. from CLI flags.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

func (c *Config) SampleSize() int     { return c.v.GetInt("algorithm.sample_size") }
func (c *Config) Runs() int           { return c.v.GetInt("algorithm.runs") }
func (c *Config) InitClusters() int   { return c.v.GetInt("algorithm.init_clusters") }
func (c *Config) RestartK() int       { return c.v.GetInt("algorithm.restart_k") }
func (c *Config) Iterative() bool     { return c.v.GetBool("algorithm.iterative") }
func (c *Config) RandomSeed() int64   { return c.v.GetInt64("algorithm.random_seed") }
func (c *Config) LogLevel() string    { return c.v.GetString("logging.level") }
func (c *Config) EnableProgress() bool { return c.v.GetBool("logging.enable_progress") }

// CreateLogger builds a human-readable console logger from the current
// logging settings.
func (c *Config) CreateLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", "rgcluster").Logger()
}
