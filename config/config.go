package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	General  GeneralConfig  `mapstructure:"general"`
	Server   ServerConfig   `mapstructure:"server"`
	Identity IdentityConfig `mapstructure:"identity"`
	Search   SearchConfig   `mapstructure:"search"`
	News     NewsConfig     `mapstructure:"news"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

// GeneralConfig contains general application settings
type GeneralConfig struct {
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
}

// ServerConfig contains HTTP server and session settings
type ServerConfig struct {
	Address    string        `mapstructure:"address"`
	JWTSecret  string        `mapstructure:"jwt_secret"`
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

// IdentityConfig points at the remote identity provider. When BaseURL is
// empty the server falls back to the built-in in-memory provider, which is
// only suitable for development.
type IdentityConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	AnonKey string        `mapstructure:"anon_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// SearchConfig selects the case-law search backend.
// Engine is "mock" (fixed-delay fixture results) or "bleve" (in-memory
// full-text index over the bundled case corpus).
type SearchConfig struct {
	Engine           string        `mapstructure:"engine"`
	SimulatedLatency time.Duration `mapstructure:"simulated_latency"`
	MaxResults       int           `mapstructure:"max_results"`
}

// NewsConfig controls the legal-news feed. With no source URLs the bundled
// articles are served as-is; with sources configured the refresher pulls and
// extracts articles on the given cron schedule.
type NewsConfig struct {
	RefreshCron  string        `mapstructure:"refresh_cron"`
	SourceURLs   []string      `mapstructure:"source_urls"`
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
	CacheTTL     time.Duration `mapstructure:"cache_ttl"`
}

// RedisConfig is optional; when Addr is empty no cache is used.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LoadConfig reads configuration from file and environment (NYAYMANTRA_*).
func LoadConfig(path string) *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("json")
	viper.SetDefault("general.log_level", "info")
	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("server.session_ttl", 24*time.Hour)
	viper.SetDefault("identity.timeout", 15*time.Second)
	viper.SetDefault("search.engine", "mock")
	viper.SetDefault("search.simulated_latency", time.Second)
	viper.SetDefault("search.max_results", 10)
	viper.SetDefault("news.refresh_cron", "@daily")
	viper.SetDefault("news.fetch_timeout", 20*time.Second)
	viper.SetDefault("news.cache_ttl", time.Hour)

	if path == "" {
		viper.AddConfigPath("./config")
		viper.AddConfigPath(".")
		exe, _ := os.Executable()
		exeDir := filepath.Dir(exe)
		viper.AddConfigPath(exeDir)
		viper.AddConfigPath(filepath.Join(exeDir, ".."))
	} else {
		viper.SetConfigFile(path)
	}

	viper.SetEnvPrefix("NYAYMANTRA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Config file is optional; defaults plus env cover the dev setup.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}
	if err := config.Search.Validate(); err != nil {
		panic(err)
	}
	return &config
}

// Validate rejects unknown search engines early rather than at first query.
func (c SearchConfig) Validate() error {
	switch c.Engine {
	case "", "mock", "bleve":
		return nil
	default:
		return fmt.Errorf("unknown search engine %q (want mock or bleve)", c.Engine)
	}
}
