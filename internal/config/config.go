package config

import (
	"time"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Config is the root configuration for newswatch.
type Config struct {
	Engine  EngineConfig  `mapstructure:"engine"  yaml:"engine"`
	Fetcher FetcherConfig `mapstructure:"fetcher" yaml:"fetcher"`
	Storage StorageConfig `mapstructure:"storage" yaml:"storage"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics"`
}

// EngineConfig controls the crawl runner and controllers.
type EngineConfig struct {
	// Keywords are the search terms; one controller runs per
	// keyword x source combination.
	Keywords []string `mapstructure:"keywords" yaml:"keywords"`

	// Sources are registered source profile names.
	Sources []string `mapstructure:"sources" yaml:"sources"`

	// StartDate is the optional lower date bound (YYYY-MM-DD). A crawl
	// stops paginating once it sees an article older than this.
	StartDate string `mapstructure:"start_date" yaml:"start_date"`

	// Concurrency caps simultaneously in-flight requests per source.
	Concurrency int `mapstructure:"concurrency" yaml:"concurrency"`

	// MaxPages bounds pagination per keyword x source (0 = unlimited).
	MaxPages int `mapstructure:"max_pages" yaml:"max_pages"`

	// SinkBuffer is the result sink capacity; producers block when full.
	SinkBuffer int `mapstructure:"sink_buffer" yaml:"sink_buffer"`

	RequestTimeout time.Duration `mapstructure:"request_timeout" yaml:"request_timeout"`
	UserAgents     []string      `mapstructure:"user_agents"     yaml:"user_agents"`
}

// FetcherConfig controls the HTTP fetcher.
type FetcherConfig struct {
	FollowRedirects bool          `mapstructure:"follow_redirects"  yaml:"follow_redirects"`
	MaxRedirects    int           `mapstructure:"max_redirects"     yaml:"max_redirects"`
	MaxBodySize     int64         `mapstructure:"max_body_size"     yaml:"max_body_size"`
	TLSInsecure     bool          `mapstructure:"tls_insecure"      yaml:"tls_insecure"`
	IdleConnTimeout time.Duration `mapstructure:"idle_conn_timeout" yaml:"idle_conn_timeout"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"    yaml:"max_idle_conns"`
}

// StorageConfig controls where drained articles go.
type StorageConfig struct {
	Type       string `mapstructure:"type"        yaml:"type"` // csv, jsonl, xlsx, mongodb
	OutputPath string `mapstructure:"output_path" yaml:"output_path"`
	BatchSize  int    `mapstructure:"batch_size"  yaml:"batch_size"`

	MongoURI        string `mapstructure:"mongo_uri"        yaml:"mongo_uri"`
	MongoDatabase   string `mapstructure:"mongo_database"   yaml:"mongo_database"`
	MongoCollection string `mapstructure:"mongo_collection" yaml:"mongo_collection"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// MetricsConfig controls the metrics endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Port    int    `mapstructure:"port"    yaml:"port"`
	Path    string `mapstructure:"path"    yaml:"path"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			Sources:        []string{"detik"},
			Concurrency:    12,
			MaxPages:       0,
			SinkBuffer:     256,
			RequestTimeout: 30 * time.Second,
			UserAgents: []string{
				"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
				"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			},
		},
		Fetcher: FetcherConfig{
			FollowRedirects: true,
			MaxRedirects:    10,
			MaxBodySize:     10 * 1024 * 1024, // 10MB
			IdleConnTimeout: 90 * time.Second,
			MaxIdleConns:    100,
		},
		Storage: StorageConfig{
			Type:       "csv",
			OutputPath: "./output",
			BatchSize:  100,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Port:    9090,
			Path:    "/metrics",
		},
	}
}

// StartDateBound returns the parsed lower date bound, or a zero time when
// no bound is configured.
func (e *EngineConfig) StartDateBound() (time.Time, error) {
	if e.StartDate == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", e.StartDate)
}
