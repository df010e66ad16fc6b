package config

import (
	"fmt"
	"strings"
)

// Validate checks the configuration for invalid values. Source names are
// checked against the registry by the caller, which owns that import.
func Validate(cfg *Config) error {
	if len(cfg.Engine.Keywords) == 0 {
		return fmt.Errorf("engine.keywords must not be empty")
	}
	if len(cfg.Engine.Sources) == 0 {
		return fmt.Errorf("engine.sources must not be empty")
	}
	if cfg.Engine.Concurrency < 1 {
		return fmt.Errorf("engine.concurrency must be >= 1, got %d", cfg.Engine.Concurrency)
	}
	if cfg.Engine.Concurrency > 1000 {
		return fmt.Errorf("engine.concurrency must be <= 1000, got %d", cfg.Engine.Concurrency)
	}
	if cfg.Engine.MaxPages < 0 {
		return fmt.Errorf("engine.max_pages must be >= 0, got %d", cfg.Engine.MaxPages)
	}
	if cfg.Engine.SinkBuffer < 1 {
		return fmt.Errorf("engine.sink_buffer must be >= 1, got %d", cfg.Engine.SinkBuffer)
	}
	if cfg.Engine.RequestTimeout <= 0 {
		return fmt.Errorf("engine.request_timeout must be > 0")
	}
	if _, err := cfg.Engine.StartDateBound(); err != nil {
		return fmt.Errorf("engine.start_date must be YYYY-MM-DD: %w", err)
	}

	if cfg.Fetcher.MaxBodySize <= 0 {
		return fmt.Errorf("fetcher.max_body_size must be > 0")
	}
	if cfg.Fetcher.MaxRedirects < 0 {
		return fmt.Errorf("fetcher.max_redirects must be >= 0")
	}

	validStorageTypes := map[string]bool{
		"csv": true, "jsonl": true, "xlsx": true, "mongodb": true,
	}
	// Comma-separated lists fan out to multiple backends.
	for _, typ := range strings.Split(cfg.Storage.Type, ",") {
		typ = strings.TrimSpace(typ)
		if !validStorageTypes[typ] {
			return fmt.Errorf("storage.type %q is not supported (valid: csv, jsonl, xlsx, mongodb)", typ)
		}
		if typ == "mongodb" && cfg.Storage.MongoURI == "" {
			return fmt.Errorf("storage.mongo_uri is required for mongodb storage")
		}
	}
	if cfg.Storage.BatchSize < 1 {
		return fmt.Errorf("storage.batch_size must be >= 1, got %d", cfg.Storage.BatchSize)
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLogLevels[cfg.Logging.Level] {
		return fmt.Errorf("logging.level must be debug/info/warn/error, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" && cfg.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be 'text' or 'json', got %q", cfg.Logging.Format)
	}

	if cfg.Metrics.Enabled {
		if cfg.Metrics.Port < 1 || cfg.Metrics.Port > 65535 {
			return fmt.Errorf("metrics.port must be 1-65535, got %d", cfg.Metrics.Port)
		}
	}

	return nil
}
