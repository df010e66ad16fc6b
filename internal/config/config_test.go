package config

import (
	"testing"
	"time"
)

func validConfig() *Config {
	cfg := DefaultConfig()
	cfg.Engine.Keywords = []string{"banjir"}
	return cfg
}

func TestValidateAcceptsDefaults(t *testing.T) {
	if err := Validate(validConfig()); err != nil {
		t.Errorf("defaults with keywords should validate: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no keywords", func(c *Config) { c.Engine.Keywords = nil }},
		{"no sources", func(c *Config) { c.Engine.Sources = nil }},
		{"zero concurrency", func(c *Config) { c.Engine.Concurrency = 0 }},
		{"excessive concurrency", func(c *Config) { c.Engine.Concurrency = 5000 }},
		{"negative max pages", func(c *Config) { c.Engine.MaxPages = -1 }},
		{"zero sink buffer", func(c *Config) { c.Engine.SinkBuffer = 0 }},
		{"zero timeout", func(c *Config) { c.Engine.RequestTimeout = 0 }},
		{"bad start date", func(c *Config) { c.Engine.StartDate = "31/12/2025" }},
		{"zero body size", func(c *Config) { c.Fetcher.MaxBodySize = 0 }},
		{"unknown storage type", func(c *Config) { c.Storage.Type = "sqlite" }},
		{"unknown type in list", func(c *Config) { c.Storage.Type = "csv,sqlite" }},
		{"mongodb without uri", func(c *Config) { c.Storage.Type = "mongodb" }},
		{"mongodb in list without uri", func(c *Config) { c.Storage.Type = "csv,mongodb" }},
		{"zero batch size", func(c *Config) { c.Storage.BatchSize = 0 }},
		{"bad log level", func(c *Config) { c.Logging.Level = "trace" }},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }},
		{"bad metrics port", func(c *Config) {
			c.Metrics.Enabled = true
			c.Metrics.Port = 0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			if err := Validate(cfg); err == nil {
				t.Error("Validate should reject this config")
			}
		})
	}
}

func TestValidateAcceptsStorageTypeList(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.Type = "csv,jsonl"
	if err := Validate(cfg); err != nil {
		t.Errorf("comma-separated storage types should validate: %v", err)
	}
}

func TestValidateAcceptsMongoWithURI(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.Type = "mongodb"
	cfg.Storage.MongoURI = "mongodb://localhost:27017"
	if err := Validate(cfg); err != nil {
		t.Errorf("mongodb with uri should validate: %v", err)
	}
}

func TestStartDateBound(t *testing.T) {
	e := &EngineConfig{}
	bound, err := e.StartDateBound()
	if err != nil {
		t.Fatalf("empty start date: %v", err)
	}
	if !bound.IsZero() {
		t.Error("empty start date should yield the zero time (no bound)")
	}

	e.StartDate = "2025-06-15"
	bound, err = e.StartDateBound()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	if !bound.Equal(want) {
		t.Errorf("bound = %v, want %v", bound, want)
	}

	e.StartDate = "15-06-2025"
	if _, err := e.StartDateBound(); err == nil {
		t.Error("non-ISO date should fail")
	}
}
