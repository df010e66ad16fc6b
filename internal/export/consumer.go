package export

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/danuarta/newswatch/internal/config"
	"github.com/danuarta/newswatch/internal/pipeline"
	"github.com/danuarta/newswatch/internal/types"
)

// Consumer is the single drain of the result sink. It runs each record
// through the normalization pipeline, batches survivors, and hands batches
// to the configured store.
type Consumer struct {
	store     Store
	pipe      *pipeline.Pipeline
	batchSize int
	stored    int
	dropped   int
	logger    *slog.Logger
}

// NewConsumer creates a sink consumer.
func NewConsumer(store Store, pipe *pipeline.Pipeline, batchSize int, logger *slog.Logger) *Consumer {
	return &Consumer{
		store:     store,
		pipe:      pipe,
		batchSize: batchSize,
		logger:    logger.With("component", "consumer"),
	}
}

// Drain consumes the channel until it is closed, then flushes and closes
// the store. Records arrive in completion order, not publish-date order.
func (c *Consumer) Drain(results <-chan types.Article) error {
	batch := make([]*types.Article, 0, c.batchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := c.store.Store(batch); err != nil {
			return err
		}
		c.stored += len(batch)
		batch = batch[:0]
		return nil
	}

	for article := range results {
		record := article
		processed, err := c.pipe.Process(&record)
		if err != nil {
			c.dropped++
			c.logger.Warn("pipeline error", "link", record.Link, "error", err)
			continue
		}
		if processed == nil {
			c.dropped++
			continue
		}

		batch = append(batch, processed)
		if len(batch) >= c.batchSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}

	if err := flush(); err != nil {
		return err
	}

	c.logger.Info("sink drained", "stored", c.stored, "dropped", c.dropped)
	return c.store.Close()
}

// Stored returns how many articles reached the store.
func (c *Consumer) Stored() int { return c.stored }

// NewStore creates the configured export backend. A comma-separated type
// list ("csv,jsonl") fans out to every listed backend via MultiStore.
func NewStore(cfg *config.StorageConfig, logger *slog.Logger) (Store, error) {
	names := strings.Split(cfg.Type, ",")
	if len(names) == 1 {
		return newBackend(strings.TrimSpace(names[0]), cfg, logger)
	}

	backends := make([]Store, 0, len(names))
	for _, name := range names {
		backend, err := newBackend(strings.TrimSpace(name), cfg, logger)
		if err != nil {
			for _, b := range backends {
				b.Close()
			}
			return nil, err
		}
		backends = append(backends, backend)
	}
	return NewMultiStore(backends, logger), nil
}

func newBackend(name string, cfg *config.StorageConfig, logger *slog.Logger) (Store, error) {
	switch name {
	case "csv":
		return NewCSVStore(filepath.Join(cfg.OutputPath, "articles.csv"), logger)
	case "jsonl":
		return NewJSONLStore(filepath.Join(cfg.OutputPath, "articles.jsonl"), logger)
	case "xlsx":
		return NewXLSXStore(filepath.Join(cfg.OutputPath, "articles.xlsx"), logger)
	case "mongodb":
		return NewMongoStore(cfg.MongoURI, cfg.MongoDatabase, cfg.MongoCollection, logger)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", name)
	}
}

// MultiStore fans articles out to multiple backends simultaneously.
type MultiStore struct {
	backends []Store
	logger   *slog.Logger
}

// NewMultiStore creates a store that fans out to multiple backends.
func NewMultiStore(backends []Store, logger *slog.Logger) *MultiStore {
	return &MultiStore{
		backends: backends,
		logger:   logger.With("component", "multi_store"),
	}
}

func (s *MultiStore) Name() string { return "multi" }

func (s *MultiStore) Store(articles []*types.Article) error {
	var firstErr error
	for _, backend := range s.backends {
		if err := backend.Store(articles); err != nil {
			s.logger.Error("backend store failed", "backend", backend.Name(), "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (s *MultiStore) Close() error {
	var firstErr error
	for _, backend := range s.backends {
		if err := backend.Close(); err != nil {
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
