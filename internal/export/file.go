package export

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/danuarta/newswatch/internal/types"
)

// --- CSV Store ---

// CSVStore writes articles as CSV rows in the canonical column order.
type CSVStore struct {
	path        string
	file        *os.File
	writer      *csv.Writer
	wroteHeader bool
	count       int
	logger      *slog.Logger
}

// NewCSVStore creates a new CSV file store.
func NewCSVStore(outputPath string, logger *slog.Logger) (*CSVStore, error) {
	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("create output file: %w", err)
	}

	return &CSVStore{
		path:   outputPath,
		file:   f,
		writer: csv.NewWriter(f),
		logger: logger.With("component", "csv_store"),
	}, nil
}

func (s *CSVStore) Name() string { return "csv" }

func (s *CSVStore) Store(articles []*types.Article) error {
	if !s.wroteHeader {
		if err := s.writer.Write(types.RowHeader); err != nil {
			return &types.StorageError{Backend: s.Name(), Err: err}
		}
		s.wroteHeader = true
	}

	for _, article := range articles {
		if err := s.writer.Write(article.ToRow()); err != nil {
			return &types.StorageError{Backend: s.Name(), Err: err}
		}
		s.count++
	}

	s.writer.Flush()
	if err := s.writer.Error(); err != nil {
		return &types.StorageError{Backend: s.Name(), Err: err}
	}
	return nil
}

func (s *CSVStore) Close() error {
	s.logger.Info("CSV written", "path", s.path, "articles", s.count)
	if s.writer != nil {
		s.writer.Flush()
	}
	if s.file != nil {
		return s.file.Close()
	}
	return nil
}

// --- JSONL Store ---

// JSONLStore writes articles as newline-delimited JSON (one per line).
type JSONLStore struct {
	path   string
	file   *os.File
	count  int
	logger *slog.Logger
}

// NewJSONLStore creates a new JSONL file store (streaming writes).
func NewJSONLStore(outputPath string, logger *slog.Logger) (*JSONLStore, error) {
	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("create output file: %w", err)
	}

	return &JSONLStore{
		path:   outputPath,
		file:   f,
		logger: logger.With("component", "jsonl_store"),
	}, nil
}

func (s *JSONLStore) Name() string { return "jsonl" }

func (s *JSONLStore) Store(articles []*types.Article) error {
	for _, article := range articles {
		b, err := article.ToJSON()
		if err != nil {
			return &types.StorageError{Backend: s.Name(), Err: err}
		}
		if _, err := s.file.Write(append(b, '\n')); err != nil {
			return &types.StorageError{Backend: s.Name(), Err: err}
		}
		s.count++
	}
	return nil
}

func (s *JSONLStore) Close() error {
	s.logger.Info("JSONL written", "path", s.path, "articles", s.count)
	if s.file != nil {
		return s.file.Close()
	}
	return nil
}
