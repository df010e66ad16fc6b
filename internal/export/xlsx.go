package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/danuarta/newswatch/internal/types"
)

const xlsxSheet = "Articles"

// XLSXStore writes articles into an Excel workbook, one row per article in
// the canonical column order.
type XLSXStore struct {
	path   string
	file   *excelize.File
	row    int
	logger *slog.Logger
}

// NewXLSXStore creates a new XLSX workbook store.
func NewXLSXStore(outputPath string, logger *slog.Logger) (*XLSXStore, error) {
	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	f := excelize.NewFile()
	index, err := f.NewSheet(xlsxSheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}

	s := &XLSXStore{
		path:   outputPath,
		file:   f,
		row:    1,
		logger: logger.With("component", "xlsx_store"),
	}
	if err := s.writeRow(headerRow()); err != nil {
		return nil, err
	}
	return s, nil
}

func headerRow() []string {
	return types.RowHeader
}

func (s *XLSXStore) Name() string { return "xlsx" }

func (s *XLSXStore) Store(articles []*types.Article) error {
	for _, article := range articles {
		if err := s.writeRow(article.ToRow()); err != nil {
			return err
		}
	}
	return nil
}

func (s *XLSXStore) writeRow(values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, s.row)
	if err != nil {
		return &types.StorageError{Backend: s.Name(), Err: err}
	}
	row := make([]any, len(values))
	for i, v := range values {
		row[i] = v
	}
	if err := s.file.SetSheetRow(xlsxSheet, cell, &row); err != nil {
		return &types.StorageError{Backend: s.Name(), Err: err}
	}
	s.row++
	return nil
}

func (s *XLSXStore) Close() error {
	s.logger.Info("XLSX written", "path", s.path, "articles", s.row-2)
	if err := s.file.SaveAs(s.path); err != nil {
		return &types.StorageError{Backend: s.Name(), Err: err}
	}
	return s.file.Close()
}
