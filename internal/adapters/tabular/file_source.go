package tabular

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"spacex-launch-dashboard/internal/domain"

	"github.com/xuri/excelize/v2"
)

// FileSource reads launch records from a CSV or XLSX file.
// The format is chosen by file extension; anything but .xlsx is read as CSV.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) Name() string { return s.Path }

func (s *FileSource) ListLaunches(ctx context.Context) ([]domain.LaunchRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(s.Path); err != nil {
		return nil, &domain.DataLoadError{Source: s.Path, Err: err}
	}

	var rows [][]string
	var err error
	if strings.EqualFold(filepath.Ext(s.Path), ".xlsx") {
		rows, err = s.readXLSX()
	} else {
		rows, err = s.readCSV()
	}
	if err != nil {
		return nil, &domain.DataLoadError{Source: s.Path, Err: err}
	}

	return parseTable(s.Path, rows)
}

func (s *FileSource) readCSV() ([][]string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	return ReadCSV(f)
}

// ReadCSV reads every CSV row; rows may have differing field counts.
func ReadCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rows, nil
}

func (s *FileSource) readXLSX() ([][]string, error) {
	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("xlsx has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}
