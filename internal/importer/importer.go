// Package importer reads word pairs from spreadsheets. Column A holds the
// Russian word and column B its English translation.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/DanRulev/vocabdrill/internal/models"
	"github.com/xuri/excelize/v2"
)

var ErrUnsupportedFormat = errors.New("unsupported file format")

type Options struct {
	// Sheet defaults to the first sheet of the workbook. Ignored for CSV.
	Sheet      string
	SkipHeader bool
}

type Result struct {
	Words     []models.Word
	Processed int
	Skipped   int
	Errors    []string
}

func Load(path string, opts Options) (*Result, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSV(path, opts)
	case ".xlsx", ".xlsm":
		return loadExcel(path, opts)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func loadExcel(path string, opts Options) (*Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	return collect(rows, opts), nil
}

func loadCSV(path string, opts Options) (*Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv file: %w", err)
	}
	defer file.Close()

	rows, err := readCSV(file)
	if err != nil {
		return nil, err
	}

	return collect(rows, opts), nil
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return rows, nil
}

// collect turns raw rows into words. Blank rows and repeated English values
// are skipped; rows with one side missing are reported.
func collect(rows [][]string, opts Options) *Result {
	result := &Result{}
	seen := make(map[string]struct{}, len(rows))

	for i, row := range rows {
		if i == 0 && opts.SkipHeader {
			continue
		}
		line := i + 1

		russian, english := cell(row, 0), cell(row, 1)
		if russian == "" && english == "" {
			continue
		}

		result.Processed++

		if russian == "" || english == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: both columns must be filled", line))
			continue
		}

		key := strings.ToLower(english)
		if _, ok := seen[key]; ok {
			result.Skipped++
			continue
		}
		seen[key] = struct{}{}

		result.Words = append(result.Words, models.Word{Russian: russian, English: english})
	}

	return result
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
