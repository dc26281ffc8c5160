package daybook

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	enc "github.com/taberna-labs/daybook/internal/encoding"
)

// rowSource streams raw rows from one export file. Implementations return
// io.EOF when exhausted and are not restartable.
type rowSource interface {
	Next() ([]string, error)
	Close() error
}

// openSource picks a row source by file extension. CSV exports go through
// encoding detection first; spreadsheet exports are read from the first
// sheet, which is the only one the source product writes. Legacy binary
// .xls is not accepted: excelize reads OOXML workbooks only, and rejecting
// the file here gives a clear message instead of a parse failure.
func openSource(path string) (rowSource, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return openCSV(path)
	case ".xlsx":
		return openXLSX(path)
	}

	return nil, fmt.Errorf("unsupported export type: %s", filepath.Ext(path))
}

type csvSource struct {
	f      *os.File
	reader *csv.Reader
}

func openCSV(path string) (*csvSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening export: %w", err)
	}

	src, err := csvFromReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	src.f = f

	return src, nil
}

func csvFromReader(r io.Reader) (*csvSource, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true    // Allow sloppy quotes if necessary

	return &csvSource{reader: reader}, nil
}

func (s *csvSource) Next() ([]string, error) {
	row, err := s.reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}

		return nil, fmt.Errorf("read csv row: %w", err)
	}

	return row, nil
}

func (s *csvSource) Close() error {
	if s.f == nil {
		return nil
	}

	return s.f.Close()
}

type xlsxSource struct {
	f    *excelize.File
	rows *excelize.Rows
}

func openXLSX(path string) (*xlsxSource, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}

	sheet := f.GetSheetName(0)

	rows, err := f.Rows(sheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}

	return &xlsxSource{f: f, rows: rows}, nil
}

func (s *xlsxSource) Next() ([]string, error) {
	if !s.rows.Next() {
		if err := s.rows.Error(); err != nil {
			return nil, fmt.Errorf("read sheet row: %w", err)
		}

		return nil, io.EOF
	}

	row, err := s.rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read sheet row: %w", err)
	}

	return row, nil
}

func (s *xlsxSource) Close() error {
	s.rows.Close()
	return s.f.Close()
}
