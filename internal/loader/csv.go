// Package loader reads an OHLCV CSV file into a price series for analysis.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"SignalPipe/internal/model"
)

// closeColumn is the one required column; all other OHLCV columns are ignored.
const closeColumn = "close"

// LoadCSV reads the input file and returns the closing-price series in file
// order. The file must have a header row containing a "close" column, at
// least one data row, and every close cell must parse as a finite number.
func LoadCSV(path string) (*model.PriceSeries, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("input file not found: %s", path)
		}
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("input file is empty: %s", path)
	}

	r := csv.NewReader(f)

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	closeIdx := -1
	for i, name := range header {
		if strings.TrimSpace(name) == closeColumn {
			closeIdx = i
			break
		}
	}
	if closeIdx < 0 {
		return nil, fmt.Errorf("input CSV missing required column: %q", closeColumn)
	}

	var closes []float64
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(closes)+1, err)
		}
		cell := strings.TrimSpace(record[closeIdx])
		if cell == "" {
			return nil, fmt.Errorf("row %d: empty %q value", len(closes)+1, closeColumn)
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: %q value %q is not numeric", len(closes)+1, closeColumn, cell)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("row %d: %q value %q is not finite", len(closes)+1, closeColumn, cell)
		}
		closes = append(closes, v)
	}

	if len(closes) == 0 {
		return nil, fmt.Errorf("input CSV has no data rows")
	}

	return &model.PriceSeries{Closes: closes}, nil
}
