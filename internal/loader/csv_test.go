package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCSV(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadCSV_FullOHLCV(t *testing.T) {
	path := writeCSV(t, "open,high,low,close,volume\n100,110,95,105,5000\n105,112,101,102.5,4200\n")
	series, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if series.Rows() != 2 {
		t.Fatalf("expected 2 rows, got %d", series.Rows())
	}
	if series.Closes[0] != 105 || series.Closes[1] != 102.5 {
		t.Errorf("wrong closes: %v", series.Closes)
	}
}

func TestLoadCSV_CloseOnly(t *testing.T) {
	series, err := LoadCSV(writeCSV(t, "close\n1\n2\n3\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if series.Rows() != 3 {
		t.Errorf("expected 3 rows, got %d", series.Rows())
	}
}

func TestLoadCSV_MissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatal("expected error for missing input file")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestLoadCSV_EmptyFile(t *testing.T) {
	_, err := LoadCSV(writeCSV(t, ""))
	if err == nil {
		t.Fatal("expected error for zero-byte file")
	}
	if !strings.Contains(err.Error(), "empty") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestLoadCSV_HeaderOnly(t *testing.T) {
	_, err := LoadCSV(writeCSV(t, "open,high,low,close,volume\n"))
	if err == nil {
		t.Fatal("expected error for header-only file")
	}
	if !strings.Contains(err.Error(), "no data rows") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestLoadCSV_MissingCloseColumn(t *testing.T) {
	_, err := LoadCSV(writeCSV(t, "open,high,low,volume\n100,110,95,5000\n"))
	if err == nil {
		t.Fatal("expected error for missing close column")
	}
	if !strings.Contains(err.Error(), "close") {
		t.Errorf("message should name the missing column, got %q", err)
	}
}

func TestLoadCSV_BadCells(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"non-numeric", "close\n100\nabc\n"},
		{"empty cell", "close\n100\n\"\"\n"},
		{"nan", "close\n100\nNaN\n"},
		{"inf", "close\n100\n+Inf\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCSV(writeCSV(t, tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), "row 2") {
				t.Errorf("message should name the offending row, got %q", err)
			}
		})
	}
}
