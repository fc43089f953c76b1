// Package report serializes the run result to its output file.
package report

import (
	"encoding/json"
	"fmt"
	"os"

	"SignalPipe/internal/model"
)

// Render returns the result as indented JSON, the same bytes Write persists.
func Render(res *model.RunResult) ([]byte, error) {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return data, nil
}

// Write serializes the result and overwrites any previous run's output at path.
func Write(path string, res *model.RunResult) error {
	data, err := Render(res)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}
