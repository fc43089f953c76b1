package model

import (
	"encoding/json"
	"math"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"

	// MetricSignalRate names the single metric this pipeline reports.
	MetricSignalRate = "signal_rate"

	// DefaultVersion is echoed in error results produced before the config
	// has yielded a version string.
	DefaultVersion = "v1"
)

// RunResult is the single record a run produces: either a success record with
// the computed metric, or an error record describing the first violated
// invariant. Value keeps full precision internally and is rounded only when
// serialized.
type RunResult struct {
	Version       string
	RowsProcessed int
	Metric        string
	Value         float64
	LatencyMS     int64
	Seed          int64
	Status        string
	ErrorMessage  string
}

// SuccessResult assembles the success record for a completed run.
func SuccessResult(version string, rows int, value float64, latencyMS, seed int64) *RunResult {
	return &RunResult{
		Version:       version,
		RowsProcessed: rows,
		Metric:        MetricSignalRate,
		Value:         value,
		LatencyMS:     latencyMS,
		Seed:          seed,
		Status:        StatusSuccess,
	}
}

// ErrorResult assembles the error record for a failed run.
func ErrorResult(version, message string) *RunResult {
	return &RunResult{
		Version:      version,
		Status:       StatusError,
		ErrorMessage: message,
	}
}

// MarshalJSON emits the success or error wire shape depending on Status.
// The metric value is rounded to 4 decimal places here, at serialization
// time only.
func (r *RunResult) MarshalJSON() ([]byte, error) {
	if r.Status == StatusError {
		return json.Marshal(struct {
			Version      string `json:"version"`
			Status       string `json:"status"`
			ErrorMessage string `json:"error_message"`
		}{r.Version, r.Status, r.ErrorMessage})
	}
	return json.Marshal(struct {
		Version       string  `json:"version"`
		RowsProcessed int     `json:"rows_processed"`
		Metric        string  `json:"metric"`
		Value         float64 `json:"value"`
		LatencyMS     int64   `json:"latency_ms"`
		Seed          int64   `json:"seed"`
		Status        string  `json:"status"`
	}{r.Version, r.RowsProcessed, r.Metric, round4(r.Value), r.LatencyMS, r.Seed, r.Status})
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
