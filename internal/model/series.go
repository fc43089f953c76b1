package model

// PriceSeries holds the closing prices extracted from one input file,
// in file order.
type PriceSeries struct {
	Closes []float64
}

// Rows returns the number of data rows in the series.
func (s *PriceSeries) Rows() int {
	return len(s.Closes)
}
