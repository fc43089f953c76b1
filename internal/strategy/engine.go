// Package strategy derives the binary above-mean signal from a price series
// and its rolling mean.
package strategy

// Signals compares each closing price against its rolling mean and returns
// the per-row indicator: 1 when close is strictly above the mean, else 0.
// Equal values produce 0, so the first row (whose mean is the close itself)
// is always 0.
func Signals(closes, means []float64) []int {
	signals := make([]int, len(closes))
	for i, c := range closes {
		if c > means[i] {
			signals[i] = 1
		}
	}
	return signals
}

// Rate returns the fraction of rows where the signal is 1, in [0, 1].
func Rate(signals []int) float64 {
	if len(signals) == 0 {
		return 0
	}
	count := 0
	for _, s := range signals {
		if s == 1 {
			count++
		}
	}
	return float64(count) / float64(len(signals))
}
