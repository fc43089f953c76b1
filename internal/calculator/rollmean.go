package calculator

import "errors"

// RollingMean computes the simple moving average of prices at every index,
// using an expanding window until `window` observations are available and a
// sliding window of exactly `window` afterwards. The result has the same
// length as prices: leading rows are averaged over the observations seen so
// far rather than dropped, so the mean at index 0 is prices[0] itself. A
// window larger than the series is legal and keeps the window expanding for
// the whole series.
func RollingMean(prices []float64, window int) ([]float64, error) {
	if window < 1 {
		return nil, errors.New("window must be >= 1")
	}
	means := make([]float64, len(prices))
	sum := 0.0
	for i, p := range prices {
		sum += p
		if i >= window {
			sum -= prices[i-window]
		}
		n := i + 1
		if n > window {
			n = window
		}
		means[i] = sum / float64(n)
	}
	return means, nil
}
