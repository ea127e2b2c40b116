package metrics

import "github.com/san-kum/ndviplay/internal/frame"

// Histogram counts the values of f into n equal bins over [lo, hi]. Values
// outside the range land in the outermost bins.
func Histogram(f *frame.Field, n int, lo, hi float64) []float64 {
	if n < 1 {
		n = 1
	}
	bins := make([]float64, n)
	if hi <= lo {
		bins[0] = float64(len(f.Data))
		return bins
	}
	width := (hi - lo) / float64(n)
	for _, v := range f.Data {
		i := int((v - lo) / width)
		if i < 0 {
			i = 0
		}
		if i >= n {
			i = n - 1
		}
		bins[i]++
	}
	return bins
}
