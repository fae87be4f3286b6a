package matrix

// float64 vector summation
func VectorSum(data []float64) float64 {
	sum := float64(0.0)
	for _, d := range data {
		sum += d
	}
	return sum
}

// AbsDiffSum returns sum(|a[i] - b[i]|) over the common prefix of a and b.
func AbsDiffSum(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	sum := float64(0.0)
	for i := 0; i < n; i += 1 {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return sum
}
