package transition

// DoubleFactorial returns n!! = n·(n-2)·(n-4)·…, ending at 1 or 2.
// It returns 1 for n of 0 or 1 and for negative n.
func DoubleFactorial(n int) float64 {
	val := 1.0
	for i := n; i > 1; i -= 2 {
		val *= float64(i)
	}
	return val
}
