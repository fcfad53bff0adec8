package amount

// Increment returns current + step. Bounds are not applied here.
func Increment(current, step float64) float64 {
	return current + step
}

// Decrement returns current - step. Bounds are not applied here.
func Decrement(current, step float64) float64 {
	return current - step
}
