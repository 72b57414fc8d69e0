package carousel

// Next returns the index after i in a circular list of n items.
func Next(i, n int) int {
	if n <= 1 {
		return i
	}
	return (i + 1) % n
}

// Prev returns the index before i in a circular list of n items.
func Prev(i, n int) int {
	if n <= 1 {
		return i
	}
	return (i - 1 + n) % n
}
