package ports

// Random is a uniform integer source.
type Random interface {
	// Roll returns a uniform value in [1, n] for n >= 1.
	// For n <= 0 it must return a bounded value (0) rather than panic.
	Roll(n int) int
}

// RandomFunc adapts a function to Random.
type RandomFunc func(n int) int

// Roll implements Random.
func (f RandomFunc) Roll(n int) int {
	return f(n)
}
