package extract

// Strategy is one step of an ordered extraction cascade.
type Strategy[T any] struct {
	Name  string
	Match func(input string) (T, bool)
}

// FirstMatch runs the strategies in order and returns the first hit together
// with the name of the strategy that produced it.
func FirstMatch[T any](input string, strategies ...Strategy[T]) (T, string, bool) {
	for _, s := range strategies {
		if v, ok := s.Match(input); ok {
			return v, s.Name, true
		}
	}
	var zero T
	return zero, "", false
}
