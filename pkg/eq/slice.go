package eq

// Slice lifts the equality of T to []T.
// Two slices are equal if they have the same length and their elements are equal position by position.
// A nil slice is equal to an empty one.
func Slice[T any](e Eq[T]) Eq[[]T] {
	return Func[[]T](func(xs, ys []T) bool {
		if len(xs) != len(ys) {
			return false
		}
		for i := range xs {
			if !e.Equal(xs[i], ys[i]) {
				return false
			}
		}
		return true
	})
}
