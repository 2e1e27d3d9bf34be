package eq

// Contramap makes an equality for A out of an equality for B,
// by comparing only the B key that is extracted from each A value.
//
//	byID := eq.Contramap(func(u User) int { return u.ID }, eq.Number[int]())
//
// Everything in A that is not part of the key is ignored.
func Contramap[A, B any](key func(A) B, e Eq[B]) Eq[A] {
	return Func[A](func(x, y A) bool {
		return e.Equal(key(x), key(y))
	})
}
