package eq

// FieldEq is the equality of a single field of the R record type.
// Use Field to make one.
type FieldEq[R any] struct {
	Name  string
	equal func(x, y R) bool
}

// Field describes a record field for Struct:
// get extracts the field's value, and e compares the extracted values.
func Field[R, F any](name string, get func(R) F, e Eq[F]) FieldEq[R] {
	return FieldEq[R]{
		Name: name,
		equal: func(x, y R) bool {
			return e.Equal(get(x), get(y))
		},
	}
}

// StructEq is a record equality composed from the equality of its fields.
type StructEq[R any] struct {
	Fields []FieldEq[R]
}

// Struct combines field equalities into the equality of the whole record.
// Two records are equal when every field is equal.
// Fields are compared in the order they are given.
func Struct[R any](fields ...FieldEq[R]) StructEq[R] {
	return StructEq[R]{Fields: fields}
}

func (s StructEq[R]) Equal(x, y R) bool {
	_, ok := s.Mismatch(x, y)
	return !ok
}

// Mismatch returns the name of the first field that differs between x and y.
func (s StructEq[R]) Mismatch(x, y R) (string, bool) {
	for _, f := range s.Fields {
		if f.equal == nil {
			continue
		}
		if !f.equal(x, y) {
			return f.Name, true
		}
	}
	return "", false
}

type mismatcher[T any] interface {
	Mismatch(x, y T) (string, bool)
}

// Mismatch reports whether x and y differ according to e.
// When e knows about fields, like the result of Struct, the name of the first different field is returned too.
func Mismatch[T any](e Eq[T], x, y T) (string, bool) {
	if m, ok := e.(mismatcher[T]); ok {
		return m.Mismatch(x, y)
	}
	return "", !e.Equal(x, y)
}
