// Package eq provides Eq, a capability to tell whether two values of the same type are equal.
//
// An Eq is a value, not a method on the compared type.
// That makes it possible to compare types you don't own,
// to have more than one notion of equality for the same type,
// and to derive new equalities from existing ones with Struct, Slice and Contramap.
package eq

import (
	"iter"

	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/typekit/internal/constraints"
)

// Eq is the equality capability of T.
//
// Implementations are expected to be reflexive, symmetric and transitive,
// and must not have side effects.
type Eq[T any] interface {
	// Equal reports whether x and y are equal.
	Equal(x, y T) bool
}

// Func is an adapter to allow the use of ordinary functions as Eq.
type Func[T any] func(x, y T) bool

func (fn Func[T]) Equal(x, y T) bool { return fn(x, y) }

// Equable is implemented by types that know how to compare themselves.
type Equable[T any] interface {
	IsEqual(oth T) bool
}

// Number is the equality of numeric values.
// Floating point values follow IEEE 754, so NaN is not equal to itself.
func Number[T constraints.Number]() Eq[T] {
	return Func[T](func(x, y T) bool { return x == y })
}

func String[S ~string]() Eq[S] {
	return Func[S](func(x, y S) bool { return x == y })
}

func Bool() Eq[bool] {
	return Func[bool](func(x, y bool) bool { return x == y })
}

// Strict uses the language's == operator.
func Strict[T comparable]() Eq[T] {
	return Func[T](func(x, y T) bool { return x == y })
}

// Deep compares values by their content, following pointers, slices and maps.
func Deep[T any]() Eq[T] {
	return Func[T](func(x, y T) bool { return reflectkit.Equal(x, y) })
}

// Method derives the equality from T's own IsEqual method.
func Method[T Equable[T]]() Eq[T] {
	return Func[T](func(x, y T) bool { return x.IsEqual(y) })
}

// Elem reports whether target is present in elements according to e.
// It stops at the first match.
func Elem[T any](e Eq[T], target T, elements []T) bool {
	for _, element := range elements {
		if e.Equal(element, target) {
			return true
		}
	}
	return false
}

// ElemSeq is the iter.Seq variant of Elem.
func ElemSeq[T any](e Eq[T], target T, elements iter.Seq[T]) bool {
	if elements == nil {
		return false
	}
	for element := range elements {
		if e.Equal(element, target) {
			return true
		}
	}
	return false
}
