// Package ord provides Ord, the total ordering capability.
//
// Ord extends eq.Eq with a three-way Compare,
// so every Ord can be used where only equality is needed.
package ord

import (
	"slices"
	"strings"

	"go.llib.dev/typekit/internal/constraints"
	"go.llib.dev/typekit/pkg/eq"
)

// Ord is the total ordering capability of T.
//
// Compare yielding Equal is expected to agree with Equal returning true.
type Ord[T any] interface {
	eq.Eq[T]
	// Compare returns:
	//   Less    if x is less than y,
	//   Equal   if they are equal, and
	//   Greater if x is greater than y.
	Compare(x, y T) Ordering
}

// Func is an adapter to allow the use of ordinary comparison functions as Ord.
// Equal is derived from Compare.
type Func[T any] func(x, y T) Ordering

func (fn Func[T]) Compare(x, y T) Ordering { return fn(x, y) }

func (fn Func[T]) Equal(x, y T) bool { return fn(x, y) == Equal }

// Number orders numeric values by their natural order.
// NaN compares Equal to everything, while eq.Number never reports NaN as equal.
func Number[T constraints.Number]() Ord[T] {
	return numberOrd[T]{}
}

type numberOrd[T constraints.Number] struct{}

func (numberOrd[T]) Equal(x, y T) bool { return x == y }

func (numberOrd[T]) Compare(x, y T) Ordering {
	switch {
	case x < y:
		return Less
	case x > y:
		return Greater
	default:
		return Equal
	}
}

// String orders strings lexicographically, byte-wise.
func String[S ~string]() Ord[S] {
	return FromCompare(func(x, y S) int {
		return strings.Compare(string(x), string(y))
	})
}

// FromCompare makes an Ord from a cmp.Compare style function.
//
//	ord.FromCompare(cmp.Compare[int])
func FromCompare[T any](cmp func(x, y T) int) Ord[T] {
	return Func[T](func(x, y T) Ordering {
		return Of(cmp(x, y))
	})
}

// Comparable is implemented by types that know how to compare themselves
// to another value of the same type, in the cmp.Compare convention.
type Comparable[T any] interface {
	Compare(T) int
}

// Method derives the ordering from T's own Compare method.
func Method[T Comparable[T]]() Ord[T] {
	return Func[T](func(x, y T) Ordering {
		return Of(x.Compare(y))
	})
}

// Contramap makes an ordering for A by comparing the B key of each A value.
func Contramap[A, B any](key func(A) B, o Ord[B]) Ord[A] {
	return contramapOrd[A, B]{key: key, ord: o}
}

type contramapOrd[A, B any] struct {
	key func(A) B
	ord Ord[B]
}

func (o contramapOrd[A, B]) Equal(x, y A) bool {
	return o.ord.Equal(o.key(x), o.key(y))
}

func (o contramapOrd[A, B]) Compare(x, y A) Ordering {
	return o.ord.Compare(o.key(x), o.key(y))
}

// Reverse flips the order of o.
func Reverse[T any](o Ord[T]) Ord[T] {
	return reverseOrd[T]{ord: o}
}

type reverseOrd[T any] struct{ ord Ord[T] }

func (o reverseOrd[T]) Equal(x, y T) bool { return o.ord.Equal(x, y) }

func (o reverseOrd[T]) Compare(x, y T) Ordering { return o.ord.Compare(y, x) }

// Min returns the smaller of x and y.
// On a tie x is returned.
func Min[T any](o Ord[T], x, y T) T {
	if o.Compare(x, y) == Greater {
		return y
	}
	return x
}

// Max returns the bigger of x and y.
// On a tie x is returned.
func Max[T any](o Ord[T], x, y T) T {
	if o.Compare(x, y) == Less {
		return y
	}
	return x
}

// Clamp returns a function that limits its argument to the [low, high] range.
func Clamp[T any](o Ord[T], low, high T) func(T) T {
	return func(v T) T {
		return Min(o, Max(o, v, low), high)
	}
}

// Between returns a function that reports whether its argument is within the [low, high] range.
func Between[T any](o Ord[T], low, high T) func(T) bool {
	return func(v T) bool {
		return o.Compare(v, low) != Less && o.Compare(v, high) != Greater
	}
}

// Sort sorts vs in place, keeping the original order of equal elements.
func Sort[T any](o Ord[T], vs []T) {
	slices.SortStableFunc(vs, func(a, b T) int {
		return int(o.Compare(a, b))
	})
}
