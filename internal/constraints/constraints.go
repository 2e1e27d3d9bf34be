package constraints

import "golang.org/x/exp/constraints"

// Number is any integer or floating point kind, named types included.
type Number interface {
	constraints.Integer | constraints.Float
}
