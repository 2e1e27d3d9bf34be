package ord

import (
	"go.llib.dev/frameless/pkg/enum"
	"go.llib.dev/frameless/pkg/errorkit"
)

// Ordering is the result of a three-way comparison.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = +1
)

const ErrInvalidOrdering errorkit.Error = "ErrInvalidOrdering"

var _ = enum.Register[Ordering](Less, Equal, Greater)

// Of converts a cmp style comparison result into an Ordering.
// Any negative value is Less, any positive value is Greater.
func Of(cmp int) Ordering {
	switch {
	case cmp < 0:
		return Less
	case 0 < cmp:
		return Greater
	default:
		return Equal
	}
}

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "invalid"
	}
}

// Reverse swaps Less and Greater.
func (o Ordering) Reverse() Ordering {
	return -o
}

// Validate checks o against the registered enumeration.
func (o Ordering) Validate() error {
	if err := enum.Validate(o); err != nil {
		return ErrInvalidOrdering.Wrap(err)
	}
	return nil
}

// IsLess reports whether the left operand was smaller.
func (o Ordering) IsLess() bool { return o == Less }

// IsEqual reports whether the operands were equal.
func (o Ordering) IsEqual() bool { return o == Equal }

// IsGreater reports whether the left operand was bigger.
func (o Ordering) IsGreater() bool { return o == Greater }
