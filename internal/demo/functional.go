package demo

import (
	"context"
	"io"

	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/typekit/pkg/eq"
	"go.llib.dev/typekit/pkg/ord"
)

type Point struct {
	X, Y float64
}

type User struct {
	UserID int
	Name   string
}

// Functional demonstrates the Eq and Ord capabilities.
func (d Demo) Functional(ctx context.Context, w io.Writer) error {
	l := d.logger()
	ctx = logging.ContextWith(ctx, logging.Field("demo", "functional"))
	p := &printer{w: w}

	p.Println("Welcome to functional programming.")

	numbers := []int{1, 2, 3}
	for _, target := range []int{1, 4} {
		found := eq.Elem(eq.Number[int](), target, numbers)
		l.Debug(ctx, "elem", logging.Fields{
			"target":   target,
			"elements": numbers,
			"found":    found,
		})
		p.Println(found)
	}

	pointEq := eq.Struct(
		eq.Field("X", func(pt Point) float64 { return pt.X }, eq.Number[float64]()),
		eq.Field("Y", func(pt Point) float64 { return pt.Y }, eq.Number[float64]()),
	)
	pointsEq := eq.Slice[Point](pointEq)
	var (
		points = []Point{{X: 1, Y: 2}, {X: 3, Y: 4}}
		moved  = []Point{{X: 1, Y: 2}, {X: 3, Y: 5}}
	)
	l.Debug(ctx, "struct and slice equality", logging.Fields{
		"points equal to itself": pointsEq.Equal(points, points),
		"points equal to moved":  pointsEq.Equal(points, moved),
	})

	userEq := eq.Contramap(func(u User) int { return u.UserID }, eq.Number[int]())
	for _, pair := range [][2]User{
		{{UserID: 1, Name: "Giulio"}, {UserID: 1, Name: "Giulio Canti"}},
		{{UserID: 1, Name: "Giulio"}, {UserID: 2, Name: "Giulio Canti"}},
	} {
		equal := userEq.Equal(pair[0], pair[1])
		l.Debug(ctx, "user equality by id", logging.Fields{
			"left":  pair[0].UserID,
			"right": pair[1].UserID,
			"equal": equal,
		})
		p.Println(equal)
	}

	l.Debug(ctx, "min", logging.Field("result", ord.Min(ord.Number[int](), 2, 1)))

	return p.err
}
