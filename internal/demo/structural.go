package demo

import (
	"context"
	"io"

	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/typekit/pkg/person"
)

// Structural demonstrates that a plain record and a Student are both usable as a person.Person.
func (d Demo) Structural(ctx context.Context, w io.Writer) error {
	l := d.logger()
	ctx = logging.ContextWith(ctx, logging.Field("demo", "structural"))
	p := &printer{w: w}

	p.Println("Welcome to TypeScript.")

	bill := person.Record{First: "Bill", Last: "Smith"}
	p.Println(person.Greet(bill))

	user := person.NewStudent("Jane", "M.", "User")
	l.Debug(ctx, "student created", logging.Field("fullName", user.FullName))

	p.Println(person.Greet(user))
	p.Println(person.GreetStudent(user))

	return p.err
}
