// Package person shows how a function that accepts an interface
// works with any type that has the right methods,
// whether it is a plain record or a richer nominal type.
package person

import (
	"fmt"
	"strings"

	"go.llib.dev/typekit/pkg/eq"
)

// Person is the shape of anything that has a first and a last name.
type Person interface {
	FirstName() string
	LastName() string
}

// Record is the plain value form of a Person.
type Record struct {
	First string
	Last  string
}

func (r Record) FirstName() string { return r.First }

func (r Record) LastName() string { return r.Last }

var (
	_ Person = Record{}
	_ Person = Student{}
)

// Student is a Person with a middle initial.
// FullName is computed once, when the Student is made with NewStudent.
//
// As a Person, the first name of a Student carries the middle initial,
// so greeting a Student through the Person shape still shows the full name.
type Student struct {
	First         string
	MiddleInitial string
	Last          string
	FullName      string
}

func NewStudent(first, middleInitial, last string) Student {
	return Student{
		First:         first,
		MiddleInitial: middleInitial,
		Last:          last,
		FullName:      strings.Join([]string{first, middleInitial, last}, " "),
	}
}

// FirstName returns the first name followed by the middle initial, e.g. "Jane M.".
// Without a middle initial it is the first name alone.
// The First field keeps the bare first name.
func (s Student) FirstName() string {
	if s.MiddleInitial == "" {
		return s.First
	}
	return s.First + " " + s.MiddleInitial
}

func (s Student) LastName() string { return s.Last }

// Greet greets any Person by first and last name.
func Greet(p Person) string {
	return fmt.Sprintf("Hello %s %s!", p.FirstName(), p.LastName())
}

// GreetStudent greets a Student by the full name.
func GreetStudent(s Student) string {
	return fmt.Sprintf("Hello %s!", s.FullName)
}

// Eq compares persons by first and last name only,
// so a Record and a Student with the same names are equal.
func Eq() eq.Eq[Person] {
	return eq.Struct(
		eq.Field("FirstName", Person.FirstName, eq.String[string]()),
		eq.Field("LastName", Person.LastName, eq.String[string]()),
	)
}
