// Package demo holds the demonstration scripts of typekit.
// Each script writes its results to the given writer, line by line.
package demo

import (
	"fmt"
	"io"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"
)

const ErrOutput errorkit.Error = "ErrOutput"

// Demo runs the demonstration scripts.
// Logging goes to Logger and never to the script output.
type Demo struct {
	Logger *logging.Logger
}

func (d Demo) logger() *logging.Logger {
	if d.Logger == nil {
		return &logging.Logger{Out: io.Discard}
	}
	return d.Logger
}

// printer writes lines and keeps the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) Println(a ...any) {
	if p.err != nil {
		return
	}
	if _, err := fmt.Fprintln(p.w, a...); err != nil {
		p.err = ErrOutput.Wrap(err)
	}
}
