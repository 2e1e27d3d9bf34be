package main

import (
	"context"
	"io"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/typekit/internal/demo"
)

func main() {
	cli.Main(context.Background(), Command{})
}

const ErrUnknownDemo errorkit.Error = "ErrUnknownDemo"

const (
	DemoFunctional = "functional"
	DemoStructural = "structural"
	DemoAll        = "all"
)

const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

type Command struct {
	Verbose   bool   `flag:"verbose,v" env:"TYPEKIT_VERBOSE" desc:"log every demonstration step"`
	LogFormat string `flag:"log-format" env:"TYPEKIT_LOG_FORMAT" default:"json" enum:"json,text," desc:"encoding of the log entries"`

	Demo string `arg:"0" default:"all" enum:"functional,structural,all," desc:"the demonstration to run"`
}

func (cmd Command) Summary() string {
	return "typekit runs the equality, ordering and structural typing demonstrations"
}

func (cmd Command) ServeCLI(w cli.Response, r *cli.Request) {
	ctx := r.Context()
	l := cmd.logger(w)
	d := demo.Demo{Logger: l}

	l.Debug(ctx, "starting", logging.Field("demo", cmd.Demo))

	var scripts []func(context.Context, io.Writer) error
	switch cmd.Demo {
	case DemoFunctional:
		scripts = append(scripts, d.Functional)
	case DemoStructural:
		scripts = append(scripts, d.Structural)
	case DemoAll, "":
		scripts = append(scripts, d.Functional, d.Structural)
	default:
		w.ExitCode(cli.ExitCodeBadRequest)
		l.Error(ctx, "unknown demo", logging.ErrField(ErrUnknownDemo.F("%q", cmd.Demo)))
		return
	}

	for _, script := range scripts {
		if err := script(ctx, w); err != nil {
			w.ExitCode(cli.ExitCodeError)
			l.Error(ctx, "demo failed", logging.ErrField(err))
			return
		}
	}
}

func (cmd Command) logger(w cli.Response) *logging.Logger {
	var out io.Writer = io.Discard
	if ew, ok := w.(cli.ErrorWriter); ok {
		out = ew.Stderr()
	}
	l := &logging.Logger{Out: out, Level: logging.LevelInfo}
	if cmd.Verbose {
		l.Level = logging.LevelDebug
	}
	if cmd.LogFormat == LogFormatText {
		l.MarshalFunc = marshalText
	}
	return l
}
