package demo_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/typekit/internal/demo"
)

type brokenWriter struct{ Err error }

func (w brokenWriter) Write([]byte) (int, error) { return 0, w.Err }

func TestDemo(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		logger = testcase.Let(s, func(t *testcase.T) *logging.Logger {
			l, _ := logging.Stub(t)
			return l
		})
		subject = testcase.Let(s, func(t *testcase.T) demo.Demo {
			return demo.Demo{Logger: logger.Get(t)}
		})
	)

	s.Describe("#Functional", func(s *testcase.Spec) {
		s.Test("output", func(t *testcase.T) {
			var buf bytes.Buffer
			assert.NoError(t, subject.Get(t).Functional(context.Background(), &buf))
			assert.Equal(t, "Welcome to functional programming.\ntrue\nfalse\ntrue\nfalse\n", buf.String())
		})

		s.Test("on write failure, the error is returned", func(t *testcase.T) {
			expErr := t.Random.Error()
			err := subject.Get(t).Functional(context.Background(), brokenWriter{Err: expErr})
			assert.ErrorIs(t, expErr, err)
			assert.True(t, errors.Is(err, demo.ErrOutput))
		})
	})

	s.Describe("#Structural", func(s *testcase.Spec) {
		s.Test("output", func(t *testcase.T) {
			var buf bytes.Buffer
			assert.NoError(t, subject.Get(t).Structural(context.Background(), &buf))
			assert.Equal(t, "Welcome to TypeScript.\nHello Bill Smith!\nHello Jane M. User!\nHello Jane M. User!\n", buf.String())
		})

		s.Test("on write failure, the error is returned", func(t *testcase.T) {
			expErr := t.Random.Error()
			err := subject.Get(t).Structural(context.Background(), brokenWriter{Err: expErr})
			assert.ErrorIs(t, expErr, err)
			assert.True(t, errors.Is(err, demo.ErrOutput))
		})
	})

	s.Test("logging is done at debug level and stays out of the output", func(t *testcase.T) {
		l, out := logging.Stub(t)
		l.Level = logging.LevelDebug

		var buf bytes.Buffer
		d := demo.Demo{Logger: l}
		assert.NoError(t, d.Functional(context.Background(), &buf))
		assert.NoError(t, d.Structural(context.Background(), &buf))

		assert.Contains(t, out.String(), "user equality by id")
		assert.Contains(t, out.String(), "Jane M. User")
		assert.NotContains(t, buf.String(), "user equality by id")
	})

	s.Test("without a logger the demo still runs", func(t *testcase.T) {
		var buf bytes.Buffer
		assert.NoError(t, demo.Demo{}.Functional(context.Background(), &buf))
		assert.NotEmpty(t, buf.String())
	})
}
