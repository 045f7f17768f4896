package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-courier/logr"
	testingx "github.com/octohelm/x/testing"
	"github.com/octohelm/x/testing/bdd"

	"github.com/octohelm/textkit/pkg/tally"
)

func run(args ...string) (string, string, error) {
	stdout := bytes.NewBuffer(nil)
	stderr := bytes.NewBuffer(nil)

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCount(t *testing.T) {
	for _, c := range [][]string{
		{"1 part\n", "count", "1", "part"},
		{"no parts\n", "count", "0", "part"},
		{"2 children\n", "count", "2", "child", "--plural", "children"},
		{"3 mice\n", "count", "3", "mouse", "--inflect"},
	} {
		t.Run(strings.TrimSpace(c[0]), func(t *testing.T) {
			out, _, err := run(c[1:]...)
			testingx.Expect(t, err, testingx.BeNil[error]())
			testingx.Expect(t, out, testingx.Be(c[0]))
		})
	}

	t.Run("negative", func(t *testing.T) {
		_, _, err := run("count", "--", "-1", "part")
		testingx.Expect(t, err == nil, testingx.Be(false))
	})

	t.Run("not a number", func(t *testing.T) {
		_, _, err := run("count", "two", "part")
		testingx.Expect(t, err == nil, testingx.Be(false))
	})
}

func TestLoggerSpans(t *testing.T) {
	logs := bytes.NewBuffer(nil)

	ctx, _ := newLogger(logs, false).Start(context.Background(), "Outer")
	_, l := logr.FromContext(ctx).Start(ctx, "Inner")
	l.Info("hello")

	testingx.Expect(t, strings.Contains(logs.String(), "span=Outer/Inner"), testingx.Be(true))
}

func TestTokenize(t *testing.T) {
	out, _, err := run("tokenize", "mad skilled", "noob")
	testingx.Expect(t, err, testingx.BeNil[error]())
	testingx.Expect(t, out, testingx.Be("MAD\nSKILLED\nNOOB\n"))
}

func TestReplace(t *testing.T) {
	out, _, err := run("replace", "mad skilled noob powned leet", "a=4", "e=3", "i=1", "o=0")
	testingx.Expect(t, err, testingx.BeNil[error]())
	testingx.Expect(t, out, testingx.Be("m4d sk1ll3d n00b p0wn3d l33t\n"))

	_, _, err = run("replace", "leet", "e3")
	testingx.Expect(t, err == nil, testingx.Be(false))
}

func TestMode(t *testing.T) {
	t.Run("GIVEN values", bdd.GivenT(func(b bdd.T) {
		b.When("as strings", func(b bdd.T) {
			out, _, err := run("mode", "a", "a", "a", "v", "d", "e", "e")

			b.Then("got the most frequent",
				bdd.NoError(err),
				bdd.Equal("a\n", out),
			)
		})

		b.When("as integers", func(b bdd.T) {
			out, _, err := run("mode", "--int", "1", "2", "3", "4", "04", "4", "4", "5", "8", "8")

			b.Then("equal numbers count together",
				bdd.NoError(err),
				bdd.Equal("4\n", out),
			)
		})

		b.When("negative integers follow --", func(b bdd.T) {
			out, _, err := run("mode", "--int", "--", "-1", "-1", "2")

			b.Then("they are read as values",
				bdd.NoError(err),
				bdd.Equal("-1\n", out),
			)
		})

		b.When("negative integers come without --", func(b bdd.T) {
			_, _, err := run("mode", "--int", "-1", "-1", "2")

			b.Then("the error says how to pass them",
				bdd.Equal(true, err != nil && strings.Contains(err.Error(), "pass negative values after --")),
			)
		})

		b.When("verbose", func(b bdd.T) {
			_, logs, err := run("mode", "-v", "--int", "8", "8")

			b.Then("spans are logged",
				bdd.NoError(err),
				bdd.Equal(true, strings.Contains(logs, "span=Mode")),
			)
		})
	}))

	t.Run("GIVEN no values", bdd.GivenT(func(b bdd.T) {
		_, _, err := run("mode")

		b.Then("fails with empty input",
			bdd.Equal(true, errors.Is(err, tally.ErrEmptyInput)),
		)
	}))
}
