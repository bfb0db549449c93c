package exprtree_test

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/zephyrtronium/exprtree"
)

func TestReaderSource(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		r       int
		prompts int
		err     error
	}{
		{"plain", "12\n", 12, 1, nil},
		{"space", "  -7  \n", -7, 1, nil},
		{"grouped", "1,000\n", 1000, 1, nil},
		{"no-newline", "5", 5, 1, nil},
		{"blank", "\n\n3\n", 3, 3, nil},
		{"retry", "abc\n4\n", 4, 2, nil},
		{"retry-twice", "1.5\nx\n-2\n", -2, 3, nil},
		{"empty", "", 0, 1, io.EOF},
		{"bad-end", "nope", 0, 1, io.EOF},
		{"blank-end", "   ", 0, 1, io.EOF},
		{"blank-then-end", "\n \t", 0, 2, io.EOF},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var out strings.Builder
			src := exprtree.NewReaderSource[int](strings.NewReader(c.in), &out)
			r, err := src.Prompt("x")
			if !errors.Is(err, c.err) {
				t.Errorf("wrong error: want %v, got %v", c.err, err)
			}
			if err == nil && r != c.r {
				t.Errorf("wrong result: want %d, got %d", c.r, r)
			}
			if n := strings.Count(out.String(), "Parameter x: "); n != c.prompts {
				t.Errorf("prompted %d times, want %d; output:\n%s", n, c.prompts, out.String())
			}
		})
	}
}

func TestReaderSourceBlankEnd(t *testing.T) {
	for _, in := range []string{"   ", "\n\t "} {
		var out strings.Builder
		src := exprtree.NewReaderSource[int](strings.NewReader(in), &out)
		if _, err := src.Prompt("x"); err != io.EOF {
			t.Errorf("%q: want io.EOF, got %v", in, err)
		}
		if strings.Contains(out.String(), "invalid value") {
			t.Errorf("%q: blank input reported as invalid: %q", in, out.String())
		}
	}
}

func TestReaderSourceMessage(t *testing.T) {
	var out strings.Builder
	src := exprtree.NewReaderSource[int](strings.NewReader("abc\n4\n"), &out)
	if _, err := src.Prompt("y"); err != nil {
		t.Fatal(err)
	}
	if msg := `invalid value "abc" for y: `; !strings.Contains(out.String(), msg) {
		t.Errorf("output %q doesn't contain %q", out.String(), msg)
	}
}

func TestReaderSourceLogger(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	src := exprtree.NewReaderSource(strings.NewReader("abc\n4\n"), nil, exprtree.WithLogger[int](log))
	if _, err := src.Prompt("y"); err != nil {
		t.Fatal(err)
	}
	if len(hook.Entries) != 1 {
		t.Fatalf("want 1 log entry, got %d", len(hook.Entries))
	}
	e := hook.LastEntry()
	if e.Level != logrus.DebugLevel {
		t.Errorf("logged at %v, want debug", e.Level)
	}
	if e.Data["param"] != "y" || e.Data["input"] != "abc" {
		t.Errorf("wrong fields: %v", e.Data)
	}
}

func TestReaderSourceParser(t *testing.T) {
	hex := func(s string) (int64, error) {
		return strconv.ParseInt(s, 16, 64)
	}
	src := exprtree.NewReaderSource(strings.NewReader("ff\n"), nil, exprtree.WithParser(hex))
	r, err := src.Prompt("x")
	if err != nil {
		t.Fatal(err)
	}
	if r != 255 {
		t.Errorf("wrong result: want 255, got %d", r)
	}
}

func TestReaderSourceEval(t *testing.T) {
	var out strings.Builder
	src := exprtree.NewReaderSource[int](strings.NewReader("1\nnine\n9\n3\n"), &out)
	r, err := exprtree.EvalInteractive[int](demo("z"), src)
	if err != nil {
		t.Fatal("evaluation error:", err)
	}
	if r != -3 {
		t.Errorf("wrong result: want -3, got %d", r)
	}
	want := "Parameter x: Parameter y: invalid value \"nine\" for y: "
	if !strings.HasPrefix(out.String(), want) {
		t.Errorf("output %q doesn't start with %q", out.String(), want)
	}
	if !strings.HasSuffix(out.String(), "Parameter y: Parameter z: ") {
		t.Errorf("output %q doesn't end with prompts for y and z", out.String())
	}
}

func TestReaderSourceEOF(t *testing.T) {
	src := exprtree.NewReaderSource[int](strings.NewReader("1\n"), nil)
	_, err := exprtree.EvalInteractive[int](demo("z"), src)
	var perr *exprtree.PromptError
	if !errors.As(err, &perr) {
		t.Fatalf("%#v is not *exprtree.PromptError", err)
	}
	if perr.Name != "y" || !errors.Is(err, io.EOF) {
		t.Errorf("wrong error: %v", err)
	}
}
