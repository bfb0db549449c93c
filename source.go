package exprtree

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// ReaderSource is a Source that writes a prompt for each parameter and reads
// its value from a line of input. Lines that do not parse are reported and
// prompted again. It is not safe for concurrent use.
type ReaderSource[V Number] struct {
	in    *bufio.Reader
	out   io.Writer
	parse func(string) (V, error)
	log   logrus.FieldLogger
}

// ReaderSourceOption is an option for NewReaderSource.
type ReaderSourceOption[V Number] func(*ReaderSource[V])

// WithParser sets the function used to convert input lines to values. The
// default is ParseNumber.
func WithParser[V Number](parse func(string) (V, error)) ReaderSourceOption[V] {
	return func(s *ReaderSource[V]) {
		s.parse = parse
	}
}

// WithLogger sets a logger which receives rejected input at debug level. By
// default nothing is logged.
func WithLogger[V Number](log logrus.FieldLogger) ReaderSourceOption[V] {
	return func(s *ReaderSource[V]) {
		s.log = log
	}
}

// NewReaderSource creates a source reading values from in and writing prompts
// to out. If out is nil, prompts are discarded.
func NewReaderSource[V Number](in io.Reader, out io.Writer, opts ...ReaderSourceOption[V]) *ReaderSource[V] {
	if out == nil {
		out = io.Discard
	}
	silent := logrus.New()
	silent.SetOutput(io.Discard)
	s := ReaderSource[V]{
		in:    bufio.NewReader(in),
		out:   out,
		parse: ParseNumber[V],
		log:   silent,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return &s
}

// Prompt asks for the value of name until a line parses. If the input ends
// first, the error is io.EOF.
func (s *ReaderSource[V]) Prompt(name string) (V, error) {
	for {
		if _, err := fmt.Fprintf(s.out, "Parameter %s: ", name); err != nil {
			return 0, err
		}
		line, err := s.in.ReadString('\n')
		if line == "" && err != nil {
			return 0, err
		}
		text := strings.TrimSpace(line)
		if text == "" {
			if err != nil {
				return 0, err
			}
			// Blank lines just prompt again.
			continue
		}
		v, perr := s.parse(text)
		if perr == nil {
			return v, nil
		}
		s.log.WithFields(logrus.Fields{"param": name, "input": text}).WithError(perr).Debug("rejected parameter value")
		fmt.Fprintf(s.out, "invalid value %q for %s: %v\n", text, name, perr)
		if err != nil {
			// The last line was malformed and there is nothing more.
			return 0, err
		}
	}
}
