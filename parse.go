package intcode

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var ErrEmptyProgram = errors.New("intcode: empty program")

// ErrParse is returned when a token in a program source is not an integer.
type ErrParse struct {
	Index int
	Token string
	Err   error
}

func (e ErrParse) Error() string {
	return fmt.Sprintf("intcode: token %d %q is not an integer: %v", e.Index, e.Token, e.Err)
}

func (e ErrParse) Unwrap() error {
	return e.Err
}

// Parse reads a program in the source format: base 10 integers separated by commas.
// Whitespace around tokens and at either end is ignored.
func Parse(r io.Reader) (Program, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseString(string(data))
}

func ParseString(s string) (Program, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptyProgram
	}
	toks := strings.Split(s, ",")
	prog := make(Program, len(toks))
	for i, tok := range toks {
		tok = strings.TrimSpace(tok)
		w, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, ErrParse{Index: i, Token: tok, Err: err}
		}
		prog[i] = w
	}
	return prog, nil
}

// LoadFile reads and parses the program at path p.
func LoadFile(p string) (Program, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	prog, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", p, err)
	}
	return prog, nil
}
