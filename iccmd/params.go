package iccmd

import (
	"fmt"
	"strconv"
	"strings"

	"go.brendoncarroll.net/star"

	"intcode.dev/intcode"
)

type Word = intcode.Word

// loader shares images between commands which load the same program.
var loader = intcode.NewLoader(16)

var programParam = star.Param[intcode.Program]{
	Name:  "f",
	Parse: loader.Load,
}

var inputParam = star.Param[Word]{
	Name:     "in",
	Repeated: true,
	Parse:    parseWord,
}

var setParam = star.Param[assignment]{
	Name:     "set",
	Repeated: true,
	Parse:    parseAssignment,
}

var addrParam = star.Param[int]{
	Name:     "addr",
	Repeated: true,
	Parse:    strconv.Atoi,
}

var phasesParam = star.Param[[]Word]{
	Name:  "phases",
	Parse: parseWords,
}

var feedbackParam = star.Param[bool]{
	Name:    "feedback",
	Default: star.Ptr("false"),
	Parse:   strconv.ParseBool,
}

var targetParam = star.Param[Word]{
	Name:  "target",
	Parse: parseWord,
}

var maxParam = star.Param[Word]{
	Name:    "max",
	Default: star.Ptr("100"),
	Parse:   parseWord,
}

func parseWord(x string) (Word, error) {
	return strconv.ParseInt(x, 10, 64)
}

// parseWords parses a comma separated list of words, in the same format as a program.
func parseWords(x string) ([]Word, error) {
	prog, err := intcode.ParseString(x)
	if err != nil {
		return nil, err
	}
	return []Word(prog), nil
}

// assignment is a memory cell to seed before running.
type assignment struct {
	Addr  int
	Value Word
}

// parseAssignment parses ADDR=VALUE.
func parseAssignment(x string) (assignment, error) {
	k, v, ok := strings.Cut(x, "=")
	if !ok {
		return assignment{}, fmt.Errorf("could not parse assignment from %q, expected ADDR=VALUE", x)
	}
	addr, err := strconv.Atoi(k)
	if err != nil {
		return assignment{}, err
	}
	val, err := parseWord(v)
	if err != nil {
		return assignment{}, err
	}
	return assignment{Addr: addr, Value: val}, nil
}
