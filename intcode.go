// package intcode holds the program image shared by the IntCode machine and its tools.
package intcode

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"slices"
	"strconv"
	"strings"

	"go.brendoncarroll.net/exp/slices2"
	"lukechampine.com/blake3"
)

// Word is the value stored in a single memory cell.
type Word = int64

// Program is a loaded program image: the memory a machine starts from.
// A Program must not be modified once it has been given to a machine.
type Program []Word

func (p Program) Clone() Program {
	return slices.Clone(p)
}

func (p Program) ID() ProgramID {
	return Hash(p)
}

// String formats p in the comma separated source format.
func (p Program) String() string {
	return strings.Join(slices2.Map(p, func(w Word) string {
		return strconv.FormatInt(w, 10)
	}), ",")
}

const (
	IDSize = 32
	// Base64Alphabet is used when encoding IDs as base64 strings.
	// It is a URL and filepath safe encoding, which maintains ordering.
	Base64Alphabet = "-0123456789" + "ABCDEFGHIJKLMNOPQRSTUVWXYZ" + "_" + "abcdefghijklmnopqrstuvwxyz"
)

var enc = base64.NewEncoding(Base64Alphabet).WithPadding(base64.NoPadding)

// ProgramID identifies a program image by its contents.
type ProgramID [IDSize]byte

func (id ProgramID) String() string {
	return enc.EncodeToString(id[:])
}

func (a ProgramID) Compare(b ProgramID) int {
	return bytes.Compare(a[:], b[:])
}

func (id ProgramID) IsZero() bool {
	return id == (ProgramID{})
}

// Hash calculates the ID of p: the blake3 hash of its words, little endian.
func Hash(p Program) (ret ProgramID) {
	h := blake3.New(IDSize, nil)
	var buf [8]byte
	for _, w := range p {
		binary.LittleEndian.PutUint64(buf[:], uint64(w))
		h.Write(buf[:])
	}
	h.Sum(ret[:0])
	return ret
}
