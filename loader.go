package intcode

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"go.brendoncarroll.net/exp/singleflight"
)

// Loader loads program files, handing out a single shared image for
// programs with the same contents.
// It is safe for concurrent use. Concurrent loads of the same path read the file once.
type Loader struct {
	cache *lru.Cache[ProgramID, Program]
	sf    singleflight.Group[string, Program]
}

// NewLoader returns a Loader which remembers up to size images.
func NewLoader(size int) *Loader {
	cache, err := lru.New[ProgramID, Program](size)
	if err != nil {
		panic(err)
	}
	return &Loader{cache: cache}
}

func (l *Loader) Load(p string) (Program, error) {
	prog, err, _ := l.sf.Do(p, func() (Program, error) {
		prog, err := LoadFile(p)
		if err != nil {
			return nil, err
		}
		return l.Intern(prog), nil
	})
	return prog, err
}

// Intern returns the cached image with the same contents as prog,
// caching prog if there is none.
func (l *Loader) Intern(prog Program) Program {
	id := Hash(prog)
	if prev, ok := l.cache.Get(id); ok {
		return prev
	}
	l.cache.Add(id, prog)
	return prog
}

func (l *Loader) Len() int {
	return l.cache.Len()
}
