package names

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrInvalidName   = errors.New("invalid name")
	ErrDuplicateName = errors.New("duplicate name")
	ErrEmptyPool     = errors.New("empty pool")
)

// Alphabetic words separated by single spaces.
var namePattern = regexp.MustCompile(`^[A-Za-z]+( [A-Za-z]+)*$`)

var defaultNames = []string{
	"Secret Squirrel",
	"Hidden Hedgehog",
	"Mysterious Meerkat",
}

// Pool is an ordered, immutable set of candidate names.
type Pool struct {
	names []string
	index map[string]struct{}
}

// DefaultPool returns the built-in pool. Its first entry is "Secret Squirrel".
func DefaultPool() Pool {
	p, err := NewPool(defaultNames...)
	if err != nil {
		panic(fmt.Sprintf("names: default pool: %v", err))
	}
	return p
}

func NewPool(names ...string) (Pool, error) {
	if len(names) == 0 {
		return Pool{}, ErrEmptyPool
	}
	p := Pool{
		names: make([]string, 0, len(names)),
		index: make(map[string]struct{}, len(names)),
	}
	for _, name := range names {
		if err := Validate(name); err != nil {
			return Pool{}, err
		}
		if _, ok := p.index[name]; ok {
			return Pool{}, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		p.index[name] = struct{}{}
		p.names = append(p.names, name)
	}
	return p, nil
}

// Validate reports whether name satisfies the pool invariant.
func Validate(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Extend returns a new pool with names appended. p is left untouched.
func (p Pool) Extend(names ...string) (Pool, error) {
	all := make([]string, 0, len(p.names)+len(names))
	all = append(all, p.names...)
	all = append(all, names...)
	return NewPool(all...)
}

// Names returns a copy of the pool entries in order.
func (p Pool) Names() []string {
	return append([]string(nil), p.names...)
}

func (p Pool) Len() int { return len(p.names) }

func (p Pool) First() string { return p.At(0) }

func (p Pool) At(i int) string { return p.names[i] }

func (p Pool) Contains(name string) bool {
	_, ok := p.index[name]
	return ok
}
