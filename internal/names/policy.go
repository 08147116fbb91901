package names

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownPolicy = errors.New("unknown policy")

// Policy decides which pool entry CreateName returns.
type Policy int

const (
	// PolicyFixed always returns the first pool entry.
	PolicyFixed Policy = iota
	// PolicyRandom picks a uniformly random pool entry.
	PolicyRandom
)

func (p Policy) String() string {
	switch p {
	case PolicyFixed:
		return "fixed"
	case PolicyRandom:
		return "random"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fixed":
		return PolicyFixed, nil
	case "random":
		return PolicyRandom, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}
