package ladder

import (
	"errors"
	"fmt"
)

var (
	// ErrNilLexicon is returned by NewSolver when no lexicon is given.
	ErrNilLexicon = errors.New("ladder: lexicon is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ladder: invalid option supplied")
)

// Option configures a Solver.
type Option func(*Options)

type Options struct {
	// MaxQueue, if > 0, bounds the number of search nodes a single
	// MinLadder call may create. A search that hits the bound gives up and
	// reports no ladder. 0 means unbounded.
	MaxQueue int

	err error
}

func DefaultOptions() Options {
	return Options{}
}

// WithMaxQueue bounds the work done by one MinLadder call.
func WithMaxQueue(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxQueue cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxQueue = n
	}
}
