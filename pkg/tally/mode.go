package tally

import (
	"iter"

	"github.com/pkg/errors"
)

var ErrEmptyInput = errors.New("empty input")

// Mode returns the most frequent value of s.
// When several values share the highest count, the one seen first wins.
// An empty s returns ErrEmptyInput.
func Mode[S ~[]E, E comparable](s S) (E, error) {
	return mode(CounterOf(s))
}

// ModeSeq is like Mode but consumes a sequence.
func ModeSeq[E comparable](seq iter.Seq[E]) (E, error) {
	c := &Counter[E]{}
	c.AddSeq(seq)
	return mode(c)
}

func mode[E comparable](c *Counter[E]) (e E, err error) {
	if c.Len() == 0 {
		return e, ErrEmptyInput
	}

	best := -1
	for k := range c.Keys() {
		// strictly greater keeps the earliest key among ties
		if n := c.Count(k); n > best {
			e, best = k, n
		}
	}
	return e, nil
}
