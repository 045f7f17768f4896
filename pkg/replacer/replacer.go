// Package replacer applies ordered find/replace substitutions to text.
//
// Each substitution runs on the output of the one before it, so a later
// pair may rewrite text inserted by an earlier pair:
//
//	Apply("abc", Pair{"a", "b"}, Pair{"b", "c"}) // "ccc"
package replacer

import (
	"iter"
	"strings"

	"github.com/pkg/errors"
)

type Pair struct {
	From string
	To   string
}

func (p Pair) String() string {
	return p.From + "=" + p.To
}

// Apply replaces every non-overlapping occurrence of each pair's From with
// its To, pair by pair in the given order.
func Apply(text string, pairs ...Pair) string {
	for _, p := range pairs {
		text = strings.ReplaceAll(text, p.From, p.To)
	}
	return text
}

// ApplySeq is like Apply but takes the pairs as a sequence of (from, to).
func ApplySeq(text string, pairs iter.Seq2[string, string]) string {
	for from, to := range pairs {
		text = strings.ReplaceAll(text, from, to)
	}
	return text
}

// ParsePair parses "from=to". The first "=" separates the two parts,
// so the replacement may itself contain "=".
func ParsePair(s string) (Pair, error) {
	from, to, ok := strings.Cut(s, "=")
	if !ok {
		return Pair{}, errors.Errorf("invalid pair %q: missing '='", s)
	}
	if from == "" {
		return Pair{}, errors.Errorf("invalid pair %q: empty pattern", s)
	}
	return Pair{From: from, To: to}, nil
}

func ParsePairs(values ...string) ([]Pair, error) {
	pairs := make([]Pair, 0, len(values))
	for i, v := range values {
		p, err := ParsePair(v)
		if err != nil {
			return nil, errors.Wrapf(err, "pair #%d", i)
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}
