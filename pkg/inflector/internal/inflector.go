package internal

import (
	"strings"
	"unicode"
)

var Defaults = &Inflector{}

// Inflector holds one compiled Rule per RuleType.
// Rules are registered during init; lookups afterwards are read-only.
type Inflector struct {
	rules map[RuleType]*Rule
}

func (i *Inflector) MustRegister(r *Rule) {
	if err := i.Register(r); err != nil {
		panic(err)
	}
}

// Register compiles r and replaces any rule of the same type.
// Not safe to call concurrently with Inflected.
func (i *Inflector) Register(r *Rule) error {
	if i.rules == nil {
		i.rules = make(map[RuleType]*Rule)
	}

	if err := r.Init(); err != nil {
		return err
	}

	i.rules[r.Type] = r

	return nil
}

// Inflected returns s inflected by the rule of typ,
// or s unchanged when no such rule is registered.
func (i *Inflector) Inflected(typ RuleType, s string) string {
	if r, ok := i.rules[typ]; ok {
		return r.Inflected(s)
	}
	return s
}

// matchCase spells replacement in the case of word.
// An all-caps word gives an all-caps result; otherwise only the case
// of the first letter carries over.
func matchCase(word string, replacement string) string {
	if word == "" || replacement == "" {
		return replacement
	}

	if isUpperWord(word) {
		return strings.ToUpper(replacement)
	}

	var b strings.Builder
	b.Grow(len(replacement))

	first := []rune(word)[0]
	rest := []rune(replacement)

	if unicode.IsUpper(first) {
		b.WriteRune(unicode.ToUpper(rest[0]))
	} else {
		b.WriteRune(unicode.ToLower(rest[0]))
	}
	b.WriteString(string(rest[1:]))

	return b.String()
}

func isUpperWord(word string) bool {
	letters := 0
	for _, r := range word {
		if unicode.IsLetter(r) {
			if !unicode.IsUpper(r) {
				return false
			}
			letters++
		}
	}
	// a single capital is a capitalized word, not an all-caps one
	return letters > 1
}
