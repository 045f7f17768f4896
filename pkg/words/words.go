// Package words splits text into whitespace-delimited, uppercased words.
package words

import (
	"iter"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Upper returns the words of text in order, each uppercased.
// Runs of Unicode white space separate words; leading and trailing
// white space is ignored.
func Upper(text string) []string {
	entries := make([]string, 0)
	for w := range UpperSeq(text) {
		entries = append(entries, w)
	}
	return entries
}

// UpperSeq is like Upper but yields words lazily.
func UpperSeq(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		// a Caser keeps state between calls, so one per sequence
		c := cases.Upper(language.Und)

		for w := range strings.FieldsFuncSeq(text, IsSeparator) {
			if !yield(c.String(w)) {
				return
			}
		}
	}
}

// IsSeparator reports whether r separates words: Unicode white space and
// the ASCII file, group, record and unit separators (U+001C to U+001F).
func IsSeparator(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
