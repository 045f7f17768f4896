// Package phrase renders a count and a noun as a short human-readable phrase,
// such as "1 part", "no parts" or "3 parts".
package phrase

import (
	"strconv"

	"github.com/octohelm/x/ptr"

	"github.com/octohelm/textkit/pkg/inflector"
)

type Options struct {
	// Plural is the explicit plural spelling of the noun.
	// When nil the plural is derived from the singular.
	Plural *string
	// Pluralize derives the plural when Plural is nil.
	// When nil an "s" is appended.
	Pluralize func(singular string) string
}

type OptionFunc func(o *Options)

func WithPlural(plural string) OptionFunc {
	return func(o *Options) {
		o.Plural = ptr.Ptr(plural)
	}
}

func WithPluralizer(pluralize func(singular string) string) OptionFunc {
	return func(o *Options) {
		o.Pluralize = pluralize
	}
}

// WithInflection derives plurals with English inflection rules,
// so "child" becomes "children" without an explicit plural.
func WithInflection() OptionFunc {
	return WithPluralizer(inflector.Pluralize)
}

func (o *Options) Build(optFns ...OptionFunc) {
	for _, fn := range optFns {
		fn(o)
	}
}

func (o *Options) plural(singular string) string {
	if o.Plural != nil {
		return *o.Plural
	}
	if o.Pluralize != nil {
		return o.Pluralize(singular)
	}
	return singular + "s"
}

// Count formats count and the noun singular as a phrase.
//
//	Count(1, "part")                           // "1 part"
//	Count(0, "part")                           // "no parts"
//	Count(2, "child", WithPlural("children"))  // "2 children"
//
// Negative counts are not rejected; they are formatted like counts above one.
func Count(count int, singular string, optFns ...OptionFunc) string {
	if count == 1 {
		return "1 " + singular
	}

	o := &Options{}
	o.Build(optFns...)

	if count == 0 {
		return "no " + o.plural(singular)
	}

	return strconv.Itoa(count) + " " + o.plural(singular)
}
