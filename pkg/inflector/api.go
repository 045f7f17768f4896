// Package inflector converts English nouns between singular and plural forms.
//
// Irregular nouns keep the case of the input: "OX" becomes "OXEN" and
// "Child" becomes "Children".
package inflector

import "github.com/octohelm/textkit/pkg/inflector/internal"

// Pluralize returns the plural form of the singular noun s.
func Pluralize(s string) string {
	return internal.Defaults.Inflected(internal.Plural, s)
}

// Singularize returns the singular form of the plural noun s.
func Singularize(s string) string {
	return internal.Defaults.Inflected(internal.Singular, s)
}
