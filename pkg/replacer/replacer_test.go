package replacer_test

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"testing"

	testingx "github.com/octohelm/x/testing"
	"github.com/octohelm/x/testing/bdd"

	"github.com/octohelm/textkit/pkg/replacer"
)

var leet = []replacer.Pair{
	{From: "a", To: "4"},
	{From: "e", To: "3"},
	{From: "i", To: "1"},
	{From: "o", To: "0"},
}

func ExampleApply() {
	fmt.Println(replacer.Apply("mad skilled noob powned leet", leet...))
	// Output:
	// m4d sk1ll3d n00b p0wn3d l33t
}

func TestApply(t *testing.T) {
	t.Run("GIVEN ordered pairs", bdd.GivenT(func(b bdd.T) {
		b.When("each pair rewrites the previous output", func(b bdd.T) {
			b.Then("later pairs see earlier replacements",
				bdd.Equal("ccc", replacer.Apply("abc", replacer.Pair{From: "a", To: "b"}, replacer.Pair{From: "b", To: "c"})),
				bdd.Equal("axxc", replacer.Apply("abc", replacer.Pair{From: "a", To: "ab"}, replacer.Pair{From: "b", To: "x"})),
			)
		})

		b.When("patterns repeat", func(b bdd.T) {
			b.Then("matches do not overlap",
				bdd.Equal("ba", replacer.Apply("aaa", replacer.Pair{From: "aa", To: "b"})),
			)
		})

		b.When("no pairs", func(b bdd.T) {
			b.Then("text is unchanged",
				bdd.Equal("leet", replacer.Apply("leet")),
			)
		})
	}))
}

func TestApplyDoesNotMutatePairs(t *testing.T) {
	pairs := slices.Clone(leet)
	_ = replacer.Apply("noob", pairs...)
	testingx.Expect(t, pairs, testingx.Equal(leet))
}

func TestApplySeq(t *testing.T) {
	seq := func(yield func(string, string) bool) {
		for _, p := range leet {
			if !yield(p.From, p.To) {
				return
			}
		}
	}

	testingx.Expect(t, replacer.ApplySeq("mad skilled noob powned leet", seq), testingx.Be("m4d sk1ll3d n00b p0wn3d l33t"))

	// single key maps have a stable order
	testingx.Expect(t, replacer.ApplySeq("leet", maps.All(map[string]string{"e": "3"})), testingx.Be("l33t"))
}

func TestParsePairs(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		pairs, err := replacer.ParsePairs("a=4", "e=", "x==y")
		testingx.Expect(t, err, testingx.BeNil[error]())
		testingx.Expect(t, pairs, testingx.Equal([]replacer.Pair{
			{From: "a", To: "4"},
			{From: "e", To: ""},
			{From: "x", To: "=y"},
		}))
	})

	t.Run("invalid", func(t *testing.T) {
		for _, v := range []string{"a", "=4"} {
			_, err := replacer.ParsePairs("o=0", v)
			testingx.Expect(t, err == nil, testingx.Be(false))
			testingx.Expect(t, strings.HasPrefix(err.Error(), "pair #1: invalid pair"), testingx.Be(true))
		}
	})
}
