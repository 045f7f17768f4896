// Package tally counts comparable values and finds the most frequent one.
package tally

import (
	"iter"
	"slices"
)

// Counter counts occurrences of values and remembers the order in which
// each distinct value was first seen.
// The zero value is ready to use.
type Counter[E comparable] struct {
	counts map[E]int
	keys   []E
	total  int
}

type Entry[E comparable] struct {
	Value E
	Count int
}

func CounterOf[S ~[]E, E comparable](s S) *Counter[E] {
	c := &Counter[E]{}
	c.Add(s...)
	return c
}

func (c *Counter[E]) Add(values ...E) {
	for _, v := range values {
		c.add(v)
	}
}

func (c *Counter[E]) AddSeq(seq iter.Seq[E]) {
	for v := range seq {
		c.add(v)
	}
}

func (c *Counter[E]) add(v E) {
	if c.counts == nil {
		c.counts = make(map[E]int)
	}
	if _, ok := c.counts[v]; !ok {
		c.keys = append(c.keys, v)
	}
	c.counts[v]++
	c.total++
}

func (c *Counter[E]) Count(v E) int {
	return c.counts[v]
}

// Len returns the number of distinct values.
func (c *Counter[E]) Len() int {
	return len(c.keys)
}

// Total returns the number of values added.
func (c *Counter[E]) Total() int {
	return c.total
}

// Keys yields the distinct values in first-seen order.
func (c *Counter[E]) Keys() iter.Seq[E] {
	return slices.Values(c.keys)
}

// MostCommon returns up to n entries ordered by count, highest first.
// Entries with equal counts keep first-seen order. n <= 0 returns all.
func (c *Counter[E]) MostCommon(n int) []Entry[E] {
	entries := make([]Entry[E], 0, len(c.keys))
	for _, k := range c.keys {
		entries = append(entries, Entry[E]{Value: k, Count: c.counts[k]})
	}

	slices.SortStableFunc(entries, func(a, b Entry[E]) int {
		return b.Count - a.Count
	})

	if n > 0 && n < len(entries) {
		return entries[:n]
	}
	return entries
}
