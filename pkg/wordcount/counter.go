// Package wordcount counts word frequencies in UTF-8 text and reports the most
// and least frequent words.
//
// A word is a maximal run of runes accepted by the configured alphabet,
// lowercased. Ties in either ranking are broken by first-encounter order.
package wordcount

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	AlphabetCyrillic = "cyrillic"
	AlphabetLetters  = "letters"
)

type WordCount struct {
	Word  string
	Count int
}

// Counter is not safe for concurrent use; count files in parallel with one
// Counter each and Merge them.
type Counter struct {
	inWord func(rune) bool
	caser  cases.Caser
	counts map[string]int
	order  []string
	total  int
}

func NewCounter(alphabet string) (*Counter, error) {
	var inWord func(rune) bool
	switch alphabet {
	case AlphabetCyrillic, "":
		inWord = func(r rune) bool { return unicode.Is(unicode.Cyrillic, r) }
	case AlphabetLetters:
		inWord = unicode.IsLetter
	default:
		return nil, fmt.Errorf("unknown alphabet %q", alphabet)
	}
	return &Counter{
		inWord: inWord,
		caser:  cases.Lower(language.Und),
		counts: make(map[string]int),
	}, nil
}

// Count consumes r rune by rune. Any read error aborts the count and is
// returned; the counter must then be discarded.
func (c *Counter) Count(r io.Reader) error {
	br := bufio.NewReader(r)
	var current strings.Builder
	for {
		ch, _, err := br.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if c.inWord(ch) {
			current.WriteRune(ch)
			continue
		}
		if current.Len() > 0 {
			c.add(current.String(), 1)
			current.Reset()
		}
	}
	if current.Len() > 0 {
		c.add(current.String(), 1)
	}
	return nil
}

func (c *Counter) add(raw string, n int) {
	word := c.caser.String(raw)
	if _, seen := c.counts[word]; !seen {
		c.order = append(c.order, word)
	}
	c.counts[word] += n
	c.total += n
}

// Merge adds other's counts. Words new to c keep other's encounter order.
func (c *Counter) Merge(other *Counter) {
	for _, w := range other.order {
		if _, seen := c.counts[w]; !seen {
			c.order = append(c.order, w)
		}
		c.counts[w] += other.counts[w]
	}
	c.total += other.total
}

func (c *Counter) Get(word string) int {
	return c.counts[c.caser.String(word)]
}

// Distinct returns the number of different words seen.
func (c *Counter) Distinct() int {
	return len(c.order)
}

// Total returns the number of words seen, repetitions included.
func (c *Counter) Total() int {
	return c.total
}

// Top returns up to k words by descending count.
func (c *Counter) Top(k int) []WordCount {
	return c.ranked(k, func(a, b int) bool { return a > b })
}

// Bottom returns up to k words by ascending count.
func (c *Counter) Bottom(k int) []WordCount {
	return c.ranked(k, func(a, b int) bool { return a < b })
}

// Full stable sort, O(n log n); order is the first-encounter order so the
// stable sort keeps ties in that order.
func (c *Counter) ranked(k int, before func(a, b int) bool) []WordCount {
	if k <= 0 {
		return []WordCount{}
	}
	all := make([]WordCount, len(c.order))
	for i, w := range c.order {
		all[i] = WordCount{Word: w, Count: c.counts[w]}
	}
	sort.SliceStable(all, func(i, j int) bool {
		return before(all[i].Count, all[j].Count)
	})
	if len(all) > k {
		all = all[:k]
	}
	return all
}
