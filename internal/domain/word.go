// Package domain holds the core types shared across the pipeline stages.
package domain

import "sort"

// Hanzi code point boundaries. Tokens are classified by their first rune;
// pinyin synthesis skips runes outside this range.
const (
	hanziLo = 0x4E00
	hanziHi = 0x9FFF
)

// IsHanzi reports whether r is a CJK unified ideograph.
func IsHanzi(r rune) bool {
	return r >= hanziLo && r <= hanziHi
}

// EnrichedWord is one row of the output document: a distinct word with its
// occurrence count, English translation, and pinyin romanization.
// JSON field names match the established output format.
type EnrichedWord struct {
	Word        string `json:"Word"`
	Count       int    `json:"Count"`
	Translation string `json:"Translation"`
	Pinyin      string `json:"Pinyin"`
}

// WordFreq pairs a word with its count, for top-N reporting.
type WordFreq struct {
	Word  string
	Count int
}

// WordCounts accumulates token frequencies while remembering the order in
// which words were first seen. The first-seen order is what makes the final
// descending-count sort stable for equal counts.
type WordCounts struct {
	counts map[string]int
	order  []string
}

// NewWordCounts returns an empty frequency table.
func NewWordCounts() *WordCounts {
	return &WordCounts{counts: make(map[string]int)}
}

// Add records one occurrence of word.
func (w *WordCounts) Add(word string) {
	if _, seen := w.counts[word]; !seen {
		w.order = append(w.order, word)
	}
	w.counts[word]++
}

// Count returns the number of occurrences of word (0 if absent).
func (w *WordCounts) Count(word string) int {
	return w.counts[word]
}

// Words returns the distinct words in first-seen order. The returned slice
// is owned by the table and must not be mutated.
func (w *WordCounts) Words() []string {
	return w.order
}

// Unique returns the number of distinct words.
func (w *WordCounts) Unique() int {
	return len(w.order)
}

// Total returns the sum of all counts.
func (w *WordCounts) Total() int {
	total := 0
	for _, c := range w.counts {
		total += c
	}
	return total
}

// Top returns up to n words with the highest counts, ties resolved by
// first-seen order.
func (w *WordCounts) Top(n int) []WordFreq {
	top := make([]WordFreq, 0, len(w.order))
	for _, word := range w.order {
		top = append(top, WordFreq{Word: word, Count: w.counts[word]})
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Count > top[j].Count
	})
	if len(top) > n {
		top = top[:n]
	}
	return top
}
