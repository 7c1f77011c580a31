// Package romanizer converts hanzi to pinyin romanization.
package romanizer

import (
	"github.com/mozillazg/go-pinyin"
)

// Tone3 romanizes single hanzi in numeric-tone style ("ni3", "hao3").
type Tone3 struct {
	args pinyin.Args
}

// NewTone3 returns a Romanizer producing numeric-tone syllables.
func NewTone3() *Tone3 {
	args := pinyin.NewArgs()
	args.Style = pinyin.Tone3
	return &Tone3{args: args}
}

// Romanize returns the numeric-tone pinyin for r, or "" when r has no
// reading (non-hanzi or absent from the pinyin table). Polyphonic
// characters yield their most common reading.
func (t *Tone3) Romanize(r rune) string {
	readings := pinyin.SinglePinyin(r, t.args)
	if len(readings) == 0 {
		return ""
	}
	return readings[0]
}
