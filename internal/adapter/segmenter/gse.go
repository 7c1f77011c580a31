// Package segmenter wraps the gse Chinese word segmenter.
package segmenter

import (
	"fmt"

	"github.com/go-ego/gse"
)

// GSE segments Chinese text using gse's embedded simplified-Chinese
// dictionary. Safe for concurrent use after construction.
type GSE struct {
	seg gse.Segmenter
}

// NewGSE loads the embedded dictionary and returns a ready segmenter.
func NewGSE() (*GSE, error) {
	var g GSE
	if err := g.seg.LoadDictEmbed("zh_s"); err != nil {
		return nil, fmt.Errorf("segmenter: load embedded dictionary: %w", err)
	}
	return &g, nil
}

// Segment splits text into word tokens using HMM-assisted search mode.
func (g *GSE) Segment(text string) []string {
	return g.seg.Cut(text, true)
}
