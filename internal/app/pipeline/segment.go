package pipeline

import (
	"log/slog"
	"strings"

	"github.com/feclist/chinese-study-helpers/internal/domain"
)

// segmentTexts cleans and segments every corpus text and accumulates
// the surviving tokens into a frequency table.
func (p *Pipeline) segmentTexts(texts []string) *domain.WordCounts {
	counts := domain.NewWordCounts()

	p.log.Info("starting segmentation")
	for i, text := range texts {
		p.log.Info("processing text",
			slog.Int("index", i+1),
			slog.Int("total", len(texts)),
		)
		cleaned := CleanText(text)
		for _, token := range p.seg.Segment(cleaned) {
			if !keepToken(token) {
				continue
			}
			counts.Add(token)
		}
	}
	p.log.Info("segmentation completed",
		slog.Int("total_words", counts.Total()),
		slog.Int("unique_words", counts.Unique()),
	)

	return counts
}

// keepToken reports whether a segmenter token belongs in the frequency
// table: non-blank and starting with a CJK ideograph. Latin and numeric
// tokens survive cleaning but are not vocabulary.
func keepToken(token string) bool {
	if strings.TrimSpace(token) == "" {
		return false
	}
	for _, r := range token {
		return domain.IsHanzi(r)
	}
	return false
}
