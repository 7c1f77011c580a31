package pipeline

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/feclist/chinese-study-helpers/internal/domain"
)

// Metadata summarizes the corpus in the output document.
type Metadata struct {
	TotalWords  int `json:"total_words"`
	UniqueWords int `json:"unique_words"`
}

// Document is the serialized output: summary metadata plus the enriched
// entries sorted by descending count.
type Document struct {
	Metadata Metadata              `json:"metadata"`
	Data     []domain.EnrichedWord `json:"data"`
}

// buildDocument assembles the output document. Data is always non-nil
// so an empty corpus serializes as [] rather than null.
func buildDocument(counts *domain.WordCounts, entries []domain.EnrichedWord) Document {
	if entries == nil {
		entries = []domain.EnrichedWord{}
	}
	return Document{
		Metadata: Metadata{
			TotalWords:  counts.Total(),
			UniqueWords: counts.Unique(),
		},
		Data: entries,
	}
}

// writeOutput serializes doc to path as pretty-printed UTF-8 JSON with
// 4-space indentation. HTML escaping is disabled so hanzi and the
// occasional &, <, > in glosses are written literally.
func writeOutput(path string, doc Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}

	return f.Close()
}
