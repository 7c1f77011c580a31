// Package pipeline turns a corpus of raw Chinese text snippets into a
// frequency-ranked vocabulary list enriched with translations and pinyin.
//
// Stages run in order: load corpus, clean and segment each text, count
// token frequencies, load the CEDICT dictionary, enrich each distinct
// word (dictionary hit, batch remote translation, or per-character
// fallback), and write the output document.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/feclist/chinese-study-helpers/internal/app/pipeline/cedict"
	"github.com/feclist/chinese-study-helpers/internal/config"
	"github.com/feclist/chinese-study-helpers/internal/domain"
	"github.com/feclist/chinese-study-helpers/internal/provider"
)

// Segmenter splits Chinese text into word tokens.
type Segmenter interface {
	Segment(text string) []string
}

// Romanizer converts a single hanzi to a pinyin syllable.
type Romanizer interface {
	Romanize(r rune) string
}

// Translator requests English translations for a batch of words.
type Translator interface {
	TranslateBatch(ctx context.Context, words []string) (provider.TranslationResult, error)
}

// Result holds run statistics reported after Run completes.
type Result struct {
	Texts       int
	TotalWords  int
	UniqueWords int
	DictHits    int
	Translated  int
	Fallback    int
	Duration    time.Duration
}

// Pipeline orchestrates the word-count run.
type Pipeline struct {
	log    *slog.Logger
	cfg    config.Config
	seg    Segmenter
	rom    Romanizer
	tr     Translator
	result Result
}

// New creates a Pipeline with its stage dependencies injected.
func New(log *slog.Logger, cfg config.Config, seg Segmenter, rom Romanizer, tr Translator) *Pipeline {
	return &Pipeline{
		log: log,
		cfg: cfg,
		seg: seg,
		rom: rom,
		tr:  tr,
	}
}

// Result returns run statistics after Run completes.
func (p *Pipeline) Result() Result {
	return p.result
}

// Run executes the pipeline to completion. Missing or malformed input
// and dictionary files are fatal; translation failures degrade to the
// per-character fallback and the run continues.
func (p *Pipeline) Run(ctx context.Context) error {
	start := time.Now()

	texts, err := loadTexts(p.cfg.Pipeline.InputPath)
	if err != nil {
		return fmt.Errorf("load input: %w", err)
	}
	p.result.Texts = len(texts)
	p.log.Info("input loaded",
		slog.String("path", p.cfg.Pipeline.InputPath),
		slog.Int("texts", len(texts)),
	)

	counts := p.segmentTexts(texts)
	p.result.TotalWords = counts.Total()
	p.result.UniqueWords = counts.Unique()
	p.logStatistics(counts)

	if p.cfg.Pipeline.DryRun {
		p.log.Info("dry run, skipping enrichment and output")
		p.result.Duration = time.Since(start)
		return nil
	}

	p.log.Info("loading dictionary", slog.String("path", p.cfg.Pipeline.DictPath))
	dictResult, err := cedict.Parse(p.cfg.Pipeline.DictPath)
	if err != nil {
		return fmt.Errorf("load dictionary: %w", err)
	}
	p.log.Info("dictionary loaded",
		slog.Int("entries", len(dictResult.Dictionary)),
		slog.Int("malformed_lines", dictResult.Stats.Malformed),
	)

	entries := p.enrich(ctx, counts, dictResult.Dictionary)

	doc := buildDocument(counts, entries)
	if err := writeOutput(p.cfg.Pipeline.OutputPath, doc); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	p.result.Duration = time.Since(start)
	p.log.Info("output saved",
		slog.String("path", p.cfg.Pipeline.OutputPath),
		slog.Int("entries", len(doc.Data)),
		slog.Duration("duration", p.result.Duration),
	)
	return nil
}

// loadTexts reads the input corpus: a JSON array of raw text strings.
func loadTexts(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var texts []string
	if err := json.Unmarshal(data, &texts); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return texts, nil
}

// logStatistics reports corpus totals and the most frequent words.
func (p *Pipeline) logStatistics(counts *domain.WordCounts) {
	attrs := []any{
		slog.Int("total_words", counts.Total()),
		slog.Int("unique_words", counts.Unique()),
	}
	for _, wf := range counts.Top(p.cfg.Pipeline.TopWords) {
		attrs = append(attrs, slog.Int(wf.Word, wf.Count))
	}
	p.log.Info("corpus statistics", attrs...)
}
