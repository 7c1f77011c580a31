package pipeline

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/feclist/chinese-study-helpers/internal/config"
	"github.com/feclist/chinese-study-helpers/internal/provider"
)

// fakeSegmenter splits on whitespace, which survives cleaning, so tests
// control tokenization exactly.
type fakeSegmenter struct{}

func (fakeSegmenter) Segment(text string) []string {
	return strings.Fields(text)
}

// fakeRomanizer returns canned numeric-tone readings.
type fakeRomanizer struct {
	readings map[rune]string
}

func (f fakeRomanizer) Romanize(r rune) string {
	return f.readings[r]
}

// fakeTranslator delegates to a function so each test scripts its remote.
type fakeTranslator struct {
	calls [][]string
	fn    func(words []string) (provider.TranslationResult, error)
}

func (f *fakeTranslator) TranslateBatch(_ context.Context, words []string) (provider.TranslationResult, error) {
	f.calls = append(f.calls, words)
	if f.fn == nil {
		return provider.TranslationResult{Translations: map[string]string{}}, nil
	}
	return f.fn(words)
}

func testConfig() config.Config {
	return config.Config{
		Pipeline: config.PipelineConfig{
			InputPath:  "texts.json",
			DictPath:   "cedict_ts.u8",
			OutputPath: "enhanced_word_counts.json",
			TopWords:   5,
		},
		Translate: config.TranslateConfig{
			BaseURL:    "http://example.invalid",
			SourceLang: "zh-CN",
			TargetLang: "en",
			BatchSize:  100,
			Timeout:    time.Second,
		},
		Log: config.LogConfig{Level: "error", Format: "text"},
	}
}

func testPipeline(cfg config.Config, tr Translator) *Pipeline {
	rom := fakeRomanizer{readings: map[rune]string{
		'你': "ni3",
		'好': "hao3",
		'世': "shi4",
		'界': "jie4",
		'中': "zhong1",
		'国': "guo2",
		'间': "jian1",
	}}
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)), cfg, fakeSegmenter{}, rom, tr)
}
