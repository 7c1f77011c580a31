package pipeline

import (
	"context"
	"log/slog"
	"maps"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/feclist/chinese-study-helpers/internal/app/pipeline/cedict"
	"github.com/feclist/chinese-study-helpers/internal/domain"
)

// enrich resolves translation and pinyin for every distinct word.
// Resolution order per word: exact dictionary hit, remote batch
// translation, per-character gloss. The returned slice is sorted by
// descending count; equal counts keep first-seen order.
func (p *Pipeline) enrich(ctx context.Context, counts *domain.WordCounts, dict cedict.Dictionary) []domain.EnrichedWord {
	var missing []string
	for _, word := range counts.Words() {
		if _, ok := dict[word]; !ok {
			missing = append(missing, word)
		}
	}
	p.log.Info("starting enrichment",
		slog.Int("words", counts.Unique()),
		slog.Int("dictionary_misses", len(missing)),
	)

	translations := p.fetchMissingTranslations(ctx, missing)

	entries := make([]domain.EnrichedWord, 0, counts.Unique())
	for _, word := range counts.Words() {
		e := domain.EnrichedWord{Word: word, Count: counts.Count(word)}

		if entry, ok := dict[word]; ok {
			e.Translation = entry.Translation()
			e.Pinyin = entry.Pinyin
			p.result.DictHits++
		} else {
			if translated, ok := translations[word]; ok {
				e.Translation = translated
				p.result.Translated++
			} else {
				e.Translation = glossFromCharacters(word, dict)
				p.result.Fallback++
			}
			e.Pinyin = p.synthesizePinyin(word)
		}

		entries = append(entries, e)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	p.log.Info("enrichment completed",
		slog.Int("dictionary", p.result.DictHits),
		slog.Int("translated", p.result.Translated),
		slog.Int("fallback", p.result.Fallback),
	)
	return entries
}

// fetchMissingTranslations translates dictionary misses in batches.
// A failed batch is logged and skipped; its words fall through to the
// per-character gloss.
func (p *Pipeline) fetchMissingTranslations(ctx context.Context, missing []string) map[string]string {
	translations := make(map[string]string, len(missing))
	if len(missing) == 0 {
		return translations
	}

	size := p.cfg.Translate.BatchSize
	batches := (len(missing) + size - 1) / size

	for i := 0; i < len(missing); i += size {
		batch := missing[i:min(i+size, len(missing))]
		num := i/size + 1

		p.log.Info("translating batch",
			slog.Int("batch", num),
			slog.Int("batches", batches),
			slog.Int("words", len(batch)),
		)

		result, err := p.tr.TranslateBatch(ctx, batch)
		if err != nil {
			p.log.Error("translate batch",
				slog.Int("batch", num),
				slog.String("error", err.Error()),
			)
			continue
		}
		if len(result.Failed) > 0 {
			p.log.Warn("batch partially translated",
				slog.Int("batch", num),
				slog.Int("failed", len(result.Failed)),
			)
		}
		maps.Copy(translations, result.Translations)
	}

	return translations
}

// glossFromCharacters derives a best-effort translation from a word's
// constituent characters: each character's dictionary meanings, or "?"
// for characters the dictionary does not know, joined with " + ".
func glossFromCharacters(word string, dict cedict.Dictionary) string {
	parts := make([]string, 0, utf8.RuneCountInString(word))
	for _, r := range word {
		if entry, ok := dict[string(r)]; ok {
			parts = append(parts, entry.Translation())
		} else {
			parts = append(parts, "?")
		}
	}
	return strings.Join(parts, " + ")
}

// synthesizePinyin builds a word's pinyin character by character.
// Non-hanzi runes are skipped.
func (p *Pipeline) synthesizePinyin(word string) string {
	var syllables []string
	for _, r := range word {
		if !domain.IsHanzi(r) {
			continue
		}
		if s := p.rom.Romanize(r); s != "" {
			syllables = append(syllables, s)
		}
	}
	return strings.Join(syllables, " ")
}
