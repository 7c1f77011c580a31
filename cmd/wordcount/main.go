// Command wordcount converts a JSON corpus of raw Chinese text snippets
// into a frequency-ranked vocabulary list enriched with pinyin and
// English translations. Dictionary lookups use a local CEDICT file;
// words the dictionary does not know are translated remotely in
// batches, with a per-character gloss as the last resort.
//
// Flags:
//
//	--input    path to the input JSON array of texts
//	--dict     path to the CEDICT dictionary file
//	--output   path for the enriched output JSON
//	--dry-run  segment and count only, skip enrichment and output
//
// Flags override the YAML/ENV configuration (CONFIG_PATH).
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/feclist/chinese-study-helpers/internal/adapter/provider/googletrans"
	"github.com/feclist/chinese-study-helpers/internal/adapter/romanizer"
	"github.com/feclist/chinese-study-helpers/internal/adapter/segmenter"
	"github.com/feclist/chinese-study-helpers/internal/app"
	"github.com/feclist/chinese-study-helpers/internal/app/pipeline"
	"github.com/feclist/chinese-study-helpers/internal/config"
	"github.com/feclist/chinese-study-helpers/pkg/ctxutil"
)

func main() {
	inputFlag := flag.String("input", "", "path to input texts JSON (overrides config)")
	dictFlag := flag.String("dict", "", "path to CEDICT dictionary file (overrides config)")
	outputFlag := flag.String("output", "", "path for output JSON (overrides config)")
	dryRunFlag := flag.Bool("dry-run", false, "segment and count only, skip enrichment and output")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// CLI flags override config.
	if *inputFlag != "" {
		cfg.Pipeline.InputPath = *inputFlag
	}
	if *dictFlag != "" {
		cfg.Pipeline.DictPath = *dictFlag
	}
	if *outputFlag != "" {
		cfg.Pipeline.OutputPath = *outputFlag
	}
	if *dryRunFlag {
		cfg.Pipeline.DryRun = true
	}

	runID := uuid.New()
	logger := app.NewLogger(cfg.Log).With(slog.String("run_id", runID.String()))
	logger.Info("starting", slog.String("version", app.BuildVersion()))

	ctx := ctxutil.WithRunID(context.Background(), runID)

	seg, err := segmenter.NewGSE()
	if err != nil {
		logger.Error("init segmenter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	p := pipeline.New(
		logger,
		*cfg,
		seg,
		romanizer.NewTone3(),
		googletrans.NewProvider(cfg.Translate, logger),
	)

	if err := p.Run(ctx); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	result := p.Result()
	logger.Info("pipeline completed",
		slog.Int("texts", result.Texts),
		slog.Int("total_words", result.TotalWords),
		slog.Int("unique_words", result.UniqueWords),
		slog.Duration("duration", result.Duration),
	)
}
