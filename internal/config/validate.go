package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Pipeline.InputPath == "" {
		return fmt.Errorf("pipeline.input_path must not be empty")
	}
	if c.Pipeline.DictPath == "" {
		return fmt.Errorf("pipeline.dict_path must not be empty")
	}
	if c.Pipeline.OutputPath == "" {
		return fmt.Errorf("pipeline.output_path must not be empty")
	}
	if c.Pipeline.TopWords < 0 {
		return fmt.Errorf("pipeline.top_words must be >= 0 (got %d)", c.Pipeline.TopWords)
	}

	if err := c.Translate.validate(); err != nil {
		return fmt.Errorf("translate: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(c.Log.Format)) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be \"json\" or \"text\" (got %q)", c.Log.Format)
	}

	return nil
}

func (t *TranslateConfig) validate() error {
	if t.BaseURL == "" {
		return fmt.Errorf("base_url must not be empty")
	}
	if t.SourceLang == "" || t.TargetLang == "" {
		return fmt.Errorf("source_lang and target_lang must not be empty")
	}
	if t.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be > 0 (got %d)", t.BatchSize)
	}
	if t.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", t.Timeout)
	}
	return nil
}
