package config

import "time"

// Config is the root application configuration.
type Config struct {
	Pipeline  PipelineConfig  `yaml:"pipeline"`
	Translate TranslateConfig `yaml:"translate"`
	Log       LogConfig       `yaml:"log"`
}

// PipelineConfig holds file paths and run settings for the word-count pipeline.
type PipelineConfig struct {
	InputPath  string `yaml:"input_path"  env:"PIPELINE_INPUT_PATH"  env-default:"texts.json"`
	DictPath   string `yaml:"dict_path"   env:"PIPELINE_DICT_PATH"   env-default:"cedict_ts.u8"`
	OutputPath string `yaml:"output_path" env:"PIPELINE_OUTPUT_PATH" env-default:"enhanced_word_counts.json"`
	TopWords   int    `yaml:"top_words"   env:"PIPELINE_TOP_WORDS"   env-default:"5"`
	DryRun     bool   `yaml:"dry_run"     env:"PIPELINE_DRY_RUN"`
}

// TranslateConfig holds settings for the remote translation provider.
type TranslateConfig struct {
	BaseURL    string        `yaml:"base_url"    env:"TRANSLATE_BASE_URL"    env-default:"https://translate.googleapis.com"`
	SourceLang string        `yaml:"source_lang" env:"TRANSLATE_SOURCE_LANG" env-default:"zh-CN"`
	TargetLang string        `yaml:"target_lang" env:"TRANSLATE_TARGET_LANG" env-default:"en"`
	BatchSize  int           `yaml:"batch_size"  env:"TRANSLATE_BATCH_SIZE"  env-default:"100"`
	Timeout    time.Duration `yaml:"timeout"     env:"TRANSLATE_TIMEOUT"     env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
