package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
pipeline:
  input_path: "corpus.json"
  dict_path: "dict/cedict_ts.u8"
  output_path: "out.json"
  top_words: 10

translate:
  base_url: "https://translate.example.com"
  source_lang: "zh-CN"
  target_lang: "en"
  batch_size: 50
  timeout: "5s"

log:
  level: "debug"
  format: "json"
`

func TestLoad_FromYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Pipeline.InputPath != "corpus.json" {
		t.Errorf("InputPath = %q, want %q", cfg.Pipeline.InputPath, "corpus.json")
	}
	if cfg.Pipeline.DictPath != "dict/cedict_ts.u8" {
		t.Errorf("DictPath = %q, want %q", cfg.Pipeline.DictPath, "dict/cedict_ts.u8")
	}
	if cfg.Pipeline.TopWords != 10 {
		t.Errorf("TopWords = %d, want 10", cfg.Pipeline.TopWords)
	}
	if cfg.Translate.BatchSize != 50 {
		t.Errorf("BatchSize = %d, want 50", cfg.Translate.BatchSize)
	}
	if cfg.Translate.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Translate.Timeout)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "debug")
	}
}

func TestLoad_DefaultsFromEnvOnly(t *testing.T) {
	// Point CONFIG_PATH away from any real file by working in an empty dir.
	t.Setenv("CONFIG_PATH", "")
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Pipeline.InputPath != "texts.json" {
		t.Errorf("InputPath = %q, want default %q", cfg.Pipeline.InputPath, "texts.json")
	}
	if cfg.Pipeline.DictPath != "cedict_ts.u8" {
		t.Errorf("DictPath = %q, want default %q", cfg.Pipeline.DictPath, "cedict_ts.u8")
	}
	if cfg.Pipeline.OutputPath != "enhanced_word_counts.json" {
		t.Errorf("OutputPath = %q, want default %q", cfg.Pipeline.OutputPath, "enhanced_word_counts.json")
	}
	if cfg.Translate.BatchSize != 100 {
		t.Errorf("BatchSize = %d, want default 100", cfg.Translate.BatchSize)
	}
	if cfg.Translate.SourceLang != "zh-CN" || cfg.Translate.TargetLang != "en" {
		t.Errorf("langs = %q→%q, want zh-CN→en", cfg.Translate.SourceLang, cfg.Translate.TargetLang)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("TRANSLATE_BATCH_SIZE", "7")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Translate.BatchSize != 7 {
		t.Errorf("BatchSize = %d, want env override 7", cfg.Translate.BatchSize)
	}
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	if _, err := Load(); err == nil {
		t.Fatal("Load() should fail when CONFIG_PATH points at a missing file")
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Pipeline: PipelineConfig{
				InputPath:  "texts.json",
				DictPath:   "cedict_ts.u8",
				OutputPath: "out.json",
				TopWords:   5,
			},
			Translate: TranslateConfig{
				BaseURL:    "https://translate.googleapis.com",
				SourceLang: "zh-CN",
				TargetLang: "en",
				BatchSize:  100,
				Timeout:    10 * time.Second,
			},
			Log: LogConfig{Level: "info", Format: "text"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"empty input path", func(c *Config) { c.Pipeline.InputPath = "" }, true},
		{"empty dict path", func(c *Config) { c.Pipeline.DictPath = "" }, true},
		{"empty output path", func(c *Config) { c.Pipeline.OutputPath = "" }, true},
		{"negative top words", func(c *Config) { c.Pipeline.TopWords = -1 }, true},
		{"zero batch size", func(c *Config) { c.Translate.BatchSize = 0 }, true},
		{"zero timeout", func(c *Config) { c.Translate.Timeout = 0 }, true},
		{"empty base url", func(c *Config) { c.Translate.BaseURL = "" }, true},
		{"empty target lang", func(c *Config) { c.Translate.TargetLang = "" }, true},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"json log format", func(c *Config) { c.Log.Format = "JSON" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Validate() = nil, want error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}
