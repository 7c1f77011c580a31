// Package googletrans translates word batches via the unauthenticated
// Google Translate web endpoint.
package googletrans

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/feclist/chinese-study-helpers/internal/config"
	"github.com/feclist/chinese-study-helpers/internal/provider"
)

// Provider fetches translations from the translate_a/single endpoint.
// No API key is required; the endpoint is rate-limited upstream, so
// batches should stay coarse (the pipeline sends up to 100 words per call).
type Provider struct {
	baseURL    string
	sourceLang string
	targetLang string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider from the translate configuration.
// cfg.BaseURL may point at a test server.
func NewProvider(cfg config.TranslateConfig, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		sourceLang: cfg.SourceLang,
		targetLang: cfg.TargetLang,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "googletrans"),
	}
}

// TranslateBatch translates words in a single request. The words are
// joined with newlines, and the response text is split back on newlines
// to align positionally with the input. If the response's line count
// does not match the request's, the whole batch is reported as failed:
// a mis-zipped pairing is worse than no translation. Words whose
// translated line is empty are also reported as failed.
func (p *Provider) TranslateBatch(ctx context.Context, words []string) (provider.TranslationResult, error) {
	result := provider.TranslationResult{
		Translations: make(map[string]string, len(words)),
	}
	if len(words) == 0 {
		return result, nil
	}

	query := url.Values{
		"client": {"gtx"},
		"dt":     {"t"},
		"sl":     {p.sourceLang},
		"tl":     {p.targetLang},
		"q":      {strings.Join(words, "\n")},
	}
	reqURL := p.baseURL + "/translate_a/single?" + query.Encode()

	p.log.DebugContext(ctx, "translate request", slog.Int("words", len(words)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return result, fmt.Errorf("googletrans: create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return result, fmt.Errorf("googletrans: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return result, fmt.Errorf("googletrans: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return result, fmt.Errorf("googletrans: read body: %w", err)
	}

	text, err := decodeResponse(body)
	if err != nil {
		return result, fmt.Errorf("googletrans: %w", err)
	}

	lines := strings.Split(text, "\n")
	if len(lines) != len(words) {
		p.log.WarnContext(ctx, "translate response misaligned",
			slog.Int("sent", len(words)),
			slog.Int("received", len(lines)),
		)
		result.Failed = append(result.Failed, words...)
		return result, nil
	}

	for i, word := range words {
		translated := strings.TrimSpace(lines[i])
		if translated == "" {
			result.Failed = append(result.Failed, word)
			continue
		}
		result.Translations[word] = translated
	}

	return result, nil
}

// decodeResponse extracts the translated text from the endpoint's
// response: a JSON array whose first element is a list of sentence
// chunks, each chunk an array starting with the translated fragment.
// Concatenating the fragments preserves the newlines separating the
// batched words.
func decodeResponse(body []byte) (string, error) {
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("decode json: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("empty response payload")
	}

	var chunks [][]any
	if err := json.Unmarshal(payload[0], &chunks); err != nil {
		return "", fmt.Errorf("decode sentence chunks: %w", err)
	}

	var b strings.Builder
	for _, chunk := range chunks {
		if len(chunk) == 0 {
			continue
		}
		if fragment, ok := chunk[0].(string); ok {
			b.WriteString(fragment)
		}
	}
	return b.String(), nil
}
