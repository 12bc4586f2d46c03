package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const translateEndpoint = "https://translate.googleapis.com/translate_a/single"

// TranslateClient wraps the public Google translate endpoint. Source
// language is always auto-detected.
type TranslateClient struct {
	client     *resty.Client
	endpoint   string
	targetLang string
}

func NewTranslateClient(targetLang string) *TranslateClient {
	client := resty.New().
		SetTimeout(15*time.Second).
		SetHeader("User-Agent", "tubemood/1.0")

	return &TranslateClient{
		client:     client,
		endpoint:   translateEndpoint,
		targetLang: targetLang,
	}
}

// Translate returns text rendered into the client's target language.
// Callers are expected to fall back to the original text on error.
func (t *TranslateClient) Translate(ctx context.Context, text string) (string, error) {
	resp, err := t.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"client": "gtx",
			"sl":     "auto",
			"tl":     t.targetLang,
			"dt":     "t",
			"q":      text,
		}).
		Get(t.endpoint)
	if err != nil {
		return "", fmt.Errorf("translate request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		slog.Debug("[TranslateClient] Non-200 response",
			slog.Int("status", resp.StatusCode()))
		return "", fmt.Errorf("translate request returned status %d", resp.StatusCode())
	}

	translated, err := parseTranslateResponse(resp.Body())
	if err != nil {
		return "", err
	}

	return translated, nil
}

// parseTranslateResponse walks the endpoint's nested-array payload:
// the first element is a list of segments whose first element is the
// translated chunk.
func parseTranslateResponse(body []byte) (string, error) {
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("unexpected translate response: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("empty translate response")
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return "", fmt.Errorf("unexpected translate segment list: %w", err)
	}

	var b strings.Builder
	for _, segment := range segments {
		if len(segment) == 0 {
			continue
		}
		var chunk string
		if err := json.Unmarshal(segment[0], &chunk); err != nil {
			continue
		}
		b.WriteString(chunk)
	}

	return b.String(), nil
}
