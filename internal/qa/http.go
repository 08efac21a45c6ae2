// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package qa

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/manoj1906/AI-research-assistant/internal/httputil"
	"github.com/manoj1906/AI-research-assistant/pkg/types"
)

const defaultQATimeout = 30 * time.Second

// HTTPExtractive calls an external extractive-QA service over HTTP. The
// service receives a question plus a context passage and returns the best
// answer span with character offsets into that passage.
type HTTPExtractive struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewHTTPExtractive builds a client from config. An empty endpoint is an
// error: callers decide between model and rule mode before constructing
// one.
func NewHTTPExtractive(cfg types.QAConfig) (*HTTPExtractive, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("qa endpoint not configured")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultQATimeout
	}
	return &HTTPExtractive{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		client:   &http.Client{Timeout: timeout},
	}, nil
}

type extractiveRequest struct {
	Question string `json:"question"`
	Context  string `json:"context"`
}

type extractiveResponse struct {
	Answer string  `json:"answer"`
	Score  float64 `json:"score"`
	Start  int     `json:"start"`
	End    int     `json:"end"`
}

// Answer sends the question and context to the service and maps its
// response to a Span. Transport failures, non-2xx statuses, and undecodable
// bodies all surface as errors for the synthesizer to fall back on.
func (e *HTTPExtractive) Answer(ctx context.Context, question, contextText string) (Span, error) {
	var resp extractiveResponse
	err := httputil.PostJSON(ctx, e.client, e.endpoint, e.apiKey, extractiveRequest{
		Question: question,
		Context:  contextText,
	}, &resp)
	if err != nil {
		return Span{}, err
	}

	return Span{
		Text:  resp.Answer,
		Score: resp.Score,
		Start: resp.Start,
		End:   resp.End,
	}, nil
}
