// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package embed produces dense vector representations of paper text and
// ranks papers by vector similarity.
package embed

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/manoj1906/AI-research-assistant/internal/httputil"
	"github.com/manoj1906/AI-research-assistant/pkg/types"
)

// Embedder turns text into dense vectors. Implementations may call out
// to an external service; failures surface as errors so callers can
// degrade gracefully.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float64, error)
}

const (
	defaultEmbedTimeout = 30 * time.Second
	defaultEmbedModel   = "text-embedding-3-small"
)

// HTTPEmbedder calls an OpenAI-compatible /embeddings endpoint.
type HTTPEmbedder struct {
	endpoint string
	apiKey   string
	model    string
	client   *http.Client
}

// NewHTTPEmbedder builds a client from config. An empty endpoint is an
// error: the paper index requires a working embedder.
func NewHTTPEmbedder(cfg types.EmbeddingsConfig) (*HTTPEmbedder, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("embeddings endpoint not configured")
	}
	model := cfg.Model
	if model == "" {
		model = defaultEmbedModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultEmbedTimeout
	}
	return &HTTPEmbedder{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		model:    model,
		client:   &http.Client{Timeout: timeout},
	}, nil
}

type embeddingsRequest struct {
	Input []string `json:"input"`
	Model string   `json:"model"`
}

type embeddingsResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
		Index     int       `json:"index"`
	} `json:"data"`
}

// Embed requests one vector per input text. The response is reordered by
// the service-reported index so the result aligns with the inputs.
func (e *HTTPEmbedder) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	var resp embeddingsResponse
	err := httputil.PostJSON(ctx, e.client, e.endpoint, e.apiKey, embeddingsRequest{
		Input: texts,
		Model: e.model,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("embedding %d texts: %w", len(texts), err)
	}

	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("embedding service returned %d vectors for %d inputs", len(resp.Data), len(texts))
	}

	vectors := make([][]float64, len(texts))
	for _, item := range resp.Data {
		if item.Index < 0 || item.Index >= len(vectors) {
			return nil, fmt.Errorf("embedding service returned out-of-range index %d", item.Index)
		}
		vectors[item.Index] = item.Embedding
	}
	return vectors, nil
}
