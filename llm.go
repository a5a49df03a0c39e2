package main

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// ModelLister answers whether the hosted analysis model is reachable.
// Satisfied by AnthropicModels in production and by fakes in tests.
type ModelLister interface {
	ListModelIDs(ctx context.Context) ([]string, error)
}

// AnthropicModels queries the hosted model catalog with the deployment's
// API key. Listing succeeds only when the key is valid, so it doubles as a
// credential check.
type AnthropicModels struct {
	client anthropic.Client
}

func NewAnthropicModels(apiKey string) *AnthropicModels {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicModels{client: client}
}

func (a *AnthropicModels) ListModelIDs(ctx context.Context) ([]string, error) {
	page, err := a.client.Models.List(ctx, anthropic.ModelListParams{})
	if err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}

	var ids []string
	for _, m := range page.Data {
		ids = append(ids, m.ID)
	}
	return ids, nil
}

// modelAvailable reports whether wanted appears in the listed model IDs.
func modelAvailable(ids []string, wanted string) bool {
	for _, id := range ids {
		if id == wanted {
			return true
		}
	}
	return false
}
