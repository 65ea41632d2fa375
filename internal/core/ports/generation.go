package ports

import (
	"context"

	"github.com/inkworks/contentforge/internal/core/domain"
)

// GenerateInput carries the user-supplied generation parameters. Length is
// optional ("short", "medium" or "long"); it defaults to "medium".
type GenerateInput struct {
	Topic  string
	Style  string
	Length string
}

// ContentGenerator is the outbound port to an external text-generation
// provider. Implementations send one bounded-timeout request per configured
// model and return a fully parsed result or an error, never partial output.
type ContentGenerator interface {
	Generate(ctx context.Context, prompt string) (*domain.GeneratedContent, error)
}

// GenerationService builds prompts, drives the provider and validates its
// output. Any provider failure surfaces as domain.ErrGenerationFailed.
type GenerationService interface {
	Generate(ctx context.Context, input GenerateInput) (*domain.GeneratedContent, error)
}
