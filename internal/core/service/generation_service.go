package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/inkworks/contentforge/internal/core/domain"
	"github.com/inkworks/contentforge/internal/core/ports"
)

// Minimum acceptable output sizes. Anything shorter means the provider did
// not follow the requested schema and the whole call is treated as failed.
const (
	minTitleLength   = 4
	minContentLength = 20
)

// wordTargets maps the optional length parameter to an approximate word count
// requested from the provider.
var wordTargets = map[string]int{
	"short":  300,
	"medium": 600,
	"long":   1200,
}

// GenerationService builds prompts, calls the provider and validates the
// result. It returns either a fully valid {title, content} pair or
// domain.ErrGenerationFailed, never partial output.
type GenerationService struct {
	generator ports.ContentGenerator
	logger    zerolog.Logger
}

func NewGenerationService(generator ports.ContentGenerator, logger zerolog.Logger) *GenerationService {
	return &GenerationService{generator: generator, logger: logger}
}

func (s *GenerationService) Generate(ctx context.Context, input ports.GenerateInput) (*domain.GeneratedContent, error) {
	topic := strings.TrimSpace(input.Topic)
	style := strings.TrimSpace(input.Style)
	if topic == "" || style == "" {
		return nil, domain.ErrValidation
	}

	words, ok := wordTargets[input.Length]
	if !ok {
		words = wordTargets["medium"]
	}

	content, err := s.generator.Generate(ctx, buildPrompt(topic, style, words))
	if err != nil {
		// Raw provider errors never reach the client; log and collapse to
		// the uniform failure.
		s.logger.Error().Err(err).Str("topic", topic).Msg("content generation failed")
		return nil, domain.ErrGenerationFailed
	}

	result := &domain.GeneratedContent{
		Title:   sanitizeTitle(content.Title),
		Content: strings.TrimSpace(content.Content),
	}
	if len(result.Title) < minTitleLength || len(result.Content) < minContentLength {
		s.logger.Error().Str("topic", topic).Msg("provider returned undersized content")
		return nil, domain.ErrGenerationFailed
	}

	s.logger.Info().Str("topic", topic).Str("style", style).Msg("content generated")
	return result, nil
}

// buildPrompt produces the natural-language instruction sent to the provider.
func buildPrompt(topic, style string, words int) string {
	return fmt.Sprintf(
		`Write a blog post about %q in a %s style.
The post should be approximately %d words long and contain at least five paragraphs.
Structure it with a catchy title, an introduction, a body with relevant sections, and a conclusion.
The title must not start with a literal "Title:" prefix.
Respond ONLY with a valid JSON object of the shape {"title": string, "content": string}.`,
		topic, style, words)
}

// sanitizeTitle strips a spurious "Title:" prefix and surrounding quote
// characters that some models emit despite the prompt instructions.
func sanitizeTitle(title string) string {
	title = strings.TrimSpace(title)
	for _, prefix := range []string{"Title:", "title:"} {
		if strings.HasPrefix(title, prefix) {
			title = strings.TrimSpace(strings.TrimPrefix(title, prefix))
			break
		}
	}
	title = strings.Trim(title, "\"'“”")
	return strings.TrimSpace(title)
}
