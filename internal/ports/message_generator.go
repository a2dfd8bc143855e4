package ports

import (
	"context"
	"errors"
)

// ErrGeneratorUnavailable is returned when no generator backend is configured
var ErrGeneratorUnavailable = errors.New("message generator unavailable")

// MessageGenerator produces short persona-voiced text
type MessageGenerator interface {
	// Generate returns generated text for the prompts, or an error when generation
	// is unavailable or fails
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
