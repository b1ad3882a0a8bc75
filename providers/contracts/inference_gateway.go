package contracts

import (
	"context"
)

// IInferenceGateway is the single entry point for model calls.
// Generate never fails from the caller's point of view: transport and
// decode problems come back as readable text, so answers and failures
// flow through the same display path.
type IInferenceGateway interface {
	Generate(ctx context.Context, prompt string) string
	IsAvailable(ctx context.Context) bool
}
