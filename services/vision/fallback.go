package vision

import (
	"context"

	"go.uber.org/zap"

	"detailhq/models"
)

// DefaultModelChain is the ordered list of Gemini models tried per photo.
// Configurable via VISION_MODELS.
var DefaultModelChain = []string{
	"models/gemini-1.5-pro",
	"models/gemini-1.5-flash",
}

// modelCaller performs one inference attempt against one named model.
// GeminiClient is the production implementation; tests substitute stubs.
type modelCaller interface {
	callModel(ctx context.Context, model string, photo models.PhotoInput) (*models.PhotoAnalysis, error)
}

// FallbackChain tries an ordered list of models until one produces a
// schema-valid analysis. The retry is local to a single photo: it never
// blocks or depends on sibling calls in the same batch.
type FallbackChain struct {
	caller modelCaller
	models []string
	logger *zap.Logger
}

// NewFallbackChain wires a Gemini-backed analysis client with the given
// model order. An empty model list falls back to DefaultModelChain.
func NewFallbackChain(apiKey string, modelNames []string, logger *zap.Logger) *FallbackChain {
	if len(modelNames) == 0 {
		modelNames = DefaultModelChain
	}
	return &FallbackChain{
		caller: NewGeminiClient(apiKey),
		models: modelNames,
		logger: logger,
	}
}

// AnalyzePhoto implements Client. The last model's error is returned when
// every model in the chain fails.
func (fc *FallbackChain) AnalyzePhoto(ctx context.Context, photo models.PhotoInput) (*models.PhotoAnalysis, error) {
	var lastErr error
	for _, model := range fc.models {
		analysis, err := fc.caller.callModel(ctx, model, photo)
		if err == nil {
			return analysis, nil
		}
		lastErr = err
		if fc.logger != nil {
			fc.logger.Warn("vision model attempt failed",
				zap.String("model", model),
				zap.Error(err),
			)
		}
		if ctx.Err() != nil {
			break
		}
	}
	return nil, NewExternalServiceError("all vision models failed", lastErr)
}
