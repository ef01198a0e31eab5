package vision

import (
	"context"

	"detailhq/models"
)

// Client analyzes a single vehicle-condition photo. Implementations own
// their retry behavior; callers treat a returned error as that one photo
// having failed, independent of any sibling photos in the same batch.
type Client interface {
	AnalyzePhoto(ctx context.Context, photo models.PhotoInput) (*models.PhotoAnalysis, error)
}
