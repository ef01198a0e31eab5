package vision

import (
	"context"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"

	"detailhq/models"
)

// severityRank is the fixed total order over condition levels used to pick
// the worst observation across photos. The aggregate is always the maximum,
// never an average.
var severityRank = map[models.ConditionLevel]int{
	models.ConditionLightlyDirty:    0,
	models.ConditionModeratelyDirty: 1,
	models.ConditionHeavilySoiled:   2,
	models.ConditionExtreme:         3,
}

// pricingAdjustmentPercent is the suggested markup for each aggregated
// condition level. Advisory; the quote calculator applies only the
// business's own condition tiers.
var pricingAdjustmentPercent = map[models.ConditionLevel]int{
	models.ConditionLightlyDirty:    0,
	models.ConditionModeratelyDirty: 15,
	models.ConditionHeavilySoiled:   25,
	models.ConditionExtreme:         40,
}

// maxPrimaryIssues caps how many distinct issues a summary reports.
// TODO: surface this in ConditionConfig instead of hard-coding.
const maxPrimaryIssues = 5

// Aggregator fans a batch of condition photos out to the vision client and
// reduces the per-photo analyses into one authoritative summary.
type Aggregator struct {
	Client Client
	Logger *zap.Logger
}

func NewAggregator(client Client, logger *zap.Logger) *Aggregator {
	return &Aggregator{Client: client, Logger: logger}
}

// Aggregate analyzes all photos concurrently and reduces whatever subset
// succeeds. Photos whose analysis fails (including schema-invalid model
// responses) are excluded and counted in PhotosFailed; the call only errors
// when no photos were given or every photo failed.
func (a *Aggregator) Aggregate(ctx context.Context, photos []models.PhotoInput) (*models.AnalysisSummary, error) {
	if len(photos) == 0 {
		return nil, NewValidationError("no photos to analyze")
	}

	results := make([]*models.PhotoAnalysis, len(photos))
	var wg sync.WaitGroup
	for i, photo := range photos {
		wg.Add(1)
		go func(i int, photo models.PhotoInput) {
			defer wg.Done()
			analysis, err := a.Client.AnalyzePhoto(ctx, photo)
			if err != nil {
				if a.Logger != nil {
					a.Logger.Warn("photo analysis failed",
						zap.Int("photoIndex", i),
						zap.String("category", string(photo.Category)),
						zap.Error(err),
					)
				}
				return
			}
			results[i] = analysis
		}(i, photo)
	}
	wg.Wait()

	analyzed := make([]*models.PhotoAnalysis, 0, len(results))
	for _, r := range results {
		if r != nil {
			analyzed = append(analyzed, r)
		}
	}
	failed := len(photos) - len(analyzed)
	if len(analyzed) == 0 {
		return nil, NewExternalServiceError("analysis failed for all photos", nil)
	}

	overall := reduceCondition(analyzed)
	expected := expectedSize(photos)

	return &models.AnalysisSummary{
		OverallCondition:         overall,
		VehicleSizeMatch:         sizeMatch(analyzed, expected),
		VehicleSizeDetected:      firstDetectedSize(analyzed),
		PrimaryIssues:            collectPrimaryIssues(analyzed),
		PricingAdjustmentPercent: pricingAdjustmentPercent[overall],
		PhotosAnalyzed:           len(photos),
		PhotosFailed:             failed,
		Confidence:               meanConfidence(analyzed),
		Timestamp:                time.Now().UTC(),
	}, nil
}

// reduceCondition folds the per-photo conditions down to the most severe
// level observed, starting from the least severe.
func reduceCondition(analyzed []*models.PhotoAnalysis) models.ConditionLevel {
	worst := models.ConditionLightlyDirty
	for _, a := range analyzed {
		if severityRank[a.Condition] > severityRank[worst] {
			worst = a.Condition
		}
	}
	return worst
}

// collectPrimaryIssues unions detected issues in photo order, deduplicated
// and truncated to the cap.
func collectPrimaryIssues(analyzed []*models.PhotoAnalysis) []models.IssueTag {
	seen := make(map[models.IssueTag]bool)
	issues := make([]models.IssueTag, 0, maxPrimaryIssues)
	for _, a := range analyzed {
		for _, issue := range a.DetectedIssues {
			if seen[issue] {
				continue
			}
			seen[issue] = true
			issues = append(issues, issue)
			if len(issues) == maxPrimaryIssues {
				return issues
			}
		}
	}
	return issues
}

// firstDetectedSize takes the first photo that reported a size. First-wins,
// not a vote.
func firstDetectedSize(analyzed []*models.PhotoAnalysis) models.VehicleTier {
	for _, a := range analyzed {
		if a.VehicleSizeDetected != "" {
			return a.VehicleSizeDetected
		}
	}
	return ""
}

// expectedSize returns the first expected size supplied with the batch.
func expectedSize(photos []models.PhotoInput) models.VehicleTier {
	for _, p := range photos {
		if p.ExpectedSize != "" {
			return p.ExpectedSize
		}
	}
	return ""
}

// sizeMatch is vacuously true when no expected size was supplied; otherwise
// every photo that detected a size must agree with it.
func sizeMatch(analyzed []*models.PhotoAnalysis, expected models.VehicleTier) bool {
	if expected == "" {
		return true
	}
	for _, a := range analyzed {
		if a.VehicleSizeDetected != "" && a.VehicleSizeDetected != expected {
			return false
		}
	}
	return true
}

// meanConfidence averages per-photo confidences, rounded to 2 decimals.
func meanConfidence(analyzed []*models.PhotoAnalysis) float64 {
	var sum float64
	for _, a := range analyzed {
		sum += a.Confidence
	}
	return math.Round(sum/float64(len(analyzed))*100) / 100
}
