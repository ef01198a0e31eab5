package vision

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"detailhq/models"
)

// stubClient maps photo category to a canned analysis or error, keyed by the
// order photos are submitted.
type stubClient struct {
	analyses []*models.PhotoAnalysis
	errs     []error
}

func (s *stubClient) AnalyzePhoto(_ context.Context, photo models.PhotoInput) (*models.PhotoAnalysis, error) {
	// Photos carry their index in the MIMEType field for test routing.
	idx := int(photo.MIMEType[0] - '0')
	if s.errs != nil && s.errs[idx] != nil {
		return nil, s.errs[idx]
	}
	return s.analyses[idx], nil
}

func photoBatch(n int, expected models.VehicleTier) []models.PhotoInput {
	photos := make([]models.PhotoInput, n)
	for i := range photos {
		photos[i] = models.PhotoInput{
			Image:        []byte{0xFF},
			MIMEType:     string(rune('0' + i)),
			Category:     models.PhotoExterior,
			ExpectedSize: expected,
		}
	}
	return photos
}

func analysis(cond models.ConditionLevel, conf float64, issues ...models.IssueTag) *models.PhotoAnalysis {
	return &models.PhotoAnalysis{
		VehicleVisible: true,
		Condition:      cond,
		DetectedIssues: issues,
		Confidence:     conf,
	}
}

func TestAggregate_WorstConditionAndMeanConfidence(t *testing.T) {
	client := &stubClient{analyses: []*models.PhotoAnalysis{
		analysis(models.ConditionLightlyDirty, 0.9),
		analysis(models.ConditionHeavilySoiled, 0.7),
		analysis(models.ConditionModeratelyDirty, 0.8),
	}}
	agg := NewAggregator(client, nil)

	summary, err := agg.Aggregate(context.Background(), photoBatch(3, ""))
	require.NoError(t, err)

	assert.Equal(t, models.ConditionHeavilySoiled, summary.OverallCondition)
	assert.Equal(t, 0.80, summary.Confidence)
	assert.Equal(t, 25, summary.PricingAdjustmentPercent)
	assert.Equal(t, 3, summary.PhotosAnalyzed)
	assert.Equal(t, 0, summary.PhotosFailed)
	assert.True(t, summary.VehicleSizeMatch)
}

func TestAggregate_OrderInsensitive(t *testing.T) {
	a := []*models.PhotoAnalysis{
		analysis(models.ConditionExtreme, 0.6, models.IssueMold),
		analysis(models.ConditionLightlyDirty, 0.9, models.IssuePetHair),
	}
	reversed := []*models.PhotoAnalysis{a[1], a[0]}

	forward := NewAggregator(&stubClient{analyses: a}, nil)
	backward := NewAggregator(&stubClient{analyses: reversed}, nil)

	s1, err := forward.Aggregate(context.Background(), photoBatch(2, ""))
	require.NoError(t, err)
	s2, err := backward.Aggregate(context.Background(), photoBatch(2, ""))
	require.NoError(t, err)

	assert.Equal(t, s1.OverallCondition, s2.OverallCondition)
	assert.Equal(t, s1.Confidence, s2.Confidence)
	assert.ElementsMatch(t, s1.PrimaryIssues, s2.PrimaryIssues)
}

func TestAggregate_PrimaryIssuesDedupedAndCapped(t *testing.T) {
	client := &stubClient{analyses: []*models.PhotoAnalysis{
		analysis(models.ConditionModeratelyDirty, 0.8,
			models.IssuePetHair, models.IssueOdor, models.IssuePetHair),
		analysis(models.ConditionModeratelyDirty, 0.8,
			models.IssueOdor, models.IssueMud, models.IssueWaterSpots,
			models.IssueOxidation, models.IssueScratches, models.IssueTreeSap),
	}}
	agg := NewAggregator(client, nil)

	summary, err := agg.Aggregate(context.Background(), photoBatch(2, ""))
	require.NoError(t, err)

	assert.Len(t, summary.PrimaryIssues, 5)
	assert.Equal(t, models.IssuePetHair, summary.PrimaryIssues[0])
	assert.Equal(t, models.IssueOdor, summary.PrimaryIssues[1])
	// Every entry distinct.
	seen := map[models.IssueTag]bool{}
	for _, issue := range summary.PrimaryIssues {
		assert.False(t, seen[issue])
		seen[issue] = true
	}
}

func TestAggregate_PartialFailureExcludedAndCounted(t *testing.T) {
	schemaFail := &SchemaError{Field: "conditionAssessment", Message: "unknown condition level pristine"}
	client := &stubClient{
		analyses: []*models.PhotoAnalysis{
			nil,
			analysis(models.ConditionModeratelyDirty, 0.9, models.IssueMud),
		},
		errs: []error{schemaFail, nil},
	}
	agg := NewAggregator(client, nil)

	summary, err := agg.Aggregate(context.Background(), photoBatch(2, ""))
	require.NoError(t, err)

	// Summary reflects only the valid photo.
	assert.Equal(t, models.ConditionModeratelyDirty, summary.OverallCondition)
	assert.Equal(t, 0.9, summary.Confidence)
	assert.Equal(t, []models.IssueTag{models.IssueMud}, summary.PrimaryIssues)
	assert.Equal(t, 2, summary.PhotosAnalyzed)
	assert.Equal(t, 1, summary.PhotosFailed)
}

func TestAggregate_AllPhotosFailed(t *testing.T) {
	boom := errors.New("inference unavailable")
	client := &stubClient{
		analyses: []*models.PhotoAnalysis{nil, nil},
		errs:     []error{boom, boom},
	}
	agg := NewAggregator(client, nil)

	_, err := agg.Aggregate(context.Background(), photoBatch(2, ""))
	require.Error(t, err)

	var extErr *ExternalServiceError
	assert.ErrorAs(t, err, &extErr)
}

func TestAggregate_NoPhotos(t *testing.T) {
	agg := NewAggregator(&stubClient{}, nil)

	_, err := agg.Aggregate(context.Background(), nil)
	require.Error(t, err)

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestAggregate_SizeDetectionFirstWins(t *testing.T) {
	first := analysis(models.ConditionLightlyDirty, 0.9)
	second := analysis(models.ConditionLightlyDirty, 0.9)
	second.VehicleSizeDetected = models.TierTruck
	third := analysis(models.ConditionLightlyDirty, 0.9)
	third.VehicleSizeDetected = models.TierSUV

	client := &stubClient{analyses: []*models.PhotoAnalysis{first, second, third}}
	agg := NewAggregator(client, nil)

	summary, err := agg.Aggregate(context.Background(), photoBatch(3, ""))
	require.NoError(t, err)

	assert.Equal(t, models.TierTruck, summary.VehicleSizeDetected)
	// No expected size supplied, so the mismatch between photos does not
	// flip the match flag.
	assert.True(t, summary.VehicleSizeMatch)
}

func TestAggregate_SizeMismatchAgainstExpected(t *testing.T) {
	agree := analysis(models.ConditionLightlyDirty, 0.9)
	agree.VehicleSizeDetected = models.TierSedan
	disagree := analysis(models.ConditionLightlyDirty, 0.9)
	disagree.VehicleSizeDetected = models.TierTruck

	client := &stubClient{analyses: []*models.PhotoAnalysis{agree, disagree}}
	agg := NewAggregator(client, nil)

	summary, err := agg.Aggregate(context.Background(), photoBatch(2, models.TierSedan))
	require.NoError(t, err)

	assert.False(t, summary.VehicleSizeMatch)
}
