package vision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"detailhq/models"
)

func TestSuggestAddons_MatchesByName(t *testing.T) {
	candidates := []models.AddonDefinition{
		{ID: "a1", Name: "Pet Hair Removal"},
		{ID: "a2", Name: "Tire Shine"},
	}

	suggestions := SuggestAddons([]models.IssueTag{models.IssuePetHair}, candidates)

	require.Len(t, suggestions, 1)
	assert.Equal(t, "a1", suggestions[0].AddonID)
	assert.Equal(t, models.IssuePetHair, suggestions[0].Reason)
	assert.Equal(t, models.PriorityHigh, suggestions[0].Priority)
	assert.Equal(t, 0.85, suggestions[0].Confidence)
}

func TestSuggestAddons_MatchesByDeclaredKeywords(t *testing.T) {
	candidates := []models.AddonDefinition{
		{ID: "a1", Name: "Shine Package", Keywords: []string{"polish", "wax"}},
	}

	suggestions := SuggestAddons([]models.IssueTag{models.IssueWaterSpots}, candidates)

	require.Len(t, suggestions, 1)
	assert.Equal(t, "a1", suggestions[0].AddonID)
	assert.Equal(t, models.PriorityLow, suggestions[0].Priority)
}

func TestSuggestAddons_FirstIssueClaimsAddon(t *testing.T) {
	// "Paint Polish & Correction" matches both oxidation and scratches;
	// only the first issue produces a suggestion for it.
	candidates := []models.AddonDefinition{
		{ID: "a1", Name: "Paint Polish & Correction"},
	}

	suggestions := SuggestAddons([]models.IssueTag{models.IssueOxidation, models.IssueScratches}, candidates)

	require.Len(t, suggestions, 1)
	assert.Equal(t, models.IssueOxidation, suggestions[0].Reason)
}

func TestSuggestAddons_SortedByPriority(t *testing.T) {
	candidates := []models.AddonDefinition{
		{ID: "polish", Name: "Paint Polish"},
		{ID: "pet", Name: "Pet Hair Removal"},
		{ID: "wash", Name: "Undercarriage Wash"},
	}
	issues := []models.IssueTag{models.IssueWaterSpots, models.IssueMud, models.IssuePetHair}

	suggestions := SuggestAddons(issues, candidates)

	require.Len(t, suggestions, 3)
	assert.Equal(t, "pet", suggestions[0].AddonID)
	assert.Equal(t, "wash", suggestions[1].AddonID)
	assert.Equal(t, "polish", suggestions[2].AddonID)
}

func TestSuggestAddons_NoMatches(t *testing.T) {
	candidates := []models.AddonDefinition{
		{ID: "a1", Name: "Tire Shine"},
	}

	assert.Empty(t, SuggestAddons([]models.IssueTag{models.IssuePetHair}, candidates))
	assert.Empty(t, SuggestAddons(nil, candidates))
	assert.Empty(t, SuggestAddons([]models.IssueTag{models.IssuePetHair}, nil))
}
