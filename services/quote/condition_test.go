package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"detailhq/models"
)

func conditionConfig(enabled bool) *models.ConditionConfig {
	return &models.ConditionConfig{
		BusinessID: "biz-1",
		Enabled:    enabled,
		Tiers: []models.ConditionTier{
			{ID: "light", Label: "Light", MarkupPercent: 0},
			{ID: "moderate", Label: "Moderate", MarkupPercent: 0.15},
			{ID: "heavy", Label: "Heavy", MarkupPercent: 0.25},
		},
	}
}

func TestResolveConditionMarkup(t *testing.T) {
	cfg := conditionConfig(true)

	assert.Equal(t, 0.15, ResolveConditionMarkup("moderate", cfg))
	assert.Equal(t, 0.25, ResolveConditionMarkup("heavy", cfg))
	assert.Equal(t, 0.0, ResolveConditionMarkup("light", cfg))
}

func TestResolveConditionMarkup_SoftFailures(t *testing.T) {
	// Nil config.
	assert.Equal(t, 0.0, ResolveConditionMarkup("moderate", nil))

	// Disabled config ignores the id entirely.
	assert.Equal(t, 0.0, ResolveConditionMarkup("heavy", conditionConfig(false)))

	// The business may have deleted the tier mid-flow; never an error.
	assert.Equal(t, 0.0, ResolveConditionMarkup("no-such-tier", conditionConfig(true)))
	assert.Equal(t, 0.0, ResolveConditionMarkup("", conditionConfig(true)))
}
