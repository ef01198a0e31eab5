package quote

import "detailhq/models"

// ResolveConditionMarkup returns the markup fraction for a selected condition
// tier id. Missing config, disabled config, and unknown ids all resolve to 0:
// the business may edit its condition tiers while a customer's quote flow is
// in progress, and a stale id must never hard-fail the quote.
func ResolveConditionMarkup(conditionID string, cfg *models.ConditionConfig) float64 {
	if cfg == nil || !cfg.Enabled || conditionID == "" {
		return 0
	}
	for _, tier := range cfg.Tiers {
		if tier.ID == conditionID {
			return tier.MarkupPercent
		}
	}
	return 0
}
