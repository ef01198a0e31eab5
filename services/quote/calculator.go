package quote

import "detailhq/models"

// CalculateTotals computes the final price, duration, and itemized breakdown
// for a quote. The order of operations is load-bearing: the condition markup
// compounds on the size-adjusted price, not on the base price, so larger
// vehicles pay proportionally more for the same condition tier.
//
// Pure and side-effect free; safe for concurrent use. The only error it can
// return is a ValidationError for a nil service definition.
func CalculateTotals(
	svc *models.ServiceDefinition,
	vehicleCategory string,
	addons []models.SelectedAddon,
	conditionID string,
	cfg *models.ConditionConfig,
) (*models.QuoteResult, error) {
	if svc == nil {
		return nil, NewValidationError("service definition is required")
	}

	tier := NormalizeVehicleTier(vehicleCategory)

	// Flat base figures are reported in the breakdown regardless of tier.
	base := basePrice(svc)
	finalPrice := base
	finalDuration := baseDuration(svc)

	var sizeFee float64
	if v, ok := enabledVariation(svc, tier); ok {
		finalPrice = v.Price
		finalDuration = v.DurationMinutes
		// May be negative when the variation undercuts the base price.
		sizeFee = v.Price - base
	}

	markup := ResolveConditionMarkup(conditionID, cfg)
	conditionFee := finalPrice * markup
	finalPrice += conditionFee

	var addonsTotal float64
	for _, a := range addons {
		addonsTotal += a.Price
		finalDuration += a.DurationMinutes
	}
	finalPrice += addonsTotal

	// No legal combination of positive inputs can go negative, but the
	// invariant is clamped anyway.
	if finalPrice < 0 {
		finalPrice = 0
	}
	if finalDuration < 0 {
		finalDuration = 0
	}

	return &models.QuoteResult{
		Price:           finalPrice,
		DurationMinutes: finalDuration,
		Breakdown: models.QuoteBreakdown{
			Base:         base,
			SizeFee:      sizeFee,
			ConditionFee: conditionFee,
			Addons:       addonsTotal,
		},
	}, nil
}
