package quote

import "detailhq/models"

// Default duration applied when a service record carries neither a base nor
// a legacy duration.
const defaultDurationMinutes = 120

// firstPositive returns the first strictly positive value in order, or def
// when none is set. Legacy service records predate the flat/variable pricing
// split, so the precedence of the old and new fields is declared here once
// instead of being scattered through the calculator.
func firstPositive(def float64, vals ...float64) float64 {
	for _, v := range vals {
		if v > 0 {
			return v
		}
	}
	return def
}

func firstPositiveInt(def int, vals ...int) int {
	for _, v := range vals {
		if v > 0 {
			return v
		}
	}
	return def
}

// basePrice resolves a service's flat price via the legacy fallback chain
// basePrice -> price -> 0.
func basePrice(svc *models.ServiceDefinition) float64 {
	return firstPositive(0, svc.BasePrice, svc.Price)
}

// baseDuration resolves a service's flat duration via the legacy fallback
// chain baseDurationMinutes -> estimatedDuration -> 120.
func baseDuration(svc *models.ServiceDefinition) int {
	return firstPositiveInt(defaultDurationMinutes, svc.BaseDurationMinutes, svc.EstimatedDuration)
}

// enabledVariation returns the enabled tier variation for a variable-pricing
// service, if one exists. A disabled or missing tier is not an error; the
// caller falls back to flat figures.
func enabledVariation(svc *models.ServiceDefinition, tier models.VehicleTier) (models.TierVariation, bool) {
	if svc.PricingModel != models.PricingVariable || tier == "" {
		return models.TierVariation{}, false
	}
	v, ok := svc.Variations[tier]
	if !ok || !v.Enabled {
		return models.TierVariation{}, false
	}
	return v, true
}

// ResolvePrice returns the price for a service at the given tier. Tier ""
// means no tier; flat-model services ignore the tier entirely.
func ResolvePrice(svc *models.ServiceDefinition, tier models.VehicleTier) float64 {
	if v, ok := enabledVariation(svc, tier); ok {
		return v.Price
	}
	return basePrice(svc)
}

// ResolveDuration returns the duration in minutes for a service at the given
// tier, with the same fallback behavior as ResolvePrice.
func ResolveDuration(svc *models.ServiceDefinition, tier models.VehicleTier) int {
	if v, ok := enabledVariation(svc, tier); ok {
		return v.DurationMinutes
	}
	return baseDuration(svc)
}

// ResolveStartingPrice returns the lowest price a service can quote at, for
// "starting at $X" catalog display. For variable pricing this is the minimum
// over enabled variations; a variable service with no enabled variations, or
// any flat service, starts at the base price.
func ResolveStartingPrice(svc *models.ServiceDefinition) float64 {
	if svc.PricingModel != models.PricingVariable {
		return basePrice(svc)
	}
	lowest := 0.0
	found := false
	for _, v := range svc.Variations {
		if !v.Enabled {
			continue
		}
		if !found || v.Price < lowest {
			lowest = v.Price
			found = true
		}
	}
	if !found {
		return basePrice(svc)
	}
	return lowest
}
