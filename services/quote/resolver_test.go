package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"detailhq/models"
)

func variableService() *models.ServiceDefinition {
	return &models.ServiceDefinition{
		ID:                  "svc-full-detail",
		PricingModel:        models.PricingVariable,
		BasePrice:           100,
		BaseDurationMinutes: 120,
		Variations: map[models.VehicleTier]models.TierVariation{
			models.TierTruck: {Price: 130, DurationMinutes: 180, Enabled: true},
			models.TierSUV:   {Price: 120, DurationMinutes: 150, Enabled: true},
			models.TierCoupe: {Price: 90, DurationMinutes: 100, Enabled: false},
		},
	}
}

func TestResolvePrice_FlatIgnoresTier(t *testing.T) {
	svc := &models.ServiceDefinition{
		PricingModel: models.PricingFlat,
		BasePrice:    100,
		Variations: map[models.VehicleTier]models.TierVariation{
			models.TierTruck: {Price: 999, Enabled: true},
		},
	}

	assert.Equal(t, 100.0, ResolvePrice(svc, models.TierTruck))
}

func TestResolvePrice_VariableTierLookup(t *testing.T) {
	svc := variableService()

	assert.Equal(t, 130.0, ResolvePrice(svc, models.TierTruck))
	assert.Equal(t, 180, ResolveDuration(svc, models.TierTruck))

	// Disabled variation falls back to flat figures.
	assert.Equal(t, 100.0, ResolvePrice(svc, models.TierCoupe))
	assert.Equal(t, 120, ResolveDuration(svc, models.TierCoupe))

	// Missing tier falls back too.
	assert.Equal(t, 100.0, ResolvePrice(svc, models.TierSedan))

	// No tier at all uses base figures.
	assert.Equal(t, 100.0, ResolvePrice(svc, ""))
	assert.Equal(t, 120, ResolveDuration(svc, ""))
}

func TestResolvePrice_LegacyFallbackChain(t *testing.T) {
	// basePrice -> price -> 0
	assert.Equal(t, 80.0, ResolvePrice(&models.ServiceDefinition{PricingModel: models.PricingFlat, Price: 80}, ""))
	assert.Equal(t, 0.0, ResolvePrice(&models.ServiceDefinition{PricingModel: models.PricingFlat}, ""))

	// baseDurationMinutes -> estimatedDuration -> 120
	assert.Equal(t, 90, ResolveDuration(&models.ServiceDefinition{PricingModel: models.PricingFlat, EstimatedDuration: 90}, ""))
	assert.Equal(t, 120, ResolveDuration(&models.ServiceDefinition{PricingModel: models.PricingFlat}, ""))
}

func TestResolveStartingPrice(t *testing.T) {
	svc := variableService()

	// Minimum over enabled variations only; the disabled coupe at 90 does
	// not count.
	assert.Equal(t, 120.0, ResolveStartingPrice(svc))

	flat := &models.ServiceDefinition{PricingModel: models.PricingFlat, BasePrice: 100}
	assert.Equal(t, 100.0, ResolveStartingPrice(flat))

	noVariations := &models.ServiceDefinition{PricingModel: models.PricingVariable, BasePrice: 75}
	assert.Equal(t, 75.0, ResolveStartingPrice(noVariations))
}
