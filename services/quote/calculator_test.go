package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"detailhq/models"
)

func TestCalculateTotals_FlatService(t *testing.T) {
	svc := &models.ServiceDefinition{
		PricingModel:        models.PricingFlat,
		BasePrice:           100,
		BaseDurationMinutes: 120,
	}

	// Flat model ignores the vehicle tier.
	res, err := CalculateTotals(svc, "sedan", nil, "", nil)
	require.NoError(t, err)

	assert.Equal(t, 100.0, res.Price)
	assert.Equal(t, 120, res.DurationMinutes)
	assert.Equal(t, 100.0, res.Breakdown.Base)
	assert.Equal(t, 0.0, res.Breakdown.SizeFee)
	assert.Equal(t, 0.0, res.Breakdown.ConditionFee)
	assert.Equal(t, 0.0, res.Breakdown.Addons)
}

func TestCalculateTotals_VariableWithConditionAndAddon(t *testing.T) {
	svc := variableService()
	cfg := conditionConfig(true)
	addons := []models.SelectedAddon{{ID: "a1", Price: 20, DurationMinutes: 15}}

	// "van" normalizes to truck; condition markup compounds on the
	// size-adjusted 130, not the base 100.
	res, err := CalculateTotals(svc, "van", addons, "moderate", cfg)
	require.NoError(t, err)

	assert.Equal(t, 30.0, res.Breakdown.SizeFee)
	assert.Equal(t, 19.5, res.Breakdown.ConditionFee)
	assert.Equal(t, 20.0, res.Breakdown.Addons)
	assert.Equal(t, 169.5, res.Price)
	assert.Equal(t, 195, res.DurationMinutes)
}

func TestCalculateTotals_UnknownVehicleFallsBackToBase(t *testing.T) {
	svc := variableService()

	res, err := CalculateTotals(svc, "minivan", nil, "", nil)
	require.NoError(t, err)

	// Behaves identically to passing no tier at all.
	base, err := CalculateTotals(svc, "", nil, "", nil)
	require.NoError(t, err)
	assert.Equal(t, base, res)

	assert.Equal(t, 100.0, res.Price)
	assert.Equal(t, 120, res.DurationMinutes)
	assert.Equal(t, 0.0, res.Breakdown.SizeFee)
}

func TestCalculateTotals_NegativeSizeFeeReportedAsIs(t *testing.T) {
	svc := variableService()
	svc.Variations[models.TierCoupe] = models.TierVariation{Price: 90, DurationMinutes: 100, Enabled: true}

	res, err := CalculateTotals(svc, "coupe", nil, "", nil)
	require.NoError(t, err)

	assert.Equal(t, -10.0, res.Breakdown.SizeFee)
	assert.Equal(t, 90.0, res.Price)
}

func TestCalculateTotals_DisabledConditionConfigYieldsNoFee(t *testing.T) {
	svc := variableService()

	res, err := CalculateTotals(svc, "van", nil, "heavy", conditionConfig(false))
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.Breakdown.ConditionFee)
	assert.Equal(t, 130.0, res.Price)
}

func TestCalculateTotals_NilServiceFailsFast(t *testing.T) {
	_, err := CalculateTotals(nil, "sedan", nil, "", nil)
	require.Error(t, err)

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestCalculateTotals_NeverNegative(t *testing.T) {
	// A zero-value service resolves to price 0, duration 120.
	res, err := CalculateTotals(&models.ServiceDefinition{}, "truck", nil, "", nil)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, res.Price, 0.0)
	assert.GreaterOrEqual(t, res.DurationMinutes, 0)
}

func TestCalculateTotals_Idempotent(t *testing.T) {
	svc := variableService()
	cfg := conditionConfig(true)
	addons := []models.SelectedAddon{{ID: "a1", Price: 20, DurationMinutes: 15}}

	first, err := CalculateTotals(svc, "van", addons, "moderate", cfg)
	require.NoError(t, err)
	second, err := CalculateTotals(svc, "van", addons, "moderate", cfg)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
