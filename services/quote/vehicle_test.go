package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"detailhq/models"
)

func TestNormalizeVehicleTier(t *testing.T) {
	cases := []struct {
		raw  string
		want models.VehicleTier
	}{
		{"coupe", models.TierCoupe},
		{"sedan", models.TierSedan},
		{"suv", models.TierSUV},
		{"truck", models.TierTruck},
		{"van", models.TierTruck},
		{"crossover", models.TierSUV},
		{"SUV", models.TierSUV},
		{"  Van  ", models.TierTruck},
		{"minivan", ""},
		{"motorcycle", ""},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeVehicleTier(tc.raw), "raw=%q", tc.raw)
	}
}
