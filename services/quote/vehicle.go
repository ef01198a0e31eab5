package quote

import (
	"strings"

	"detailhq/models"
)

// vehicleTierMap maps free-form vehicle categories onto pricing tiers.
// Categories outside the table normalize to no tier, which callers must
// treat as "use base pricing".
var vehicleTierMap = map[string]models.VehicleTier{
	"coupe":     models.TierCoupe,
	"sedan":     models.TierSedan,
	"suv":       models.TierSUV,
	"truck":     models.TierTruck,
	"van":       models.TierTruck,
	"crossover": models.TierSUV,
}

// NormalizeVehicleTier maps a raw vehicle category onto one of the fixed
// pricing tiers. Matching is case-insensitive; unknown input (including the
// empty string) returns "" rather than an error.
func NormalizeVehicleTier(raw string) models.VehicleTier {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return ""
	}
	return vehicleTierMap[normalized]
}
