package models

import "time"

// PricingModel determines how a service definition is priced.
type PricingModel string

const (
	PricingFlat     PricingModel = "flat"
	PricingVariable PricingModel = "variable"
)

// VehicleTier is one of the four fixed vehicle-size pricing buckets.
// These are the only valid keys into ServiceDefinition.Variations.
type VehicleTier string

const (
	TierCoupe VehicleTier = "coupe"
	TierSedan VehicleTier = "sedan"
	TierSUV   VehicleTier = "suv"
	TierTruck VehicleTier = "truck"
)

// TierVariation is a tier-specific override of price and duration on a
// variable-pricing service.
type TierVariation struct {
	Price           float64 `bson:"price" json:"price"`
	DurationMinutes int     `bson:"durationMinutes" json:"durationMinutes"`
	Enabled         bool    `bson:"enabled" json:"enabled"`
}

// ServiceDefinition is a catalog entry owned by the business. The quote
// engine treats it as read-only input.
//
// Price and EstimatedDuration are legacy fields from records written before
// the flat/variable pricing split; the resolvers fall back to them when the
// base fields are unset.
type ServiceDefinition struct {
	ID           string       `bson:"id" json:"id"`
	BusinessID   string       `bson:"businessId" json:"businessId"`
	Name         string       `bson:"name" json:"name"`
	Description  string       `bson:"description,omitempty" json:"description,omitempty"`
	PricingModel PricingModel `bson:"pricingModel" json:"pricingModel"`

	BasePrice           float64 `bson:"basePrice,omitempty" json:"basePrice,omitempty"`
	BaseDurationMinutes int     `bson:"baseDurationMinutes,omitempty" json:"baseDurationMinutes,omitempty"`

	// Legacy fields.
	Price             float64 `bson:"price,omitempty" json:"price,omitempty"`
	EstimatedDuration int     `bson:"estimatedDuration,omitempty" json:"estimatedDuration,omitempty"`

	Variations map[VehicleTier]TierVariation `bson:"variations,omitempty" json:"variations,omitempty"`

	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// AddonDefinition is a catalog add-on record supplied by the business.
// Keywords feed the issue-to-addon suggestion matching.
type AddonDefinition struct {
	ID              string   `bson:"id" json:"id"`
	BusinessID      string   `bson:"businessId" json:"businessId"`
	Name            string   `bson:"name" json:"name"`
	Description     string   `bson:"description,omitempty" json:"description,omitempty"`
	Keywords        []string `bson:"keywords,omitempty" json:"keywords,omitempty"`
	Price           float64  `bson:"price" json:"price"`
	DurationMinutes int      `bson:"durationMinutes" json:"durationMinutes"`
	Active          bool     `bson:"active" json:"active"`
}

// SelectedAddon is an add-on applied to a quote as a flat, non-compounding
// term.
type SelectedAddon struct {
	ID              string  `json:"id"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}
