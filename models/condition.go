package models

// ConditionTier is a business-authored, percentage-based price markup bucket
// tied to vehicle condition. IDs are opaque strings chosen by the business.
type ConditionTier struct {
	ID            string  `bson:"id" json:"id"`
	Label         string  `bson:"label" json:"label"`
	Description   string  `bson:"description,omitempty" json:"description,omitempty"`
	MarkupPercent float64 `bson:"markupPercent" json:"markupPercent"` // fraction in [0,1]
}

// ConditionConfig is the per-business condition pricing configuration. It may
// be absent or disabled; both resolve to a markup of zero.
type ConditionConfig struct {
	BusinessID string          `bson:"businessId" json:"businessId"`
	Enabled    bool            `bson:"enabled" json:"enabled"`
	Tiers      []ConditionTier `bson:"tiers,omitempty" json:"tiers,omitempty"`
}
