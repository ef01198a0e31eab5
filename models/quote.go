package models

// QuoteBreakdown itemizes how a quote price was assembled. SizeFee and
// ConditionFee are omitted from JSON when zero; SizeFee may be negative when
// a tier variation undercuts the base price and is reported as-is.
type QuoteBreakdown struct {
	Base         float64 `json:"base"`
	SizeFee      float64 `json:"sizeFee,omitempty"`
	ConditionFee float64 `json:"conditionFee,omitempty"`
	Addons       float64 `json:"addons"`
}

// QuoteResult is the output of the quote calculator. Price and duration are
// never negative.
type QuoteResult struct {
	Price           float64        `json:"price"`
	DurationMinutes int            `json:"durationMinutes"`
	Breakdown       QuoteBreakdown `json:"breakdown"`
}
