package pricing

import "time"

// SizeClass is the weight bracket a pet falls into. Tiers are priced per
// (category, size) pair, so classification has to agree with whatever labels
// the store configured.
type SizeClass string

const (
	SizeSmall  SizeClass = "small"
	SizeMedium SizeClass = "medium"
	SizeLarge  SizeClass = "large"
)

// Weight thresholds (kg) for size classification. Policy values from the
// marketplace, not physical law.
const (
	SmallMaxWeightKg  = 10.0
	MediumMaxWeightKg = 25.0
)

// Tier is one row of a store's price table. Category and SizeLabel are
// free-text as configured by the store; either may be a wildcard ("", "any",
// "all") and SizeLabel may carry an annotation suffix like "small(<=7.5kg)".
type Tier struct {
	Category    string  `json:"petCategory"`
	SizeLabel   string  `json:"petSize"`
	PricePerDay float64 `json:"pricePerDay"`
}

// CatalogItem is one add-on service offered by a store.
type CatalogItem struct {
	ServiceID int64   `json:"serviceId"`
	UnitPrice float64 `json:"price"`
}

// Selection maps serviceId to requested quantity. Entries with quantity <= 0
// are treated as absent.
type Selection map[int64]int

// QuoteInput is everything the booking form knows. Any field may be missing;
// the engine degrades instead of failing.
type QuoteInput struct {
	Tiers     []Tier
	PetType   string
	PetWeight float64
	StartTime *time.Time
	EndTime   *time.Time
	Selection Selection
	Catalog   []CatalogItem
}

// Breakdown is the computed price summary. TotalPrice is always recomputable
// from the inputs; it carries no state of its own.
type Breakdown struct {
	StayDays     int
	PricePerDay  float64
	MatchedTier  *Tier
	BasePrice    float64
	ServicePrice float64
	TotalPrice   float64
}
