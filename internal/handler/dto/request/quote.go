package request

import (
	"time"

	"petstay-bff/internal/domain/pricing"
)

// QuoteRequest mirrors the booking form state. Everything is optional except
// well-formedness: the engine quotes whatever subset is filled in.
type QuoteRequest struct {
	Prices            []TierPayload    `json:"prices"`
	Services          []ServicePayload `json:"services"`
	PetType           string           `json:"petType"`
	PetWeightKg       float64          `json:"petWeight"`
	StartTime         *time.Time       `json:"startTime"`
	EndTime           *time.Time       `json:"endTime"`
	ServiceQuantities map[int64]int    `json:"serviceQuantities"`
}

type TierPayload struct {
	PetCategory string  `json:"petCategory"`
	PetSize     string  `json:"petSize"`
	PricePerDay float64 `json:"pricePerDay"`
}

type ServicePayload struct {
	ServiceID int64   `json:"serviceId"`
	Price     float64 `json:"price"`
}

func (r QuoteRequest) ToInput() pricing.QuoteInput {
	tiers := make([]pricing.Tier, len(r.Prices))
	for i, p := range r.Prices {
		tiers[i] = pricing.Tier{
			Category:    p.PetCategory,
			SizeLabel:   p.PetSize,
			PricePerDay: p.PricePerDay,
		}
	}

	catalog := make([]pricing.CatalogItem, len(r.Services))
	for i, s := range r.Services {
		catalog[i] = pricing.CatalogItem{
			ServiceID: s.ServiceID,
			UnitPrice: s.Price,
		}
	}

	return pricing.QuoteInput{
		Tiers:     tiers,
		PetType:   r.PetType,
		PetWeight: r.PetWeightKg,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Selection: pricing.Selection(r.ServiceQuantities),
		Catalog:   catalog,
	}
}
