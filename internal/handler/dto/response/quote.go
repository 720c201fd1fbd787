package response

import (
	"petstay-bff/internal/domain/pricing"

	"github.com/jinzhu/copier"
)

type QuoteResponse struct {
	StayDays     int          `json:"stayDays"`
	PricePerDay  float64      `json:"pricePerDay"`
	BasePrice    float64      `json:"basePrice"`
	ServicePrice float64      `json:"servicePrice"`
	TotalPrice   float64      `json:"totalPrice"`
	MatchedTier  *TierPayload `json:"matchedTier,omitempty"`
}

type TierPayload struct {
	PetCategory string  `json:"petCategory"`
	PetSize     string  `json:"petSize"`
	PricePerDay float64 `json:"pricePerDay"`
}

func FromBreakdown(b pricing.Breakdown) *QuoteResponse {
	resp := &QuoteResponse{}
	_ = copier.Copy(resp, &b)

	if b.MatchedTier != nil {
		resp.MatchedTier = &TierPayload{
			PetCategory: b.MatchedTier.Category,
			PetSize:     b.MatchedTier.SizeLabel,
			PricePerDay: b.MatchedTier.PricePerDay,
		}
	}
	return resp
}
