package queries

import (
	"petstay-bff/internal/domain/pricing"
)

// QuoteQueries exposes the price engine to the handler layer. It is pull
// based and pure: the booking form calls it on every field change.
type QuoteQueries interface {
	Compute(input pricing.QuoteInput) pricing.Breakdown
}

type quoteQueriesImpl struct{}

func NewQuoteQueries() QuoteQueries {
	return &quoteQueriesImpl{}
}

func (q *quoteQueriesImpl) Compute(input pricing.QuoteInput) pricing.Breakdown {
	return pricing.ComputeBreakdown(input)
}
