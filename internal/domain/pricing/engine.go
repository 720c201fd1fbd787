package pricing

import (
	"math"
	"strings"
	"time"
)

// The engine is pure and side-effect free: the booking form calls it on every
// field change, so invalid or partial input must degrade to a zero breakdown,
// never an error.

// ClassifySizeByWeight maps a pet weight in kg onto a size bracket.
// Non-positive weights classify as small so a half-filled form still quotes.
func ClassifySizeByWeight(weightKg float64) SizeClass {
	switch {
	case weightKg <= SmallMaxWeightKg:
		return SizeSmall
	case weightKg <= MediumMaxWeightKg:
		return SizeMedium
	default:
		return SizeLarge
	}
}

// isWildcard reports whether a category or size label matches anything.
func isWildcard(label string) bool {
	switch label {
	case "", "any", "all":
		return true
	}
	return false
}

// stripAnnotation removes a parenthesized suffix, ASCII or full-width, from a
// size label: "small(<=7.5kg)" and "small（<=7.5kg）" both become "small".
func stripAnnotation(label string) string {
	label = cutBracketed(label, "(", ")")
	label = cutBracketed(label, "（", "）")
	return strings.TrimSpace(label)
}

func cutBracketed(s, open, close string) string {
	for {
		i := strings.Index(s, open)
		if i < 0 {
			return s
		}
		rest := s[i+len(open):]
		j := strings.Index(rest, close)
		if j < 0 {
			return s
		}
		s = s[:i] + rest[j+len(close):]
	}
}

// MatchTier picks the tier for a pet type and size bracket. Priority order:
//  1. exact category + exact size (annotation-stripped labels count)
//  2. exact category + wildcard size
//  3. wildcard category + exact size
//  4. wildcard category + wildcard size
//  5. first tier in the list
//
// Step 5 deliberately returns a possibly-wrong price instead of none; the
// original client ships this behavior and callers depend on it, so it is
// pinned by tests rather than fixed.
func MatchTier(tiers []Tier, petType string, size SizeClass) *Tier {
	if len(tiers) == 0 {
		return nil
	}

	sizeMatches := func(t Tier) bool {
		label := strings.TrimSpace(t.SizeLabel)
		return label == string(size) || stripAnnotation(label) == string(size)
	}
	sizeWildcard := func(t Tier) bool {
		label := strings.TrimSpace(t.SizeLabel)
		return isWildcard(label) || isWildcard(stripAnnotation(label))
	}
	categoryMatches := func(t Tier) bool {
		return strings.TrimSpace(t.Category) == petType
	}
	categoryWildcard := func(t Tier) bool {
		return isWildcard(strings.TrimSpace(t.Category))
	}

	predicates := []func(Tier) bool{
		func(t Tier) bool { return categoryMatches(t) && sizeMatches(t) },
		func(t Tier) bool { return categoryMatches(t) && sizeWildcard(t) },
		func(t Tier) bool { return categoryWildcard(t) && sizeMatches(t) },
		func(t Tier) bool { return categoryWildcard(t) && sizeWildcard(t) },
	}

	for _, match := range predicates {
		for i := range tiers {
			if match(tiers[i]) {
				return &tiers[i]
			}
		}
	}

	return &tiers[0]
}

// StayDays converts a date range into billable days: hours divided by 24,
// rounded up, never less than one. Callers reject inverted ranges before
// quoting; this only guarantees the one-day minimum.
func StayDays(start, end time.Time) int {
	hours := end.Sub(start).Hours()
	days := int(math.Ceil(hours / 24))
	if days <= 0 {
		return 1
	}
	return days
}

// ServicePrice totals the selected add-on services. Unknown service IDs and
// non-positive quantities contribute nothing.
func ServicePrice(selection Selection, catalog []CatalogItem) float64 {
	var total float64
	for serviceID, quantity := range selection {
		if quantity <= 0 {
			continue
		}
		for _, item := range catalog {
			if item.ServiceID == serviceID {
				total += item.UnitPrice * float64(quantity)
				break
			}
		}
	}
	return total
}

// ComputeBreakdown derives the full price summary from the form state.
// Base price requires a pet type, a positive weight and a date range; the
// service total is independent of all three.
func ComputeBreakdown(input QuoteInput) Breakdown {
	var b Breakdown

	if input.StartTime != nil && input.EndTime != nil {
		b.StayDays = StayDays(*input.StartTime, *input.EndTime)
	}

	if input.PetType != "" && input.PetWeight > 0 {
		size := ClassifySizeByWeight(input.PetWeight)
		b.MatchedTier = MatchTier(input.Tiers, input.PetType, size)
		if b.MatchedTier != nil {
			b.PricePerDay = b.MatchedTier.PricePerDay
			b.BasePrice = b.PricePerDay * float64(b.StayDays)
		}
	}

	b.ServicePrice = ServicePrice(input.Selection, input.Catalog)
	b.TotalPrice = b.BasePrice + b.ServicePrice

	return b
}
