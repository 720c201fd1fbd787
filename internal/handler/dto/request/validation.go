package request

import (
	validatorv10 "github.com/go-playground/validator/v10"
)

// RegisterValidations hooks struct-level rules into gin's validator engine.
// The price engine itself never rejects input, so the rules here are the
// booking form's responsibility moved server-side: a date range must run
// forward and configured prices cannot be negative.
func RegisterValidations(v *validatorv10.Validate) {
	v.RegisterStructValidation(quoteStructValidation, QuoteRequest{})
}

func quoteStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(QuoteRequest)

	if req.StartTime != nil && req.EndTime != nil && !req.EndTime.After(*req.StartTime) {
		sl.ReportError(req.EndTime, "endTime", "EndTime", "gtstart", "")
	}
	if req.PetWeightKg < 0 {
		sl.ReportError(req.PetWeightKg, "petWeight", "PetWeightKg", "gte", "0")
	}
	for _, p := range req.Prices {
		if p.PricePerDay < 0 {
			sl.ReportError(req.Prices, "prices", "Prices", "nonnegative_price", "")
			break
		}
	}
	for _, s := range req.Services {
		if s.Price < 0 {
			sl.ReportError(req.Services, "services", "Services", "nonnegative_price", "")
			break
		}
	}
}
