package domain

import (
	"time"

	"villagestay/internal/domain/models"
)

// Fixed surcharge rates, percent of the pre-discount subtotal.
const (
	TaxPercent        = 12 // GST
	ServiceFeePercent = 5
)

// Nights returns the whole calendar-day difference between check-in and
// check-out. Same-day pairs yield 0; callers that need a bookable stay
// must reject anything below 1 night.
func Nights(checkIn, checkOut time.Time) (int, error) {
	in := toDay(checkIn)
	out := toDay(checkOut)
	if out.Before(in) {
		return 0, InvalidRangeError{
			CheckIn:  in.Format("2006-01-02"),
			CheckOut: out.Format("2006-01-02"),
			Msg:      "check-out must be after check-in",
		}
	}
	return int(out.Sub(in) / (24 * time.Hour)), nil
}

// ComputeBreakdown prices a stay. All amounts are whole rupees.
// Tax, service fee and discount are each a percentage of the exact
// integer subtotal, rounded half-up; the total is the sum of the
// already-rounded lines:
//
//	total = subtotal - discount + tax + serviceFee
func ComputeBreakdown(nightlyRate int64, nights int, discountPercent int) (models.PriceBreakdown, error) {
	if nightlyRate <= 0 {
		return models.PriceBreakdown{}, InvalidInputError{Field: "nightly_rate", Msg: "must be positive"}
	}
	if nights < 1 {
		return models.PriceBreakdown{}, InvalidInputError{Field: "nights", Msg: "must be at least 1"}
	}
	if discountPercent < 0 || discountPercent > 100 {
		return models.PriceBreakdown{}, InvalidInputError{Field: "discount_percent", Msg: "must be between 0 and 100"}
	}

	subtotal := nightlyRate * int64(nights)
	serviceFee := roundPercent(subtotal, ServiceFeePercent)
	discount := roundPercent(subtotal, discountPercent)
	tax := roundPercent(subtotal, TaxPercent)

	return models.PriceBreakdown{
		Subtotal:        subtotal,
		ServiceFee:      serviceFee,
		DiscountPercent: discountPercent,
		DiscountAmount:  discount,
		Tax:             tax,
		Total:           subtotal - discount + tax + serviceFee,
	}, nil
}

// roundPercent computes pct% of amount with half-up rounding, in
// integer arithmetic so totals cannot drift through floats.
func roundPercent(amount int64, pct int) int64 {
	return (amount*int64(pct) + 50) / 100
}

func toDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
