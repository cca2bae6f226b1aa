package booking

import "math"

// All money moves through this file as integer cents. Floats appear
// only at the JSON boundary, after rounding.

const (
	// TaxRate is the sales tax applied to the ticket subtotal
	TaxRate = 0.16

	// AssistanceFeeCents is the fixed travel-assistance charge per passenger
	AssistanceFeeCents int64 = 1700
)

// PriceBreakdown itemizes the cost of a purchase
type PriceBreakdown struct {
	SubtotalCents   int64 `json:"subtotal_cents"`
	TaxCents        int64 `json:"tax_cents"`
	AssistanceCents int64 `json:"assistance_cents"`
	TotalCents      int64 `json:"total_cents"`
}

// ComputePrice itemizes the total for passengerCount tickets at
// unitPriceCents each. Tax is rounded half-up on the subtotal, not per
// ticket, so the breakdown always sums to the total.
func ComputePrice(unitPriceCents int64, passengerCount int) PriceBreakdown {
	subtotal := unitPriceCents * int64(passengerCount)
	tax := int64(math.Round(float64(subtotal) * TaxRate))
	assistance := AssistanceFeeCents * int64(passengerCount)

	return PriceBreakdown{
		SubtotalCents:   subtotal,
		TaxCents:        tax,
		AssistanceCents: assistance,
		TotalCents:      subtotal + tax + assistance,
	}
}

// Subtotal returns the ticket subtotal in currency units
func (p PriceBreakdown) Subtotal() float64 { return centsToUnits(p.SubtotalCents) }

// Tax returns the tax amount in currency units
func (p PriceBreakdown) Tax() float64 { return centsToUnits(p.TaxCents) }

// Assistance returns the assistance fee in currency units
func (p PriceBreakdown) Assistance() float64 { return centsToUnits(p.AssistanceCents) }

// Total returns the grand total in currency units
func (p PriceBreakdown) Total() float64 { return centsToUnits(p.TotalCents) }

func centsToUnits(cents int64) float64 {
	return float64(cents) / 100
}
