package shipments

import (
	"crypto/rand"
	"fmt"
	"math"
	"math/big"
	"time"
)

const (
	trackingPrefix = "ADS"
	trackingDigits = 6

	// Guide pricing: flat base plus a per-kilogram rate, in cents.
	BaseRateCents  = 5000
	PerKgRateCents = 1000

	// Parcels ride scheduled buses; delivery is assumed two days out.
	DeliveryLeadDays = 2

	dateLayout = "2006-01-02"
)

// GenerateTrackingNumber returns a fresh guide number: "ADS" followed
// by six decimal digits.
func GenerateTrackingNumber() string {
	max := big.NewInt(1)
	for i := 0; i < trackingDigits; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		// crypto/rand only fails when the platform entropy source is broken.
		panic(fmt.Sprintf("tracking number generation: %v", err))
	}
	return fmt.Sprintf("%s%0*d", trackingPrefix, trackingDigits, n)
}

// IsValidTrackingNumber reports whether s has the guide number shape.
func IsValidTrackingNumber(s string) bool {
	if len(s) != len(trackingPrefix)+trackingDigits {
		return false
	}
	if s[:len(trackingPrefix)] != trackingPrefix {
		return false
	}
	for _, c := range s[len(trackingPrefix):] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// GuidePrice computes the shipping price in cents for a parcel weight.
func GuidePrice(weightKg float64) int64 {
	return BaseRateCents + int64(math.Round(weightKg*PerKgRateCents))
}

// EstimatedDelivery adds the delivery lead time to a ship date.
func EstimatedDelivery(shipDate time.Time) time.Time {
	return shipDate.AddDate(0, 0, DeliveryLeadDays)
}
