package tickets

import (
	"crypto/rand"
	"math/big"
)

const (
	folioPrefix   = "ADS"
	folioLength   = 9
	folioAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// GenerateFolio returns a booking folio: "ADS" followed by nine
// characters drawn from 0-9A-Z. Collisions are left to the unique
// index on the bookings table.
func GenerateFolio() string {
	buf := make([]byte, folioLength)
	max := big.NewInt(int64(len(folioAlphabet)))

	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken
			panic(err)
		}
		buf[i] = folioAlphabet[n.Int64()]
	}

	return folioPrefix + string(buf)
}

// IsValidFolio reports whether s has the folio shape
func IsValidFolio(s string) bool {
	if len(s) != len(folioPrefix)+folioLength {
		return false
	}
	if s[:len(folioPrefix)] != folioPrefix {
		return false
	}
	for _, c := range s[len(folioPrefix):] {
		if !(c >= '0' && c <= '9') && !(c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}
