package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputePrice_TwoPassengers(t *testing.T) {
	// Two tickets at $40.00 each
	price := ComputePrice(4000, 2)

	assert.Equal(t, int64(8000), price.SubtotalCents)
	assert.Equal(t, int64(1280), price.TaxCents)
	assert.Equal(t, int64(3400), price.AssistanceCents)
	assert.Equal(t, int64(12680), price.TotalCents)

	assert.Equal(t, 80.00, price.Subtotal())
	assert.Equal(t, 12.80, price.Tax())
	assert.Equal(t, 34.00, price.Assistance())
	assert.Equal(t, 126.80, price.Total())
}

func TestComputePrice_SinglePassenger(t *testing.T) {
	price := ComputePrice(6500, 1)

	assert.Equal(t, int64(6500), price.SubtotalCents)
	assert.Equal(t, int64(1040), price.TaxCents)
	assert.Equal(t, int64(1700), price.AssistanceCents)
	assert.Equal(t, int64(9240), price.TotalCents)
}

func TestComputePrice_TaxRoundsOnSubtotal(t *testing.T) {
	// 3 x 3333 = 9999; 16% = 1599.84, rounds to 1600
	price := ComputePrice(3333, 3)

	assert.Equal(t, int64(9999), price.SubtotalCents)
	assert.Equal(t, int64(1600), price.TaxCents)
	assert.Equal(t, price.SubtotalCents+price.TaxCents+price.AssistanceCents, price.TotalCents)
}

func TestComputePrice_Idempotent(t *testing.T) {
	first := ComputePrice(4000, 2)
	second := ComputePrice(4000, 2)

	assert.Equal(t, first, second)
}
