package shipments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuidePrice(t *testing.T) {
	// base 50.00 + 10.00 per kg
	assert.Equal(t, int64(6000), GuidePrice(1))
	assert.Equal(t, int64(10000), GuidePrice(5))
	assert.Equal(t, int64(7500), GuidePrice(2.5))
	assert.Equal(t, int64(5000), GuidePrice(0))
}

func TestEstimatedDelivery(t *testing.T) {
	shipDate := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-16", EstimatedDelivery(shipDate).Format("2006-01-02"))

	// Month rollover
	endOfMonth := time.Date(2026, 3, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-04-01", EstimatedDelivery(endOfMonth).Format("2006-01-02"))
}

func TestGenerateTrackingNumber_Shape(t *testing.T) {
	for i := 0; i < 100; i++ {
		tracking := GenerateTrackingNumber()
		assert.Regexp(t, `^ADS\d{6}$`, tracking)
	}
}

func TestIsValidTrackingNumber(t *testing.T) {
	assert.True(t, IsValidTrackingNumber("ADS123456"))
	assert.True(t, IsValidTrackingNumber(GenerateTrackingNumber()))

	assert.False(t, IsValidTrackingNumber(""))
	assert.False(t, IsValidTrackingNumber("ADS12345"))   // too short
	assert.False(t, IsValidTrackingNumber("ADS1234567")) // too long
	assert.False(t, IsValidTrackingNumber("XYZ123456"))  // wrong prefix
	assert.False(t, IsValidTrackingNumber("ADS12345A"))  // letter in digits
}

func TestSimulatedTracking_Progression(t *testing.T) {
	created := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	shipment := &Shipment{
		TrackingNumber:    "ADS123456",
		Origin:            "Orizaba",
		Destination:       "Zongolica",
		ShipDate:          "2026-03-14",
		EstimatedDelivery: "2026-03-16",
		CreatedAt:         created,
	}

	// Just registered
	now := created.Add(time.Hour)
	provider := NewSimulatedTracking(func() time.Time { return now })

	status, err := provider.Track(context.Background(), shipment)
	require.NoError(t, err)
	assert.Equal(t, StatusReceived, status.Status)
	assert.Equal(t, "Orizaba", status.CurrentLocation)
	assert.Equal(t, "2026-03-16", status.EstimatedDelivery)
	assert.Len(t, status.History, 1)

	// Mid-window
	now = created.Add(40 * time.Hour)
	status, err = provider.Track(context.Background(), shipment)
	require.NoError(t, err)
	assert.Equal(t, StatusAtDistribution, status.Status)
	assert.Len(t, status.History, 3)

	// Past the estimated delivery day
	now = created.Add(10 * 24 * time.Hour)
	status, err = provider.Track(context.Background(), shipment)
	require.NoError(t, err)
	assert.Equal(t, StatusDelivered, status.Status)
	assert.Equal(t, "Zongolica", status.CurrentLocation)
	assert.Len(t, status.History, len(trackingStages))
}

func TestSimulatedTracking_StableAtSameInstant(t *testing.T) {
	created := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	shipment := &Shipment{
		TrackingNumber:    "ADS654321",
		Origin:            "Orizaba",
		Destination:       "Xoxocotla",
		EstimatedDelivery: "2026-03-16",
		CreatedAt:         created,
	}

	at := created.Add(20 * time.Hour)
	provider := NewSimulatedTracking(func() time.Time { return at })

	first, err := provider.Track(context.Background(), shipment)
	require.NoError(t, err)
	second, err := provider.Track(context.Background(), shipment)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
