package shipments

import (
	"context"
	"time"
)

// Tracking statuses as shown to customers.
const (
	StatusReceived       = "Paquete recibido"
	StatusInTransit      = "En tránsito"
	StatusAtDistribution = "En centro de distribución"
	StatusOutForDelivery = "En ruta de entrega"
	StatusDelivered      = "Entregado"
)

// TrackingEvent is one entry in a shipment's movement history.
type TrackingEvent struct {
	Date     string `json:"date"`
	Status   string `json:"status"`
	Location string `json:"location"`
}

// TrackingStatus is the current state of a shipment in the carrier
// network.
type TrackingStatus struct {
	TrackingNumber    string          `json:"trackingNumber"`
	Status            string          `json:"status"`
	CurrentLocation   string          `json:"currentLocation"`
	EstimatedDelivery string          `json:"estimatedDelivery"`
	History           []TrackingEvent `json:"history"`
}

// TrackingProvider answers where a registered shipment currently is.
// There is no real carrier integration; implementations synthesize
// the state.
type TrackingProvider interface {
	Track(ctx context.Context, shipment *Shipment) (*TrackingStatus, error)
}

type simulatedTracking struct {
	now func() time.Time
}

// NewSimulatedTracking returns a provider that advances a shipment
// through the carrier stages as wall time approaches its estimated
// delivery date. The same shipment always reports the same state at
// the same moment.
func NewSimulatedTracking(now func() time.Time) TrackingProvider {
	if now == nil {
		now = time.Now
	}
	return &simulatedTracking{now: now}
}

type trackingStage struct {
	status   string
	fraction float64 // of the registration-to-delivery window
}

var trackingStages = []trackingStage{
	{StatusReceived, 0},
	{StatusInTransit, 0.25},
	{StatusAtDistribution, 0.5},
	{StatusOutForDelivery, 0.8},
	{StatusDelivered, 1},
}

func (t *simulatedTracking) Track(ctx context.Context, shipment *Shipment) (*TrackingStatus, error) {
	start := shipment.CreatedAt
	deliveryDate, err := time.Parse(dateLayout, shipment.EstimatedDelivery)
	if err != nil {
		deliveryDate = EstimatedDelivery(start)
	}
	// Delivery lands at the end of the estimated day.
	end := deliveryDate.Add(24 * time.Hour)
	if !end.After(start) {
		end = start.Add(time.Hour)
	}

	elapsed := t.now().Sub(start)
	progress := float64(elapsed) / float64(end.Sub(start))
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}

	window := end.Sub(start)
	history := make([]TrackingEvent, 0, len(trackingStages))
	current := TrackingEvent{
		Status:   StatusReceived,
		Location: shipment.Origin,
		Date:     start.Format(dateLayout),
	}
	for _, stage := range trackingStages {
		if stage.fraction > progress {
			break
		}
		at := start.Add(time.Duration(stage.fraction * float64(window)))
		event := TrackingEvent{
			Date:     at.Format(dateLayout),
			Status:   stage.status,
			Location: t.stageLocation(stage.status, shipment),
		}
		history = append(history, event)
		current = event
	}

	return &TrackingStatus{
		TrackingNumber:    shipment.TrackingNumber,
		Status:            current.Status,
		CurrentLocation:   current.Location,
		EstimatedDelivery: shipment.EstimatedDelivery,
		History:           history,
	}, nil
}

func (t *simulatedTracking) stageLocation(status string, shipment *Shipment) string {
	switch status {
	case StatusReceived, StatusInTransit, StatusAtDistribution:
		return shipment.Origin
	default:
		return shipment.Destination
	}
}
