package shipments

import "github.com/google/uuid"

// Contact mirrors one party on a guide in responses.
type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// ShipmentResponse is the shipping guide as returned to clients.
type ShipmentResponse struct {
	ID                uuid.UUID `json:"id"`
	TrackingNumber    string    `json:"trackingNumber"`
	Origin            string    `json:"origin"`
	Destination       string    `json:"destination"`
	Date              string    `json:"date"`
	WeightKg          float64   `json:"weightKg"`
	PriceCents        int64     `json:"price_cents"`
	Price             float64   `json:"price"`
	EstimatedDelivery string    `json:"estimatedDelivery"`
	Sender            Contact   `json:"sender"`
	Recipient         Contact   `json:"recipient"`
	CreatedAt         string    `json:"created_at"`
}

func toShipmentResponse(s *Shipment) ShipmentResponse {
	return ShipmentResponse{
		ID:                s.ID,
		TrackingNumber:    s.TrackingNumber,
		Origin:            s.Origin,
		Destination:       s.Destination,
		Date:              s.ShipDate,
		WeightKg:          s.WeightKg,
		PriceCents:        s.PriceCents,
		Price:             s.Price(),
		EstimatedDelivery: s.EstimatedDelivery,
		Sender: Contact{
			Name:  s.SenderName,
			Phone: s.SenderPhone,
			Email: s.SenderEmail,
		},
		Recipient: Contact{
			Name:  s.RecipientName,
			Phone: s.RecipientPhone,
			Email: s.RecipientEmail,
		},
		CreatedAt: s.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
