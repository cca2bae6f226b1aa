package booking

import "time"

// SessionResponse is the in-flight purchase as clients see it
type SessionResponse struct {
	Session          *PurchaseSession `json:"session"`
	RemainingSeconds int              `json:"remaining_seconds"`
	Price            *PriceBreakdown  `json:"price,omitempty"`
	SeatMap          [][]SeatState    `json:"seat_map,omitempty"`
}

type PassengerResponse struct {
	Name       string `json:"name"`
	LastName   string `json:"lastName"`
	SeatNumber int    `json:"seat_number"`
}

type BookingResponse struct {
	ID              string              `json:"id"`
	Folio           string              `json:"folio"`
	Origin          string              `json:"origin"`
	Destination     string              `json:"destination"`
	DepartureTime   string              `json:"departure_time"`
	ArrivalTime     string              `json:"arrival_time"`
	ServiceType     string              `json:"service_type"`
	TravelDate      string              `json:"travel_date,omitempty"`
	Email           string              `json:"email"`
	Passengers      []PassengerResponse `json:"passengers"`
	Subtotal        float64             `json:"subtotal"`
	Tax             float64             `json:"tax"`
	Assistance      float64             `json:"assistance"`
	Total           float64             `json:"total"`
	PaymentMethod   string              `json:"payment_method"`
	PaymentAuthCode string              `json:"payment_auth_code,omitempty"`
	Status          string              `json:"status"`
	CreatedAt       time.Time           `json:"created_at"`
}

func toBookingResponse(booking *Booking) BookingResponse {
	passengers := make([]PassengerResponse, len(booking.Passengers))
	for i, p := range booking.Passengers {
		passengers[i] = PassengerResponse{
			Name:       p.Name,
			LastName:   p.LastName,
			SeatNumber: p.SeatNumber,
		}
	}

	price := PriceBreakdown{
		SubtotalCents:   booking.SubtotalCents,
		TaxCents:        booking.TaxCents,
		AssistanceCents: booking.AssistanceCents,
		TotalCents:      booking.TotalCents,
	}

	return BookingResponse{
		ID:              booking.ID.String(),
		Folio:           booking.Folio,
		Origin:          booking.Origin,
		Destination:     booking.Destination,
		DepartureTime:   booking.DepartureTime,
		ArrivalTime:     booking.ArrivalTime,
		ServiceType:     booking.ServiceType,
		TravelDate:      booking.TravelDate,
		Email:           booking.Email,
		Passengers:      passengers,
		Subtotal:        price.Subtotal(),
		Tax:             price.Tax(),
		Assistance:      price.Assistance(),
		Total:           price.Total(),
		PaymentMethod:   booking.PaymentMethod,
		PaymentAuthCode: booking.PaymentAuthCode,
		Status:          string(booking.Status),
		CreatedAt:       booking.CreatedAt,
	}
}

func toBookingResponses(bookings []Booking) []BookingResponse {
	responses := make([]BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = toBookingResponse(&bookings[i])
	}
	return responses
}
