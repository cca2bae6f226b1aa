package booking

import (
	"context"
	"errors"

	"transroute/internal/tickets"
)

// ticketSource adapts the booking repository to the tickets package
type ticketSource struct {
	repo Repository
}

func NewTicketSource(repo Repository) tickets.Source {
	return &ticketSource{repo: repo}
}

func (t *ticketSource) TicketByFolio(ctx context.Context, userID, folio string) (*tickets.TicketData, error) {
	booking, err := t.repo.GetByFolio(ctx, folio)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			return nil, tickets.ErrTicketNotFound
		}
		return nil, err
	}

	if booking.UserID.String() != userID {
		return nil, tickets.ErrTicketNotFound
	}

	return ToTicketData(booking), nil
}

// ToTicketData flattens a booking into the render-ready ticket shape
func ToTicketData(booking *Booking) *tickets.TicketData {
	passengers := make([]tickets.TicketPassenger, len(booking.Passengers))
	for i, p := range booking.Passengers {
		passengers[i] = tickets.TicketPassenger{
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

	return &tickets.TicketData{
		Folio:         booking.Folio,
		Origin:        booking.Origin,
		Destination:   booking.Destination,
		DepartureTime: booking.DepartureTime,
		ArrivalTime:   booking.ArrivalTime,
		ServiceType:   booking.ServiceType,
		TravelDate:    booking.TravelDate,
		Email:         booking.Email,
		Passengers:    passengers,
		Subtotal:      price.Subtotal(),
		Tax:           price.Tax(),
		Assistance:    price.Assistance(),
		Total:         price.Total(),
	}
}
