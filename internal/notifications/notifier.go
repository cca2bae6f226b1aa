package notifications

import (
	"context"
	"time"

	"transroute/internal/booking"
	"transroute/pkg/logger"
)

// BookingNotifier delivers ticket emails for settled bookings. It
// implements booking.Notifier and never propagates failures back into
// the purchase path.
type BookingNotifier struct {
	notifications Service
	log           *logger.Logger
}

func NewBookingNotifier(notifications Service, log *logger.Logger) *BookingNotifier {
	return &BookingNotifier{
		notifications: notifications,
		log:           log,
	}
}

func (n *BookingNotifier) BookingCompleted(ctx context.Context, b *booking.Booking) {
	passengers := make([]map[string]interface{}, 0, len(b.Passengers))
	recipientName := ""
	for _, p := range b.Passengers {
		if recipientName == "" {
			recipientName = p.Name + " " + p.LastName
		}
		passengers = append(passengers, map[string]interface{}{
			"Name":       p.Name,
			"LastName":   p.LastName,
			"SeatNumber": p.SeatNumber,
		})
	}

	notification, err := NewNotificationBuilder(NotificationTicketIssued).
		WithRecipient(b.UserID.String(), b.Email, recipientName).
		WithSubject("Confirmación de compra " + b.Folio + " - Adelas Autotransportes").
		WithData("Folio", b.Folio).
		WithData("Origin", b.Origin).
		WithData("Destination", b.Destination).
		WithData("DepartureTime", b.DepartureTime).
		WithData("ServiceType", b.ServiceType).
		WithData("TravelDate", b.TravelDate).
		WithData("Passengers", passengers).
		WithData("Total", float64(b.TotalCents)/100).
		Build()
	if err != nil {
		n.log.ErrorWithContext(ctx, "Failed to build ticket notification", err,
			map[string]interface{}{"folio": b.Folio})
		return
	}

	// The purchase already settled; publish with a detached deadline
	// so a slow broker cannot stall the response.
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if err := n.notifications.Publish(publishCtx, notification); err != nil {
		n.log.ErrorWithContext(ctx, "Failed to publish ticket notification", err,
			map[string]interface{}{"folio": b.Folio})
	}
}
