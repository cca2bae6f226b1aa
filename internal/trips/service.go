package trips

import (
	"context"
	"fmt"
	"time"

	"transroute/internal/routes"
)

type Service interface {
	Search(ctx context.Context, origin, destination string) ([]TripOffer, error)
	GetByRouteID(ctx context.Context, routeID string) (*TripOffer, error)
}

type service struct {
	routeService routes.Service
	seats        SeatAvailabilityProvider
}

func NewService(routeService routes.Service, seats SeatAvailabilityProvider) Service {
	return &service{
		routeService: routeService,
		seats:        seats,
	}
}

func (s *service) Search(ctx context.Context, origin, destination string) ([]TripOffer, error) {
	matches, err := s.routeService.Search(ctx, origin, destination)
	if err != nil {
		return nil, fmt.Errorf("failed to search trips: %w", err)
	}

	offers := make([]TripOffer, 0, len(matches))
	for i := range matches {
		offer, err := s.toOffer(ctx, &matches[i])
		if err != nil {
			return nil, err
		}
		offers = append(offers, *offer)
	}

	return offers, nil
}

func (s *service) GetByRouteID(ctx context.Context, routeID string) (*TripOffer, error) {
	id, err := parseRouteID(routeID)
	if err != nil {
		return nil, routes.ErrRouteNotFound
	}

	route, err := s.routeService.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.toOffer(ctx, route)
}

func (s *service) toOffer(ctx context.Context, route *routes.RouteResponse) (*TripOffer, error) {
	available, err := s.seats.AvailableSeats(ctx, route.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get seat availability: %w", err)
	}

	return &TripOffer{
		RouteID:        route.ID,
		Origin:         route.Origin,
		Destination:    route.Destination,
		DepartureTime:  route.DepartureTime,
		ArrivalTime:    route.ArrivalTime,
		Duration:       FormatDuration(route.DepartureTime, route.ArrivalTime),
		PriceCents:     route.PriceCents,
		Price:          route.Price,
		ServiceType:    route.ServiceType,
		AvailableSeats: available,
	}, nil
}

// FormatDuration renders the span between two wall-clock times as
// "2h 30m", "45m" or "3h". An arrival earlier than the departure is an
// overnight run and wraps past midnight.
func FormatDuration(departure, arrival string) string {
	dep, err := time.Parse("15:04", departure)
	if err != nil {
		return ""
	}
	arr, err := time.Parse("15:04", arrival)
	if err != nil {
		return ""
	}

	span := arr.Sub(dep)
	if span < 0 {
		span += 24 * time.Hour
	}

	hours := int(span.Hours())
	minutes := int(span.Minutes()) % 60

	switch {
	case hours == 0:
		return fmt.Sprintf("%dm", minutes)
	case minutes == 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
}
