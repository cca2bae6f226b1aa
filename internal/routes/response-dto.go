package routes

import "time"

type RouteResponse struct {
	ID            string    `json:"id"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureTime string    `json:"departure_time"`
	ArrivalTime   string    `json:"arrival_time"`
	PriceCents    int64     `json:"price_cents"`
	Price         float64   `json:"price"`
	ServiceType   string    `json:"service_type"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToRouteResponse is exported for the trips package, which converts
// routes into trip offers.
func ToRouteResponse(route *Route) RouteResponse {
	return RouteResponse{
		ID:            route.ID.String(),
		Origin:        route.Origin,
		Destination:   route.Destination,
		DepartureTime: route.DepartureTime,
		ArrivalTime:   route.ArrivalTime,
		PriceCents:    route.PriceCents,
		Price:         float64(route.PriceCents) / 100,
		ServiceType:   string(route.ServiceType),
		Active:        route.Active,
		CreatedAt:     route.CreatedAt,
		UpdatedAt:     route.UpdatedAt,
	}
}

func toRouteResponses(routes []Route) []RouteResponse {
	responses := make([]RouteResponse, len(routes))
	for i := range routes {
		responses[i] = ToRouteResponse(&routes[i])
	}
	return responses
}
