package trips

// TripOffer is a route presented to a traveler: the stored schedule
// enriched with a human-readable duration and a live seat count.
type TripOffer struct {
	RouteID        string  `json:"route_id"`
	Origin         string  `json:"origin"`
	Destination    string  `json:"destination"`
	DepartureTime  string  `json:"departure_time"`
	ArrivalTime    string  `json:"arrival_time"`
	Duration       string  `json:"duration"`
	PriceCents     int64   `json:"price_cents"`
	Price          float64 `json:"price"`
	ServiceType    string  `json:"service_type"`
	AvailableSeats int     `json:"available_seats"`
}
