package routes

// create route payload; price arrives in cents to avoid float money
type CreateRouteRequest struct {
	Origin        string `json:"origin" validate:"required,min=2,max=100"`
	Destination   string `json:"destination" validate:"required,min=2,max=100"`
	DepartureTime string `json:"departure_time" validate:"required"`
	ArrivalTime   string `json:"arrival_time" validate:"required"`
	PriceCents    int64  `json:"price_cents" validate:"required,gt=0"`
	ServiceType   string `json:"service_type" validate:"required"`
}

// update route payload, all fields optional
type UpdateRouteRequest struct {
	Origin        *string `json:"origin,omitempty" validate:"omitempty,min=2,max=100"`
	Destination   *string `json:"destination,omitempty" validate:"omitempty,min=2,max=100"`
	DepartureTime *string `json:"departure_time,omitempty"`
	ArrivalTime   *string `json:"arrival_time,omitempty"`
	PriceCents    *int64  `json:"price_cents,omitempty" validate:"omitempty,gt=0"`
	ServiceType   *string `json:"service_type,omitempty"`
	Active        *bool   `json:"active,omitempty"`
}

// search query parameters
type SearchRoutesRequest struct {
	Origin      string `form:"origin" validate:"required"`
	Destination string `form:"destination" validate:"required"`
}
