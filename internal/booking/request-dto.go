package booking

// start purchase payload
type StartPurchaseRequest struct {
	RouteID  string   `json:"route_id" validate:"required"`
	TripInfo TripInfo `json:"trip_info" validate:"required"`
}

// seat update payload: either a full selection or a single toggle.
// Continue moves on to passenger registration once the selection is
// complete.
type UpdateSeatsRequest struct {
	Seats    []int `json:"seats,omitempty"`
	Toggle   *int  `json:"toggle,omitempty"`
	Continue bool  `json:"continue,omitempty"`
}

type PassengerInput struct {
	Name     string `json:"name" validate:"required,min=2,max=120"`
	LastName string `json:"lastName" validate:"required,min=2,max=120"`
}

// passenger registration payload. The ticket email has to be entered
// twice and the terms box ticked before the flow moves on.
type RegisterPassengersRequest struct {
	Passengers    []PassengerInput `json:"passengers" validate:"required,min=1,dive"`
	Email         string           `json:"email" validate:"required,email"`
	ConfirmEmail  string           `json:"confirm_email" validate:"required,email"`
	TermsAccepted bool             `json:"terms_accepted"`
}

// payment payload
type PayRequest struct {
	Method string `json:"method" validate:"required"`
}
