package locations

// create location payload
type CreateLocationRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

// update location payload, all fields optional
type UpdateLocationRequest struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Active *bool   `json:"active,omitempty"`
}
