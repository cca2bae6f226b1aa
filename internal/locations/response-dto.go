package locations

import "time"

type LocationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toLocationResponse(location *Location) LocationResponse {
	return LocationResponse{
		ID:        location.ID.String(),
		Name:      location.Name,
		Active:    location.Active,
		CreatedAt: location.CreatedAt,
		UpdatedAt: location.UpdatedAt,
	}
}

func toLocationResponses(locations []Location) []LocationResponse {
	responses := make([]LocationResponse, len(locations))
	for i := range locations {
		responses[i] = toLocationResponse(&locations[i])
	}
	return responses
}
