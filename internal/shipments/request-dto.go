package shipments

// SenderInput identifies the party registering a shipment. The email
// is where the guide confirmation lands, so it is mandatory.
type SenderInput struct {
	Name  string `json:"name" validate:"required,min=2,max=100"`
	Phone string `json:"phone" validate:"omitempty,min=7,max=20"`
	Email string `json:"email" validate:"required,email"`
}

// RecipientInput identifies who receives the parcel.
type RecipientInput struct {
	Name  string `json:"name" validate:"required,min=2,max=100"`
	Phone string `json:"phone" validate:"omitempty,min=7,max=20"`
	Email string `json:"email" validate:"omitempty,email"`
}

// CreateShipmentRequest registers a new parcel.
type CreateShipmentRequest struct {
	Origin      string         `json:"origin" validate:"required,min=2,max=100"`
	Destination string         `json:"destination" validate:"required,min=2,max=100"`
	Date        string         `json:"date" validate:"required"`
	WeightKg    float64        `json:"weightKg" validate:"required,gt=0"`
	Sender      SenderInput    `json:"sender" validate:"required"`
	Recipient   RecipientInput `json:"recipient" validate:"required"`
}
