package booking

// Step tracks where a purchase session is in the booking flow. Steps
// only move forward; Cancel and timer expiry jump to StepAborted from
// any non-terminal step.
type Step string

const (
	StepSelectingSeats        Step = "SELECTING_SEATS"
	StepRegisteringPassengers Step = "REGISTERING_PASSENGERS"
	StepConfirming            Step = "CONFIRMING"
	StepPaying                Step = "PAYING"
	StepCompleted             Step = "COMPLETED"
	StepAborted               Step = "ABORTED"
)

// Terminal reports whether the flow is finished, successfully or not
func (s Step) Terminal() bool {
	return s == StepCompleted || s == StepAborted
}

// BookingStatus is the persisted state of a finished purchase
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
)
