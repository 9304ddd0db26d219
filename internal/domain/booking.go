package domain

import "github.com/google/uuid"

// Booking is one proposed sitting: a start and an end time on the same
// overnight window. ID is assigned by the batch service when left as uuid.Nil.
type Booking struct {
	ID    uuid.UUID
	Start TimeOfDay
	End   TimeOfDay
}

// BookingReport pairs a Booking with its two independent field results.
type BookingReport struct {
	BookingID   uuid.UUID        `json:"id"`
	Start       TimeOfDay        `json:"start"`
	End         TimeOfDay        `json:"end"`
	StartResult ValidationResult `json:"start_result"`
	EndResult   ValidationResult `json:"end_result"`
}

// Accepted reports whether both the start and end fields passed.
func (r BookingReport) Accepted() bool {
	return r.StartResult.OK() && r.EndResult.OK()
}

// Summary counts the outcome of a batch of reports.
type Summary struct {
	Total    int `json:"total"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
}
