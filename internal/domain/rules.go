package domain

import "fmt"

// HouseRules bounds the service window: bookings may not start before
// EarliestStart or end after LatestEnd. The default window spans midnight.
type HouseRules struct {
	EarliestStart TimeOfDay `json:"earliest_start" yaml:"earliest_start"`
	LatestEnd     TimeOfDay `json:"latest_end" yaml:"latest_end"`
}

// DefaultHouseRules returns the 5:00 PM to 4:00 AM window.
func DefaultHouseRules() HouseRules {
	return HouseRules{
		EarliestStart: MustTimeOfDay(5, 0, PM),
		LatestEnd:     MustTimeOfDay(4, 0, AM),
	}
}

// Validate checks that both boundaries are well-formed times.
func (r HouseRules) Validate() error {
	if err := r.EarliestStart.Validate(); err != nil {
		return fmt.Errorf("earliest start: %w", err)
	}
	if err := r.LatestEnd.Validate(); err != nil {
		return fmt.Errorf("latest end: %w", err)
	}
	return nil
}
