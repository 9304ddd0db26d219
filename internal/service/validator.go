// Package service contains the house-rule checks for proposed bookings.
// Services validate inputs and apply the rules; they hold no mutable state
// and perform no I/O, so a single instance can be shared freely.
package service

import (
	"fmt"
	"log/slog"

	"github.com/pkordes/sitterbook/internal/domain"
)

// TimeRuleValidator checks proposed start and end times against a fixed set
// of HouseRules. It is immutable after construction.
type TimeRuleValidator struct {
	rules    domain.HouseRules
	strategy domain.Strategy
	dayStart domain.TimeOfDay
	log      *slog.Logger
}

// Option configures a TimeRuleValidator.
type Option func(*TimeRuleValidator)

// WithStrategy selects the comparison strategy. Defaults to
// domain.StrategyClock12.
func WithStrategy(s domain.Strategy) Option {
	return func(v *TimeRuleValidator) { v.strategy = s }
}

// WithBusinessDayStart moves the rolling business-day start used by
// domain.StrategyBusinessDay. Defaults to domain.DefaultBusinessDayStart.
func WithBusinessDayStart(t domain.TimeOfDay) Option {
	return func(v *TimeRuleValidator) { v.dayStart = t }
}

// WithLogger sets the logger decisions are written to at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(v *TimeRuleValidator) { v.log = l }
}

// NewTimeRuleValidator constructs a validator for rules.
// Returns domain.ErrMalformedTime if a boundary is malformed, and
// domain.ErrValidation if the strategy is unknown or, under
// domain.StrategyBusinessDay, the earliest start falls after the latest end.
func NewTimeRuleValidator(rules domain.HouseRules, opts ...Option) (*TimeRuleValidator, error) {
	v := &TimeRuleValidator{
		rules:    rules,
		strategy: domain.StrategyClock12,
		dayStart: domain.DefaultBusinessDayStart,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(v)
	}

	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("service.NewTimeRuleValidator: %w", err)
	}
	switch v.strategy {
	case domain.StrategyClock12:
	case domain.StrategyBusinessDay:
		if err := v.dayStart.Validate(); err != nil {
			return nil, fmt.Errorf("service.NewTimeRuleValidator: business day start: %w", err)
		}
		if v.offset(rules.EarliestStart) > v.offset(rules.LatestEnd) {
			return nil, fmt.Errorf("service.NewTimeRuleValidator: %w: earliest start %s falls after latest end %s in a business day starting %s",
				domain.ErrValidation, rules.EarliestStart, rules.LatestEnd, v.dayStart)
		}
	default:
		return nil, fmt.Errorf("service.NewTimeRuleValidator: %w: unknown strategy %q", domain.ErrValidation, string(v.strategy))
	}
	return v, nil
}

// Rules returns the house rules the validator was built with.
func (v *TimeRuleValidator) Rules() domain.HouseRules {
	return v.rules
}

// Strategy returns the comparison strategy in use.
func (v *TimeRuleValidator) Strategy() domain.Strategy {
	return v.strategy
}

// ValidateStartTime reports whether proposed is at or after the earliest
// allowed start. Returns domain.ErrMalformedTime for a malformed proposal.
func (v *TimeRuleValidator) ValidateStartTime(proposed domain.TimeOfDay) (bool, error) {
	if err := proposed.Validate(); err != nil {
		return false, fmt.Errorf("service.TimeRuleValidator.ValidateStartTime: %w", err)
	}
	return v.startAllowed(proposed), nil
}

// ValidateEndTime reports whether proposed is at or before the latest
// allowed end. Returns domain.ErrMalformedTime for a malformed proposal.
func (v *TimeRuleValidator) ValidateEndTime(proposed domain.TimeOfDay) (bool, error) {
	if err := proposed.Validate(); err != nil {
		return false, fmt.Errorf("service.TimeRuleValidator.ValidateEndTime: %w", err)
	}
	return v.endAllowed(proposed), nil
}

// ValidateBooking checks start and end independently and returns one result
// per field. An invalid start never affects the end result, or vice versa.
// Whether start precedes end is not checked.
//
// Returns domain.ErrMalformedTime, and no results, if either time is malformed.
func (v *TimeRuleValidator) ValidateBooking(start, end domain.TimeOfDay) (domain.ValidationResult, domain.ValidationResult, error) {
	if err := start.Validate(); err != nil {
		return domain.ValidationResult{}, domain.ValidationResult{},
			fmt.Errorf("service.TimeRuleValidator.ValidateBooking: start: %w", err)
	}
	if err := end.Validate(); err != nil {
		return domain.ValidationResult{}, domain.ValidationResult{},
			fmt.Errorf("service.TimeRuleValidator.ValidateBooking: end: %w", err)
	}

	startResult := domain.Accepted()
	if !v.startAllowed(start) {
		startResult = domain.StartTooEarly()
	}
	endResult := domain.Accepted()
	if !v.endAllowed(end) {
		endResult = domain.EndTooLate()
	}
	return startResult, endResult, nil
}

func (v *TimeRuleValidator) startAllowed(proposed domain.TimeOfDay) bool {
	var ok bool
	if v.strategy == domain.StrategyBusinessDay {
		ok = v.offset(proposed) >= v.offset(v.rules.EarliestStart)
	} else {
		ok = clock12StartAllowed(proposed, v.rules.EarliestStart)
	}
	v.logDecision("start", proposed, v.rules.EarliestStart, ok)
	return ok
}

func (v *TimeRuleValidator) endAllowed(proposed domain.TimeOfDay) bool {
	var ok bool
	if v.strategy == domain.StrategyBusinessDay {
		ok = v.offset(proposed) <= v.offset(v.rules.LatestEnd)
	} else {
		ok = clock12EndAllowed(proposed, v.rules.LatestEnd)
	}
	v.logDecision("end", proposed, v.rules.LatestEnd, ok)
	return ok
}

func (v *TimeRuleValidator) logDecision(field string, proposed, boundary domain.TimeOfDay, ok bool) {
	v.log.Debug("house rule checked",
		"field", field,
		"proposed", proposed.String(),
		"boundary", boundary.String(),
		"valid", ok,
		"strategy", string(v.strategy),
	)
}

// offset returns minutes elapsed since the business-day start, in [0, 1440).
func (v *TimeRuleValidator) offset(t domain.TimeOfDay) int {
	d := t.MinuteOfDay() - v.dayStart.MinuteOfDay()
	if d < 0 {
		d += domain.MinutesPerDay
	}
	return d
}

// clock12StartAllowed compares 12-hour fields directly. An AM proposal after
// a PM boundary is taken to be past midnight. Hours are not converted to a
// 24-hour clock, so 12 PM compares as later than 5 PM.
func clock12StartAllowed(proposed, earliest domain.TimeOfDay) bool {
	switch {
	case earliest.Period == domain.PM && proposed.Period == domain.AM:
		return true
	case proposed.Hour > earliest.Hour:
		return true
	case proposed.Hour == earliest.Hour && proposed.Minutes >= earliest.Minutes:
		return true
	}
	return false
}

// clock12EndAllowed accepts any PM end (before the next morning's AM
// boundary) and an AM end only when its hour is strictly below the
// boundary's. Minutes are not compared.
func clock12EndAllowed(proposed, latest domain.TimeOfDay) bool {
	return latest.Hour > proposed.Hour || proposed.Period == domain.PM
}
