package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/sitterbook/internal/domain"
)

// BookingValidator is the subset of TimeRuleValidator the batch service needs.
type BookingValidator interface {
	ValidateBooking(start, end domain.TimeOfDay) (domain.ValidationResult, domain.ValidationResult, error)
}

// compile-time check: TimeRuleValidator must satisfy BookingValidator.
var _ BookingValidator = (*TimeRuleValidator)(nil)

// BatchService validates many bookings against the same house rules.
type BatchService struct {
	validator BookingValidator
}

// NewBatchService constructs a BatchService backed by the provided validator.
func NewBatchService(v BookingValidator) *BatchService {
	return &BatchService{validator: v}
}

// ValidateAll returns one report per booking, in input order. Bookings with
// a nil ID are assigned a fresh one.
// Returns domain.ErrMalformedTime (naming the 1-based booking number) if any
// booking holds a malformed time, and ctx.Err() if ctx is cancelled between
// bookings. Always returns a non-nil slice on success.
func (s *BatchService) ValidateAll(ctx context.Context, bookings []domain.Booking) ([]domain.BookingReport, error) {
	reports := make([]domain.BookingReport, 0, len(bookings))
	for i, b := range bookings {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("service.BatchService.ValidateAll: %w", err)
		}
		if b.ID == uuid.Nil {
			b.ID = uuid.New()
		}
		startResult, endResult, err := s.validator.ValidateBooking(b.Start, b.End)
		if err != nil {
			return nil, fmt.Errorf("service.BatchService.ValidateAll: booking %d: %w", i+1, err)
		}
		reports = append(reports, domain.BookingReport{
			BookingID:   b.ID,
			Start:       b.Start,
			End:         b.End,
			StartResult: startResult,
			EndResult:   endResult,
		})
	}
	return reports, nil
}

// Summarize counts accepted and rejected reports.
func Summarize(reports []domain.BookingReport) domain.Summary {
	sum := domain.Summary{Total: len(reports)}
	for _, r := range reports {
		if r.Accepted() {
			sum.Accepted++
		} else {
			sum.Rejected++
		}
	}
	return sum
}
