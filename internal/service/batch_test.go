package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/sitterbook/internal/domain"
	"github.com/pkordes/sitterbook/internal/service"
)

// mockValidator is a hand-written test double for service.BookingValidator.
type mockValidator struct {
	validateBooking func(start, end domain.TimeOfDay) (domain.ValidationResult, domain.ValidationResult, error)
}

func (m *mockValidator) ValidateBooking(start, end domain.TimeOfDay) (domain.ValidationResult, domain.ValidationResult, error) {
	return m.validateBooking(start, end)
}

// compile-time check: mockValidator must satisfy service.BookingValidator.
var _ service.BookingValidator = (*mockValidator)(nil)

// ---- helpers ---------------------------------------------------------------

func booking(start, end domain.TimeOfDay) domain.Booking {
	return domain.Booking{Start: start, End: end}
}

// ---- ValidateAll -----------------------------------------------------------

func TestBatchService_ValidateAll_PreservesOrderAndResults(t *testing.T) {
	svc := service.NewBatchService(newValidator(t))
	bookings := []domain.Booking{
		booking(tod(5, 30, domain.PM), tod(11, 0, domain.PM)),
		booking(tod(4, 30, domain.PM), tod(2, 0, domain.AM)),
		booking(tod(6, 0, domain.PM), tod(4, 30, domain.AM)),
	}

	reports, err := svc.ValidateAll(context.Background(), bookings)

	require.NoError(t, err)
	require.Len(t, reports, 3)

	assert.True(t, reports[0].Accepted())
	assert.Equal(t, domain.StartTooEarly(), reports[1].StartResult)
	assert.Equal(t, domain.Accepted(), reports[1].EndResult)
	assert.Equal(t, domain.Accepted(), reports[2].StartResult)
	assert.Equal(t, domain.EndTooLate(), reports[2].EndResult)

	for i, r := range reports {
		assert.Equal(t, bookings[i].Start, r.Start)
		assert.Equal(t, bookings[i].End, r.End)
	}
}

func TestBatchService_ValidateAll_AssignsMissingIDs(t *testing.T) {
	known := uuid.New()
	svc := service.NewBatchService(newValidator(t))
	bookings := []domain.Booking{
		{ID: known, Start: tod(6, 0, domain.PM), End: tod(9, 0, domain.PM)},
		booking(tod(6, 0, domain.PM), tod(9, 0, domain.PM)),
	}

	reports, err := svc.ValidateAll(context.Background(), bookings)

	require.NoError(t, err)
	assert.Equal(t, known, reports[0].BookingID)
	assert.NotEqual(t, uuid.Nil, reports[1].BookingID)
	assert.NotEqual(t, known, reports[1].BookingID)
	assert.Equal(t, uuid.Nil, bookings[1].ID, "input slice must not be modified")
}

func TestBatchService_ValidateAll_EmptyInput(t *testing.T) {
	svc := service.NewBatchService(newValidator(t))

	reports, err := svc.ValidateAll(context.Background(), nil)

	require.NoError(t, err)
	assert.NotNil(t, reports)
	assert.Empty(t, reports)
}

func TestBatchService_ValidateAll_MalformedBookingNamesPosition(t *testing.T) {
	svc := service.NewBatchService(newValidator(t))
	bookings := []domain.Booking{
		booking(tod(6, 0, domain.PM), tod(9, 0, domain.PM)),
		{Start: tod(6, 0, domain.PM), End: domain.TimeOfDay{Hour: 25, Period: domain.AM}},
	}

	reports, err := svc.ValidateAll(context.Background(), bookings)

	require.ErrorIs(t, err, domain.ErrMalformedTime)
	assert.ErrorContains(t, err, "booking 2")
	assert.Nil(t, reports)
}

func TestBatchService_ValidateAll_PropagatesValidatorError(t *testing.T) {
	boom := errors.New("boom")
	svc := service.NewBatchService(&mockValidator{
		validateBooking: func(_, _ domain.TimeOfDay) (domain.ValidationResult, domain.ValidationResult, error) {
			return domain.ValidationResult{}, domain.ValidationResult{}, boom
		},
	})

	_, err := svc.ValidateAll(context.Background(), []domain.Booking{booking(tod(6, 0, domain.PM), tod(9, 0, domain.PM))})

	require.ErrorIs(t, err, boom)
}

func TestBatchService_ValidateAll_StopsOnCancelledContext(t *testing.T) {
	calls := 0
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc := service.NewBatchService(&mockValidator{
		validateBooking: func(_, _ domain.TimeOfDay) (domain.ValidationResult, domain.ValidationResult, error) {
			calls++
			cancel()
			return domain.Accepted(), domain.Accepted(), nil
		},
	})
	bookings := []domain.Booking{
		booking(tod(6, 0, domain.PM), tod(9, 0, domain.PM)),
		booking(tod(7, 0, domain.PM), tod(10, 0, domain.PM)),
	}

	_, err := svc.ValidateAll(ctx, bookings)

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

// ---- Summarize -------------------------------------------------------------

func TestSummarize(t *testing.T) {
	reports := []domain.BookingReport{
		{StartResult: domain.Accepted(), EndResult: domain.Accepted()},
		{StartResult: domain.StartTooEarly(), EndResult: domain.Accepted()},
		{StartResult: domain.Accepted(), EndResult: domain.EndTooLate()},
	}

	assert.Equal(t, domain.Summary{Total: 3, Accepted: 1, Rejected: 2}, service.Summarize(reports))
	assert.Equal(t, domain.Summary{}, service.Summarize(nil))
}
