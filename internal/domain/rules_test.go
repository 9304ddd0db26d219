package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/sitterbook/internal/domain"
)

func TestDefaultHouseRules(t *testing.T) {
	rules := domain.DefaultHouseRules()

	require.NoError(t, rules.Validate())
	assert.Equal(t, "5:00 PM", rules.EarliestStart.String())
	assert.Equal(t, "4:00 AM", rules.LatestEnd.String())
}

func TestHouseRules_Validate_NamesBoundary(t *testing.T) {
	rules := domain.DefaultHouseRules()
	rules.LatestEnd = domain.TimeOfDay{Hour: 4, Minutes: 90, Period: domain.AM}

	err := rules.Validate()

	require.ErrorIs(t, err, domain.ErrMalformedTime)
	assert.ErrorContains(t, err, "latest end")
}

func TestParseStrategy(t *testing.T) {
	s, err := domain.ParseStrategy("BusinessDay")
	require.NoError(t, err)
	assert.Equal(t, domain.StrategyBusinessDay, s)

	s, err = domain.ParseStrategy("clock12")
	require.NoError(t, err)
	assert.Equal(t, domain.StrategyClock12, s)

	_, err = domain.ParseStrategy("")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestValidationResult_OK(t *testing.T) {
	assert.True(t, domain.Accepted().OK())
	assert.False(t, domain.StartTooEarly().OK())
	assert.False(t, domain.EndTooLate().OK())
	assert.Equal(t, domain.CodeOK, domain.Accepted().Code)
	assert.Equal(t, domain.CodeInvalid, domain.EndTooLate().Code)
}

func TestBookingReport_Accepted(t *testing.T) {
	r := domain.BookingReport{StartResult: domain.Accepted(), EndResult: domain.Accepted()}
	assert.True(t, r.Accepted())

	r.EndResult = domain.EndTooLate()
	assert.False(t, r.Accepted())
}
