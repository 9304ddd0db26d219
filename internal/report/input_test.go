package report_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/sitterbook/internal/domain"
	"github.com/pkordes/sitterbook/internal/report"
)

func TestReadBookings(t *testing.T) {
	in := strings.NewReader(`# start,end[,id]
5:30 PM, 11:00 PM

17:00,02:30,6f1c2f3e-8a7b-4c2d-9e0f-112233445566
4|30|PM,4|30|AM,
`)

	bookings, err := report.ReadBookings(in)

	require.NoError(t, err)
	require.Len(t, bookings, 3)

	assert.Equal(t, domain.Booking{
		Start: domain.MustTimeOfDay(5, 30, domain.PM),
		End:   domain.MustTimeOfDay(11, 0, domain.PM),
	}, bookings[0])
	assert.Equal(t, domain.Booking{
		ID:    uuid.MustParse("6f1c2f3e-8a7b-4c2d-9e0f-112233445566"),
		Start: domain.MustTimeOfDay(5, 0, domain.PM),
		End:   domain.MustTimeOfDay(2, 30, domain.AM),
	}, bookings[1])
	assert.Equal(t, uuid.Nil, bookings[2].ID)
}

func TestReadBookings_Empty(t *testing.T) {
	bookings, err := report.ReadBookings(strings.NewReader("\n# nothing here\n"))

	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestReadBookings_MalformedTimeNamesLine(t *testing.T) {
	in := strings.NewReader("5:30 PM,11:00 PM\n5:30 PM,13:00 AM\n")

	_, err := report.ReadBookings(in)

	require.ErrorIs(t, err, domain.ErrMalformedTime)
	assert.ErrorContains(t, err, "line 2")
	assert.ErrorContains(t, err, "end")
}

func TestReadBookings_BadShape(t *testing.T) {
	for name, in := range map[string]string{
		"one field":   "5:30 PM\n",
		"four fields": "5:30 PM,6:00 PM,x,y\n",
		"bad id":      "5:30 PM,6:00 PM,not-a-uuid\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := report.ReadBookings(strings.NewReader(in))
			require.ErrorIs(t, err, domain.ErrValidation)
			assert.ErrorContains(t, err, "line 1")
		})
	}
}
