package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/sitterbook/internal/domain"
)

// ReadBookings parses one booking per line in the form "start,end[,id]".
// Times take any form domain.ParseTimeOfDay accepts; id, when present, must be
// a UUID. Blank lines and lines starting with '#' are skipped.
//
// Returns domain.ErrMalformedTime for a bad time and domain.ErrValidation for
// a bad line shape or id, each naming the line number.
func ReadBookings(r io.Reader) ([]domain.Booking, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var bookings []domain.Booking
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading bookings: %v", domain.ErrValidation, err)
		}
		line, _ := cr.FieldPos(0)

		b, err := recordToBooking(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func recordToBooking(record []string) (domain.Booking, error) {
	if len(record) < 2 || len(record) > 3 {
		return domain.Booking{}, fmt.Errorf("%w: want start,end[,id], got %d field(s)", domain.ErrValidation, len(record))
	}
	start, err := domain.ParseTimeOfDay(record[0])
	if err != nil {
		return domain.Booking{}, fmt.Errorf("start: %w", err)
	}
	end, err := domain.ParseTimeOfDay(record[1])
	if err != nil {
		return domain.Booking{}, fmt.Errorf("end: %w", err)
	}
	b := domain.Booking{Start: start, End: end}
	if len(record) == 3 && strings.TrimSpace(record[2]) != "" {
		id, err := uuid.Parse(strings.TrimSpace(record[2]))
		if err != nil {
			return domain.Booking{}, fmt.Errorf("%w: id %q: %v", domain.ErrValidation, record[2], err)
		}
		b.ID = id
	}
	return b, nil
}
