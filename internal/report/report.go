// Package report reads proposed bookings from text input and renders
// booking reports as text, JSON, or CSV.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkordes/sitterbook/internal/domain"
)

// Format selects how Write renders reports.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat accepts a Format name in any case.
// Returns domain.ErrValidation for anything else.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatCSV:
		return f, nil
	}
	return "", fmt.Errorf("%w: unknown format %q (want text, json or csv)", domain.ErrValidation, s)
}

// csvHeaders defines the column names written as the first row of CSV output.
var csvHeaders = []string{
	"booking_id", "start", "end",
	"start_code", "start_message", "end_code", "end_message",
	"accepted",
}

// jsonOutput is the document written for FormatJSON.
type jsonOutput struct {
	Bookings []jsonBooking `json:"bookings"`
	Summary  domain.Summary `json:"summary"`
}

type jsonBooking struct {
	domain.BookingReport
	Accepted bool `json:"accepted"`
}

// Write renders reports to w in the given format. sum is included in the
// text and JSON forms; CSV carries one row per booking only.
func Write(w io.Writer, format Format, reports []domain.BookingReport, sum domain.Summary) error {
	switch format {
	case FormatText:
		return writeText(w, reports, sum)
	case FormatJSON:
		return writeJSON(w, reports, sum)
	case FormatCSV:
		return writeCSV(w, reports)
	}
	return fmt.Errorf("%w: unknown format %q", domain.ErrValidation, string(format))
}

// writeText prints one line per field, marked thumbs-up or thumbs-down by
// result code, followed by a summary line.
func writeText(w io.Writer, reports []domain.BookingReport, sum domain.Summary) error {
	for _, r := range reports {
		if _, err := fmt.Fprintf(w, "booking %s\n", r.BookingID); err != nil {
			return err
		}
		if err := writeField(w, "start", r.Start, r.StartResult); err != nil {
			return err
		}
		if err := writeField(w, "end", r.End, r.EndResult); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d booking(s): %d accepted, %d rejected\n", sum.Total, sum.Accepted, sum.Rejected)
	return err
}

func writeField(w io.Writer, name string, at domain.TimeOfDay, res domain.ValidationResult) error {
	_, err := fmt.Fprintf(w, "  %-5s %-8s %-11s %d %s\n", name, at, thumb(res), res.Code, res.Message)
	return err
}

// thumb maps a result code to the marker the booking form shows next to a field.
func thumb(res domain.ValidationResult) string {
	if res.OK() {
		return "thumbs-up"
	}
	return "thumbs-down"
}

func writeJSON(w io.Writer, reports []domain.BookingReport, sum domain.Summary) error {
	out := jsonOutput{Bookings: make([]jsonBooking, 0, len(reports)), Summary: sum}
	for _, r := range reports {
		out.Bookings = append(out.Bookings, jsonBooking{BookingReport: r, Accepted: r.Accepted()})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeCSV(w io.Writer, reports []domain.BookingReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeaders); err != nil {
		return err
	}
	for _, r := range reports {
		if err := cw.Write(reportToCSVRecord(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// reportToCSVRecord encodes a report as a flat string slice in csvHeaders order.
func reportToCSVRecord(r domain.BookingReport) []string {
	return []string{
		r.BookingID.String(),
		r.Start.String(),
		r.End.String(),
		strconv.Itoa(int(r.StartResult.Code)),
		r.StartResult.Message,
		strconv.Itoa(int(r.EndResult.Code)),
		r.EndResult.Message,
		strconv.FormatBool(r.Accepted()),
	}
}
