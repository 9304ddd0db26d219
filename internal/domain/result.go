package domain

// ResultCode is the per-field outcome of a house-rule check. The values
// follow the HTTP-style codes the booking form keys its styling on.
type ResultCode int

const (
	CodeOK      ResultCode = 200
	CodeInvalid ResultCode = 400
)

// Messages carried by ValidationResult. They are shown verbatim to the user.
const (
	MessageOK            = "OK"
	MessageStartTooEarly = "Start time is earlier than the allowed time."
	MessageEndTooLate    = "End time is later than the allowed time."
)

// ValidationResult is the outcome of checking one booking field.
// A fresh value is produced per check and never mutated.
type ValidationResult struct {
	Code    ResultCode `json:"code"`
	Message string     `json:"message"`
}

// Accepted is the result for a field that satisfies the house rules.
func Accepted() ValidationResult {
	return ValidationResult{Code: CodeOK, Message: MessageOK}
}

// StartTooEarly is the result for a start time before the earliest allowed start.
func StartTooEarly() ValidationResult {
	return ValidationResult{Code: CodeInvalid, Message: MessageStartTooEarly}
}

// EndTooLate is the result for an end time after the latest allowed end.
func EndTooLate() ValidationResult {
	return ValidationResult{Code: CodeInvalid, Message: MessageEndTooLate}
}

// OK reports whether the field passed.
func (r ValidationResult) OK() bool {
	return r.Code == CodeOK
}
