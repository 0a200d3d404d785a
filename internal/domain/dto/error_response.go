package dto

import "time"

// ErrorResponse is the standardized JSON error body returned by every
// endpoint. It doubles as an error value so middleware can propagate it.
type ErrorResponse struct {
	Message      string    `json:"message" example:"failed to process statement"` // Human-readable summary
	ErrorDetails string    `json:"error,omitempty" example:"no ptax rate found"`  // Underlying error, when safe to expose
	Timestamp    time.Time `json:"timestamp"`                                     // Moment the error response was built
}

// Error implements the error interface.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse with the current timestamp.
// A nil err leaves ErrorDetails empty.
func NewErrorResponse(message string, err error) ErrorResponse {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return ErrorResponse{
		Message:      message,
		ErrorDetails: details,
		Timestamp:    time.Now(),
	}
}
