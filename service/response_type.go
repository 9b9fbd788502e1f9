package service

// ResponseType enumerates the outcome classes a service call can report
type ResponseType int

const (
	// InvalidData response
	InvalidData ResponseType = iota

	// Error response
	Error

	// Forbidden response
	Forbidden

	// NotFound response
	NotFound

	// Success response
	Success

	// UnknownOutcome response - a provider call timed out or answered
	// ambiguously after possibly moving money; the caller must verify in the
	// provider dashboard before retrying
	UnknownOutcome

	// Conflict response
	Conflict
)

var vals = [...]string{
	"invalid-data",
	"error",
	"forbidden",
	"not-found",
	"success",
	"unknown-outcome",
	"conflict",
}

// String representation of `ResponseType`
func (a ResponseType) String() string {
	return vals[a]
}
