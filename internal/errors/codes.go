package errors

// Code classifies an error for programmatic handling.
type Code string

// Error codes used across the service. The calculation core never returns
// errors; these surface only from storage, IO, and orchestration.
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// String returns the code's wire form.
func (c Code) String() string {
	return string(c)
}
