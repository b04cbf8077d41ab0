package failure

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error returns the failure message.
func (f *Failure) Error() string {
	return f.Message
}

// MissingFields returns a 400 failure naming every missing required field.
func MissingFields(fields []string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: "missing required fields: " + strings.Join(fields, ", "),
	}
}

// DuplicateReference returns a 409 failure for a reused unique reference.
func DuplicateReference(ref string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: fmt.Sprintf("reference %s already exists", ref),
	}
}

// NotFound returns a 404 failure for an absent entity.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName + " not found",
	}
}

// InvalidDateRange returns a 400 failure for a stay whose check-out does not
// fall strictly after its check-in.
func InvalidDateRange(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// ValidationError returns a 400 failure for a schema constraint violation,
// such as a value outside a declared enum.
func ValidationError(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// StorageUnavailable returns a 503 failure wrapping a connection or transport
// error from the underlying store.
func StorageUnavailable(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusServiceUnavailable,
			Message: "storage unavailable: " + err.Error(),
		}
	}
	return nil
}

// BadRequest returns a 400 failure with message set from string.
func BadRequest(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// GetCode returns the HTTP status code carried by an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}
	return http.StatusInternalServerError
}

// IsNotFound reports whether err is a 404 failure.
func IsNotFound(err error) bool {
	return GetCode(err) == http.StatusNotFound
}
