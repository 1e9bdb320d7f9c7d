package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`

	// Allow carries the permitted method for method-not-allowed failures.
	Allow string `json:"-"`
}

var MissingBookingFields = &Failure{Code: http.StatusBadRequest, Message: "Missing required booking details"}
var MissingContactInfo = &Failure{Code: http.StatusBadRequest, Message: "Contact information is required"}
var MissingPropertyID = &Failure{Code: http.StatusBadRequest, Message: "Property ID is required"}
var InvalidPriceParam = &Failure{Code: http.StatusBadRequest, Message: "invalid price parameter"}

// Error returns the error message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// MethodNotAllowed returns a new Failure for requests using an unsupported
// HTTP method. The allowed method is surfaced in the Allow response header.
func MethodNotAllowed(method, allow string) error {
	return &Failure{
		Code:    http.StatusMethodNotAllowed,
		Message: "Method " + method + " Not Allowed",
		Allow:   allow,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetAllow returns the Allow header value carried by a method-not-allowed failure.
func GetAllow(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Allow
	}

	return ""
}
