package failure

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var InvalidDateParam = &Failure{Code: http.StatusBadRequest, Message: "invalid date parameter, expected YYYY-MM-DD"}
var InvalidRoomParam = &Failure{Code: http.StatusBadRequest, Message: "invalid room number"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// ConflictError reports a room that cannot host the requested window. BlockingDate is the
// first occupied day and MaxNights the longest stay that still fits before it.
type ConflictError struct {
	Room         int       `json:"room"`
	BlockingDate time.Time `json:"blocking_date"`
	MaxNights    int       `json:"max_nights"`
	Message      string    `json:"message"`
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Unwrap exposes the HTTP mapping so GetCode and errors.As see a conflict Failure.
func (e *ConflictError) Unwrap() error {
	return &Failure{Code: http.StatusConflict, Message: e.Message}
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

// Validation returns a new Failure for malformed input.
func Validation(format string, args ...any) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: fmt.Sprintf(format, args...),
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
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

// NotFound returns a new Failure with code for entity not found.
func NotFound(msg string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: msg,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// RoomConflict returns a ConflictError carrying the blocking date and the longest safe stay.
func RoomConflict(room int, blocking time.Time, maxNights int, message string) error {
	return &ConflictError{
		Room:         room,
		BlockingDate: blocking,
		MaxNights:    maxNights,
		Message:      message,
	}
}

// StoreUnavailable returns a new Failure for a record store that is missing or unreadable.
func StoreUnavailable(err error) error {
	msg := "record store unavailable"
	if err != nil {
		msg = fmt.Sprintf("%s: %s", msg, err.Error())
	}

	return &Failure{
		Code:    http.StatusServiceUnavailable,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// AsConflict extracts the ConflictError from err, if any.
func AsConflict(err error) (*ConflictError, bool) {
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		return conflict, true
	}

	return nil, false
}

func IsValidation(err error) bool {
	return GetCode(err) == http.StatusBadRequest
}

func IsNotFound(err error) bool {
	return GetCode(err) == http.StatusNotFound
}

func IsConflict(err error) bool {
	return GetCode(err) == http.StatusConflict
}

func IsStoreUnavailable(err error) bool {
	return GetCode(err) == http.StatusServiceUnavailable
}
