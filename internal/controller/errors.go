package controller

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError is a failure meant for the client. Message is either a string
// or a []string and is passed through unchanged.
type StatusError struct {
	Status  int
	Message any
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%d %s: %v", e.Status, http.StatusText(e.Status), e.Message)
}

func BadRequest(message any) *StatusError {
	return &StatusError{Status: http.StatusBadRequest, Message: message}
}

func NotFound(message string) *StatusError {
	return &StatusError{Status: http.StatusNotFound, Message: message}
}

func Internal() *StatusError {
	return &StatusError{Status: http.StatusInternalServerError, Message: "an unexpected error occurred"}
}

// AsStatusError unwraps err into a StatusError, treating anything else as internal.
func AsStatusError(err error) *StatusError {
	var se *StatusError
	if errors.As(err, &se) {
		return se
	}
	return Internal()
}
