// Package server provides the HTTP REST API for the career advisor.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrAnalysisNotFound indicates the analysis ID is unknown or expired.
type ErrAnalysisNotFound struct {
	ID uuid.UUID
}

func (e *ErrAnalysisNotFound) Error() string {
	return fmt.Sprintf("analysis not found: %s", e.ID)
}

// ErrPathNotFound indicates no career path matched the requested name.
type ErrPathNotFound struct {
	Name string
}

func (e *ErrPathNotFound) Error() string {
	return fmt.Sprintf("career path not found: %s", e.Name)
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrAnalysisNotFound, *ErrPathNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
