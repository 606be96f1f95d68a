package server

import (
	"errors"
	"net/http"

	"github.com/misbah/resumeai/internal/render"
	"github.com/misbah/resumeai/internal/transform"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
// Generation failures are the backend's fault from the caller's point of
// view; render faults are internal defects.
func HTTPStatus(err error) int {
	var genErr *transform.GenerationError
	if errors.As(err, &genErr) {
		return http.StatusBadGateway
	}
	var fault *render.Fault
	if errors.As(err, &fault) {
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}
