package handlers

import (
	"errors"
	"net/http"

	"github.com/consultacr/app-fiscal/internal/models"
)

// ErrorResponse is the error body returned by every endpoint
type ErrorResponse struct {
	Error string `json:"error"`
}

// statusForError maps the error taxonomy onto HTTP statuses: local
// rejections are the caller's fault, everything upstream is a gateway
// problem.
func statusForError(err error) int {
	var valErr *models.ValidationError
	if errors.As(err, &valErr) {
		return http.StatusBadRequest
	}

	var netErr *models.NetworkError
	if errors.As(err, &netErr) {
		return http.StatusGatewayTimeout
	}

	return http.StatusBadGateway
}
