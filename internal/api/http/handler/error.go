package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nqhuy/kanban-server/internal/apierrors"
	"github.com/nqhuy/kanban-server/internal/logger"
	"github.com/nqhuy/kanban-server/internal/model"
)

type messageResponse struct {
	Message string `json:"message"`
}

type validationResponse struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, messageResponse{Message: message})
}

func respondValidation(w http.ResponseWriter, fields map[string]string) {
	respondJSON(w, http.StatusBadRequest, validationResponse{Message: "Validation failed", Fields: fields})
}

// respondError maps an error to the client-visible status and message.
// Anything outside the API error taxonomy is logged and surfaced as a
// generic server error; internals never reach the client.
func respondError(log *logger.Logger, w http.ResponseWriter, err error) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		respondMessage(w, apiErr.Status, apiErr.Message)
		return
	}

	if errors.Is(err, model.ErrNotFound) {
		respondMessage(w, http.StatusNotFound, "record not found")
		return
	}

	log.Error("HTTP handler: internal error", "error", err.Error())
	respondMessage(w, http.StatusInternalServerError, "Server error, please try again later!")
}
