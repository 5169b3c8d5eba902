package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	app_errors "pdf-chat/internal/errors"
)

// This file contains shared DTOs (Data Transfer Objects) for the JSON API
// and helper functions for sending consistent HTTP responses.

// ErrorResponse defines the standard JSON structure for error messages.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse defines a generic success response for operations that
// don't need to return a resource.
type StatusResponse struct {
	Status string `json:"status"`
}

// CreateConversationResponse carries the label of a new conversation.
type CreateConversationResponse struct {
	ID string `json:"id" example:"Chat 1"`
}

// SelectConversationRequest is the DTO for switching the active conversation.
type SelectConversationRequest struct {
	ID string `json:"id" validate:"required,max=100" example:"Chat 1"`
}

// SubmitQueryRequest is the DTO for asking a question in the active conversation.
type SubmitQueryRequest struct {
	Query string `json:"query" validate:"required,max=8000" example:"What is the main conclusion?"`
}

// UpdateSettingsRequest is the DTO for changing the tone of voice. An empty
// tone restores the default.
type UpdateSettingsRequest struct {
	Tone string `json:"tone" validate:"max=2000" example:"Answer in plain language."`
}

// clientError maps business-layer errors to a status code and a message that
// is safe to show to the user. The JSON API and the HTML page share it.
func clientError(err error) (int, string) {
	switch {
	case errors.Is(err, app_errors.ErrNotFound):
		return http.StatusNotFound, "The requested conversation was not found."
	case errors.Is(err, app_errors.ErrValidation):
		// Validation messages are built for the user already.
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, app_errors.ErrConflict):
		return http.StatusConflict, "Create or select a conversation first."
	case errors.Is(err, app_errors.ErrDocumentMissing):
		return http.StatusConflict, "Please upload a PDF document first."
	case errors.Is(err, app_errors.ErrExtraction):
		return http.StatusUnprocessableEntity, "The uploaded file could not be read as a PDF."
	case errors.Is(err, app_errors.ErrRemoteCall):
		return http.StatusBadGateway, "The answer could not be generated. Please try again."
	default:
		return http.StatusInternalServerError, "An unexpected internal server error occurred."
	}
}

// respondWithError is the centralized error handling function for the JSON API.
func respondWithError(w http.ResponseWriter, err error) {
	statusCode, message := clientError(err)

	// The detailed error is logged, a generic message goes to the client.
	slog.Warn("Responding with error", "status_code", statusCode, "client_message", message, "internal_error", err)

	respondWithJSON(w, statusCode, ErrorResponse{Error: message})
}

// respondWithJSON is a low-level helper for marshaling a payload to JSON
// and writing it to the http.ResponseWriter with a given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}
