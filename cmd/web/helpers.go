package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mkorpela/liftplan/internal/errors"
)

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error", errors.SlogError(err))
	app.writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON encodes v to the response with the given status code.
func (app *application) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		app.logger.LogAttrs(r.Context(), slog.LevelError, "encode response", errors.SlogError(err))
	}
}

// decodeJSON decodes the request body into v. Unknown fields are
// rejected so that client typos surface as errors instead of silently
// ignored settings.
func decodeJSON(r *http.Request, v any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

// badRequest reports a malformed request back to the client.
func (app *application) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.LogAttrs(r.Context(), slog.LevelDebug, "bad request", errors.SlogError(err))
	app.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: err.Error()})
}

// unprocessable reports a well-formed request that cannot be acted on,
// such as asking for a nutrition plan before filling in the profile.
func (app *application) unprocessable(w http.ResponseWriter, r *http.Request, message string) {
	app.writeJSON(w, r, http.StatusUnprocessableEntity, errorResponse{Error: message})
}

// parseIntParam parses an integer path parameter from the request URL.
// On failure, sends HTTP 404 response automatically.
func (app *application) parseIntParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	value, err := strconv.Atoi(r.PathValue(name))
	if err != nil {
		http.NotFound(w, r)
		return 0, false
	}
	return value, true
}
