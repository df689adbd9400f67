package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/iho/customscore/internal/adapter/http/dto"
	"github.com/iho/customscore/internal/domain"
)

// HeaderActorID names the caller recorded in created_by columns and audit rows.
const HeaderActorID = "X-Actor-ID"

// AnonymousActor is used when a request carries no actor header.
const AnonymousActor = "anonymous"

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// writeDomainError maps err to a status and writes it. Unexpected errors are
// logged and their text is not leaked to the caller.
func writeDomainError(w http.ResponseWriter, r *http.Request, message string, err error) {
	status := mapDomainError(err)
	if status == http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg(message)
		writeError(w, status, message, "internal error")
		return
	}
	writeError(w, status, message, err.Error())
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrLedgerEntryNotFound),
		errors.Is(err, domain.ErrDeclarationNotFound),
		errors.Is(err, domain.ErrMRNNotFound),
		errors.Is(err, domain.ErrGenealogyNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyReleased),
		errors.Is(err, domain.ErrDeclarationCleared),
		errors.Is(err, domain.ErrMRNAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrAccountInactive),
		errors.Is(err, domain.ErrInsufficientCapacity),
		errors.Is(err, domain.ErrNotADebit),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidLimit),
		errors.Is(err, domain.ErrCurrencyMismatch),
		errors.Is(err, domain.ErrDeclarationInvalid),
		errors.Is(err, domain.ErrGuaranteeRequired),
		errors.Is(err, domain.ErrMRNInactive),
		errors.Is(err, domain.ErrMRNRequired),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrTraceKeyRequired),
		errors.Is(err, domain.ErrInvalidTraceLink),
		errors.Is(err, domain.ErrActorRequired),
		errors.Is(err, domain.ErrInvalidCurrency),
		errors.Is(err, domain.ErrAmountTooLarge),
		errors.Is(err, domain.ErrAmountTooSmall),
		errors.Is(err, domain.ErrInvalidAccountNumber):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// decodeAndValidate reads a JSON body into req and checks its tags. On
// failure the error response has already been written.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return false
	}

	if details := dto.Validate(req); len(details) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation failed",
			Details: details,
		})
		return false
	}

	return true
}

// actorFromRequest returns the caller named by the actor header.
func actorFromRequest(r *http.Request) string {
	if actor := r.Header.Get(HeaderActorID); actor != "" {
		return actor
	}
	return AnonymousActor
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}

// parseBoolQuery parses an optional boolean query parameter.
func parseBoolQuery(r *http.Request, key string) (*bool, error) {
	val := r.URL.Query().Get(key)
	if val == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
