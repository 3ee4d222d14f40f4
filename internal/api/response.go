package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	huerr "github.com/amterp/hue/internal/errors"
)

// errorBody is the payload of every non-2xx response.
type errorBody struct {
	Error string `json:"error"`
}

// JSON writes data as the response body with the given status.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// Error writes err with the status its kind maps to.
func Error(w http.ResponseWriter, err error) {
	fail(w, statusFor(err), err.Error())
}

// BadRequest writes a 400 for input rejected before reaching a service.
func BadRequest(w http.ResponseWriter, message string) {
	fail(w, http.StatusBadRequest, message)
}

func fail(w http.ResponseWriter, status int, message string) {
	MetricErrors.WithLabelValues(http.StatusText(status)).Inc()
	JSON(w, status, errorBody{Error: message})
}

// statusFor maps domain errors onto HTTP statuses; anything unrecognised
// is a server fault.
func statusFor(err error) int {
	var (
		unknown    *huerr.UnknownPaletteError
		badColor   *huerr.InvalidColorError
		duplicate  *huerr.AlreadyExistsError
		validation *huerr.ValidationError
	)
	switch {
	case errors.As(err, &unknown):
		return http.StatusNotFound
	case errors.As(err, &duplicate):
		return http.StatusConflict
	case errors.As(err, &badColor), errors.As(err, &validation):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
