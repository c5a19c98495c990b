package httpx

import (
	"encoding/json"
	"net/http"
)

type errorBody struct {
	Error string `json:"error"`
}

type validationBody struct {
	Errors any `json:"errors"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes the flat {"error": msg} envelope every non-validation
// failure uses.
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, errorBody{Error: msg})
}

// WriteValidationErrors writes the field-scoped 400 body.
func WriteValidationErrors(w http.ResponseWriter, errs any) {
	WriteJSON(w, http.StatusBadRequest, validationBody{Errors: errs})
}
