package utils

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope every JSON endpoint answers with.
type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

func writeEnvelope(w http.ResponseWriter, code int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	// the status line is already out, nothing useful to do with an encode error
	_ = json.NewEncoder(w).Encode(body)
}

func ok(w http.ResponseWriter, code int, message string, data any) {
	writeEnvelope(w, code, Response{Status: true, Message: message, Data: data})
}

func fail(w http.ResponseWriter, code int, message string, errs any) {
	writeEnvelope(w, code, Response{Message: message, Errors: errs})
}

func ResponseSuccess(w http.ResponseWriter, message string, data any) {
	ok(w, http.StatusOK, message, data)
}

func ResponseCreated(w http.ResponseWriter, message string, data any) {
	ok(w, http.StatusCreated, message, data)
}

// ResponseBadRequest carries field-level validation errors when there are any.
func ResponseBadRequest(w http.ResponseWriter, message string, errs any) {
	fail(w, http.StatusBadRequest, message, errs)
}

func ResponseUnauthorized(w http.ResponseWriter, message string) {
	fail(w, http.StatusUnauthorized, message, nil)
}

func ResponseForbidden(w http.ResponseWriter, message string) {
	fail(w, http.StatusForbidden, message, nil)
}

func ResponseNotFound(w http.ResponseWriter, message string) {
	fail(w, http.StatusNotFound, message, nil)
}

func ResponseConflict(w http.ResponseWriter, message string) {
	fail(w, http.StatusConflict, message, nil)
}

func ResponseInternalError(w http.ResponseWriter, message string) {
	fail(w, http.StatusInternalServerError, message, nil)
}
