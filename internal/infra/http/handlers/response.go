package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/KauaneAlmeida/dashboard-advocacia/internal/usecase"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}

// writeErrorResponse traduz os erros de use case para status HTTP.
func writeErrorResponse(w http.ResponseWriter, err error) {
	var de *usecase.DomainError
	if errors.As(err, &de) {
		status := http.StatusBadRequest
		if de.Code == usecase.CodeSendDisabled || de.Code == usecase.CodeInvalidState {
			status = http.StatusConflict
		}
		writeError(w, status, de.Code, de.Message)
		return
	}

	var te *usecase.TechnicalError
	if errors.As(err, &te) {
		status := http.StatusBadGateway
		if te.Code == usecase.CodeStorage {
			status = http.StatusInternalServerError
		}
		writeError(w, status, te.Code, te.Message)
		return
	}

	writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Erro interno")
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
