package usecase

import "errors"

// DomainError é um erro que o usuário consegue corrigir (campo faltando, ação indisponível).
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// TechnicalError embrulha falhas do backend ou da infraestrutura.
type TechnicalError struct {
	Code    string
	Message string
	Err     error
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func (e *TechnicalError) Unwrap() error {
	return e.Err
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

const (
	CodeMissingFields = "MISSING_FIELDS"
	CodeInvalidEmail  = "INVALID_EMAIL"
	CodeInvalidSeg    = "INVALID_SEGMENT"
	CodeSendDisabled  = "SEND_DISABLED"
	CodeInvalidState  = "INVALID_STATE"
	CodeUpstream      = "UPSTREAM_ERROR"
	CodeStorage       = "STORAGE_ERROR"
)

func upstreamError(message string, err error) *TechnicalError {
	return &TechnicalError{Code: CodeUpstream, Message: message, Err: err}
}
