package analytics

import "fmt"

// DefaultAPIErrorMessage é usado quando o backend manda success:false sem mensagem.
const DefaultAPIErrorMessage = "Erro na API"

// NetworkError cobre falha de transporte (Err preenchido) ou status fora de 2xx.
type NetworkError struct {
	StatusCode int
	StatusText string
	Err        error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("erro de rede: %v", e.Err)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.StatusText)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// APIError é o envelope com success:false.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}
