package handlers

import (
	"net/http"

	"github.com/KauaneAlmeida/dashboard-advocacia/internal/entity"
	"github.com/KauaneAlmeida/dashboard-advocacia/internal/infra/http/middleware"
	"github.com/KauaneAlmeida/dashboard-advocacia/internal/usecase"
)

// AuthHandler cobre login, cadastro, logout e a tela de configurações:
// tudo é estado da mesma sessão.
type AuthHandler struct {
	Session *usecase.SessionService
}

func NewAuthHandler(session *usecase.SessionService) *AuthHandler {
	return &AuthHandler{Session: session}
}

// Login (POST /api/auth/login)
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input usecase.LoginInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	res, err := h.Session.Login(r.Context(), middleware.SessionID(r.Context()), input)
	if err != nil {
		writeErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Register (POST /api/auth/register)
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input usecase.RegisterInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	res, err := h.Session.Register(r.Context(), middleware.SessionID(r.Context()), input)
	if err != nil {
		writeErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

// Logout (POST /api/auth/logout)
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	res, err := h.Session.Logout(r.Context(), middleware.SessionID(r.Context()))
	if err != nil {
		writeErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// GetSettings (GET /api/settings) usa o que o middleware já carregou.
func (h *AuthHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, ok := middleware.SessionSettings(r.Context())
	if !ok {
		var err error
		settings, err = h.Session.Load(r.Context(), middleware.SessionID(r.Context()))
		if err != nil {
			writeErrorResponse(w, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, struct {
		Settings entity.Settings `json:"settings"`
	}{settings})
}

// UpdateSettings (PUT /api/settings)
func (h *AuthHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var patch usecase.SettingsPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	res, err := h.Session.UpdateSettings(r.Context(), middleware.SessionID(r.Context()), patch)
	if err != nil {
		writeErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
