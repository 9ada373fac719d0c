package handlers

import (
	"net/http"

	"github.com/KauaneAlmeida/dashboard-advocacia/internal/infra/http/middleware"
	"github.com/KauaneAlmeida/dashboard-advocacia/internal/usecase"
)

type MassFollowupHandler struct {
	UseCase *usecase.MassFollowupUseCase
}

func NewMassFollowupHandler(uc *usecase.MassFollowupUseCase) *MassFollowupHandler {
	return &MassFollowupHandler{UseCase: uc}
}

type PreviewRequest struct {
	TipoLead string `json:"tipo_lead"`
}

// Snapshot (GET /api/followups/mass) é o endpoint de polling do diálogo.
func (h *MassFollowupHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := h.UseCase.Snapshot(r.Context(), middleware.SessionID(r.Context()))
	if err != nil {
		writeErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// Preview (POST /api/followups/mass/preview)
func (h *MassFollowupHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req PreviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	snap, err := h.UseCase.SelectSegment(r.Context(), middleware.SessionID(r.Context()), req.TipoLead)
	if err != nil {
		writeErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// Send (POST /api/followups/mass/send) responde 202: o envio segue no worker.
func (h *MassFollowupHandler) Send(w http.ResponseWriter, r *http.Request) {
	snap, err := h.UseCase.Send(r.Context(), middleware.SessionID(r.Context()))
	if err != nil {
		writeErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, snap)
}

// Close (POST /api/followups/mass/close)
func (h *MassFollowupHandler) Close(w http.ResponseWriter, r *http.Request) {
	res, err := h.UseCase.Close(r.Context(), middleware.SessionID(r.Context()))
	if err != nil {
		writeErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
