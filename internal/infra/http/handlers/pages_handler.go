package handlers

import (
	"net/http"
	"strconv"

	"github.com/KauaneAlmeida/dashboard-advocacia/internal/entity"
	"github.com/KauaneAlmeida/dashboard-advocacia/internal/usecase"
)

// PagesHandler serve os dados já prontos de cada tela.
type PagesHandler struct {
	Dashboard *usecase.DashboardUseCase
	Leads     *usecase.LeadsUseCase
	Followups *usecase.FollowupsUseCase
	Advogados *usecase.AdvogadosUseCase
}

func NewPagesHandler(
	dashboard *usecase.DashboardUseCase,
	leads *usecase.LeadsUseCase,
	followups *usecase.FollowupsUseCase,
	advogados *usecase.AdvogadosUseCase,
) *PagesHandler {
	return &PagesHandler{
		Dashboard: dashboard,
		Leads:     leads,
		Followups: followups,
		Advogados: advogados,
	}
}

// GetDashboard (GET /api/dashboard)
func (h *PagesHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	view, err := h.Dashboard.Execute(r.Context())
	if err != nil {
		writeErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// GetLeads (GET /api/leads?search&status&start_date&end_date&advogado_id&limit)
func (h *PagesHandler) GetLeads(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	input := usecase.LeadsInput{
		Search: q.Get("search"),
		Status: q.Get("status"),
		Filters: entity.LeadFilters{
			StartDate:  q.Get("start_date"),
			EndDate:    q.Get("end_date"),
			AdvogadoID: q.Get("advogado_id"),
		},
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			writeError(w, http.StatusBadRequest, "INVALID_LIMIT", "limit deve ser um inteiro positivo")
			return
		}
		input.Filters.Limit = limit
	}

	view, err := h.Leads.Execute(r.Context(), input)
	if err != nil {
		writeErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// GetFollowups (GET /api/followups)
func (h *PagesHandler) GetFollowups(w http.ResponseWriter, r *http.Request) {
	view, err := h.Followups.Execute(r.Context())
	if err != nil {
		writeErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// GetAdvogados (GET /api/advogados)
func (h *PagesHandler) GetAdvogados(w http.ResponseWriter, r *http.Request) {
	ranked, err := h.Advogados.Execute(r.Context())
	if err != nil {
		writeErrorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ranked)
}
