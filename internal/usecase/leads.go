package usecase

import (
	"context"

	"github.com/KauaneAlmeida/dashboard-advocacia/internal/entity"
)

type LeadsInput struct {
	Search  string
	Status  string
	Filters entity.LeadFilters
}

type LeadsView struct {
	Leads []entity.Lead `json:"leads"`
	Shown int           `json:"shown"`
	Total int           `json:"total"`
}

type LeadsUseCase struct {
	Gateway LeadsGateway
}

func NewLeadsUseCase(gateway LeadsGateway) *LeadsUseCase {
	return &LeadsUseCase{Gateway: gateway}
}

// Execute busca a lista completa e aplica a busca da tela localmente.
// O status também segue como filtro para o backend, exceto "Todos".
func (uc *LeadsUseCase) Execute(ctx context.Context, input LeadsInput) (*LeadsView, error) {
	filters := input.Filters
	if filters.Limit <= 0 {
		filters.Limit = DashboardLeadsLimit
	}
	if filters.Status == "" && input.Status != StatusAll {
		filters.Status = input.Status
	}

	leads, err := uc.Gateway.GetLeads(ctx, filters)
	if err != nil {
		return nil, upstreamError("Erro ao carregar leads", err)
	}

	shown := SearchLeads(leads, input.Search, input.Status)
	return &LeadsView{
		Leads: shown,
		Shown: len(shown),
		Total: len(leads),
	}, nil
}
