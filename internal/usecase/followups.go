package usecase

import (
	"context"

	"github.com/KauaneAlmeida/dashboard-advocacia/internal/entity"
)

type FollowupsView struct {
	Leads []entity.Lead `json:"leads"`
	// Total é o total_followups informado pelo backend, só para exibição.
	Total int `json:"total"`
}

type FollowupsUseCase struct {
	Gateway FollowupLeadsGateway
}

func NewFollowupsUseCase(gateway FollowupLeadsGateway) *FollowupsUseCase {
	return &FollowupsUseCase{Gateway: gateway}
}

func (uc *FollowupsUseCase) Execute(ctx context.Context) (*FollowupsView, error) {
	leads, total, err := uc.Gateway.GetFollowupLeads(ctx)
	if err != nil {
		return nil, upstreamError("Erro ao carregar follow-ups", err)
	}

	pending := LeadsNeedingFollowup(leads)
	if pending == nil {
		pending = []entity.Lead{}
	}
	if total == 0 {
		total = len(pending)
	}
	return &FollowupsView{Leads: pending, Total: total}, nil
}
