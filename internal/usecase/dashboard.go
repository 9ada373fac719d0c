package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/KauaneAlmeida/dashboard-advocacia/internal/entity"
)

const (
	// DashboardLeadsLimit é o teto de leads que as telas pedem ao backend.
	DashboardLeadsLimit = 1000
	topAdvogadosCount   = 3
	followupQueueSize   = 5
)

type DashboardView struct {
	Summary            entity.DashboardSummary `json:"summary"`
	TopAdvogados       []entity.Advogado       `json:"top_advogados"`
	LeadsOverTime      []TimeSeriesPoint       `json:"leads_over_time"`
	StatusDistribution []StatusSlice           `json:"status_distribution"`
	FollowupQueue      []entity.Lead           `json:"followup_queue"`
}

type DashboardGateway interface {
	SummaryGateway
	AdvogadosGateway
	LeadsGateway
}

type DashboardUseCase struct {
	Gateway DashboardGateway
}

func NewDashboardUseCase(gateway DashboardGateway) *DashboardUseCase {
	return &DashboardUseCase{Gateway: gateway}
}

// Execute busca resumo, advogados e leads em paralelo. Se qualquer um falhar
// a tela inteira falha; não há renderização parcial.
func (uc *DashboardUseCase) Execute(ctx context.Context) (*DashboardView, error) {
	var (
		summary   *entity.DashboardSummary
		advogados []entity.Advogado
		leads     []entity.Lead
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary, err = uc.Gateway.GetDashboardSummary(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		advogados, err = uc.Gateway.GetAdvogados(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		leads, err = uc.Gateway.GetLeads(gctx, entity.LeadFilters{Limit: DashboardLeadsLimit})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, upstreamError("Erro ao carregar dados do dashboard", err)
	}

	queue := LeadsNeedingFollowup(leads)
	if len(queue) > followupQueueSize {
		queue = queue[:followupQueueSize]
	}

	return &DashboardView{
		Summary:            *summary,
		TopAdvogados:       TopAdvogadosByConversion(advogados, topAdvogadosCount),
		LeadsOverTime:      LeadsOverTime(leads),
		StatusDistribution: StatusDistribution(leads),
		FollowupQueue:      queue,
	}, nil
}
