package usecase

import (
	"context"

	"github.com/KauaneAlmeida/dashboard-advocacia/internal/entity"
)

type LeadsGateway interface {
	GetLeads(ctx context.Context, filters entity.LeadFilters) ([]entity.Lead, error)
}

type FollowupLeadsGateway interface {
	GetFollowupLeads(ctx context.Context) ([]entity.Lead, int, error)
}

type AdvogadosGateway interface {
	GetAdvogados(ctx context.Context) ([]entity.Advogado, error)
}

type SummaryGateway interface {
	GetDashboardSummary(ctx context.Context) (*entity.DashboardSummary, error)
}

type HealthChecker interface {
	CheckHealth(ctx context.Context) bool
}

type PreviewGateway interface {
	PreviewFollowup(ctx context.Context, segment entity.Segment) (*entity.FollowupPreview, error)
}

type MassSenderGateway interface {
	SendMassFollowup(ctx context.Context, input entity.MassFollowupRequest) (*entity.MassFollowupResult, error)
}

type JobQueueInterface interface {
	PublishMassFollowup(ctx context.Context, job entity.MassFollowupJob) error
}

type JobStoreInterface interface {
	Save(ctx context.Context, job entity.MassFollowupJob) error
	// Get retorna ErrJobNotFound quando o job não existe (ou expirou).
	Get(ctx context.Context, id string) (*entity.MassFollowupJob, error)
}

type ReportSender interface {
	SendFollowupReport(to string, job entity.MassFollowupJob) error
}
