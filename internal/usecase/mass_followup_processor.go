package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/KauaneAlmeida/dashboard-advocacia/internal/entity"
)

// MassFollowupProcessor executa um job vindo da fila: chama o backend,
// grava o resultado no store e manda o relatório por email se pedido.
type MassFollowupProcessor struct {
	Sender  MassSenderGateway
	Jobs    JobStoreInterface
	Reports ReportSender
	Logger  *zap.Logger
	// OnFinished recebe o estado final de cada job (métricas).
	OnFinished func(state entity.JobState)

	now func() time.Time
}

func NewMassFollowupProcessor(sender MassSenderGateway, jobs JobStoreInterface, reports ReportSender, logger *zap.Logger) *MassFollowupProcessor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MassFollowupProcessor{
		Sender:  sender,
		Jobs:    jobs,
		Reports: reports,
		Logger:  logger,
		now:     time.Now,
	}
}

// Execute só devolve erro quando o store falha; falha do backend fica
// registrada no job como FAILED e a mensagem pode ser confirmada.
func (p *MassFollowupProcessor) Execute(ctx context.Context, job entity.MassFollowupJob) error {
	if job.State.Finished() {
		p.Logger.Info("⏭️ Job já finalizado, ignorando", zap.String("job_id", job.ID))
		return nil
	}

	job.State = entity.JobSending
	job.UpdatedAt = p.now()
	if err := p.Jobs.Save(ctx, job); err != nil {
		return fmt.Errorf("erro ao marcar job %s como enviando: %w", job.ID, err)
	}

	p.Logger.Info("🚀 Enviando follow-up em massa",
		zap.String("job_id", job.ID),
		zap.String("segment", string(job.Segment)),
		zap.Int("recipients", job.Recipients),
	)

	result, err := p.Sender.SendMassFollowup(ctx, entity.MassFollowupRequest{
		TipoLead:            job.Segment,
		DelayEntreMensagens: job.DelaySeconds,
	})
	if err != nil {
		job.State = entity.JobFailed
		job.Error = err.Error()
		p.Logger.Error("❌ Follow-up em massa falhou", zap.String("job_id", job.ID), zap.Error(err))
	} else {
		job.State = entity.JobCompleted
		job.Result = result
		p.Logger.Info("✅ Follow-up em massa concluído",
			zap.String("job_id", job.ID),
			zap.Int("enviadas", result.MensagensEnviadas),
			zap.Int("falhadas", result.MensagensFalhadas),
		)
	}
	job.UpdatedAt = p.now()

	if err := p.Jobs.Save(ctx, job); err != nil {
		return fmt.Errorf("erro ao salvar resultado do job %s: %w", job.ID, err)
	}

	if p.OnFinished != nil {
		p.OnFinished(job.State)
	}

	if job.State == entity.JobCompleted && job.NotifyEmail != "" && p.Reports != nil {
		if err := p.Reports.SendFollowupReport(job.NotifyEmail, job); err != nil {
			p.Logger.Warn("⚠️ Relatório por email não enviado", zap.String("job_id", job.ID), zap.Error(err))
		} else {
			p.Logger.Info("📧 Relatório de follow-up enviado", zap.String("job_id", job.ID), zap.String("to", job.NotifyEmail))
		}
	}
	return nil
}
