package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/KauaneAlmeida/dashboard-advocacia/internal/entity"
)

type MassState string

const (
	MassIdle           MassState = "IDLE"
	MassPreviewLoading MassState = "PREVIEW_LOADING"
	MassPreviewReady   MassState = "PREVIEW_READY"
	MassSending        MassState = "SENDING"
	MassCompleted      MassState = "COMPLETED"
)

const (
	msgPreviewFailed = "Erro ao carregar preview do follow-up"
	msgSendFailed    = "Erro ao enviar follow-ups"
	msgSendDisabled  = "Nenhum lead para enviar"
	msgJobLost       = "Envio não encontrado"
)

// SessionIdleTTL é quanto um diálogo fica em memória sem nenhum acesso.
const SessionIdleTTL = 2 * time.Hour

// Progress não é estimado por tempo: enquanto envia é indeterminado,
// vai a 100 quando o backend confirma e volta a 0 em qualquer reset.
type Progress struct {
	Percent       int  `json:"percent"`
	Indeterminate bool `json:"indeterminate"`
}

func progressFor(state MassState) Progress {
	switch state {
	case MassSending:
		return Progress{Indeterminate: true}
	case MassCompleted:
		return Progress{Percent: 100}
	default:
		return Progress{}
	}
}

type MassFollowupSnapshot struct {
	State            MassState                  `json:"state"`
	Segment          entity.Segment             `json:"segment,omitempty"`
	Preview          *entity.FollowupPreview    `json:"preview,omitempty"`
	Recipients       int                        `json:"recipients"`
	EstimatedSeconds int                        `json:"estimated_seconds"`
	CanSend          bool                       `json:"can_send"`
	Progress         Progress                   `json:"progress"`
	JobID            string                     `json:"job_id,omitempty"`
	Result           *entity.MassFollowupResult `json:"result,omitempty"`
	Error            string                     `json:"error,omitempty"`
}

type MassCloseResult struct {
	Snapshot  MassFollowupSnapshot `json:"snapshot"`
	Followups *FollowupsView       `json:"followups,omitempty"`
}

// massSession é o diálogo de envio em massa de uma sessão do navegador.
// seq muda a cada transição para descartar respostas de preview atrasadas.
type massSession struct {
	mu      sync.Mutex
	seq     uint64
	state   MassState
	segment entity.Segment
	preview *entity.FollowupPreview
	jobID   string
	result  *entity.MassFollowupResult
	errMsg  string

	// lastSeen é protegido por MassFollowupUseCase.mu.
	lastSeen time.Time
}

func (s *massSession) reset() {
	s.seq++
	s.state = MassIdle
	s.segment = ""
	s.preview = nil
	s.jobID = ""
	s.result = nil
	s.errMsg = ""
}

func (s *massSession) recipients() int {
	if s.preview == nil {
		return 0
	}
	return s.preview.Recipients()
}

func idleSnapshot() MassFollowupSnapshot {
	return (&massSession{state: MassIdle}).snapshot()
}

func (s *massSession) snapshot() MassFollowupSnapshot {
	recipients := s.recipients()
	return MassFollowupSnapshot{
		State:            s.state,
		Segment:          s.segment,
		Preview:          s.preview,
		Recipients:       recipients,
		EstimatedSeconds: int(entity.EstimateDuration(recipients, entity.SecondsPerMessage).Seconds()),
		CanSend:          s.state == MassPreviewReady && recipients > 0,
		Progress:         progressFor(s.state),
		JobID:            s.jobID,
		Result:           s.result,
		Error:            s.errMsg,
	}
}

type MassFollowupUseCase struct {
	Preview      PreviewGateway
	Queue        JobQueueInterface
	Jobs         JobStoreInterface
	Settings     entity.SettingsRepositoryInterface
	Followups    *FollowupsUseCase
	DelaySeconds int
	Logger       *zap.Logger

	now   func() time.Time
	newID func() string

	mu       sync.Mutex
	sessions map[string]*massSession
}

func NewMassFollowupUseCase(
	preview PreviewGateway,
	queue JobQueueInterface,
	jobs JobStoreInterface,
	settings entity.SettingsRepositoryInterface,
	followups *FollowupsUseCase,
	delaySeconds int,
	logger *zap.Logger,
) *MassFollowupUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if delaySeconds <= 0 {
		delaySeconds = entity.SecondsPerMessage
	}
	return &MassFollowupUseCase{
		Preview:      preview,
		Queue:        queue,
		Jobs:         jobs,
		Settings:     settings,
		Followups:    followups,
		DelaySeconds: delaySeconds,
		Logger:       logger,
		now:          time.Now,
		newID:        uuid.NewString,
		sessions:     make(map[string]*massSession),
	}
}

// session cria o diálogo se ainda não existe. Só SelectSegment cria; leituras
// usam lookup para que um cliente sem cookie não deixe entradas para trás.
func (uc *MassFollowupUseCase) session(sessionID string) *massSession {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, ok := uc.sessions[sessionID]
	if !ok {
		s = &massSession{state: MassIdle}
		uc.sessions[sessionID] = s
	}
	s.lastSeen = uc.now()
	return s
}

func (uc *MassFollowupUseCase) lookup(sessionID string) (*massSession, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, ok := uc.sessions[sessionID]
	if ok {
		s.lastSeen = uc.now()
	}
	return s, ok
}

func (uc *MassFollowupUseCase) drop(sessionID string, s *massSession) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.sessions[sessionID] == s {
		delete(uc.sessions, sessionID)
	}
}

// Cleanup descarta diálogos parados há mais de SessionIdleTTL até o contexto
// ser cancelado. Um job já enfileirado continua no servidor.
func (uc *MassFollowupUseCase) Cleanup(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := uc.prune(); n > 0 {
				uc.Logger.Info("🧹 Diálogos de follow-up expirados", zap.Int("removidos", n))
			}
		}
	}
}

func (uc *MassFollowupUseCase) prune() int {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	cutoff := uc.now().Add(-SessionIdleTTL)
	removed := 0
	for id, s := range uc.sessions {
		if s.lastSeen.Before(cutoff) {
			delete(uc.sessions, id)
			removed++
		}
	}
	return removed
}

// Snapshot devolve o estado do diálogo; se houver envio em andamento,
// consulta o job antes de responder.
func (uc *MassFollowupUseCase) Snapshot(ctx context.Context, sessionID string) (MassFollowupSnapshot, error) {
	s, ok := uc.lookup(sessionID)
	if !ok {
		return idleSnapshot(), nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := uc.refresh(ctx, s); err != nil {
		return s.snapshot(), err
	}
	return s.snapshot(), nil
}

func (uc *MassFollowupUseCase) refresh(ctx context.Context, s *massSession) error {
	if s.state != MassSending || s.jobID == "" {
		return nil
	}

	job, err := uc.Jobs.Get(ctx, s.jobID)
	if errors.Is(err, entity.ErrJobNotFound) {
		uc.Logger.Warn("⚠️ Job de follow-up sumiu do store", zap.String("job_id", s.jobID))
		s.seq++
		s.state = MassPreviewReady
		s.jobID = ""
		s.errMsg = msgJobLost
		return nil
	}
	if err != nil {
		return &TechnicalError{Code: CodeStorage, Message: "Erro ao consultar envio", Err: err}
	}

	switch job.State {
	case entity.JobCompleted:
		s.seq++
		s.state = MassCompleted
		s.result = job.Result
		s.errMsg = ""
	case entity.JobFailed:
		s.seq++
		s.state = MassPreviewReady
		s.jobID = ""
		s.errMsg = msgSendFailed
	}
	return nil
}

// SelectSegment busca o preview do segmento. Uma nova seleção (ou fechar o
// diálogo) durante a busca descarta a resposta anterior.
func (uc *MassFollowupUseCase) SelectSegment(ctx context.Context, sessionID, value string) (MassFollowupSnapshot, error) {
	segment, err := entity.ParseSegment(value)
	if err != nil {
		return MassFollowupSnapshot{}, &DomainError{Code: CodeInvalidSeg, Message: err.Error()}
	}

	s := uc.session(sessionID)
	s.mu.Lock()
	switch s.state {
	case MassSending, MassCompleted:
		snap := s.snapshot()
		s.mu.Unlock()
		return snap, &DomainError{Code: CodeInvalidState, Message: "Envio em andamento ou concluído; feche o diálogo antes"}
	}
	s.seq++
	seq := s.seq
	s.state = MassPreviewLoading
	s.segment = segment
	s.preview = nil
	s.errMsg = ""
	s.mu.Unlock()

	preview, fetchErr := uc.Preview.PreviewFollowup(ctx, segment)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seq != seq {
		return s.snapshot(), nil
	}
	if fetchErr != nil {
		s.reset()
		s.errMsg = msgPreviewFailed
		return s.snapshot(), upstreamError(msgPreviewFailed, fetchErr)
	}

	s.seq++
	s.state = MassPreviewReady
	s.preview = preview
	return s.snapshot(), nil
}

// Send confirma o envio. Sem preview pronto ou sem destinatários nada é publicado.
func (uc *MassFollowupUseCase) Send(ctx context.Context, sessionID string) (MassFollowupSnapshot, error) {
	s, ok := uc.lookup(sessionID)
	if !ok {
		return idleSnapshot(), &DomainError{Code: CodeSendDisabled, Message: msgSendDisabled}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	recipients := s.recipients()
	if s.state != MassPreviewReady || recipients == 0 {
		return s.snapshot(), &DomainError{Code: CodeSendDisabled, Message: msgSendDisabled}
	}

	now := uc.now()
	job := entity.MassFollowupJob{
		ID:               uc.newID(),
		SessionID:        sessionID,
		Segment:          s.segment,
		DelaySeconds:     uc.DelaySeconds,
		Recipients:       recipients,
		EstimatedSeconds: int(entity.EstimateDuration(recipients, entity.SecondsPerMessage).Seconds()),
		NotifyEmail:      uc.notifyEmail(ctx, sessionID),
		State:            entity.JobQueued,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := uc.enqueue(ctx, job); err != nil {
		uc.Logger.Error("❌ Falha ao enfileirar follow-up em massa",
			zap.String("job_id", job.ID),
			zap.String("segment", string(job.Segment)),
			zap.Error(err),
		)
		s.seq++
		s.state = MassPreviewReady
		s.errMsg = msgSendFailed
		return s.snapshot(), &TechnicalError{Code: CodeUpstream, Message: msgSendFailed, Err: err}
	}

	uc.Logger.Info("📤 Follow-up em massa enfileirado",
		zap.String("job_id", job.ID),
		zap.String("segment", string(job.Segment)),
		zap.Int("recipients", recipients),
	)

	s.seq++
	s.state = MassSending
	s.jobID = job.ID
	s.result = nil
	s.errMsg = ""
	return s.snapshot(), nil
}

// enqueue grava o job como QUEUED antes de publicar (o worker pode pegá-lo na
// hora). Se a publicação falha, o registro vira FAILED em vez de ficar órfão.
func (uc *MassFollowupUseCase) enqueue(ctx context.Context, job entity.MassFollowupJob) error {
	if err := uc.Jobs.Save(ctx, job); err != nil {
		return err
	}
	if err := uc.Queue.PublishMassFollowup(ctx, job); err != nil {
		job.State = entity.JobFailed
		job.Error = err.Error()
		job.UpdatedAt = uc.now()
		if saveErr := uc.Jobs.Save(ctx, job); saveErr != nil {
			uc.Logger.Warn("⚠️ Job não publicado ficou sem marcação de falha",
				zap.String("job_id", job.ID),
				zap.Error(saveErr),
			)
		}
		return err
	}
	return nil
}

// notifyEmail só devolve endereço quando a sessão quer relatório por email.
func (uc *MassFollowupUseCase) notifyEmail(ctx context.Context, sessionID string) string {
	if uc.Settings == nil {
		return ""
	}
	settings, err := uc.Settings.Load(ctx, sessionID)
	if err != nil {
		uc.Logger.Warn("⚠️ Não foi possível ler preferências de email", zap.Error(err))
		return ""
	}
	if !settings.EmailNotifications {
		return ""
	}
	return settings.Profile.Email
}

// Close fecha o diálogo a partir de qualquer estado e o remove da memória. Um
// envio em andamento continua no servidor. Ao fechar após concluir, a lista de
// follow-ups é recarregada.
func (uc *MassFollowupUseCase) Close(ctx context.Context, sessionID string) (*MassCloseResult, error) {
	s, ok := uc.lookup(sessionID)
	if !ok {
		return &MassCloseResult{Snapshot: idleSnapshot()}, nil
	}
	s.mu.Lock()
	if err := uc.refresh(ctx, s); err != nil {
		uc.Logger.Warn("⚠️ Falha ao consultar job antes de fechar", zap.Error(err))
	}
	completed := s.state == MassCompleted
	s.reset()
	snap := s.snapshot()
	s.mu.Unlock()
	uc.drop(sessionID, s)

	out := &MassCloseResult{Snapshot: snap}
	if !completed || uc.Followups == nil {
		return out, nil
	}

	followups, err := uc.Followups.Execute(ctx)
	if err != nil {
		return out, err
	}
	out.Followups = followups
	return out, nil
}
