package entity

import (
	"errors"
	"fmt"
	"time"
)

var ErrJobNotFound = errors.New("job de follow-up não encontrado")

// Segment é o recorte de leads do envio em massa.
type Segment string

const (
	SegmentQuente Segment = "quente"
	SegmentFrio   Segment = "frio"
	SegmentTodos  Segment = "todos"
)

// SecondsPerMessage é o intervalo assumido entre mensagens no envio em massa.
const SecondsPerMessage = 3

func ParseSegment(v string) (Segment, error) {
	switch s := Segment(v); s {
	case SegmentQuente, SegmentFrio, SegmentTodos:
		return s, nil
	}
	return "", fmt.Errorf("segmento inválido: %q", v)
}

type PreviewRecipient struct {
	LeadID          string `json:"lead_id"`
	Nome            string `json:"nome"`
	Telefone        string `json:"telefone"`
	Temperatura     string `json:"lead_temperature"`
	DiasSemResposta int    `json:"dias_sem_resposta"`
}

type FollowupPreview struct {
	TipoLead   Segment            `json:"tipo_lead"`
	TotalLeads int                `json:"total_leads"`
	Leads      []PreviewRecipient `json:"leads"`
}

// Recipients usa a lista quando vier preenchida; senão o total informado.
func (p FollowupPreview) Recipients() int {
	if len(p.Leads) > 0 {
		return len(p.Leads)
	}
	return p.TotalLeads
}

func EstimateDuration(recipients, delaySeconds int) time.Duration {
	return time.Duration(recipients*delaySeconds) * time.Second
}

type MassFollowupRequest struct {
	TipoLead            Segment `json:"tipo_lead"`
	DelayEntreMensagens int     `json:"delay_entre_mensagens"`
}

type FollowupDetail struct {
	LeadID   string `json:"lead_id,omitempty"`
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
	Sucesso  bool   `json:"sucesso"`
	Erro     string `json:"erro,omitempty"`
}

// MassFollowupResult é exibido como veio do backend.
type MassFollowupResult struct {
	MensagensEnviadas   int              `json:"mensagens_enviadas"`
	MensagensFalhadas   int              `json:"mensagens_falhadas"`
	TotalLeads          int              `json:"total_leads"`
	TempoTotalFormatado string           `json:"tempo_total_formatado"`
	Detalhes            []FollowupDetail `json:"detalhes"`
}

type JobState string

const (
	JobQueued    JobState = "QUEUED"
	JobSending   JobState = "SENDING"
	JobCompleted JobState = "COMPLETED"
	JobFailed    JobState = "FAILED"
)

func (s JobState) Finished() bool {
	return s == JobCompleted || s == JobFailed
}

// MassFollowupJob é o estado do envio no servidor, consultado pela sessão.
type MassFollowupJob struct {
	ID               string              `json:"id"`
	SessionID        string              `json:"session_id"`
	Segment          Segment             `json:"segment"`
	DelaySeconds     int                 `json:"delay_seconds"`
	Recipients       int                 `json:"recipients"`
	EstimatedSeconds int                 `json:"estimated_seconds"`
	NotifyEmail      string              `json:"notify_email,omitempty"`
	State            JobState            `json:"state"`
	Result           *MassFollowupResult `json:"result,omitempty"`
	Error            string              `json:"error,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}
