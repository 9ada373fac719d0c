package analytics

import "github.com/KauaneAlmeida/dashboard-advocacia/internal/entity"

// Envelope é o formato { success, data, message? } do backend.
// Success é ponteiro: ausente passa adiante, só false explícito é erro.
type Envelope[T any] struct {
	Success   *bool  `json:"success,omitempty"`
	Data      T      `json:"data"`
	Message   string `json:"message,omitempty"`
	Language  string `json:"language,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

type FollowupEnvelope struct {
	Envelope[[]entity.Lead]
	TotalFollowups int `json:"total_followups"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// As rotas de WhatsApp às vezes respondem dentro de "data", às vezes no topo.
type previewResponse struct {
	Envelope[*entity.FollowupPreview]
	entity.FollowupPreview
}

func (r previewResponse) preview() entity.FollowupPreview {
	if r.Data != nil {
		return *r.Data
	}
	return r.FollowupPreview
}

type massFollowupResponse struct {
	Envelope[*entity.MassFollowupResult]
	entity.MassFollowupResult
}

func (r massFollowupResponse) result() entity.MassFollowupResult {
	if r.Data != nil {
		return *r.Data
	}
	return r.MassFollowupResult
}

type envelopeProbe struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
}
