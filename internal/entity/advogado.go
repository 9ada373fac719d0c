package entity

// Advogado traz as métricas já calculadas pelo backend.
type Advogado struct {
	ID                    string  `json:"advogado_id"`
	Nome                  string  `json:"nome"`
	Telefone              string  `json:"telefone"`
	Email                 string  `json:"email,omitempty"`
	Foto                  string  `json:"foto,omitempty"`
	Especialidades        string  `json:"especialidades"`
	AreasAtuacao          string  `json:"areas_atuacao"`
	Status                string  `json:"status"`
	TotalLeads            int     `json:"total_leads"`
	LeadsNovos            int     `json:"leads_novos"`
	LeadsEmAndamento      int     `json:"leads_em_andamento"`
	LeadsConvertidos      int     `json:"leads_convertidos"`
	LeadsPerdidos         int     `json:"leads_perdidos"`
	LeadsPrecisamFollowup int     `json:"leads_precisam_followup"`
	TaxaConversao         float64 `json:"taxa_conversao"`
	TaxaResposta          float64 `json:"taxa_resposta"`
	TempoMedioResposta    string  `json:"tempo_medio_resposta"`
}
