package entity

type NotificationStatus struct {
	Respondidos    int `json:"respondidos"`
	NaoRespondidos int `json:"nao_respondidos"`
}

// DashboardSummary é recalculado pelo backend a cada requisição.
type DashboardSummary struct {
	TotalLeads            int                `json:"total_leads"`
	TotalAdvogados        int                `json:"total_advogados"`
	TaxaResposta          float64            `json:"taxa_resposta"`
	TaxaConversao         float64            `json:"taxa_conversao"`
	LeadsNovos            int                `json:"leads_novos"`
	LeadsConvertidos      int                `json:"leads_convertidos"`
	LeadsPerdidos         int                `json:"leads_perdidos"`
	LeadsEmAndamento      int                `json:"leads_em_andamento"`
	LeadsPrecisamFollowup int                `json:"leads_precisam_followup"`
	DistribuicaoStatus    map[string]int     `json:"distribuicao_status"`
	NotificacaoStatus     NotificationStatus `json:"notificacao_status"`
}
