package entity

// Lead é um contato de cliente recebido pelo escritório. Criado e alterado só no backend.
// Status e PrecisaFollowup são independentes: qualquer status pode precisar de follow-up.
type Lead struct {
	ID               string          `json:"lead_id"`
	ClienteNome      string          `json:"cliente_nome"`
	ClienteTelefone  string          `json:"cliente_telefone"`
	ClienteEmail     string          `json:"cliente_email"`
	AdvogadoID       string          `json:"advogado_id"`
	AdvogadoNome     string          `json:"advogado_nome"`
	Status           Status          `json:"status"`
	AreaJuridica     string          `json:"areas_available"`
	Temperatura      Temperature     `json:"lead_temperature"`
	Urgencia         Urgency         `json:"urgency"`
	Origem           string          `json:"source"`
	Descricao        string          `json:"descricao"`
	DiasSemResposta  int             `json:"dias_sem_resposta"`
	ProximaAcao      string          `json:"proxima_acao"`
	UrgenciaFollowup FollowupUrgency `json:"urgencia_followup"`
	PrecisaFollowup  YesNo           `json:"precisa_followup"`
	DataEvento       string          `json:"data_evento"`
	CreatedAt        string          `json:"created_at"`
	UpdatedAt        string          `json:"updated_at"`
	DiasDesdeCriacao int             `json:"dias_desde_criacao"`
}

// Normalize preenche com a variante desconhecida os campos enumerados que
// faltaram no JSON (campo ausente não passa pelo UnmarshalJSON). Devolve true
// quando algum campo do lead ficou desconhecido.
func (l *Lead) Normalize() bool {
	if l.Status == "" {
		l.Status = StatusDesconhecido
	}
	if l.Temperatura == "" {
		l.Temperatura = TemperatureDesconhecida
	}
	if l.Urgencia == "" {
		l.Urgencia = UrgencyDesconhecida
	}
	if l.UrgenciaFollowup == "" {
		l.UrgenciaFollowup = FollowupUrgencyDesconhecida
	}
	return l.Status == StatusDesconhecido ||
		l.Temperatura == TemperatureDesconhecida ||
		l.Urgencia == UrgencyDesconhecida ||
		l.UrgenciaFollowup == FollowupUrgencyDesconhecida
}

// LeadFilters são os filtros opcionais de GET /api/analytics/leads.
// Campos vazios (ou Limit zero) não vão para a query string.
type LeadFilters struct {
	StartDate  string
	EndDate    string
	Status     string
	AdvogadoID string
	Limit      int
}
