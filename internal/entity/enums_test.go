package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Todo variante precisa de mapeamento; um case esquecido cai no panic.
func TestEnumMappingsAreTotal(t *testing.T) {
	for _, s := range AllStatuses() {
		assert.True(t, s.Valid())
		assert.NotPanics(t, func() { _ = s.Color() }, string(s))
	}
	for _, temp := range AllTemperatures() {
		assert.True(t, temp.Valid())
		assert.NotPanics(t, func() { _ = temp.Emoji(); _ = temp.Color() }, string(temp))
	}
	for _, u := range AllUrgencies() {
		assert.True(t, u.Valid())
		assert.NotPanics(t, func() { _ = u.Color() }, string(u))
	}
	for _, u := range AllFollowupUrgencies() {
		assert.True(t, u.Valid())
		assert.NotPanics(t, func() { _ = u.Rank(); _ = u.Color() }, string(u))
	}
}

func TestUnknownVariantPanicsOnMapping(t *testing.T) {
	assert.Panics(t, func() { _ = Status("Arquivado").Color() })
	assert.Panics(t, func() { _ = FollowupUrgency("Urgentíssima").Rank() })
}

func TestFollowupUrgencyRankOrder(t *testing.T) {
	all := AllFollowupUrgencies()
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Rank(), all[i].Rank())
	}
}

func TestLeadUnmarshal(t *testing.T) {
	raw := `{
		"lead_id": "L1",
		"cliente_nome": "João Silva",
		"cliente_telefone": "+55 (11) 98765-4321",
		"status": "Atribuído",
		"lead_temperature": "Quente",
		"urgency": "Média",
		"urgencia_followup": "Normal",
		"precisa_followup": "Sim",
		"dias_sem_resposta": 7,
		"data_evento": "2025-10-08"
	}`

	var lead Lead
	require.NoError(t, json.Unmarshal([]byte(raw), &lead))

	assert.Equal(t, StatusAtribuido, lead.Status)
	assert.Equal(t, TemperatureQuente, lead.Temperatura)
	assert.Equal(t, UrgencyMedia, lead.Urgencia)
	assert.Equal(t, FollowupUrgencyNormal, lead.UrgenciaFollowup)
	assert.True(t, bool(lead.PrecisaFollowup))
	assert.Equal(t, 7, lead.DiasSemResposta)
}

func TestLeadUnmarshalUnknownEnumsBecomeDesconhecido(t *testing.T) {
	raw := `{
		"status": "Arquivado",
		"lead_temperature": "",
		"urgency": 3,
		"urgencia_followup": null,
		"precisa_followup": "Não"
	}`

	var lead Lead
	require.NoError(t, json.Unmarshal([]byte(raw), &lead))

	assert.Equal(t, StatusDesconhecido, lead.Status)
	assert.Equal(t, TemperatureDesconhecida, lead.Temperatura)
	assert.Equal(t, UrgencyDesconhecida, lead.Urgencia)
	assert.Equal(t, FollowupUrgencyDesconhecida, lead.UrgenciaFollowup)
	assert.NotPanics(t, func() { _ = lead.Status.Color(); _ = lead.UrgenciaFollowup.Rank() })
}

func TestYesNo(t *testing.T) {
	cases := map[string]bool{
		`"Sim"`: true,
		`"Não"`: false,
		`""`:    false,
		`true`:  true,
		`false`: false,
	}
	for raw, want := range cases {
		var y YesNo
		require.NoError(t, json.Unmarshal([]byte(raw), &y), raw)
		assert.Equal(t, want, bool(y), raw)
	}

	var y YesNo = true
	require.NoError(t, json.Unmarshal([]byte(`"Talvez"`), &y))
	assert.False(t, bool(y))

	out, err := json.Marshal(YesNo(true))
	require.NoError(t, err)
	assert.Equal(t, `"Sim"`, string(out))
}

func TestParseSegment(t *testing.T) {
	for _, v := range []string{"quente", "frio", "todos"} {
		s, err := ParseSegment(v)
		require.NoError(t, err)
		assert.Equal(t, Segment(v), s)
	}

	_, err := ParseSegment("morno")
	assert.Error(t, err)
}

func TestEstimateDuration(t *testing.T) {
	assert.Equal(t, 30*time.Second, EstimateDuration(10, SecondsPerMessage))
	assert.Equal(t, time.Duration(0), EstimateDuration(0, SecondsPerMessage))
}

func TestPreviewRecipients(t *testing.T) {
	assert.Equal(t, 4, FollowupPreview{TotalLeads: 4}.Recipients())
	assert.Equal(t, 1, FollowupPreview{TotalLeads: 4, Leads: []PreviewRecipient{{Nome: "Ana"}}}.Recipients())
}

func TestLeadNormalize(t *testing.T) {
	lead := Lead{
		ID:               "L1",
		Status:           StatusNovo,
		Temperatura:      TemperatureMorno,
		Urgencia:         UrgencyBaixa,
		UrgenciaFollowup: FollowupUrgencyBaixa,
	}
	assert.False(t, lead.Normalize())
	assert.Equal(t, FollowupUrgencyBaixa, lead.UrgenciaFollowup)

	missing := Lead{ID: "L2", Status: StatusNovo, Temperatura: TemperatureFrio, Urgencia: UrgencyAlta}
	assert.True(t, missing.Normalize())
	assert.Equal(t, FollowupUrgencyDesconhecida, missing.UrgenciaFollowup)
	assert.Equal(t, StatusNovo, missing.Status)
}

func TestFollowupUrgencyDesconhecidaRanksLast(t *testing.T) {
	assert.Greater(t, FollowupUrgencyDesconhecida.Rank(), FollowupUrgencyBaixa.Rank())
}
