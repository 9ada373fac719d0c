package mail

import (
	"bytes"
	"errors"
	"mime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/KauaneAlmeida/dashboard-advocacia/internal/entity"
)

func completedJob() entity.MassFollowupJob {
	return entity.MassFollowupJob{
		ID:      "job-9",
		Segment: entity.SegmentQuente,
		State:   entity.JobCompleted,
		Result: &entity.MassFollowupResult{
			MensagensEnviadas:   1,
			MensagensFalhadas:   1,
			TotalLeads:          2,
			TempoTotalFormatado: "6s",
			Detalhes: []entity.FollowupDetail{
				{Nome: "Ana", Telefone: "11999990000", Sucesso: true},
				{Nome: "Bruno <b>", Telefone: "11988887777", Sucesso: false, Erro: "número inválido"},
			},
		},
	}
}

func TestBuildReport(t *testing.T) {
	s := NewEmailSender("smtp.local", 587, "u", "p", "relatorios@escritorio.com.br")

	m, err := s.buildReport("ana@adv.com", completedJob())
	require.NoError(t, err)

	assert.Equal(t, []string{"ana@adv.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"relatorios@escritorio.com.br"}, m.GetHeader("From"))

	subject, err := new(mime.WordDecoder).DecodeHeader(m.GetHeader("Subject")[0])
	require.NoError(t, err)
	assert.Contains(t, subject, "1 de 2")

	var raw bytes.Buffer
	_, err = m.WriteTo(&raw)
	require.NoError(t, err)
	assert.Contains(t, raw.String(), "job-9")
}

func TestSendFollowupReport(t *testing.T) {
	s := NewEmailSender("smtp.local", 587, "u", "p", "from@x.com")
	var sent []*gomail.Message
	s.send = func(m *gomail.Message) error {
		sent = append(sent, m)
		return nil
	}

	require.NoError(t, s.SendFollowupReport("ana@adv.com", completedJob()))
	assert.Len(t, sent, 1)
}

func TestSendFollowupReportErrors(t *testing.T) {
	s := NewEmailSender("smtp.local", 587, "u", "p", "from@x.com")
	s.send = func(*gomail.Message) error { return errors.New("535 auth failed") }

	err := s.SendFollowupReport("ana@adv.com", completedJob())
	assert.ErrorContains(t, err, "535")

	noResult := completedJob()
	noResult.Result = nil
	assert.Error(t, s.SendFollowupReport("ana@adv.com", noResult))
}
