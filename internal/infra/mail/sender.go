package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/KauaneAlmeida/dashboard-advocacia/internal/entity"
)

//go:embed templates/*.html
var templatesFS embed.FS

var reportTemplate = template.Must(template.ParseFS(templatesFS, "templates/followup_report.html"))

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	s := &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
	s.send = func(m *gomail.Message) error {
		return gomail.NewDialer(s.Host, s.Port, s.User, s.Password).DialAndSend(m)
	}
	return s
}

// SendFollowupReport manda o resumo de um envio em massa concluído.
func (s *EmailSender) SendFollowupReport(to string, job entity.MassFollowupJob) error {
	if job.Result == nil {
		return fmt.Errorf("job %s sem resultado", job.ID)
	}

	m, err := s.buildReport(to, job)
	if err != nil {
		return err
	}
	if err := s.send(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}
	return nil
}

func (s *EmailSender) buildReport(to string, job entity.MassFollowupJob) (*gomail.Message, error) {
	data := FollowupReportData{
		JobID:      job.ID,
		Segment:    string(job.Segment),
		Enviadas:   job.Result.MensagensEnviadas,
		Falhadas:   job.Result.MensagensFalhadas,
		Total:      job.Result.TotalLeads,
		TempoTotal: job.Result.TempoTotalFormatado,
	}
	for _, d := range job.Result.Detalhes {
		if !d.Sucesso {
			data.Falhas = append(data.Falhas, FailedRecipient{Nome: d.Nome, Telefone: d.Telefone, Erro: d.Erro})
		}
	}

	var body bytes.Buffer
	if err := reportTemplate.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Follow-up em massa concluído: %d de %d mensagens enviadas 📨",
		data.Enviadas, data.Total))
	m.SetBody("text/html", body.String())
	return m, nil
}
