package mail

import "gopkg.in/gomail.v2"

type FollowupReportData struct {
	JobID      string
	Segment    string
	Enviadas   int
	Falhadas   int
	Total      int
	TempoTotal string
	Falhas     []FailedRecipient
}

type FailedRecipient struct {
	Nome     string
	Telefone string
	Erro     string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string

	// send entrega a mensagem; nos testes é trocado por um gravador.
	send func(m *gomail.Message) error
}
