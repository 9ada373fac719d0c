package outreach

import (
	"net/url"
	"regexp"
	"strings"
)

// DefaultWhatsAppMessage é usada quando o chamador não passa mensagem.
const DefaultWhatsAppMessage = "Olá! Vi seu contato e gostaria de conversar sobre sua consulta jurídica."

var nonDigits = regexp.MustCompile(`\D`)

// Digits remove tudo que não é dígito. Não valida tamanho nem DDI.
func Digits(phone string) string {
	return nonDigits.ReplaceAllString(phone, "")
}

// browserUnescape desfaz o que url.QueryEscape escapa a mais que o
// encodeURIComponent do navegador: espaço e os caracteres !'()*.
var browserUnescape = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent escapa como o encodeURIComponent do navegador.
func EncodeURIComponent(s string) string {
	return browserUnescape.Replace(url.QueryEscape(s))
}

func WhatsAppLink(phone, message string) string {
	if message == "" {
		message = DefaultWhatsAppMessage
	}
	return "https://wa.me/" + Digits(phone) + "?text=" + EncodeURIComponent(message)
}

func PhoneLink(phone string) string {
	return "tel:" + Digits(phone)
}

func EmailLink(email, subject string) string {
	link := "mailto:" + email
	if subject != "" {
		link += "?subject=" + EncodeURIComponent(subject)
	}
	return link
}
