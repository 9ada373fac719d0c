package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/KauaneAlmeida/dashboard-advocacia/internal/infra/outreach"
)

// OpenTargetHeader diz ao front se o link deve abrir em nova aba.
const OpenTargetHeader = "X-Open-Target"

// RedirectOpener transforma a navegação em um 302 para o link gerado.
func RedirectOpener(w http.ResponseWriter, r *http.Request) outreach.Opener {
	return outreach.OpenerFunc(func(link string, target outreach.Target) {
		switch target {
		case outreach.TargetNewContext:
			w.Header().Set(OpenTargetHeader, "_blank")
		case outreach.TargetCurrentContext:
			w.Header().Set(OpenTargetHeader, "_self")
		}
		http.Redirect(w, r, link, http.StatusFound)
	})
}

type OutreachHandler struct {
	// NewOpener permite trocar o redirect por um gravador nos testes.
	NewOpener func(w http.ResponseWriter, r *http.Request) outreach.Opener
}

func NewOutreachHandler() *OutreachHandler {
	return &OutreachHandler{NewOpener: RedirectOpener}
}

// Handle (GET /api/outreach/{kind}) com kind whatsapp, phone ou email.
// Telefone malformado gera link quebrado; não é validado.
func (h *OutreachHandler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	d := outreach.NewDispatcher(h.NewOpener(w, r))

	switch chi.URLParam(r, "kind") {
	case "whatsapp":
		d.OpenWhatsApp(q.Get("phone"), q.Get("message"))
	case "phone":
		d.OpenPhoneDialer(q.Get("phone"))
	case "email":
		if q.Get("email") == "" {
			writeError(w, http.StatusBadRequest, "MISSING_FIELDS", "email é obrigatório")
			return
		}
		d.OpenEmail(q.Get("email"), q.Get("subject"))
	default:
		writeError(w, http.StatusNotFound, "NOT_FOUND", "ação desconhecida")
	}
}
