package outreach

// Target diz onde o link abre.
type Target int

const (
	TargetNewContext Target = iota
	TargetCurrentContext
)

// Opener é a capacidade de navegar para um link externo. Não retorna erro:
// é best-effort, sem retorno para quem chamou.
type Opener interface {
	Open(link string, target Target)
}

type OpenerFunc func(link string, target Target)

func (f OpenerFunc) Open(link string, target Target) {
	f(link, target)
}

type Dispatcher struct {
	opener Opener
}

func NewDispatcher(opener Opener) *Dispatcher {
	return &Dispatcher{opener: opener}
}

// OpenWhatsApp abre em nova aba, como o wa.me espera.
func (d *Dispatcher) OpenWhatsApp(phone, message string) {
	d.opener.Open(WhatsAppLink(phone, message), TargetNewContext)
}

func (d *Dispatcher) OpenPhoneDialer(phone string) {
	d.opener.Open(PhoneLink(phone), TargetCurrentContext)
}

func (d *Dispatcher) OpenEmail(email, subject string) {
	d.opener.Open(EmailLink(email, subject), TargetCurrentContext)
}
