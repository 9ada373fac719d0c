package entity

import (
	"encoding/json"
	"fmt"
)

// Status é o ciclo de vida do lead. Transições são do backend; aqui só lemos.
type Status string

const (
	StatusNovo       Status = "Novo"
	StatusAtribuido  Status = "Atribuído"
	StatusContatado  Status = "Contatado"
	StatusConvertido Status = "Convertido"
	StatusPerdido    Status = "Perdido"
	StatusInvalido   Status = "Inválido"

	// StatusDesconhecido recebe valor vazio ou fora da lista vindo do backend.
	StatusDesconhecido Status = "Desconhecido"
)

func AllStatuses() []Status {
	return []Status{StatusNovo, StatusAtribuido, StatusContatado, StatusConvertido, StatusPerdido, StatusInvalido, StatusDesconhecido}
}

func (s Status) Valid() bool {
	switch s {
	case StatusNovo, StatusAtribuido, StatusContatado, StatusConvertido, StatusPerdido, StatusInvalido, StatusDesconhecido:
		return true
	}
	return false
}

// Color é a cor usada nos gráficos do dashboard.
func (s Status) Color() string {
	switch s {
	case StatusNovo:
		return "#fbbc04"
	case StatusAtribuido:
		return "#4285f4"
	case StatusContatado:
		return "#81c784"
	case StatusConvertido:
		return "#34a853"
	case StatusPerdido:
		return "#ea4335"
	case StatusInvalido:
		return "#9e9e9e"
	case StatusDesconhecido:
		return "#bdbdbd"
	}
	panic(fmt.Sprintf("entity: status sem cor mapeada: %q", string(s)))
}

func (s *Status) UnmarshalJSON(b []byte) error {
	*s = Status(decodeClosed(b, func(v string) bool { return Status(v).Valid() }, string(StatusDesconhecido)))
	return nil
}

// Temperature é a chance qualitativa de conversão.
type Temperature string

const (
	TemperatureQuente Temperature = "Quente"
	TemperatureMorno  Temperature = "Morno"
	TemperatureFrio   Temperature = "Frio"

	TemperatureDesconhecida Temperature = "Desconhecida"
)

func AllTemperatures() []Temperature {
	return []Temperature{TemperatureQuente, TemperatureMorno, TemperatureFrio, TemperatureDesconhecida}
}

func (t Temperature) Valid() bool {
	switch t {
	case TemperatureQuente, TemperatureMorno, TemperatureFrio, TemperatureDesconhecida:
		return true
	}
	return false
}

func (t Temperature) Emoji() string {
	switch t {
	case TemperatureQuente:
		return "🔥"
	case TemperatureMorno:
		return "🌡️"
	case TemperatureFrio:
		return "❄️"
	case TemperatureDesconhecida:
		return "❔"
	}
	panic(fmt.Sprintf("entity: temperatura sem emoji mapeado: %q", string(t)))
}

func (t Temperature) Color() string {
	switch t {
	case TemperatureQuente:
		return "#ef4444"
	case TemperatureMorno:
		return "#f97316"
	case TemperatureFrio:
		return "#3b82f6"
	case TemperatureDesconhecida:
		return "#9ca3af"
	}
	panic(fmt.Sprintf("entity: temperatura sem cor mapeada: %q", string(t)))
}

func (t *Temperature) UnmarshalJSON(b []byte) error {
	*t = Temperature(decodeClosed(b, func(v string) bool { return Temperature(v).Valid() }, string(TemperatureDesconhecida)))
	return nil
}

type Urgency string

const (
	UrgencyAlta  Urgency = "Alta"
	UrgencyMedia Urgency = "Média"
	UrgencyBaixa Urgency = "Baixa"

	UrgencyDesconhecida Urgency = "Desconhecida"
)

func AllUrgencies() []Urgency {
	return []Urgency{UrgencyAlta, UrgencyMedia, UrgencyBaixa, UrgencyDesconhecida}
}

func (u Urgency) Valid() bool {
	switch u {
	case UrgencyAlta, UrgencyMedia, UrgencyBaixa, UrgencyDesconhecida:
		return true
	}
	return false
}

func (u Urgency) Color() string {
	switch u {
	case UrgencyAlta:
		return "#ef4444"
	case UrgencyMedia:
		return "#f97316"
	case UrgencyBaixa:
		return "#22c55e"
	case UrgencyDesconhecida:
		return "#9ca3af"
	}
	panic(fmt.Sprintf("entity: urgência sem cor mapeada: %q", string(u)))
}

func (u *Urgency) UnmarshalJSON(b []byte) error {
	*u = Urgency(decodeClosed(b, func(v string) bool { return Urgency(v).Valid() }, string(UrgencyDesconhecida)))
	return nil
}

// FollowupUrgency tem um nível a mais ("Normal") que Urgency.
type FollowupUrgency string

const (
	FollowupUrgencyAlta   FollowupUrgency = "Alta"
	FollowupUrgencyMedia  FollowupUrgency = "Média"
	FollowupUrgencyNormal FollowupUrgency = "Normal"
	FollowupUrgencyBaixa  FollowupUrgency = "Baixa"

	FollowupUrgencyDesconhecida FollowupUrgency = "Desconhecida"
)

func AllFollowupUrgencies() []FollowupUrgency {
	return []FollowupUrgency{FollowupUrgencyAlta, FollowupUrgencyMedia, FollowupUrgencyNormal, FollowupUrgencyBaixa, FollowupUrgencyDesconhecida}
}

func (u FollowupUrgency) Valid() bool {
	switch u {
	case FollowupUrgencyAlta, FollowupUrgencyMedia, FollowupUrgencyNormal, FollowupUrgencyBaixa, FollowupUrgencyDesconhecida:
		return true
	}
	return false
}

// Rank: menor = mais urgente.
func (u FollowupUrgency) Rank() int {
	switch u {
	case FollowupUrgencyAlta:
		return 0
	case FollowupUrgencyMedia:
		return 1
	case FollowupUrgencyNormal:
		return 2
	case FollowupUrgencyBaixa:
		return 3
	case FollowupUrgencyDesconhecida:
		return 4
	}
	panic(fmt.Sprintf("entity: urgência de follow-up sem rank: %q", string(u)))
}

func (u FollowupUrgency) Color() string {
	switch u {
	case FollowupUrgencyAlta:
		return "#ef4444"
	case FollowupUrgencyMedia:
		return "#f97316"
	case FollowupUrgencyNormal:
		return "#eab308"
	case FollowupUrgencyBaixa:
		return "#22c55e"
	case FollowupUrgencyDesconhecida:
		return "#9ca3af"
	}
	panic(fmt.Sprintf("entity: urgência de follow-up sem cor mapeada: %q", string(u)))
}

func (u *FollowupUrgency) UnmarshalJSON(b []byte) error {
	*u = FollowupUrgency(decodeClosed(b, func(v string) bool { return FollowupUrgency(v).Valid() }, string(FollowupUrgencyDesconhecida)))
	return nil
}

// decodeClosed nunca falha: valor vazio, fora da lista ou de outro tipo JSON
// vira a variante desconhecida, para um lead estranho não derrubar a lista.
func decodeClosed(b []byte, valid func(string) bool, unknown string) string {
	var v string
	if err := json.Unmarshal(b, &v); err != nil || !valid(v) {
		return unknown
	}
	return v
}

// YesNo decodifica "Sim"/"Não" do backend (ou um bool JSON). Qualquer outro
// valor conta como "Não".
type YesNo bool

func (y *YesNo) UnmarshalJSON(b []byte) error {
	var asBool bool
	if err := json.Unmarshal(b, &asBool); err == nil {
		*y = YesNo(asBool)
		return nil
	}

	var v string
	_ = json.Unmarshal(b, &v)
	*y = v == "Sim"
	return nil
}

func (y YesNo) MarshalJSON() ([]byte, error) {
	if y {
		return []byte(`"Sim"`), nil
	}
	return []byte(`"Não"`), nil
}
