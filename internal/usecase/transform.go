package usecase

import (
	"sort"
	"strings"
	"time"

	"github.com/KauaneAlmeida/dashboard-advocacia/internal/entity"
)

// MaxTimeSeriesBuckets: o gráfico de linha mostra só os últimos 8 dias com leads.
const MaxTimeSeriesBuckets = 8

type TimeSeriesPoint struct {
	Date  string `json:"date"`
	Leads int    `json:"leads"`
}

type StatusSlice struct {
	Name  entity.Status `json:"name"`
	Value int           `json:"value"`
	Color string        `json:"color"`
}

var eventDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

func parseEventDate(v string) (time.Time, bool) {
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

type dateBucket struct {
	raw    string
	count  int
	parsed time.Time
	ok     bool
}

// LeadsOverTime agrupa pela string exata de data_evento (sem normalizar fuso),
// ordena pela data de origem e devolve os últimos MaxTimeSeriesBuckets como dd/MM.
// Datas que não parseiam mantêm o texto original e vêm antes de todas as outras,
// então são as primeiras a sair quando o limite corta.
func LeadsOverTime(leads []entity.Lead) []TimeSeriesPoint {
	index := make(map[string]int)
	var buckets []dateBucket

	for _, lead := range leads {
		if i, ok := index[lead.DataEvento]; ok {
			buckets[i].count++
			continue
		}
		t, ok := parseEventDate(lead.DataEvento)
		index[lead.DataEvento] = len(buckets)
		buckets = append(buckets, dateBucket{raw: lead.DataEvento, count: 1, parsed: t, ok: ok})
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		a, b := buckets[i], buckets[j]
		if a.ok != b.ok {
			return b.ok
		}
		if a.ok && !a.parsed.Equal(b.parsed) {
			return a.parsed.Before(b.parsed)
		}
		return a.raw < b.raw
	})

	if len(buckets) > MaxTimeSeriesBuckets {
		buckets = buckets[len(buckets)-MaxTimeSeriesBuckets:]
	}

	points := make([]TimeSeriesPoint, 0, len(buckets))
	for _, b := range buckets {
		label := b.raw
		if b.ok {
			label = b.parsed.Format("02/01")
		}
		points = append(points, TimeSeriesPoint{Date: label, Leads: b.count})
	}
	return points
}

// StatusDistribution conta por status na ordem em que cada status aparece pela primeira vez.
func StatusDistribution(leads []entity.Lead) []StatusSlice {
	index := make(map[entity.Status]int)
	slices := make([]StatusSlice, 0)

	for _, lead := range leads {
		if i, ok := index[lead.Status]; ok {
			slices[i].Value++
			continue
		}
		index[lead.Status] = len(slices)
		slices = append(slices, StatusSlice{Name: lead.Status, Value: 1, Color: lead.Status.Color()})
	}
	return slices
}

// SortByFollowupPriority: urgência (Alta, Média, Normal, Baixa) e, empatando,
// mais dias sem resposta primeiro. Estável; não altera a entrada.
func SortByFollowupPriority(leads []entity.Lead) []entity.Lead {
	sorted := append([]entity.Lead(nil), leads...)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := sorted[i].UrgenciaFollowup.Rank(), sorted[j].UrgenciaFollowup.Rank()
		if ri != rj {
			return ri < rj
		}
		return sorted[i].DiasSemResposta > sorted[j].DiasSemResposta
	})
	return sorted
}

// LeadsNeedingFollowup filtra quem precisa de follow-up e ordena por prioridade.
func LeadsNeedingFollowup(leads []entity.Lead) []entity.Lead {
	var pending []entity.Lead
	for _, lead := range leads {
		if lead.PrecisaFollowup {
			pending = append(pending, lead)
		}
	}
	return SortByFollowupPriority(pending)
}

// StatusAll é o valor do filtro da tela de leads que não filtra nada.
const StatusAll = "Todos"

// SearchLeads aplica a busca da tela de leads: nome e email sem diferenciar
// maiúsculas, telefone como veio.
func SearchLeads(leads []entity.Lead, term, status string) []entity.Lead {
	needle := strings.ToLower(term)
	filtered := make([]entity.Lead, 0, len(leads))

	for _, lead := range leads {
		matchesSearch := strings.Contains(strings.ToLower(lead.ClienteNome), needle) ||
			strings.Contains(lead.ClienteTelefone, term) ||
			strings.Contains(strings.ToLower(lead.ClienteEmail), needle)
		matchesStatus := status == "" || status == StatusAll || string(lead.Status) == status

		if matchesSearch && matchesStatus {
			filtered = append(filtered, lead)
		}
	}
	return filtered
}

// TopAdvogadosByConversion ordena por taxa de conversão (maior primeiro) e corta em n.
func TopAdvogadosByConversion(advogados []entity.Advogado, n int) []entity.Advogado {
	sorted := append([]entity.Advogado(nil), advogados...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TaxaConversao > sorted[j].TaxaConversao
	})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
