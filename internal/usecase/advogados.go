package usecase

import (
	"context"

	"github.com/KauaneAlmeida/dashboard-advocacia/internal/entity"
)

type RankedAdvogado struct {
	entity.Advogado
	Posicao int  `json:"posicao"`
	Top     bool `json:"top"`
}

type AdvogadosUseCase struct {
	Gateway AdvogadosGateway
}

func NewAdvogadosUseCase(gateway AdvogadosGateway) *AdvogadosUseCase {
	return &AdvogadosUseCase{Gateway: gateway}
}

// Execute devolve o ranking por taxa de conversão; o primeiro leva o destaque.
func (uc *AdvogadosUseCase) Execute(ctx context.Context) ([]RankedAdvogado, error) {
	advogados, err := uc.Gateway.GetAdvogados(ctx)
	if err != nil {
		return nil, upstreamError("Erro ao carregar advogados", err)
	}

	sorted := TopAdvogadosByConversion(advogados, len(advogados))
	ranked := make([]RankedAdvogado, 0, len(sorted))
	for i, adv := range sorted {
		ranked = append(ranked, RankedAdvogado{Advogado: adv, Posicao: i + 1, Top: i == 0})
	}
	return ranked, nil
}
