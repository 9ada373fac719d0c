package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/KauaneAlmeida/dashboard-advocacia/internal/config"
	"github.com/KauaneAlmeida/dashboard-advocacia/internal/entity"
	"github.com/KauaneAlmeida/dashboard-advocacia/internal/infra/integration/analytics"
	"github.com/KauaneAlmeida/dashboard-advocacia/internal/logger"
	"github.com/KauaneAlmeida/dashboard-advocacia/internal/usecase"
)

// probe consulta o backend de analytics direto, sem subir a API.
func main() {
	segment := flag.String("preview", "", "segmento para prévia de follow-up (quente, frio, todos)")
	top := flag.Int("top", 5, "quantos follow-ups mostrar")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  Aviso: arquivo .env não encontrado, usando variáveis de ambiente do sistema")
	}
	cfg := config.Load()

	zapLogger, err := logger.New(false)
	if err != nil {
		log.Fatalf("erro ao iniciar logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := analytics.NewClient(cfg.AnalyticsBaseURL, zapLogger)

	fmt.Printf("🔄 Consultando %s\n\n", cfg.AnalyticsBaseURL)

	if !client.CheckHealth(ctx) {
		log.Fatal("❌ Backend de analytics indisponível")
	}
	fmt.Println("🩺 Backend OK")

	summary, err := client.GetDashboardSummary(ctx)
	if err != nil {
		log.Fatalf("Erro ao buscar resumo: %v", err)
	}
	fmt.Printf("📋 Resumo:\n")
	fmt.Printf("   Leads: %d (novos %d, convertidos %d, perdidos %d)\n",
		summary.TotalLeads, summary.LeadsNovos, summary.LeadsConvertidos, summary.LeadsPerdidos)
	fmt.Printf("   Advogados: %d\n", summary.TotalAdvogados)
	fmt.Printf("   Taxa de conversão: %.1f%%\n", summary.TaxaConversao)
	fmt.Printf("   Precisam de follow-up: %d\n\n", summary.LeadsPrecisamFollowup)

	leads, total, err := client.GetFollowupLeads(ctx)
	if err != nil {
		log.Fatalf("Erro ao buscar follow-ups: %v", err)
	}
	pending := usecase.LeadsNeedingFollowup(leads)
	fmt.Printf("⏰ Follow-ups pendentes: %d de %d\n", len(pending), total)
	for i, l := range pending {
		if i == *top {
			break
		}
		fmt.Printf("   %s %-30s %-8s %d dias sem resposta\n",
			l.Temperatura.Emoji(), l.ClienteNome, l.UrgenciaFollowup, l.DiasSemResposta)
	}

	if *segment == "" {
		return
	}

	seg, err := entity.ParseSegment(*segment)
	if err != nil {
		log.Fatalf("Segmento inválido: %v", err)
	}
	preview, err := client.PreviewFollowup(ctx, seg)
	if err != nil {
		log.Fatalf("Erro ao buscar prévia: %v", err)
	}
	fmt.Printf("\n📨 Prévia (%s): %d destinatários, ~%s\n",
		seg, preview.Recipients(), entity.EstimateDuration(preview.Recipients(), entity.SecondsPerMessage))
}
