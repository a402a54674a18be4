package narrating

import (
	"fmt"
	"strings"

	"github.com/vfg2006/working-capital-api/internal/domain"
)

const systemPrompt = `Você é um analista financeiro sênior especializado em capital de giro.
Escreva em português, em tom objetivo e executivo, no máximo três parágrafos curtos.
Baseie-se apenas nos números fornecidos; nunca invente valores.
Valores monetários estão em milhares. DSO, DIO e DPO estão em dias.`

// buildOverviewPrompt resume a posição consolidada do trimestre:
// variação anual e participação de cada entidade.
func buildOverviewPrompt(quarter string, delta domain.YoYDelta, composition []domain.CompositionItem) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Trimestre analisado: %s\n\n", quarter)
	fmt.Fprintf(&sb, "Capital de giro consolidado: %.0f\n", delta.CurrentValue)
	if delta.PriorQuarter != "" {
		fmt.Fprintf(&sb, "Mesmo trimestre do ano anterior (%s): %.0f (variação de %.1f%%)\n",
			delta.PriorQuarter, delta.PriorValue, delta.PercentChange)
	}

	sb.WriteString("\nParticipação por entidade:\n")
	for _, item := range composition {
		fmt.Fprintf(&sb, "- %s: %.0f (%.2f%%)\n", item.Entity, item.WorkingCapital, item.SharePercent)
	}

	sb.WriteString("\nEscreva uma visão geral da posição de capital de giro do trimestre, destacando a variação anual e as entidades mais relevantes.")

	return sb.String()
}

// buildTurnoverPrompt apresenta os indicadores de rotatividade do
// trimestre para o modelo comentar.
func buildTurnoverPrompt(quarter string, items []domain.TurnoverItem) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Indicadores de rotatividade do trimestre %s:\n\n", quarter)
	for _, item := range items {
		fmt.Fprintf(&sb, "- %s: DSO %d dias, DIO %d dias, DPO %d dias, CCC %d dias\n",
			item.Entity, item.DSO, item.DIO, item.DPO, item.CCC)
	}

	sb.WriteString("\nComente o ciclo de conversão de caixa de cada entidade, apontando onde o ciclo está longo demais e o que mais pesa nele (recebimento, estoque ou pagamento).")

	return sb.String()
}

func buildTrendPrompt(entity domain.Entity, points []domain.TrendPoint) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Série de capital de giro da entidade %s por trimestre:\n\n", entity)
	for _, point := range points {
		if point.Missing {
			fmt.Fprintf(&sb, "- %s: sem dado\n", point.Quarter)
			continue
		}
		fmt.Fprintf(&sb, "- %s: capital de giro %.0f, CCC %d dias\n",
			point.Quarter, point.WorkingCapital, point.Metrics.CCC)
	}

	sb.WriteString("\nDescreva a tendência do capital de giro e do ciclo de caixa ao longo dos trimestres, sinalizando inflexões relevantes.")

	return sb.String()
}

func buildActionPrompt(quarter string, issues []domain.PriorityIssue) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Problemas priorizados do trimestre %s (score de 0 a 100):\n\n", quarter)
	if len(issues) == 0 {
		sb.WriteString("Nenhum aumento adverso de saldo foi detectado em relação ao ano anterior.\n")
	}
	for _, issue := range issues {
		fmt.Fprintf(&sb, "- [%s] %s / %s: saldo cresceu %.1f%% ano contra ano, impacto de %.0f dias no ciclo, peso da entidade %.1f%% (score %d)\n",
			issue.Priority, issue.Entity, issue.Category,
			issue.ChangeRatePercent, issue.DaysImpact, issue.EntityWeightPercent, issue.Score)
	}

	sb.WriteString("\nRecomende ações concretas começando pelos itens de maior prioridade. Se não houver problemas, diga isso explicitamente.")

	return sb.String()
}
