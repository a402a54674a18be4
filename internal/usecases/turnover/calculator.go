// Package turnover converte snapshots financeiros em indicadores de
// rotatividade (DSO, DIO, DPO, CCC)
package turnover

import (
	"math"

	"github.com/vfg2006/working-capital-api/internal/domain"
)

// DefaultCostRatio é a premissa de negócio para estimar o custo de
// mercadoria vendida quando nenhum dado de CMV existe: 60% da receita.
// Constante nomeada e sobrescrevível por configuração para manter a
// premissa auditável.
const DefaultCostRatio = 0.60

const daysInYear = 365

// Calculator calcula métricas de rotatividade a partir de um snapshot.
// Função pura do snapshot de entrada; seguro para uso concorrente.
type Calculator struct {
	// CostRatio substitui DefaultCostRatio quando maior que zero
	CostRatio float64
}

// NewCalculator cria um Calculator com a premissa padrão de custo
func NewCalculator() *Calculator {
	return &Calculator{CostRatio: DefaultCostRatio}
}

// NewCalculatorWithRatio cria um Calculator com uma premissa de custo
// vinda de configuração; valores não positivos caem no padrão
func NewCalculatorWithRatio(ratio float64) *Calculator {
	if ratio <= 0 {
		ratio = DefaultCostRatio
	}
	return &Calculator{CostRatio: ratio}
}

func (c *Calculator) costRatio() float64 {
	if c.CostRatio > 0 {
		return c.CostRatio
	}
	return DefaultCostRatio
}

// Metrics deriva DSO, DIO, DPO e CCC de um snapshot.
//
// A anualização usa a base acumulada do ano (YTD) quando disponível:
// um acumulado do 3º trimestre dividido por 3 e multiplicado por 4
// estima o run-rate anual suavizando a sazonalidade de um trimestre
// isolado. Sem YTD, usa a receita trimestral vezes 4. O consumidor
// precisa saber qual base foi usada; a precedência YTD > trimestral é
// invariante de projeto.
//
// Trimestre malformado é erro imediato: nunca assumimos um trimestre
// padrão, porque o número do trimestre muda o resultado da anualização.
func (c *Calculator) Metrics(snapshot *domain.EntitySnapshot) (domain.TurnoverMetrics, error) {
	quarter, err := domain.ParseQuarter(snapshot.Quarter)
	if err != nil {
		return domain.TurnoverMetrics{}, err
	}

	annualRevenue := annualize(snapshot.YTDRevenue, snapshot.QuarterlyRevenue, quarter.Number())

	// CMV com fallback em três níveis: YTD anualizado, trimestral x4,
	// e por último a premissa de custo sobre a receita anualizada
	var annualCOGS float64
	switch {
	case snapshot.YTDCOGS != nil:
		annualCOGS = *snapshot.YTDCOGS / float64(quarter.Number()) * 4
	case snapshot.QuarterlyCOGS != nil:
		annualCOGS = *snapshot.QuarterlyCOGS * 4
	default:
		annualCOGS = annualRevenue * c.costRatio()
	}

	dso := daysOutstanding(snapshot.ReceivablesBalance, annualRevenue)
	dio := daysOutstanding(snapshot.InventoryBalance, annualCOGS)
	dpo := daysOutstanding(snapshot.PayablesBalance, annualCOGS)

	return domain.TurnoverMetrics{
		DSO: dso,
		DIO: dio,
		DPO: dpo,
		// Sem piso: CCC negativo é saída válida e significativa
		CCC: dso + dio - dpo,
	}, nil
}

func annualize(ytd *float64, quarterly float64, quarterNumber int) float64 {
	if ytd != nil {
		return *ytd / float64(quarterNumber) * 4
	}
	return quarterly * 4
}

// daysOutstanding aplica a política de saldo zero: uma entidade sem
// saldo tem giro instantâneo, o indicador é 0 por definição (nunca
// NaN/Inf). Denominador zero também resolve para 0.
func daysOutstanding(balance, annualBase float64) int {
	if balance <= 0 || annualBase <= 0 {
		return 0
	}
	return int(math.Round(daysInYear * balance / annualBase))
}
