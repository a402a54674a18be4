// Package prioritizing pontua e classifica problemas de capital de giro
// antes de entregá-los à geração de narrativa
package prioritizing

import "github.com/vfg2006/working-capital-api/internal/domain"

// Band é uma faixa de pontuação: valores a partir de From recebem Points
type Band struct {
	From   float64
	Points int
}

// Thresholds reúne as constantes de política de risco da organização.
// São parâmetros de negócio configuráveis, não valores derivados; os
// padrões abaixo refletem a tolerância de risco vigente.
type Thresholds struct {
	// ChangeBands pontua a taxa de variação anual (%)
	ChangeBands []Band
	// ImpactBands pontua o impacto em dias de rotatividade
	ImpactBands []Band
	// WeightBands pontua a participação da entidade no capital de giro
	// consolidado (%). O peso tem influência igual ou maior que a
	// magnitude: uma variação moderada em uma entidade grande importa
	// mais que uma oscilação enorme em uma entidade minúscula.
	WeightBands []Band

	// DampeningWeightLimit e DampeningScoreCap implementam a regra de
	// amortecimento: entidade com peso abaixo do limite nunca passa do
	// teto, impedindo que ruído percentual a leve à faixa HIGH
	DampeningWeightLimit float64
	DampeningScoreCap    int

	// MaxScore limita o score composto final
	MaxScore int

	// HighMinScore e MediumMinScore separam as faixas de prioridade
	HighMinScore   int
	MediumMinScore int
}

// DefaultThresholds é a política padrão: seis faixas por sinal,
// amortecimento para peso < 10% acima de 70 pontos, HIGH >= 80 e
// MEDIUM >= 50
func DefaultThresholds() Thresholds {
	return Thresholds{
		ChangeBands: []Band{
			{From: 0, Points: 10},
			{From: 5, Points: 15},
			{From: 10, Points: 20},
			{From: 15, Points: 25},
			{From: 20, Points: 30},
			{From: 30, Points: 40},
		},
		ImpactBands: []Band{
			{From: 0, Points: 5},
			{From: 5, Points: 10},
			{From: 10, Points: 15},
			{From: 20, Points: 20},
			{From: 30, Points: 25},
			{From: 40, Points: 30},
		},
		WeightBands: []Band{
			{From: 0, Points: 5},
			{From: 5, Points: 10},
			{From: 10, Points: 15},
			{From: 20, Points: 25},
			{From: 30, Points: 35},
			{From: 40, Points: 40},
		},
		DampeningWeightLimit: 10,
		DampeningScoreCap:    70,
		MaxScore:             100,
		HighMinScore:         80,
		MediumMinScore:       50,
	}
}

// Scorer produz scores compostos limitados e faixas de prioridade a
// partir de três sinais independentes. Nunca inspeciona sinal algébrico:
// filtrar melhorias (variações <= 0) é responsabilidade de quem chama,
// para que a definição de "o que conta como problema" não fique
// enterrada aqui dentro.
type Scorer struct {
	thresholds Thresholds
}

// NewScorer cria um Scorer com a política padrão
func NewScorer() *Scorer {
	return &Scorer{thresholds: DefaultThresholds()}
}

// NewScorerWithThresholds cria um Scorer com política customizada
func NewScorerWithThresholds(t Thresholds) *Scorer {
	return &Scorer{thresholds: t}
}

// Score combina variação percentual, impacto em dias e peso da entidade
// em um score composto 0-100, aplicando o amortecimento de entidades de
// baixo peso antes do teto final
func (s *Scorer) Score(changeRatePercent, daysImpact, entityWeightPercent float64) int {
	total := bandPoints(s.thresholds.ChangeBands, changeRatePercent) +
		bandPoints(s.thresholds.ImpactBands, daysImpact) +
		bandPoints(s.thresholds.WeightBands, entityWeightPercent)

	if entityWeightPercent < s.thresholds.DampeningWeightLimit && total > s.thresholds.DampeningScoreCap {
		total = s.thresholds.DampeningScoreCap
	}

	if total > s.thresholds.MaxScore {
		total = s.thresholds.MaxScore
	}

	return total
}

// Bucket discretiza um score na faixa de prioridade correspondente
func (s *Scorer) Bucket(score int) domain.PriorityBucket {
	switch {
	case score >= s.thresholds.HighMinScore:
		return domain.PriorityHigh
	case score >= s.thresholds.MediumMinScore:
		return domain.PriorityMedium
	default:
		return domain.PriorityLow
	}
}

func bandPoints(bands []Band, value float64) int {
	points := 0
	for _, band := range bands {
		if value >= band.From {
			points = band.Points
		}
	}
	return points
}
