package prioritizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/working-capital-api/internal/domain"
)

func TestScorer_Score(t *testing.T) {
	scorer := NewScorer()

	tests := []struct {
		name       string
		changeRate float64
		daysImpact float64
		weight     float64
		want       int
	}{
		{
			name:       "Sinais fortes em entidade pesada estouram o teto de 100",
			changeRate: 35, daysImpact: 45, weight: 35,
			// 40 + 30 + 35 = 105, limitado a 100
			want: 100,
		},
		{
			name:       "Entidade leve é amortecida para o teto de 70",
			changeRate: 35, daysImpact: 45, weight: 3,
			// 40 + 30 + 5 = 75, peso < 10 amortece para 70
			want: 70,
		},
		{
			name:       "Peso exatamente no limite não amortece",
			changeRate: 35, daysImpact: 45, weight: 10,
			// 40 + 30 + 15 = 85, peso 10 não é menor que o limite
			want: 85,
		},
		{
			name:       "Entidade leve abaixo do teto não é tocada",
			changeRate: 2, daysImpact: 1, weight: 1,
			// 10 + 5 + 5 = 20
			want: 20,
		},
		{
			name:       "Faixas intermediárias somam pontos parciais",
			changeRate: 12, daysImpact: 8, weight: 22,
			// 20 + 10 + 25 = 55
			want: 55,
		},
		{
			name:       "Variação negativa fica fora de todas as faixas",
			changeRate: -20, daysImpact: 45, weight: 35,
			// 0 + 30 + 35 = 65: o scorer soma faixas, não julga o sinal
			want: 65,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.Score(tt.changeRate, tt.daysImpact, tt.weight)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScorer_Bucket(t *testing.T) {
	scorer := NewScorer()

	tests := []struct {
		score int
		want  domain.PriorityBucket
	}{
		{score: 100, want: domain.PriorityHigh},
		{score: 80, want: domain.PriorityHigh},
		{score: 79, want: domain.PriorityMedium},
		{score: 50, want: domain.PriorityMedium},
		{score: 49, want: domain.PriorityLow},
		{score: 0, want: domain.PriorityLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, scorer.Bucket(tt.score), "score %d", tt.score)
	}
}

func TestScorer_CustomThresholds(t *testing.T) {
	scorer := NewScorerWithThresholds(Thresholds{
		ChangeBands:          []Band{{From: 0, Points: 50}},
		ImpactBands:          []Band{{From: 0, Points: 50}},
		WeightBands:          []Band{{From: 0, Points: 50}},
		DampeningWeightLimit: 20,
		DampeningScoreCap:    60,
		MaxScore:             120,
		HighMinScore:         110,
		MediumMinScore:       60,
	})

	// 150 limitado a 120 com peso acima do limite de amortecimento
	assert.Equal(t, 120, scorer.Score(1, 1, 25))
	assert.Equal(t, domain.PriorityHigh, scorer.Bucket(120))

	// peso abaixo do limite customizado amortece para 60
	assert.Equal(t, 60, scorer.Score(1, 1, 5))
	assert.Equal(t, domain.PriorityMedium, scorer.Bucket(60))
}
