package turnover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/working-capital-api/internal/domain"
)

func floatPtr(f float64) *float64 {
	return &f
}

func TestCalculator_Metrics(t *testing.T) {
	calc := NewCalculator()

	tests := []struct {
		name     string
		snapshot *domain.EntitySnapshot
		want     domain.TurnoverMetrics
		wantErr  bool
	}{
		{
			name: "Base YTD tem precedência sobre a receita trimestral",
			snapshot: &domain.EntitySnapshot{
				Quarter:            "25.3Q",
				Entity:             domain.EntityDomestic,
				QuarterlyRevenue:   400000, // ignorada quando há YTD
				YTDRevenue:         floatPtr(1358744),
				ReceivablesBalance: 152793,
			},
			// anualizado: 1358744 / 3 * 4 = 1811658.67
			want: domain.TurnoverMetrics{DSO: 31, DIO: 0, DPO: 0, CCC: 31},
		},
		{
			name: "Sem YTD a receita trimestral é anualizada por quatro",
			snapshot: &domain.EntitySnapshot{
				Quarter:            "25.1Q",
				Entity:             domain.EntityChina,
				QuarterlyRevenue:   250000,
				QuarterlyCOGS:      floatPtr(150000),
				ReceivablesBalance: 82000,
				InventoryBalance:   90000,
				PayablesBalance:    50000,
			},
			want: domain.TurnoverMetrics{DSO: 30, DIO: 55, DPO: 30, CCC: 55},
		},
		{
			name: "CMV acumulado tem precedência sobre o CMV trimestral",
			snapshot: &domain.EntitySnapshot{
				Quarter:          "25.2Q",
				Entity:           domain.EntityHongKong,
				QuarterlyRevenue: 200000,
				YTDRevenue:       floatPtr(500000),
				YTDCOGS:          floatPtr(300000),
				QuarterlyCOGS:    floatPtr(999999), // ignorado quando há YTD
				InventoryBalance: 120000,
			},
			// CMV anualizado: 300000 / 2 * 4 = 600000
			want: domain.TurnoverMetrics{DSO: 0, DIO: 73, DPO: 0, CCC: 73},
		},
		{
			name: "Sem nenhum CMV a premissa de custo entra como fallback",
			snapshot: &domain.EntitySnapshot{
				Quarter:            "25.1Q",
				Entity:             domain.EntityUSA,
				QuarterlyRevenue:   250000,
				ReceivablesBalance: 10000,
				PayablesBalance:    200000,
			},
			// CMV estimado: 1000000 * 0.60 = 600000; CCC negativo é válido
			want: domain.TurnoverMetrics{DSO: 4, DIO: 0, DPO: 122, CCC: -118},
		},
		{
			name: "Saldos zerados produzem indicadores zerados",
			snapshot: &domain.EntitySnapshot{
				Quarter:          "25.1Q",
				Entity:           domain.EntityOther,
				QuarterlyRevenue: 100000,
			},
			want: domain.TurnoverMetrics{},
		},
		{
			name: "Receita zerada não produz NaN nem Inf",
			snapshot: &domain.EntitySnapshot{
				Quarter:            "25.1Q",
				Entity:             domain.EntityOther,
				ReceivablesBalance: 50000,
				InventoryBalance:   30000,
			},
			want: domain.TurnoverMetrics{},
		},
		{
			name: "Trimestre malformado é erro, nunca assume um padrão",
			snapshot: &domain.EntitySnapshot{
				Quarter:          "2025-Q3",
				Entity:           domain.EntityDomestic,
				QuarterlyRevenue: 100000,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics, err := calc.Metrics(tt.snapshot)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidQuarterFormat)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, metrics)
		})
	}
}

func TestCalculator_CostRatioFromConfig(t *testing.T) {
	calc := NewCalculatorWithRatio(0.5)

	metrics, err := calc.Metrics(&domain.EntitySnapshot{
		Quarter:          "25.1Q",
		Entity:           domain.EntityDomestic,
		QuarterlyRevenue: 250000,
		InventoryBalance: 100000,
	})
	require.NoError(t, err)

	// CMV estimado: 1000000 * 0.5 = 500000
	assert.Equal(t, 73, metrics.DIO)
}

func TestNewCalculatorWithRatio_NonPositiveFallsBack(t *testing.T) {
	assert.Equal(t, DefaultCostRatio, NewCalculatorWithRatio(0).CostRatio)
	assert.Equal(t, DefaultCostRatio, NewCalculatorWithRatio(-1).CostRatio)
}
