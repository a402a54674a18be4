package prioritizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/working-capital-api/internal/domain"
)

func issueSnapshot(quarter string, entity domain.Entity, receivables, inventory, payables float64, dso, dio int) *domain.EntitySnapshot {
	return &domain.EntitySnapshot{
		Quarter:            quarter,
		Entity:             entity,
		ReceivablesBalance: receivables,
		InventoryBalance:   inventory,
		PayablesBalance:    payables,
		Metrics:            &domain.TurnoverMetrics{DSO: dso, DIO: dio},
	}
}

func TestBuildIssues(t *testing.T) {
	snapshots := []*domain.EntitySnapshot{
		// trimestre anterior (24.2Q)
		issueSnapshot("24.2Q", domain.EntityDomestic, 1000, 1000, 100, 30, 50),
		issueSnapshot("24.2Q", domain.EntityChina, 50, 50, 20, 20, 30),

		// trimestre corrente (25.2Q)
		issueSnapshot("25.2Q", domain.EntityDomestic, 1200, 900, 100, 40, 45),
		issueSnapshot("25.2Q", domain.EntityChina, 100, 50, 50, 80, 30),

		// consolidado nunca vira problema nem entra no denominador de peso
		issueSnapshot("25.2Q", domain.EntityConsolidated, 99999, 99999, 0, 10, 10),

		// entidade sem comparativo anual é pulada
		issueSnapshot("25.2Q", domain.EntityUSA, 300, 300, 0, 15, 15),
	}

	issues := BuildIssues(snapshots, "25.2Q", NewScorer())

	require.Len(t, issues, 2)

	// ordenado por score decrescente
	first := issues[0]
	assert.Equal(t, domain.EntityDomestic, first.Entity)
	assert.Equal(t, domain.IssueReceivables, first.Category)
	assert.Equal(t, 20.0, first.ChangeRatePercent)
	assert.Equal(t, 10.0, first.DaysImpact)
	// peso 2000/2100: 30 + 15 + 40 = 85
	assert.Equal(t, 85, first.Score)
	assert.Equal(t, domain.PriorityHigh, first.Priority)

	second := issues[1]
	assert.Equal(t, domain.EntityChina, second.Entity)
	assert.Equal(t, domain.IssueReceivables, second.Category)
	assert.Equal(t, 100.0, second.ChangeRatePercent)
	// 40 + 30 + 5 = 75, amortecido para 70 pelo peso abaixo de 10%
	assert.Equal(t, 70, second.Score)
	assert.Equal(t, domain.PriorityMedium, second.Priority)
}

func TestBuildIssues_ImprovementsAreNotIssues(t *testing.T) {
	snapshots := []*domain.EntitySnapshot{
		issueSnapshot("24.1Q", domain.EntityDomestic, 1000, 1000, 0, 30, 30),
		// recebíveis e estoque caíram: nada a reportar
		issueSnapshot("25.1Q", domain.EntityDomestic, 800, 900, 0, 25, 28),
	}

	issues := BuildIssues(snapshots, "25.1Q", NewScorer())
	assert.Empty(t, issues)
}

func TestBuildIssues_ZeroPriorBalanceIsSkipped(t *testing.T) {
	snapshots := []*domain.EntitySnapshot{
		issueSnapshot("24.1Q", domain.EntityChina, 0, 0, 0, 0, 0),
		issueSnapshot("25.1Q", domain.EntityChina, 500, 300, 0, 40, 30),
	}

	// sem base anterior o percentual não tem leitura
	issues := BuildIssues(snapshots, "25.1Q", NewScorer())
	assert.Empty(t, issues)
}

func TestBuildIssues_NegativeDaysImpactClampsToZero(t *testing.T) {
	snapshots := []*domain.EntitySnapshot{
		// saldo subiu mas o giro melhorou (DSO caiu)
		issueSnapshot("24.1Q", domain.EntityDomestic, 1000, 0, 0, 50, 0),
		issueSnapshot("25.1Q", domain.EntityDomestic, 1300, 0, 0, 35, 0),
	}

	issues := BuildIssues(snapshots, "25.1Q", NewScorer())

	require.Len(t, issues, 1)
	assert.Zero(t, issues[0].DaysImpact)
}

func TestBuildIssues_InvalidQuarterYieldsNothing(t *testing.T) {
	issues := BuildIssues(nil, "ruim", NewScorer())
	assert.Nil(t, issues)
}
