package prioritizing

import (
	"sort"

	"github.com/vfg2006/working-capital-api/internal/domain"
	"github.com/vfg2006/working-capital-api/internal/usecases/analyzing"
	"github.com/vfg2006/working-capital-api/pkg/utils"
)

// BuildIssues constrói os problemas de capital de giro de um trimestre
// comparando cada entidade com o mesmo trimestre do ano anterior, nas
// categorias de recebíveis e estoque. Somente variações adversas
// (saldo crescendo) viram problema: o filtro de sinal acontece aqui,
// antes do Scorer, que por contrato não olha sinal. O resultado sai
// ordenado por score decrescente.
func BuildIssues(snapshots []*domain.EntitySnapshot, currentQuarter string, scorer *Scorer) []domain.PriorityIssue {
	priorQuarter, ok := domain.YearAgoQuarter(currentQuarter)
	if !ok {
		return nil
	}

	weights := entityWeights(snapshots, currentQuarter)

	issues := []domain.PriorityIssue{}

	for _, current := range snapshots {
		if current.Quarter != currentQuarter || current.Entity.IsConsolidated() {
			continue
		}

		prior := findSnapshot(snapshots, priorQuarter, current.Entity)
		if prior == nil {
			// entidade sem comparativo anual: condição comum, não é erro
			continue
		}

		weight := weights[current.Entity]

		if issue, ok := buildIssue(current, prior, domain.IssueReceivables, weight, scorer); ok {
			issues = append(issues, issue)
		}
		if issue, ok := buildIssue(current, prior, domain.IssueInventory, weight, scorer); ok {
			issues = append(issues, issue)
		}
	}

	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Score > issues[j].Score
	})

	return issues
}

func buildIssue(current, prior *domain.EntitySnapshot, category domain.IssueCategory, weight float64, scorer *Scorer) (domain.PriorityIssue, bool) {
	var currBalance, priorBalance float64
	var currDays, priorDays int

	switch category {
	case domain.IssueReceivables:
		currBalance, priorBalance = current.ReceivablesBalance, prior.ReceivablesBalance
		if current.Metrics != nil {
			currDays = current.Metrics.DSO
		}
		if prior.Metrics != nil {
			priorDays = prior.Metrics.DSO
		}
	case domain.IssueInventory:
		currBalance, priorBalance = current.InventoryBalance, prior.InventoryBalance
		if current.Metrics != nil {
			currDays = current.Metrics.DIO
		}
		if prior.Metrics != nil {
			priorDays = prior.Metrics.DIO
		}
	}

	if priorBalance == 0 {
		// sem base anterior o percentual não tem leitura; valores
		// absolutos ficam para a narrativa
		return domain.PriorityIssue{}, false
	}

	changeRate := (currBalance - priorBalance) / priorBalance * 100
	daysImpact := float64(currDays - priorDays)

	// melhorias não são problema
	if changeRate <= 0 {
		return domain.PriorityIssue{}, false
	}
	if daysImpact < 0 {
		daysImpact = 0
	}

	score := scorer.Score(changeRate, daysImpact, weight)

	return domain.PriorityIssue{
		Entity:              current.Entity,
		Category:            category,
		ChangeRatePercent:   utils.RoundWithTwoDecimalPlace(changeRate),
		DaysImpact:          daysImpact,
		EntityWeightPercent: utils.RoundWithTwoDecimalPlace(weight),
		Score:               score,
		Priority:            scorer.Bucket(score),
	}, true
}

func entityWeights(snapshots []*domain.EntitySnapshot, quarter string) map[domain.Entity]float64 {
	weights := make(map[domain.Entity]float64)
	for _, item := range analyzing.Composition(snapshots, quarter) {
		weights[item.Entity] = item.SharePercent
	}
	return weights
}

func findSnapshot(snapshots []*domain.EntitySnapshot, quarter string, entity domain.Entity) *domain.EntitySnapshot {
	for _, snap := range snapshots {
		if snap.Quarter == quarter && snap.Entity == entity {
			return snap
		}
	}
	return nil
}
