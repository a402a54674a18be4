// Package analyzing concentra as operações de agregação sobre o dataset
// de capital de giro: enriquecimento com métricas de rotatividade,
// filtros por faixa de trimestre, composição por entidade, variação
// anual e séries de tendência.
package analyzing

import (
	"github.com/vfg2006/working-capital-api/internal/domain"
	"github.com/vfg2006/working-capital-api/internal/usecases/turnover"
	"github.com/vfg2006/working-capital-api/pkg/utils"
)

// EntityFilterAll é o sentinela de "sem filtro de entidade"
const EntityFilterAll = "all"

// Enrich anexa métricas de rotatividade a cada snapshot, preservando a
// ordem de entrada. Idempotente: as métricas são função pura dos campos
// do snapshot, nunca das métricas anteriores, então reenriquecer um
// dataset já enriquecido recalcula resultados idênticos.
// Falha rápido no primeiro trimestre malformado.
func Enrich(snapshots []*domain.EntitySnapshot, calc *turnover.Calculator) ([]*domain.EntitySnapshot, error) {
	enriched := make([]*domain.EntitySnapshot, 0, len(snapshots))

	for _, snap := range snapshots {
		metrics, err := calc.Metrics(snap)
		if err != nil {
			return nil, err
		}

		clone := *snap
		clone.Metrics = &metrics
		enriched = append(enriched, &clone)
	}

	return enriched, nil
}

// FilterByRange mantém os snapshots cujo trimestre está dentro da faixa
// [startQ, endQ] e, quando informado, cuja entidade bate com o filtro
// ("" ou "all" desliga o filtro de entidade). A comparação é sempre a
// álgebra geral de trimestres, nunca uma lista fixa de rótulos.
// Faixa invertida (start > end) resulta em conjunto vazio, sem erro.
// A ordem da entrada é preservada; quem precisa de ordenação deve
// ordenar antes.
//
// Os rótulos da faixa devem ter sido validados antes com ParseQuarter:
// rótulos malformados comparam como iguais a tudo e a faixa deixa de
// filtrar. O Service valida os filtros na borda e propaga
// ErrInvalidQuarterFormat; quem chamar direto assume a mesma obrigação.
func FilterByRange(snapshots []*domain.EntitySnapshot, startQ, endQ, entity string) []*domain.EntitySnapshot {
	filtered := []*domain.EntitySnapshot{}

	for _, snap := range snapshots {
		if domain.CompareQuarters(startQ, snap.Quarter) > 0 {
			continue
		}
		if domain.CompareQuarters(snap.Quarter, endQ) > 0 {
			continue
		}
		if entity != "" && entity != EntityFilterAll && string(snap.Entity) != entity {
			continue
		}
		filtered = append(filtered, snap)
	}

	return filtered
}

// Composition calcula a participação de cada entidade no capital de giro
// de um trimestre. A pseudo-entidade consolidada fica fora do somatório
// e do resultado. Trimestre sem snapshots produz resultado vazio, nunca
// erro; denominador zero produz participações zeradas.
func Composition(snapshots []*domain.EntitySnapshot, quarter string) []domain.CompositionItem {
	items := []domain.CompositionItem{}
	total := 0.0

	for _, snap := range snapshots {
		if snap.Quarter != quarter || snap.Entity.IsConsolidated() {
			continue
		}

		wc := snap.WorkingCapital()
		items = append(items, domain.CompositionItem{
			Entity:         snap.Entity,
			WorkingCapital: wc,
		})
		total += wc
	}

	for i := range items {
		if total != 0 {
			items[i].SharePercent = utils.RoundWithTwoDecimalPlace(items[i].WorkingCapital / total * 100)
		}
	}

	return items
}

// YoYDelta compara o capital de giro de uma entidade no trimestre atual
// com o do mesmo trimestre do ano anterior. A ausência do comparativo
// (entidade não existia, carga histórica incompleta) é condição comum de
// negócio: o resultado traz valores zerados e percentual 0, nunca erro.
func YoYDelta(snapshots []*domain.EntitySnapshot, currentQuarter string, entity domain.Entity) domain.YoYDelta {
	delta := domain.YoYDelta{CurrentQuarter: currentQuarter}

	for _, snap := range snapshots {
		if snap.Quarter == currentQuarter && snap.Entity == entity {
			delta.CurrentValue = snap.WorkingCapital()
			break
		}
	}

	priorQuarter, ok := domain.YearAgoQuarter(currentQuarter)
	if !ok {
		return delta
	}
	delta.PriorQuarter = priorQuarter

	for _, snap := range snapshots {
		if snap.Quarter == priorQuarter && snap.Entity == entity {
			delta.PriorValue = snap.WorkingCapital()
			break
		}
	}

	// Percentual sobre base zero não tem leitura de negócio; fica 0
	if delta.PriorValue != 0 {
		change := (delta.CurrentValue - delta.PriorValue) / delta.PriorValue * 100
		delta.PercentChange = utils.RoundWithTwoDecimalPlace(change)
	}

	return delta
}

// TrendSeries monta a série de tendência de uma entidade, uma linha por
// trimestre solicitado, na ordem em que os rótulos foram informados (sem
// reordenação). Trimestres sem dado entram como placeholders zerados
// para preservar o alinhamento posicional esperado pelos gráficos.
func TrendSeries(snapshots []*domain.EntitySnapshot, entity domain.Entity, quarters []string) []domain.TrendPoint {
	series := make([]domain.TrendPoint, 0, len(quarters))

	for _, quarter := range quarters {
		point := domain.TrendPoint{Quarter: quarter, Missing: true}

		for _, snap := range snapshots {
			if snap.Quarter != quarter || snap.Entity != entity {
				continue
			}

			point.WorkingCapital = snap.WorkingCapital()
			if snap.Metrics != nil {
				point.Metrics = *snap.Metrics
			}
			point.Missing = false
			break
		}

		series = append(series, point)
	}

	return series
}
