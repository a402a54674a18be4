package analyzing

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/working-capital-api/infrastructure/repository"
	"github.com/vfg2006/working-capital-api/internal/domain"
	"github.com/vfg2006/working-capital-api/internal/usecases/turnover"
)

// Filters é o recorte pedido pelo consumidor externo: rótulos de
// trimestre e entidade chegam como strings e são validados aqui, na
// borda, pela álgebra de trimestres
type Filters struct {
	StartQuarter string
	EndQuarter   string
	Entity       string
}

// Analyzer expõe as visões derivadas do dataset de capital de giro
type Analyzer interface {
	// WorkingCapitalReport devolve o dataset enriquecido e filtrado
	WorkingCapitalReport(filters *Filters) (*domain.WorkingCapitalReport, error)

	// Turnover devolve as linhas de rotatividade de um trimestre e/ou
	// entidade ("all" ou vazio desliga cada filtro)
	Turnover(quarter, entity string) ([]domain.TurnoverItem, error)

	// Composition devolve a participação das entidades no capital de
	// giro de um trimestre
	Composition(quarter string) ([]domain.CompositionItem, error)

	// TrendSeries devolve a série de tendência de uma entidade para os
	// trimestres pedidos, na ordem pedida
	TrendSeries(entity string, quarters []string) ([]domain.TrendPoint, error)

	// YoYDelta compara o capital de giro de uma entidade com o mesmo
	// trimestre do ano anterior
	YoYDelta(quarter, entity string) (domain.YoYDelta, error)

	// EnrichedDataset devolve o dataset completo com métricas anexadas
	EnrichedDataset() ([]*domain.EntitySnapshot, error)

	// InvalidateCache descarta o dataset memoizado (chamado após cargas)
	InvalidateCache()
}

// Service implementa Analyzer sobre o repositório de snapshots, com o
// dataset enriquecido memoizado em um cache TTL injetado
type Service struct {
	snapshotRepo repository.SnapshotRepository
	calculator   *turnover.Calculator
	cache        *DatasetCache
}

// NewService cria o serviço de análise. O cache é injetado pelo
// chamador para que o tempo de vida fique explícito e testável.
func NewService(
	snapshotRepo repository.SnapshotRepository,
	calculator *turnover.Calculator,
	cache *DatasetCache,
) Analyzer {
	return &Service{
		snapshotRepo: snapshotRepo,
		calculator:   calculator,
		cache:        cache,
	}
}

// EnrichedDataset carrega os snapshots e anexa as métricas de
// rotatividade, servindo do cache TTL quando possível
func (s *Service) EnrichedDataset() ([]*domain.EntitySnapshot, error) {
	enriched, cached, err := s.loadEnriched()
	if err != nil {
		return nil, err
	}
	if !cached {
		logrus.WithField("snapshots", len(enriched)).Debug("analyzing: dataset enriquecido recarregado")
	}
	return enriched, nil
}

func (s *Service) loadEnriched() ([]*domain.EntitySnapshot, bool, error) {
	if entries, ok := s.cache.Get(); ok {
		return entries, true, nil
	}

	snapshots, err := s.snapshotRepo.GetAll()
	if err != nil {
		return nil, false, fmt.Errorf("erro ao carregar snapshots: %w", err)
	}

	enriched, err := Enrich(snapshots, s.calculator)
	if err != nil {
		return nil, false, err
	}

	s.cache.Set(enriched)

	return enriched, false, nil
}

func (s *Service) WorkingCapitalReport(filters *Filters) (*domain.WorkingCapitalReport, error) {
	enriched, cached, err := s.loadEnriched()
	if err != nil {
		return nil, err
	}

	allQuarters := domain.SortQuartersAscending(distinctQuarters(enriched))
	latest := ""
	if l, ok := domain.LatestQuarter(allQuarters); ok {
		latest = l
	}

	startQ := filters.StartQuarter
	endQ := filters.EndQuarter

	// faixa omitida cobre o dataset inteiro
	if startQ == "" && len(allQuarters) > 0 {
		startQ = allQuarters[0]
	}
	if endQ == "" {
		endQ = latest
	}

	// rótulos informados pelo consumidor falham cedo, com o formato
	// esperado na mensagem
	if _, err := domain.ParseQuarter(startQ); startQ != "" && err != nil {
		return nil, err
	}
	if _, err := domain.ParseQuarter(endQ); endQ != "" && err != nil {
		return nil, err
	}
	if err := validateEntityFilter(filters.Entity); err != nil {
		return nil, err
	}

	data := FilterByRange(enriched, startQ, endQ, filters.Entity)

	return &domain.WorkingCapitalReport{
		Data: data,
		Meta: domain.ReportMeta{
			StartQuarter:  startQ,
			EndQuarter:    endQ,
			LatestQuarter: latest,
			AllQuarters:   allQuarters,
			Entity:        filters.Entity,
			Count:         len(data),
			Cached:        cached,
		},
	}, nil
}

func (s *Service) Turnover(quarter, entity string) ([]domain.TurnoverItem, error) {
	if quarter != "" && quarter != EntityFilterAll {
		if _, err := domain.ParseQuarter(quarter); err != nil {
			return nil, err
		}
	}
	if err := validateEntityFilter(entity); err != nil {
		return nil, err
	}

	enriched, err := s.EnrichedDataset()
	if err != nil {
		return nil, err
	}

	items := []domain.TurnoverItem{}
	for _, snap := range enriched {
		if quarter != "" && quarter != EntityFilterAll && snap.Quarter != quarter {
			continue
		}
		if entity != "" && entity != EntityFilterAll && string(snap.Entity) != entity {
			continue
		}
		if snap.Metrics == nil {
			continue
		}

		items = append(items, domain.TurnoverItem{
			Quarter: snap.Quarter,
			Entity:  snap.Entity,
			DSO:     snap.Metrics.DSO,
			DIO:     snap.Metrics.DIO,
			DPO:     snap.Metrics.DPO,
			CCC:     snap.Metrics.CCC,
		})
	}

	return items, nil
}

func (s *Service) Composition(quarter string) ([]domain.CompositionItem, error) {
	if _, err := domain.ParseQuarter(quarter); err != nil {
		return nil, err
	}

	enriched, err := s.EnrichedDataset()
	if err != nil {
		return nil, err
	}

	return Composition(enriched, quarter), nil
}

func (s *Service) TrendSeries(entity string, quarters []string) ([]domain.TrendPoint, error) {
	parsedEntity, err := domain.ParseEntity(entity)
	if err != nil {
		return nil, err
	}

	enriched, err := s.EnrichedDataset()
	if err != nil {
		return nil, err
	}

	return TrendSeries(enriched, parsedEntity, quarters), nil
}

func (s *Service) YoYDelta(quarter, entity string) (domain.YoYDelta, error) {
	if _, err := domain.ParseQuarter(quarter); err != nil {
		return domain.YoYDelta{}, err
	}
	parsedEntity, err := domain.ParseEntity(entity)
	if err != nil {
		return domain.YoYDelta{}, err
	}

	enriched, err := s.EnrichedDataset()
	if err != nil {
		return domain.YoYDelta{}, err
	}

	return YoYDelta(enriched, quarter, parsedEntity), nil
}

func (s *Service) InvalidateCache() {
	s.cache.Invalidate()
	logrus.Debug("analyzing: cache de dataset invalidado")
}

func validateEntityFilter(entity string) error {
	if entity == "" || entity == EntityFilterAll {
		return nil
	}
	_, err := domain.ParseEntity(entity)
	return err
}

func distinctQuarters(snapshots []*domain.EntitySnapshot) []string {
	seen := make(map[string]bool)
	quarters := []string{}
	for _, snap := range snapshots {
		if !seen[snap.Quarter] {
			seen[snap.Quarter] = true
			quarters = append(quarters, snap.Quarter)
		}
	}
	return quarters
}
