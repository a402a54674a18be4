package narrating

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/working-capital-api/infrastructure/integrator/openai"
	"github.com/vfg2006/working-capital-api/infrastructure/repository"
	"github.com/vfg2006/working-capital-api/internal/domain"
	"github.com/vfg2006/working-capital-api/internal/usecases/analyzing"
	"github.com/vfg2006/working-capital-api/internal/usecases/prioritizing"
)

// janela de trimestres usada na seção de tendência
const trendWindow = 8

var (
	ErrInvalidSection = errors.New("seção de narrativa inválida, esperado overview, turnover, trend ou action")
	ErrNoData         = errors.New("sem dados para o trimestre informado")
)

// NarrativeRequest descreve a narrativa pedida. ForceRegenerate pula a
// leitura do cache mas continua gravando o resultado novo.
type NarrativeRequest struct {
	Quarter         string
	Entity          string
	Section         string
	ForceRegenerate bool
}

// NarrativeResult embala a entrada gerada (ou cacheada) com a origem
type NarrativeResult struct {
	Entry  *domain.NarrativeEntry `json:"entry"`
	Cached bool                   `json:"cached"`
}

type Narrator interface {
	Generate(req *NarrativeRequest) (*NarrativeResult, error)
	CachedQuarters() ([]string, error)
	ClearCache(quarter string) (int64, error)
}

type Service struct {
	analyzer   analyzing.Analyzer
	scorer     *prioritizing.Scorer
	cacheRepo  repository.NarrativeCacheRepository
	integrator openai.OpenAIIntegrator
	now        func() time.Time
}

func NewService(
	analyzer analyzing.Analyzer,
	scorer *prioritizing.Scorer,
	cacheRepo repository.NarrativeCacheRepository,
	integrator openai.OpenAIIntegrator,
) Narrator {
	return &Service{
		analyzer:   analyzer,
		scorer:     scorer,
		cacheRepo:  cacheRepo,
		integrator: integrator,
		now:        time.Now,
	}
}

func (s *Service) Generate(req *NarrativeRequest) (*NarrativeResult, error) {
	if !domain.ValidNarrativeSection(req.Section) {
		return nil, ErrInvalidSection
	}
	if _, err := domain.ParseQuarter(req.Quarter); err != nil {
		return nil, err
	}

	section := domain.NarrativeSection(req.Section)
	entity := s.resolveEntity(req, section)

	if !req.ForceRegenerate {
		cached, err := s.cacheRepo.Get(req.Quarter, entity, section)
		if err != nil {
			return nil, err
		}
		if cached != nil {
			return &NarrativeResult{Entry: cached, Cached: true}, nil
		}
	}

	userPrompt, err := s.buildPrompt(req.Quarter, entity, section)
	if err != nil {
		return nil, err
	}

	content, err := s.integrator.GenerateNarrative(systemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	entry := &domain.NarrativeEntry{
		Quarter:     req.Quarter,
		Entity:      entity,
		Section:     section,
		Content:     content,
		GeneratedAt: s.now(),
	}

	// falha ao gravar o cache não invalida a narrativa já gerada
	if err := s.cacheRepo.Save(entry); err != nil {
		logrus.WithError(err).Warn("narrating: falha ao gravar narrativa no cache")
	}

	return &NarrativeResult{Entry: entry, Cached: false}, nil
}

// resolveEntity define a entidade efetiva da narrativa: seções
// consolidadas (overview, action) ignoram o filtro de entidade.
func (s *Service) resolveEntity(req *NarrativeRequest, section domain.NarrativeSection) string {
	switch section {
	case domain.SectionOverview, domain.SectionAction:
		return ""
	}
	if req.Entity == "" {
		return string(domain.EntityConsolidated)
	}
	return req.Entity
}

func (s *Service) buildPrompt(quarter, entity string, section domain.NarrativeSection) (string, error) {
	switch section {
	case domain.SectionOverview:
		delta, err := s.analyzer.YoYDelta(quarter, string(domain.EntityConsolidated))
		if err != nil {
			return "", err
		}
		composition, err := s.analyzer.Composition(quarter)
		if err != nil {
			return "", err
		}
		if delta.CurrentValue == 0 && len(composition) == 0 {
			return "", ErrNoData
		}
		return buildOverviewPrompt(quarter, delta, composition), nil

	case domain.SectionTurnover:
		items, err := s.analyzer.Turnover(quarter, entity)
		if err != nil {
			return "", err
		}
		if len(items) == 0 {
			return "", ErrNoData
		}
		return buildTurnoverPrompt(quarter, items), nil

	case domain.SectionTrend:
		parsedEntity, err := domain.ParseEntity(entity)
		if err != nil {
			return "", err
		}
		quarters, err := s.trailingQuarters(quarter)
		if err != nil {
			return "", err
		}
		if len(quarters) == 0 {
			return "", ErrNoData
		}
		points, err := s.analyzer.TrendSeries(entity, quarters)
		if err != nil {
			return "", err
		}
		return buildTrendPrompt(parsedEntity, points), nil

	case domain.SectionAction:
		enriched, err := s.analyzer.EnrichedDataset()
		if err != nil {
			return "", err
		}
		if len(enriched) == 0 {
			return "", ErrNoData
		}
		issues := prioritizing.BuildIssues(enriched, quarter, s.scorer)
		return buildActionPrompt(quarter, issues), nil
	}

	return "", ErrInvalidSection
}

// trailingQuarters devolve a janela de tendência que termina no
// trimestre pedido, limitada aos trimestres presentes no dataset
func (s *Service) trailingQuarters(endQuarter string) ([]string, error) {
	report, err := s.analyzer.WorkingCapitalReport(&analyzing.Filters{})
	if err != nil {
		return nil, err
	}

	window := []string{}
	for _, q := range report.Meta.AllQuarters {
		if domain.CompareQuarters(q, endQuarter) > 0 {
			break
		}
		window = append(window, q)
	}
	if len(window) > trendWindow {
		window = window[len(window)-trendWindow:]
	}

	return window, nil
}

func (s *Service) CachedQuarters() ([]string, error) {
	return s.cacheRepo.ListQuarters()
}

func (s *Service) ClearCache(quarter string) (int64, error) {
	if quarter != "" {
		if _, err := domain.ParseQuarter(quarter); err != nil {
			return 0, err
		}
	}
	return s.cacheRepo.DeleteByQuarter(quarter)
}
