package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vfg2006/working-capital-api/internal/domain"
	"github.com/vfg2006/working-capital-api/internal/usecases/analyzing"
	"github.com/vfg2006/working-capital-api/pkg/apiErrors"
	"github.com/vfg2006/working-capital-api/pkg/log"
)

// GetWorkingCapital devolve o dataset de capital de giro enriquecido
// com métricas de rotatividade, recortado por faixa de trimestres e
// entidade
func GetWorkingCapital(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters := &analyzing.Filters{
			StartQuarter: r.URL.Query().Get("startQ"),
			EndQuarter:   r.URL.Query().Get("endQ"),
			Entity:       r.URL.Query().Get("entity"),
		}

		logger.WithFields(log.Fields{
			"start_quarter": filters.StartQuarter,
			"end_quarter":   filters.EndQuarter,
			"entity":        filters.Entity,
		}).Info("working-capital: buscando dataset")

		report, err := service.WorkingCapitalReport(filters)
		if err != nil {
			logger.WithError(err).Error("working-capital: erro ao montar relatório")
			handleAnalysisError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"rows":   report.Meta.Count,
			"cached": report.Meta.Cached,
		}).Info("working-capital: relatório montado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("working-capital: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// handleAnalysisError converte erros de domínio em respostas HTTP
// padronizadas: formato inválido vira 400, o resto vira 500
func handleAnalysisError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidQuarterFormat):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.Is(err, domain.ErrUnknownEntity):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar a análise", nil)
	}
}
