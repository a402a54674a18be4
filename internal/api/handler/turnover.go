package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/vfg2006/working-capital-api/internal/usecases/analyzing"
	"github.com/vfg2006/working-capital-api/pkg/apiErrors"
	"github.com/vfg2006/working-capital-api/pkg/log"
)

// GetTurnover devolve os indicadores de rotatividade (DSO, DIO, DPO,
// CCC) filtrados por trimestre e entidade
func GetTurnover(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		quarter := r.URL.Query().Get("quarter")
		entity := r.URL.Query().Get("entity")

		logger.WithFields(log.Fields{
			"quarter": quarter,
			"entity":  entity,
		}).Info("turnover: buscando indicadores de rotatividade")

		items, err := service.Turnover(quarter, entity)
		if err != nil {
			logger.WithError(err).Error("turnover: erro ao calcular indicadores")
			handleAnalysisError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(items); err != nil {
			logger.WithError(err).Error("turnover: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetComposition devolve a participação de cada entidade no capital de
// giro de um trimestre
func GetComposition(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		quarter := r.URL.Query().Get("quarter")
		if quarter == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar o trimestre no parâmetro quarter", nil)
			return
		}

		logger.WithField("quarter", quarter).Info("composition: calculando participação por entidade")

		items, err := service.Composition(quarter)
		if err != nil {
			logger.WithError(err).Error("composition: erro ao calcular participação")
			handleAnalysisError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(items); err != nil {
			logger.WithError(err).Error("composition: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetTrend devolve a série de tendência de uma entidade para a lista de
// trimestres pedida (separados por vírgula), preservando a ordem
func GetTrend(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		entity := r.URL.Query().Get("entity")
		if entity == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar a entidade no parâmetro entity", nil)
			return
		}

		quartersParam := r.URL.Query().Get("quarters")
		if quartersParam == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar os trimestres no parâmetro quarters", nil)
			return
		}

		quarters := []string{}
		for _, q := range strings.Split(quartersParam, ",") {
			if trimmed := strings.TrimSpace(q); trimmed != "" {
				quarters = append(quarters, trimmed)
			}
		}

		logger.WithFields(log.Fields{
			"entity":   entity,
			"quarters": quarters,
		}).Info("trend: montando série de tendência")

		points, err := service.TrendSeries(entity, quarters)
		if err != nil {
			logger.WithError(err).Error("trend: erro ao montar série")
			handleAnalysisError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(points); err != nil {
			logger.WithError(err).Error("trend: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
