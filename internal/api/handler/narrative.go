package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vfg2006/working-capital-api/internal/usecases/narrating"
	"github.com/vfg2006/working-capital-api/pkg/apiErrors"
	"github.com/vfg2006/working-capital-api/pkg/log"
)

// NarrativeRequest é o corpo do pedido de geração de narrativa
type NarrativeRequest struct {
	Quarter         string `json:"quarter"`
	Entity          string `json:"entity,omitempty"`
	Section         string `json:"section"`
	ForceRegenerate bool   `json:"force_regenerate,omitempty"`
}

// GenerateNarrative gera (ou serve do cache) a análise narrativa de uma
// seção do painel
func GenerateNarrative(service narrating.Narrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req NarrativeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		logger.WithFields(log.Fields{
			"quarter":          req.Quarter,
			"entity":           req.Entity,
			"section":          req.Section,
			"force_regenerate": req.ForceRegenerate,
		}).Info("narrative: gerando análise narrativa")

		result, err := service.Generate(&narrating.NarrativeRequest{
			Quarter:         req.Quarter,
			Entity:          req.Entity,
			Section:         req.Section,
			ForceRegenerate: req.ForceRegenerate,
		})
		if err != nil {
			logger.WithError(err).Error("narrative: erro ao gerar análise")
			handleNarrativeError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"cached": result.Cached,
		}).Info("narrative: análise pronta")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("narrative: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetNarrativeCache lista os trimestres com narrativas cacheadas
func GetNarrativeCache(service narrating.Narrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		quarters, err := service.CachedQuarters()
		if err != nil {
			logger.WithError(err).Error("narrative-cache: erro ao listar trimestres cacheados")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar o cache de narrativas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"quarters": quarters,
		}); err != nil {
			logger.WithError(err).Error("narrative-cache: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// ClearNarrativeCache remove narrativas cacheadas. Sem o parâmetro
// quarter, limpa o cache inteiro.
func ClearNarrativeCache(service narrating.Narrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		quarter := r.URL.Query().Get("quarter")

		removed, err := service.ClearCache(quarter)
		if err != nil {
			logger.WithError(err).Error("narrative-cache: erro ao limpar cache")
			handleNarrativeError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"quarter": quarter,
			"removed": removed,
		}).Info("narrative-cache: cache limpo")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"removed": removed,
		}); err != nil {
			logger.WithError(err).Error("narrative-cache: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func handleNarrativeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, narrating.ErrInvalidSection):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.Is(err, narrating.ErrNoData):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, err.Error(), nil)

	default:
		handleAnalysisError(w, err)
	}
}
