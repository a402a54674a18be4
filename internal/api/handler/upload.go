package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/vfg2006/working-capital-api/infrastructure/importer"
	"github.com/vfg2006/working-capital-api/infrastructure/repository"
	"github.com/vfg2006/working-capital-api/internal/usecases/analyzing"
	"github.com/vfg2006/working-capital-api/pkg/apiErrors"
	"github.com/vfg2006/working-capital-api/pkg/log"
)

// limite do corpo da requisição de upload
const maxUploadBytes = 10 << 20

// UploadResponse descreve o resultado de uma carga de planilha
type UploadResponse struct {
	TotalRows     int      `json:"total_rows"`
	ValidRows     int      `json:"valid_rows"`
	Errors        []string `json:"errors,omitempty"`
	LatestQuarter string   `json:"latest_quarter"`
	AllQuarters   []string `json:"all_quarters"`
}

// UploadSnapshots recebe uma planilha .xlsx com os saldos trimestrais,
// valida linha a linha e grava os snapshots válidos. Linhas inválidas
// são devolvidas com o motivo, sem derrubar a carga.
func UploadSnapshots(
	snapshotImporter *importer.SnapshotImporter,
	snapshotRepo repository.SnapshotRepository,
	analyzer analyzing.Analyzer,
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo multipart inválido ou arquivo grande demais", nil)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário enviar o arquivo no campo file", nil)
			return
		}
		defer file.Close()

		fileName := strings.ToLower(header.Filename)
		if !strings.HasSuffix(fileName, ".xlsx") && !strings.HasSuffix(fileName, ".xls") {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Apenas planilhas .xlsx ou .xls são aceitas", nil)
			return
		}

		logger.WithFields(log.Fields{
			"file_name": header.Filename,
			"file_size": header.Size,
		}).Info("upload: processando planilha de snapshots")

		result, err := snapshotImporter.Import(file)
		if err != nil {
			logger.WithError(err).Error("upload: erro ao processar planilha")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		if err := snapshotRepo.SaveOrUpdateBatch(result.Snapshots); err != nil {
			logger.WithError(err).Error("upload: erro ao gravar snapshots no banco")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar os snapshots", nil)
			return
		}

		// o dataset memoizado ficou velho
		analyzer.InvalidateCache()

		logger.WithFields(log.Fields{
			"total_rows": result.TotalRows,
			"valid_rows": result.ValidRows,
			"row_errors": len(result.Errors),
		}).Info("upload: carga concluída")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(UploadResponse{
			TotalRows:     result.TotalRows,
			ValidRows:     result.ValidRows,
			Errors:        result.Errors,
			LatestQuarter: result.LatestQuarter,
			AllQuarters:   result.AllQuarters,
		}); err != nil {
			logger.WithError(err).Error("upload: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
