package handler

import (
	"net/http"

	"github.com/vfg2006/working-capital-api/infrastructure/importer"
	"github.com/vfg2006/working-capital-api/infrastructure/repository"
	"github.com/vfg2006/working-capital-api/internal/api/handler/router"
	"github.com/vfg2006/working-capital-api/internal/usecases/analyzing"
	"github.com/vfg2006/working-capital-api/internal/usecases/authenticating"
	"github.com/vfg2006/working-capital-api/internal/usecases/narrating"
	"github.com/vfg2006/working-capital-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func WorkingCapital(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/working-capital",
			Method:  http.MethodGet,
			Handler: GetWorkingCapital(service),
		},
		{
			Path:    "/v1/turnover",
			Method:  http.MethodGet,
			Handler: GetTurnover(service),
		},
		{
			Path:    "/v1/composition",
			Method:  http.MethodGet,
			Handler: GetComposition(service),
		},
		{
			Path:    "/v1/trend",
			Method:  http.MethodGet,
			Handler: GetTrend(service),
		},
	}
}

func Snapshots(
	snapshotImporter *importer.SnapshotImporter,
	snapshotRepo repository.SnapshotRepository,
	analyzer analyzing.Analyzer,
) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/snapshots/upload",
			Method:      http.MethodPost,
			Handler:     UploadSnapshots(snapshotImporter, snapshotRepo, analyzer),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireOperator()},
		},
	}
}

func Narrative(service narrating.Narrator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/analysis/narrative",
			Method:      http.MethodPost,
			Handler:     GenerateNarrative(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireOperator()},
		},
		{
			Path:    "/v1/analysis/cache",
			Method:  http.MethodGet,
			Handler: GetNarrativeCache(service),
		},
		{
			Path:        "/v1/analysis/cache",
			Method:      http.MethodDelete,
			Handler:     ClearNarrativeCache(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireOperator()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sync/run",
			Method:      http.MethodPost,
			Handler:     RunWarehouseSync(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireOperator()},
		},
		{
			Path:    "/v1/sync/status",
			Method:  http.MethodGet,
			Handler: GetSyncStatus(services),
		},
	}
}
