package warehouseclient

import (
	"net/http"
	"time"

	"github.com/vfg2006/working-capital-api/internal/config"
)

type Client interface {
	GetQuarterBalances(params BalancesConsultationParams) (BalancesConsultationResponse, error)
}

type WarehouseClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente do warehouse financeiro.
func NewClient(cfg *config.Config) Client {
	return &WarehouseClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
