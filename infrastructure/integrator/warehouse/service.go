package warehouse

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/working-capital-api/infrastructure/integrator/warehouse/warehouseclient"
	"github.com/vfg2006/working-capital-api/internal/config"
	"github.com/vfg2006/working-capital-api/internal/domain"
)

// WarehouseIntegrator busca saldos trimestrais no warehouse financeiro
// e os converte em snapshots do domínio
type WarehouseIntegrator interface {
	FetchSnapshots(quarters []string) ([]*domain.EntitySnapshot, error)
}

type WarehouseService struct {
	cfg    *config.Config
	Client warehouseclient.Client
}

func New(cfg *config.Config, client warehouseclient.Client) WarehouseIntegrator {
	return &WarehouseService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *WarehouseService) FetchSnapshots(quarters []string) ([]*domain.EntitySnapshot, error) {
	rows, err := s.Client.GetQuarterBalances(warehouseclient.BalancesConsultationParams{
		Quarters: quarters,
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar saldos trimestrais do warehouse")
	}

	snapshots := make([]*domain.EntitySnapshot, 0, len(rows))
	for _, row := range rows {
		// linhas com rótulo ou entidade que o domínio não reconhece
		// são puladas, não derrubam a carga inteira
		if _, err := domain.ParseQuarter(row.Quarter); err != nil {
			logrus.WithField("quarter", row.Quarter).Warn("warehouse: linha com trimestre inválido ignorada")
			continue
		}
		entity, err := domain.ParseEntity(row.Entity)
		if err != nil {
			logrus.WithField("entity", row.Entity).Warn("warehouse: linha com entidade inválida ignorada")
			continue
		}

		snapshots = append(snapshots, &domain.EntitySnapshot{
			Quarter:            row.Quarter,
			Entity:             entity,
			QuarterlyRevenue:   row.Revenue,
			QuarterlyCOGS:      row.COGS,
			YTDRevenue:         row.YTDRevenue,
			YTDCOGS:            row.YTDCOGS,
			ReceivablesBalance: row.ReceivablesBalance,
			InventoryBalance:   row.InventoryBalance,
			PayablesBalance:    row.PayablesBalance,
		})
	}

	return snapshots, nil
}
