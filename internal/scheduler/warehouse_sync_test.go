package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	warehousemocks "github.com/vfg2006/working-capital-api/infrastructure/integrator/warehouse/mocks"
	"github.com/vfg2006/working-capital-api/infrastructure/repository/mocks"
	"github.com/vfg2006/working-capital-api/internal/domain"
	analyzingmocks "github.com/vfg2006/working-capital-api/internal/usecases/analyzing/mocks"
	"go.uber.org/mock/gomock"
)

func TestTrailingQuarterLabels(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		lookback int
		want     []string
	}{
		{
			name:     "Janela dentro do mesmo ano",
			now:      time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC), // 3º trimestre
			lookback: 3,
			want:     []string{"25.1Q", "25.2Q", "25.3Q"},
		},
		{
			name:     "Janela atravessa a virada de ano",
			now:      time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), // 1º trimestre
			lookback: 4,
			want:     []string{"24.2Q", "24.3Q", "24.4Q", "25.1Q"},
		},
		{
			name:     "Lookback mínimo de um trimestre",
			now:      time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
			lookback: 0,
			want:     []string{"25.4Q"},
		},
		{
			name:     "Janela longa cobre dois anos",
			now:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), // 2º trimestre
			lookback: 8,
			want:     []string{"23.3Q", "23.4Q", "24.1Q", "24.2Q", "24.3Q", "24.4Q", "25.1Q", "25.2Q"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, trailingQuarterLabels(tt.now, tt.lookback))
		})
	}
}

func TestWarehouseSyncService_SyncSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)
	mockWarehouse := warehousemocks.NewMockWarehouseIntegrator(ctrl)
	mockAnalyzer := analyzingmocks.NewMockAnalyzer(ctrl)

	service := &WarehouseSyncService{
		config: WarehouseSyncConfig{
			QuarterLookback: 2,
			SyncEnabled:     true,
		},
		snapshotRepo:     mockSnapshotRepo,
		warehouseService: mockWarehouse,
		analyzer:         mockAnalyzer,
	}

	snapshots := []*domain.EntitySnapshot{
		{Quarter: "25.2Q", Entity: domain.EntityDomestic, QuarterlyRevenue: 100000},
		{Quarter: "25.3Q", Entity: domain.EntityDomestic, QuarterlyRevenue: 120000},
	}

	mockWarehouse.EXPECT().
		FetchSnapshots(gomock.Len(2)).
		Return(snapshots, nil)

	mockSnapshotRepo.EXPECT().
		SaveOrUpdateBatch(snapshots).
		Return(nil)

	// a carga invalida o dataset memoizado
	mockAnalyzer.EXPECT().InvalidateCache()

	service.syncSnapshots()

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, 2, status["last_sync_rows"])
	assert.NotZero(t, status["last_sync_completed_at"])
}

func TestWarehouseSyncService_StatusReadsDuringSync(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)
	mockWarehouse := warehousemocks.NewMockWarehouseIntegrator(ctrl)
	mockAnalyzer := analyzingmocks.NewMockAnalyzer(ctrl)

	service := &WarehouseSyncService{
		config:           WarehouseSyncConfig{QuarterLookback: 2, SyncEnabled: true},
		snapshotRepo:     mockSnapshotRepo,
		warehouseService: mockWarehouse,
		analyzer:         mockAnalyzer,
	}

	snapshots := []*domain.EntitySnapshot{
		{Quarter: "25.3Q", Entity: domain.EntityChina, QuarterlyRevenue: 90000},
	}

	mockWarehouse.EXPECT().FetchSnapshots(gomock.Any()).Return(snapshots, nil)
	mockSnapshotRepo.EXPECT().SaveOrUpdateBatch(snapshots).Return(nil)
	mockAnalyzer.EXPECT().InvalidateCache()

	// leituras do status concorrentes com a sincronização não podem
	// observar escrita desprotegida dos campos de bookkeeping
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			_ = service.GetStatus()
		}
	}()

	service.syncSnapshots()
	<-done

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, 1, status["last_sync_rows"])
}

func TestWarehouseSyncService_SyncSnapshots_FetchFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)
	mockWarehouse := warehousemocks.NewMockWarehouseIntegrator(ctrl)
	mockAnalyzer := analyzingmocks.NewMockAnalyzer(ctrl)

	service := &WarehouseSyncService{
		config:           WarehouseSyncConfig{QuarterLookback: 4, SyncEnabled: true},
		snapshotRepo:     mockSnapshotRepo,
		warehouseService: mockWarehouse,
		analyzer:         mockAnalyzer,
	}

	mockWarehouse.EXPECT().
		FetchSnapshots(gomock.Any()).
		Return(nil, assert.AnError)

	// nada é gravado nem invalidado quando a busca falha
	service.syncSnapshots()

	status := service.GetStatus()
	assert.Equal(t, 0, status["last_sync_rows"])
}

func TestWarehouseSyncService_SyncSnapshots_EmptyWindow(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)
	mockWarehouse := warehousemocks.NewMockWarehouseIntegrator(ctrl)
	mockAnalyzer := analyzingmocks.NewMockAnalyzer(ctrl)

	service := &WarehouseSyncService{
		config:           WarehouseSyncConfig{QuarterLookback: 1, SyncEnabled: true},
		snapshotRepo:     mockSnapshotRepo,
		warehouseService: mockWarehouse,
		analyzer:         mockAnalyzer,
	}

	mockWarehouse.EXPECT().
		FetchSnapshots(gomock.Any()).
		Return([]*domain.EntitySnapshot{}, nil)

	// warehouse sem dados não toca o banco nem o cache
	service.syncSnapshots()
}
