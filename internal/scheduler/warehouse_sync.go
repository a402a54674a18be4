package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/working-capital-api/infrastructure/integrator/warehouse"
	"github.com/vfg2006/working-capital-api/infrastructure/repository"
	"github.com/vfg2006/working-capital-api/internal/config"
	"github.com/vfg2006/working-capital-api/internal/usecases/analyzing"
)

// WarehouseSyncConfig representa a configuração do agendador de
// sincronização com o warehouse financeiro
type WarehouseSyncConfig struct {
	CronSchedule    string
	QuarterLookback int
	SyncEnabled     bool
}

// WarehouseSyncService gerencia o agendamento e execução da carga de
// saldos trimestrais a partir do warehouse
type WarehouseSyncService struct {
	scheduler           *gocron.Scheduler
	config              WarehouseSyncConfig
	appConfig           *config.Config
	snapshotRepo        repository.SnapshotRepository
	warehouseService    warehouse.WarehouseIntegrator
	analyzer            analyzing.Analyzer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncRows        int
}

// NewWarehouseSyncService cria uma nova instância do serviço de sincronização
func NewWarehouseSyncService(
	snapshotRepo repository.SnapshotRepository,
	warehouseService warehouse.WarehouseIntegrator,
	analyzer analyzing.Analyzer,
	appConfig *config.Config,
) *WarehouseSyncService {
	// Criar a configuração com base na config global
	syncConfig := WarehouseSyncConfig{
		CronSchedule:    appConfig.WarehouseSync.CronSchedule,
		QuarterLookback: appConfig.WarehouseSync.QuarterLookback,
		SyncEnabled:     appConfig.WarehouseSync.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":    syncConfig.CronSchedule,
		"quarter_lookback": syncConfig.QuarterLookback,
		"sync_enabled":     syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização com o warehouse carregada")

	return &WarehouseSyncService{
		scheduler:        scheduler,
		config:           syncConfig,
		appConfig:        appConfig,
		snapshotRepo:     snapshotRepo,
		warehouseService: warehouseService,
		analyzer:         analyzer,
		syncRunning:      false,
	}
}

// Start inicia o agendador
func (s *WarehouseSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização com o warehouse desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização com o warehouse")

	// Agendar a carga de saldos trimestrais
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncSnapshots()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização com o warehouse: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização com o warehouse")
		s.scheduler.Stop()
	}()

	return nil
}

// syncSnapshots busca no warehouse os trimestres da janela de lookback
// e grava os snapshots no banco
func (s *WarehouseSyncService) syncSnapshots() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização com o warehouse já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.syncMutex.Lock()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	quarters := trailingQuarterLabels(time.Now(), s.config.QuarterLookback)

	logrus.WithFields(logrus.Fields{
		"quarters": quarters,
	}).Info("Iniciando sincronização de saldos trimestrais com o warehouse")

	snapshots, err := s.warehouseService.FetchSnapshots(quarters)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar saldos trimestrais no warehouse")
		return
	}

	if len(snapshots) == 0 {
		logrus.Info("Warehouse não devolveu nenhum saldo trimestral para a janela pedida")
		return
	}

	if err := s.snapshotRepo.SaveOrUpdateBatch(snapshots); err != nil {
		logrus.WithError(err).Error("Erro ao gravar snapshots sincronizados no banco")
		return
	}

	// o dataset memoizado ficou velho
	s.analyzer.InvalidateCache()

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"snapshots": len(snapshots),
		"quarters":  len(quarters),
	}).Info("Sincronização com o warehouse concluída")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncRows = len(snapshots)
	s.syncMutex.Unlock()
}

// trailingQuarterLabels devolve os rótulos AA.NQ dos últimos lookback
// trimestres terminando no trimestre corrente, em ordem crescente
func trailingQuarterLabels(now time.Time, lookback int) []string {
	if lookback < 1 {
		lookback = 1
	}

	year := now.Year()
	quarter := (int(now.Month())-1)/3 + 1

	labels := make([]string, 0, lookback)
	for i := 0; i < lookback; i++ {
		labels = append(labels, fmt.Sprintf("%02d.%dQ", year%100, quarter))
		quarter--
		if quarter == 0 {
			quarter = 4
			year--
		}
	}

	// inverter para ordem crescente
	for i, j := 0, len(labels)-1; i < j; i, j = i+1, j-1 {
		labels[i], labels[j] = labels[j], labels[i]
	}

	return labels
}

// TriggerManualSync inicia manualmente uma sincronização com o warehouse
func (s *WarehouseSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização com o warehouse já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual com o warehouse")
	go s.syncSnapshots()
}

// GetStatus retorna o status atual da sincronização
func (s *WarehouseSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"quarter_lookback":       s.config.QuarterLookback,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_rows":         s.lastSyncRows,
	}
}
