// Package scheduler contém os serviços agendados que rodam junto com a API
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/gwr-marine/ops-analytics/infrastructure/repository"
	"github.com/gwr-marine/ops-analytics/internal/config"
	"github.com/gwr-marine/ops-analytics/internal/domain"
	"github.com/gwr-marine/ops-analytics/internal/usecases/insighting"
	"github.com/gwr-marine/ops-analytics/pkg/log"
	"github.com/gwr-marine/ops-analytics/pkg/utils"
)

const inventoryAlertsJob = "inventory_alerts"

type InventoryAlertsConfig struct {
	CronSchedule string
	Enabled      bool
	LookbackDays int
}

// InventoryAlertsService classifica o estoque uma vez por dia, registra os produtos
// em falta e guarda o resultado como snapshot
type InventoryAlertsService struct {
	scheduler           *gocron.Scheduler
	insighter           insighting.Insighter
	snapshotRepo        repository.InventorySnapshotRepository
	config              InventoryAlertsConfig
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSnapshotID      string
	lastError           string
}

func NewInventoryAlertsService(
	insighter insighting.Insighter,
	snapshotRepo repository.InventorySnapshotRepository,
	cfg *config.Config,
) *InventoryAlertsService {
	alertsConfig := InventoryAlertsConfig{
		CronSchedule: cfg.InventoryAlerts.CronSchedule, // Default: 6h da manhã todos os dias
		Enabled:      cfg.InventoryAlerts.Enabled,
		LookbackDays: cfg.Analytics.InventoryLookbackDays,
	}

	log.L.WithFields(log.Fields{
		"job":           inventoryAlertsJob,
		"cron_schedule": alertsConfig.CronSchedule,
		"lookback_days": alertsConfig.LookbackDays,
	}).Info("Configuração do agendador de alertas de estoque carregada")

	return &InventoryAlertsService{
		scheduler:    gocron.NewScheduler(time.Local),
		insighter:    insighter,
		snapshotRepo: snapshotRepo,
		config:       alertsConfig,
		now:          time.Now,
	}
}

func (s *InventoryAlertsService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.Info("Cron de alertas de estoque desabilitada por configuração")
		return nil
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de alertas de estoque")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunInventoryAlerts(ctx); err != nil {
			log.L.WithError(err).Error("Erro na verificação de estoque")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar alertas de estoque: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando cron de alertas de estoque")
		s.scheduler.Stop()
	}()

	return nil
}

// RunInventoryAlerts classifica o estoque na janela que termina ontem e salva o snapshot.
// Uma execução em andamento faz as chamadas concorrentes retornarem sem fazer nada.
func (s *InventoryAlertsService) RunInventoryAlerts(ctx context.Context) error {
	if !s.begin() {
		log.L.Warn("Verificação de estoque já está em execução")
		return nil
	}

	snapshotID, err := s.run(ctx)
	s.finish(snapshotID, err)

	return err
}

func (s *InventoryAlertsService) run(ctx context.Context) (string, error) {
	ctx, _ = log.WithCorrelationID(ctx)
	logger := log.ForContext(ctx).WithField("job", inventoryAlertsJob)

	filter := s.window()
	logger.WithFields(log.Fields{
		"start_date": filter.StartDate.Format(time.DateOnly),
		"end_date":   filter.EndDate.Format(time.DateOnly),
	}).Info("Iniciando verificação de estoque")

	items, err := s.insighter.GetInventory(ctx, filter)
	if err != nil {
		logger.WithError(err).Error("Erro ao classificar estoque")
		return "", err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return "", fmt.Errorf("erro ao gerar id do snapshot: %w", err)
	}

	snapshot := &domain.InventorySnapshot{
		ID:       id,
		Date:     filter.EndDate.Format(time.DateOnly),
		Items:    items,
		Critical: make([]string, 0),
		Low:      make([]string, 0),
	}

	for _, item := range items {
		switch item.Status {
		case domain.StockCritical:
			snapshot.Critical = append(snapshot.Critical, item.Product)
		case domain.StockLow:
			snapshot.Low = append(snapshot.Low, item.Product)
		default:
			continue
		}

		logger.WithFields(log.Fields{
			"stock_product":        item.Product,
			"stock_status":         item.Status,
			"stock_on_hand":        item.OnHand,
			"stock_days_of_supply": item.DaysOfSupply,
		}).Warn("Produto com estoque abaixo do limite")
	}

	if err := s.snapshotRepo.SaveSnapshot(ctx, snapshot); err != nil {
		logger.WithError(err).Error("Erro ao salvar snapshot de estoque")
		return "", err
	}

	logger.WithFields(log.Fields{
		"snapshot_id": snapshot.ID,
		"critical":    len(snapshot.Critical),
		"low":         len(snapshot.Low),
	}).Info("Verificação de estoque concluída")

	return snapshot.ID, nil
}

// window vai de LookbackDays atrás até ontem, inclusive
func (s *InventoryAlertsService) window() domain.Filter {
	lookback := s.config.LookbackDays
	if lookback <= 0 {
		lookback = 1
	}

	end := utils.CalendarDate(s.now()).AddDate(0, 0, -1)
	start := end.AddDate(0, 0, -(lookback - 1))

	return domain.Filter{StartDate: &start, EndDate: &end}
}

func (s *InventoryAlertsService) begin() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}

	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	return true
}

func (s *InventoryAlertsService) finish(snapshotID string, err error) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
		return
	}
	s.lastSnapshotID = snapshotID
}

// IsRunning indica se há uma verificação em andamento
func (s *InventoryAlertsService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// TriggerManualSync inicia manualmente uma verificação de estoque.
// Retorna false quando já existe uma execução em andamento.
func (s *InventoryAlertsService) TriggerManualSync(ctx context.Context) bool {
	if s.IsRunning() {
		log.L.Info("Verificação de estoque já em andamento, ignorando solicitação manual")
		return false
	}

	log.L.Info("Iniciando verificação manual de estoque")
	go func() {
		if err := s.RunInventoryAlerts(context.WithoutCancel(ctx)); err != nil {
			log.L.WithError(err).Error("Erro na verificação manual de estoque")
		}
	}()

	return true
}

// LatestSnapshot retorna o último snapshot salvo, ou nil se nenhuma verificação rodou ainda
func (s *InventoryAlertsService) LatestSnapshot(ctx context.Context) (*domain.InventorySnapshot, error) {
	snapshot, err := s.snapshotRepo.GetLatest(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar último snapshot de estoque")
		return nil, err
	}
	return snapshot, nil
}

// GetStatus retorna o status atual do agendador
func (s *InventoryAlertsService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"lookback_days":          s.config.LookbackDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_snapshot_id":       s.lastSnapshotID,
		"last_error":             s.lastError,
	}
}
