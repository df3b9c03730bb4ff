package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/osrsclan/event-manager-api/infrastructure/integrator/osrs"
	"github.com/osrsclan/event-manager-api/infrastructure/integrator/osrs/osrsclient"
	"github.com/osrsclan/event-manager-api/infrastructure/repository"
	"github.com/osrsclan/event-manager-api/internal/config"
	"github.com/osrsclan/event-manager-api/internal/domain"
)

// HiscoreSnapshotSyncConfig representa a configuração do agendador de snapshots do hiscore
type HiscoreSnapshotSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	SyncEnabled         bool
}

// HiscoreSnapshotSyncService gerencia o agendamento e execução dos snapshots do hiscore
type HiscoreSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              HiscoreSnapshotSyncConfig
	eventRepo           repository.EventRepository
	snapshotRepo        repository.SnapshotRepository
	osrsService         osrs.Integrator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewHiscoreSnapshotSyncService cria uma nova instância do serviço de snapshots do hiscore
func NewHiscoreSnapshotSyncService(
	eventRepo repository.EventRepository,
	snapshotRepo repository.SnapshotRepository,
	osrsService osrs.Integrator,
	appConfig *config.Config,
) *HiscoreSnapshotSyncService {
	syncConfig := HiscoreSnapshotSyncConfig{
		CronSchedule:        appConfig.SnapshotSync.CronSchedule,
		RequestDelaySeconds: appConfig.SnapshotSync.RequestDelaySeconds,
		SyncEnabled:         appConfig.SnapshotSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.UTC)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots do hiscore carregada")

	return &HiscoreSnapshotSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		eventRepo:    eventRepo,
		snapshotRepo: snapshotRepo,
		osrsService:  osrsService,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *HiscoreSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de snapshots do hiscore desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots do hiscore")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllSnapshots()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshots do hiscore: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots do hiscore")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllSnapshots captura um snapshot do hiscore para cada RSN do evento ativo
func (s *HiscoreSnapshotSyncService) syncAllSnapshots() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	rsns, err := s.activeEventRSNs()
	if err != nil {
		logrus.WithError(err).Error("Erro ao montar lista de RSNs para snapshots do hiscore")
		return
	}

	if len(rsns) == 0 {
		logrus.Info("Nenhum RSN encontrado para snapshots do hiscore")
		return
	}

	logrus.WithField("rsns", len(rsns)).Info("Iniciando captura de snapshots do hiscore")

	var saved, skipped int
	for i, rsn := range rsns {
		if s.captureSnapshot(rsn) {
			saved++
		} else {
			skipped++
		}

		// Aguardar antes da próxima requisição para evitar sobrecarga no hiscore
		if i < len(rsns)-1 {
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"saved":    saved,
		"skipped":  skipped,
	}).Info("Captura de snapshots do hiscore concluída")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// activeEventRSNs monta a lista de RSNs únicos dos participantes do evento ativo.
// RSNs com alias apontando para outro nome não são consultados diretamente.
func (s *HiscoreSnapshotSyncService) activeEventRSNs() ([]string, error) {
	event, err := s.eventRepo.GetActiveEvent()
	if err != nil {
		return nil, err
	}
	if event == nil {
		logrus.Info("Nenhum evento ativo para snapshots do hiscore")
		return nil, nil
	}

	participants, err := s.eventRepo.ListParticipants(event.ID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	rsns := make([]string, 0, len(participants))
	for _, participant := range participants {
		for _, rsn := range participant.RSNList() {
			if _, ok := domain.RSNAliases[rsn]; ok {
				continue
			}
			if _, ok := seen[rsn]; ok {
				continue
			}
			seen[rsn] = struct{}{}
			rsns = append(rsns, rsn)
		}
	}

	return rsns, nil
}

// captureSnapshot consulta o hiscore e persiste o snapshot de um RSN.
// Retorna true quando o snapshot foi salvo.
func (s *HiscoreSnapshotSyncService) captureSnapshot(rsn string) bool {
	stats, err := s.osrsService.FetchPlayerStats(rsn)
	if err != nil {
		if errors.Is(err, osrsclient.ErrPlayerNotFound) {
			logrus.WithField("rsn", rsn).Warn("RSN não encontrado no hiscore, pulando")
			return false
		}
		logrus.WithFields(logrus.Fields{
			"rsn":   rsn,
			"error": err.Error(),
		}).Error("Erro ao consultar hiscore para snapshot")
		return false
	}

	snapshot := &domain.HiscoreSnapshot{
		RSN:     rsn,
		TakenAt: time.Now().UTC(),
		Stats:   *stats,
	}

	if err := s.snapshotRepo.SaveSnapshot(snapshot); err != nil {
		logrus.WithFields(logrus.Fields{
			"rsn":   rsn,
			"error": err.Error(),
		}).Error("Erro ao salvar snapshot do hiscore")
		return false
	}

	logrus.WithField("rsn", rsn).Info("Snapshot do hiscore salvo")
	return true
}

// TriggerManualSync inicia manualmente uma captura de snapshots
func (s *HiscoreSnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando captura manual de snapshots do hiscore")
	go s.syncAllSnapshots()
}

// GetStatus retorna o status atual do agendador. Os campos de sincronização
// são lidos sob o mutex porque a goroutine de sync os escreve.
func (s *HiscoreSnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
