package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/permits-dashboard-api/internal/config"
	"github.com/vfg2006/permits-dashboard-api/internal/usecases/snapshotting"
)

// SnapshotWarmupConfig representa a configuração do aquecimento do snapshot
type SnapshotWarmupConfig struct {
	CronSchedule string
	SyncEnabled  bool
	Timeout      time.Duration
}

// SnapshotWarmupService renova o snapshot da planilha em segundo plano, para que
// as requisições raramente precisem esperar pela origem.
type SnapshotWarmupService struct {
	scheduler           *gocron.Scheduler
	config              SnapshotWarmupConfig
	snapshotter         snapshotting.Snapshotter
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewSnapshotWarmupService(snapshotter snapshotting.Snapshotter, appConfig *config.Config) *SnapshotWarmupService {
	warmupConfig := SnapshotWarmupConfig{
		CronSchedule: appConfig.SnapshotWarmup.CronSchedule,
		SyncEnabled:  appConfig.SnapshotWarmup.Enabled,
		Timeout:      appConfig.Sheet.FetchTimeout,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": warmupConfig.CronSchedule,
		"sync_enabled":  warmupConfig.SyncEnabled,
	}).Info("scheduler: snapshot warmup configuration loaded")

	return &SnapshotWarmupService{
		scheduler:   gocron.NewScheduler(time.UTC),
		config:      warmupConfig,
		snapshotter: snapshotter,
	}
}

// Start agenda o aquecimento e para o agendador quando o contexto for cancelado
func (s *SnapshotWarmupService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("scheduler: snapshot warmup disabled")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("scheduler: starting snapshot warmup")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.warmup(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar aquecimento do snapshot: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("scheduler: stopping snapshot warmup")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *SnapshotWarmupService) warmup(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("scheduler: snapshot warmup already running, skipping")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	status, err := s.snapshotter.Refresh(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if err != nil {
		s.lastSyncError = err.Error()
		logrus.WithError(err).Warn("scheduler: snapshot warmup failed")
		return
	}

	s.lastSyncError = ""
	s.lastSyncCompletedAt = time.Now()
	logrus.WithField("rows", status.Rows).Info("scheduler: snapshot warmed up")
}

// TriggerManualSync dispara um aquecimento fora do horário agendado
func (s *SnapshotWarmupService) TriggerManualSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("scheduler: snapshot warmup already running, ignoring manual trigger")
		return
	}
	s.syncMutex.Unlock()

	go s.warmup(context.WithoutCancel(ctx))
}

// GetStatus retorna o status atual do agendador
func (s *SnapshotWarmupService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
