package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/Alexsander532/projeto-dashboard-versao1/internal/domain"
	"github.com/Alexsander532/projeto-dashboard-versao1/internal/usecases/syncing"
	"github.com/Alexsander532/projeto-dashboard-versao1/pkg/log"
)

var ErrSyncRunning = errors.New("sincronização já em andamento")

// SyncConfig representa a configuração de agendamento de um job
type SyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// SourceSyncService gerencia o agendamento e execução da sincronização de uma planilha
type SourceSyncService struct {
	scheduler           *gocron.Scheduler
	config              SyncConfig
	syncer              syncing.Syncer
	source              syncing.Source
	baseCtx             context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReport          *domain.BatchReport
	lastError           error
}

// NewSourceSyncService cria o agendador de uma fonte
func NewSourceSyncService(syncer syncing.Syncer, source syncing.Source, cfg SyncConfig) *SourceSyncService {
	logrus.WithFields(logrus.Fields{
		"source":        source.Name,
		"cron_schedule": cfg.CronSchedule,
		"sync_enabled":  cfg.SyncEnabled,
	}).Info("Configuração do agendador de sincronização carregada")

	return &SourceSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    cfg,
		syncer:    syncer,
		source:    source,
		baseCtx:   context.Background(),
	}
}

func (s *SourceSyncService) Name() string {
	return s.source.Name.String()
}

// Start inicia o agendador
func (s *SourceSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.WithField("source", s.source.Name).Info("Sincronização desabilitada por configuração")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"source": s.source.Name,
		"cron":   s.config.CronSchedule,
	}).Info("Iniciando agendador de sincronização")

	s.syncMutex.Lock()
	s.baseCtx = ctx
	s.syncMutex.Unlock()

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runSync(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de %s: %w", s.source.Name, err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.WithField("source", s.source.Name).Info("Parando agendador de sincronização")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *SourceSyncService) runSync(ctx context.Context) {
	ctx, logger := log.ForJob(ctx, s.Name())
	if _, err := s.SyncNow(ctx); err != nil && !errors.Is(err, ErrSyncRunning) {
		logger.WithFields(log.Fields{
			"source": s.source.Name,
			"error":  err.Error(),
		}).Error("Erro na sincronização agendada")
	}
}

// SyncNow executa a sincronização de forma síncrona; uma segunda chamada concorrente é ignorada
func (s *SourceSyncService) SyncNow(ctx context.Context) (*domain.BatchReport, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.WithField("source", s.source.Name).Info("Sincronização já em andamento, ignorando")
		return nil, ErrSyncRunning
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	report, err := s.syncer.Sync(ctx, s.source)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastError = err
	if report != nil {
		s.lastReport = report
	}
	duration := s.lastSyncCompletedAt.Sub(s.lastSyncStartedAt)
	s.syncMutex.Unlock()

	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"source":   s.source.Name,
		"duration": duration.String(),
	}).Info("Sincronização concluída")

	return report, nil
}

// TriggerManualSync inicia manualmente uma sincronização
func (s *SourceSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	running, ctx := s.syncRunning, s.baseCtx
	s.syncMutex.Unlock()

	if running {
		logrus.WithField("source", s.source.Name).Info("Sincronização já em andamento, ignorando solicitação manual")
		return
	}

	logrus.WithField("source", s.source.Name).Info("Iniciando sincronização manual")
	go s.runSync(ctx)
}

// GetStatus retorna o status atual do agendador
func (s *SourceSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
	if s.lastReport != nil {
		status["last_report"] = s.lastReport
	}
	if s.lastError != nil {
		status["last_error"] = s.lastError.Error()
	}

	return status
}
