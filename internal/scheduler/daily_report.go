package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/Alexsander532/projeto-dashboard-versao1/internal/usecases/reporting"
)

// DailyReportService envia o comparativo do dia anterior no horário configurado
type DailyReportService struct {
	scheduler       *gocron.Scheduler
	config          SyncConfig
	reporter        reporting.Reporter
	now             func() time.Time
	baseCtx         context.Context
	running         bool
	mutex           sync.Mutex
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastDay         time.Time
	lastError       error
}

func NewDailyReportService(reporter reporting.Reporter, cfg SyncConfig) *DailyReportService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.CronSchedule,
		"sync_enabled":  cfg.SyncEnabled,
	}).Info("Configuração do agendador de relatório diário carregada")

	return &DailyReportService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    cfg,
		reporter:  reporter,
		now:       time.Now,
		baseCtx:   context.Background(),
	}
}

func (s *DailyReportService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Relatório diário desabilitado por configuração")
		return nil
	}

	s.baseCtx = ctx

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SendNow(ctx); err != nil {
			logrus.WithField("error", err.Error()).Error("Erro ao enviar relatório diário")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar relatório diário: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de relatório diário")
		s.scheduler.Stop()
	}()

	return nil
}

// SendNow gera e entrega o relatório referente a ontem
func (s *DailyReportService) SendNow(ctx context.Context) error {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Info("Relatório diário já em andamento, ignorando")
		return ErrSyncRunning
	}
	s.running = true
	s.lastStartedAt = s.now()
	day := s.lastStartedAt.AddDate(0, 0, -1)
	s.mutex.Unlock()

	err := s.reporter.SendDailyReport(ctx, day)

	s.mutex.Lock()
	s.running = false
	s.lastCompletedAt = s.now()
	s.lastDay = day
	s.lastError = err
	s.mutex.Unlock()

	if err != nil {
		return fmt.Errorf("erro ao enviar relatório de %s: %w", day.Format(time.DateOnly), err)
	}

	logrus.WithField("day", day.Format(time.DateOnly)).Info("Relatório diário enviado")
	return nil
}

func (s *DailyReportService) TriggerManualSync() {
	logrus.Info("Iniciando envio manual do relatório diário")
	go func() {
		if err := s.SendNow(s.baseCtx); err != nil {
			logrus.WithField("error", err.Error()).Error("Erro ao enviar relatório diário")
		}
	}()
}

func (s *DailyReportService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.running,
		"last_sync_started_at":   s.lastStartedAt,
		"last_sync_completed_at": s.lastCompletedAt,
	}
	if !s.lastDay.IsZero() {
		status["last_report_day"] = s.lastDay.Format(time.DateOnly)
	}
	if s.lastError != nil {
		status["last_error"] = s.lastError.Error()
	}
	return status
}
