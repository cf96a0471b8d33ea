// Package scheduler contém os serviços de agendamento das rotinas de cobrança
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pontogestor/admin-api/internal/config"
	"github.com/pontogestor/admin-api/internal/usecases/billing"
	"github.com/sirupsen/logrus"
)

// OverdueSweepConfig representa a configuração do agendador da varredura de vencimento
type OverdueSweepConfig struct {
	CronSchedule string
	SweepEnabled bool
}

// OverdueSweepService agenda e executa a varredura diária que marca faturas
// pendentes vencidas como Vencido.
type OverdueSweepService struct {
	scheduler            *gocron.Scheduler
	config               OverdueSweepConfig
	billingService       billing.BillingService
	sweepRunning         bool
	sweepMutex           sync.Mutex
	lastSweepStartedAt   time.Time
	lastSweepCompletedAt time.Time
	lastSweepUpdated     int64
}

func NewOverdueSweepService(
	billingService billing.BillingService,
	appConfig *config.Config,
) *OverdueSweepService {
	sweepConfig := OverdueSweepConfig{
		CronSchedule: appConfig.OverdueSweep.CronSchedule, // Default: 1h da manhã todos os dias
		SweepEnabled: appConfig.OverdueSweep.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": sweepConfig.CronSchedule,
	}).Info("Configuração do agendador da varredura de vencimento carregada")

	return &OverdueSweepService{
		scheduler:      scheduler,
		config:         sweepConfig,
		billingService: billingService,
	}
}

func (s *OverdueSweepService) Start(ctx context.Context) error {
	if !s.config.SweepEnabled {
		logrus.Info("Cron da varredura de vencimento desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron da varredura de vencimento")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runSweep()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura de vencimento: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron da varredura de vencimento")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *OverdueSweepService) runSweep() {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Warn("Varredura de vencimento já está em execução")
		return
	}
	s.sweepRunning = true
	s.lastSweepStartedAt = time.Now()
	s.sweepMutex.Unlock()

	defer func() {
		s.sweepMutex.Lock()
		s.sweepRunning = false
		s.lastSweepCompletedAt = time.Now()
		s.sweepMutex.Unlock()
	}()

	updated, err := s.billingService.SweepOverdue(nil)
	if err != nil {
		logrus.WithError(err).Error("Erro na varredura de vencimento")
		return
	}

	s.lastSweepUpdated = updated
	logrus.WithField("updated", updated).Info("Varredura de vencimento concluída")
}

// TriggerManualSync inicia manualmente uma varredura de vencimento
func (s *OverdueSweepService) TriggerManualSync() {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("Varredura de vencimento já em andamento, ignorando solicitação manual")
		return
	}
	s.sweepMutex.Unlock()

	logrus.Info("Iniciando varredura manual de vencimento")
	go s.runSweep()
}

// GetStatus retorna o status atual do agendador
func (s *OverdueSweepService) GetStatus() map[string]any {
	return map[string]any{
		"sweep_enabled":           s.config.SweepEnabled,
		"sweep_cron":              s.config.CronSchedule,
		"last_sweep_started_at":   s.lastSweepStartedAt,
		"last_sweep_completed_at": s.lastSweepCompletedAt,
		"last_sweep_updated":      s.lastSweepUpdated,
	}
}
