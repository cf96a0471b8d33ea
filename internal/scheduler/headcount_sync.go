package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pontogestor/admin-api/infrastructure/repository"
	"github.com/pontogestor/admin-api/internal/config"
	"github.com/pontogestor/admin-api/internal/domain"
	"github.com/pontogestor/admin-api/internal/usecases/syncing"
	"github.com/sirupsen/logrus"
)

// HeadcountSyncConfig representa a configuração do agendador de sincronização de quadro
type HeadcountSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// HeadcountSyncService agenda e executa a sincronização do quadro de
// funcionários de cada carteira com o Facilita Ponto.
type HeadcountSyncService struct {
	scheduler           *gocron.Scheduler
	config              HeadcountSyncConfig
	userRepo            repository.UserRepository
	syncService         syncing.SyncService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewHeadcountSyncService(
	userRepo repository.UserRepository,
	syncService syncing.SyncService,
	appConfig *config.Config,
) *HeadcountSyncService {
	syncConfig := HeadcountSyncConfig{
		CronSchedule: appConfig.HeadcountSync.CronSchedule, // Default: 5h da manhã todos os dias
		SyncEnabled:  appConfig.HeadcountSync.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
	}).Info("Configuração do agendador de sincronização de quadro carregada")

	return &HeadcountSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		userRepo:    userRepo,
		syncService: syncService,
	}
}

func (s *HeadcountSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de sincronização de quadro desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de sincronização de quadro")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllPortfolios()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de quadro: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de sincronização de quadro")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllPortfolios percorre todos os usuários ativos e sincroniza a carteira
// de cada um. A auditoria fica registrada na carteira do próprio usuário.
func (s *HeadcountSyncService) syncAllPortfolios() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Sincronização de quadro já está em execução")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	users, err := s.userRepo.ListUsers()
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar usuários para sincronização de quadro")
		return
	}

	for _, user := range users {
		if !user.Active {
			continue
		}

		actor := &domain.Claims{
			UserID:    user.ID,
			UserName:  user.Name,
			UserEmail: user.Email,
			UserRole:  user.RoleID,
		}

		result, err := s.syncService.SyncHeadcounts(actor)
		if err != nil {
			logrus.WithError(err).WithField("user_id", user.ID).Error("Erro na sincronização de quadro do usuário")
			continue
		}

		logrus.WithFields(logrus.Fields{
			"user_id": user.ID,
			"checked": result.Checked,
			"updated": result.Updated,
			"skipped": result.Skipped,
			"failed":  result.Failed,
		}).Info("Sincronização de quadro concluída para o usuário")
	}
}

// TriggerManualSync inicia manualmente uma sincronização de quadro
func (s *HeadcountSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de quadro já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de quadro")
	go s.syncAllPortfolios()
}

// GetStatus retorna o status atual do agendador
func (s *HeadcountSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
