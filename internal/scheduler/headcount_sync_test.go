package scheduler

import (
	"errors"
	"testing"

	"github.com/pontogestor/admin-api/infrastructure/repository/mocks"
	"github.com/pontogestor/admin-api/internal/config"
	"github.com/pontogestor/admin-api/internal/domain"
	syncmocks "github.com/pontogestor/admin-api/internal/usecases/syncing/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHeadcountSyncService_syncAllPortfolios(t *testing.T) {
	users := []*domain.User{
		{ID: 1, Name: "Administrador", Email: "admin@pontogestor.com.br", Active: true, RoleID: 1},
		{ID: 2, Name: "Conta Desativada", Email: "inativo@pontogestor.com.br", Active: false, RoleID: 2},
		{ID: 3, Name: "Maria Oliveira", Email: "maria@pontogestor.com.br", Active: true, RoleID: 2},
	}

	t.Run("Sincroniza a carteira de cada usuário ativo em seu próprio nome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)
		syncService := syncmocks.NewMockSyncService(ctrl)

		userRepo.EXPECT().ListUsers().Return(users, nil)

		var actors []*domain.Claims
		syncService.EXPECT().
			SyncHeadcounts(gomock.Any()).
			DoAndReturn(func(actor *domain.Claims) (*domain.HeadcountSyncResult, error) {
				actors = append(actors, actor)
				return &domain.HeadcountSyncResult{Checked: 1}, nil
			}).
			Times(2)

		service := NewHeadcountSyncService(userRepo, syncService, &config.Config{
			HeadcountSync: config.HeadcountSync{CronSchedule: "0 5 * * *", Enabled: true},
		})

		service.syncAllPortfolios()

		// A conta desativada fica de fora
		if assert.Len(t, actors, 2) {
			assert.Equal(t, 1, actors[0].UserID)
			assert.Equal(t, "admin@pontogestor.com.br", actors[0].UserEmail)
			assert.Equal(t, 3, actors[1].UserID)
			assert.Equal(t, "maria@pontogestor.com.br", actors[1].UserEmail)
		}

		assert.False(t, service.syncRunning)
		assert.False(t, service.lastSyncCompletedAt.IsZero())
	})

	t.Run("Falha em um usuário não interrompe os demais", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)
		syncService := syncmocks.NewMockSyncService(ctrl)

		userRepo.EXPECT().ListUsers().Return(users, nil)

		syncService.EXPECT().
			SyncHeadcounts(gomock.Any()).
			DoAndReturn(func(actor *domain.Claims) (*domain.HeadcountSyncResult, error) {
				if actor.UserID == 1 {
					return nil, errors.New("connection refused")
				}
				return &domain.HeadcountSyncResult{}, nil
			}).
			Times(2)

		service := NewHeadcountSyncService(userRepo, syncService, &config.Config{})

		service.syncAllPortfolios()

		assert.False(t, service.syncRunning)
	})

	t.Run("Execução concorrente é ignorada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)
		syncService := syncmocks.NewMockSyncService(ctrl)

		service := NewHeadcountSyncService(userRepo, syncService, &config.Config{})
		service.syncRunning = true

		// Nenhuma listagem de usuários é esperada
		service.syncAllPortfolios()

		assert.True(t, service.syncRunning)
	})
}

func TestHeadcountSyncService_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	syncService := syncmocks.NewMockSyncService(ctrl)

	service := NewHeadcountSyncService(userRepo, syncService, &config.Config{
		HeadcountSync: config.HeadcountSync{CronSchedule: "0 5 * * *", Enabled: false},
	})

	status := service.GetStatus()

	assert.Equal(t, false, status["sync_enabled"])
	assert.Equal(t, "0 5 * * *", status["sync_cron"])
	assert.Contains(t, status, "last_sync_started_at")
	assert.Contains(t, status, "last_sync_completed_at")
}
