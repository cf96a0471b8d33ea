package authenticating

import (
	"errors"
	"testing"

	"github.com/pontogestor/admin-api/infrastructure/repository/mocks"
	"github.com/pontogestor/admin-api/internal/config"
	"github.com/pontogestor/admin-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) (Authenticator, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	cfg := &config.Config{SecretKey: "chave-de-teste"}

	return NewService(userRepo, cfg), userRepo
}

func hashPassword(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestService_LoginUser(t *testing.T) {
	tests := []struct {
		name        string
		email       string
		password    string
		setup       func(t *testing.T, userRepo *mocks.MockUserRepository)
		expectedErr error
	}{
		{
			name:     "Credenciais válidas retornam token",
			email:    "Admin@PontoGestor.com.br",
			password: "senha-correta",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				// O email é normalizado antes da consulta
				userRepo.EXPECT().GetUserByEmail("admin@pontogestor.com.br").Return(&domain.User{
					ID:           1,
					Name:         "Administrador",
					Email:        "admin@pontogestor.com.br",
					PasswordHash: hashPassword(t, "senha-correta"),
					Active:       true,
					RoleID:       1,
				}, nil)
			},
		},
		{
			name:        "Email e senha são obrigatórios",
			email:       "",
			password:    "",
			expectedErr: ErrMissingRequiredData,
		},
		{
			name:     "Usuário inexistente",
			email:    "ninguem@pontogestor.com.br",
			password: "qualquer",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("ninguem@pontogestor.com.br").Return(nil, nil)
			},
			expectedErr: ErrUserNotFound,
		},
		{
			name:     "Conta desativada não autentica",
			email:    "inativo@pontogestor.com.br",
			password: "senha-correta",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("inativo@pontogestor.com.br").Return(&domain.User{
					ID:           2,
					Email:        "inativo@pontogestor.com.br",
					PasswordHash: hashPassword(t, "senha-correta"),
					Active:       false,
				}, nil)
			},
			expectedErr: ErrUserDisabled,
		},
		{
			name:     "Senha incorreta",
			email:    "admin@pontogestor.com.br",
			password: "senha-errada",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("admin@pontogestor.com.br").Return(&domain.User{
					ID:           1,
					Email:        "admin@pontogestor.com.br",
					PasswordHash: hashPassword(t, "senha-correta"),
					Active:       true,
				}, nil)
			},
			expectedErr: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo := newTestService(t)

			if tt.setup != nil {
				tt.setup(t, userRepo)
			}

			token, err := service.LoginUser(tt.email, tt.password)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, token)
				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}

func TestService_TokenRoundTrip(t *testing.T) {
	service, userRepo := newTestService(t)

	userRepo.EXPECT().GetUserByEmail("admin@pontogestor.com.br").Return(&domain.User{
		ID:           1,
		Name:         "Administrador",
		Email:        "admin@pontogestor.com.br",
		PasswordHash: hashPassword(t, "senha-correta"),
		Active:       true,
		RoleID:       1,
	}, nil)

	token, err := service.LoginUser("admin@pontogestor.com.br", "senha-correta")
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)

	assert.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, "Administrador", claims.UserName)
	assert.Equal(t, "admin@pontogestor.com.br", claims.UserEmail)
	assert.Equal(t, 1, claims.UserRole)
}

func TestService_ValidateToken_Invalid(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.ValidateToken("token-que-nao-e-jwt")
	assert.Error(t, err)
}

func TestService_CreateUser(t *testing.T) {
	tests := []struct {
		name        string
		user        *domain.User
		setup       func(*mocks.MockUserRepository)
		expectedErr error
		validate    func(t *testing.T, created *domain.User)
	}{
		{
			name: "Usuário novo nasce ativo com papel padrão e senha criptografada",
			user: &domain.User{
				Name:         "Maria Oliveira",
				Email:        "  Maria@PontoGestor.com.br ",
				PasswordHash: "senha-segura",
			},
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("maria@pontogestor.com.br").Return(nil, nil)
				userRepo.EXPECT().
					CreateUser(gomock.Any()).
					DoAndReturn(func(user *domain.User) (*domain.User, error) {
						assert.Equal(t, "maria@pontogestor.com.br", user.Email)
						assert.True(t, user.Active)
						assert.Equal(t, 2, user.RoleID)

						// A senha nunca é armazenada em claro
						assert.NotEqual(t, "senha-segura", user.PasswordHash)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("senha-segura")))

						user.ID = 7
						return user, nil
					})
			},
			validate: func(t *testing.T, created *domain.User) {
				assert.Equal(t, 7, created.ID)
			},
		},
		{
			name: "Senha com menos de 8 caracteres é rejeitada",
			user: &domain.User{
				Name:         "Maria Oliveira",
				Email:        "maria@pontogestor.com.br",
				PasswordHash: "curta",
			},
			expectedErr: ErrWeakPassword,
		},
		{
			name: "Campos obrigatórios ausentes",
			user: &domain.User{
				Email: "maria@pontogestor.com.br",
			},
			expectedErr: ErrMissingRequiredData,
		},
		{
			name: "Email já cadastrado",
			user: &domain.User{
				Name:         "Maria Oliveira",
				Email:        "maria@pontogestor.com.br",
				PasswordHash: "senha-segura",
			},
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("maria@pontogestor.com.br").Return(&domain.User{ID: 3}, nil)
			},
			expectedErr: ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo := newTestService(t)

			if tt.setup != nil {
				tt.setup(userRepo)
			}

			created, err := service.CreateUser(tt.user)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, created)
				return
			}

			assert.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, created)
			}
		})
	}
}

func TestService_ListUsers(t *testing.T) {
	service, userRepo := newTestService(t)

	userRepo.EXPECT().ListUsers().Return([]*domain.User{
		{ID: 1, Name: "Administrador", PasswordHash: "hash-sensivel"},
		{ID: 2, Name: "Maria Oliveira", PasswordHash: "outro-hash"},
	}, nil)

	users, err := service.ListUsers()

	assert.NoError(t, err)
	if assert.Len(t, users, 2) {
		// A listagem nunca expõe o hash de senha
		for _, user := range users {
			assert.Empty(t, user.PasswordHash)
		}
	}
}

func TestService_GetUserProfile(t *testing.T) {
	t.Run("Perfil retorna sem o hash de senha", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().GetUserByID(1).Return(&domain.User{
			ID:           1,
			Name:         "Administrador",
			PasswordHash: "hash-sensivel",
		}, nil)

		user, err := service.GetUserProfile(1)

		assert.NoError(t, err)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("Usuário inexistente", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.EXPECT().GetUserByID(99).Return(nil, nil)

		_, err := service.GetUserProfile(99)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestHandleEmail(t *testing.T) {
	assert.Equal(t, "admin@pontogestor.com.br", handleEmail("  Admin@PontoGestor.com.br  "))
	assert.Equal(t, "semespacos@x.com", handleEmail("sem espacos@x.com"))
}

func TestIsCredentialsError(t *testing.T) {
	assert.True(t, IsCredentialsError(NewUserAuthError(ErrInvalidCredentials, "AUTH_001", 1, "Senha incorreta")))
	assert.True(t, IsCredentialsError(ErrUserDisabled))
	assert.False(t, IsCredentialsError(errors.New("outro erro")))
}
