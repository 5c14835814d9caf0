package service

import (
	"context"
	"errors"
	"testing"

	"github.com/a2sh3r/familyledger/internal/apperrors"
	"github.com/a2sh3r/familyledger/internal/mocks/repository_mocks"
	"github.com/a2sh3r/familyledger/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Register(t *testing.T) {
	tests := []struct {
		name        string
		login       string
		password    string
		mockSetup   func(m *repository_mocks.MockUserRepository)
		expectedErr error
	}{
		{
			name:     "успешная регистрация",
			login:    "user1",
			password: "password123",
			mockSetup: func(m *repository_mocks.MockUserRepository) {
				m.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) error {
					if _, err := uuid.Parse(u.ID); err != nil {
						t.Errorf("expected uuid parent id, got %q", u.ID)
					}
					if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("password123")) != nil {
						t.Errorf("password is not stored as bcrypt hash")
					}
					return nil
				})
			},
		},
		{
			name:     "пользователь уже существует",
			login:    "user2",
			password: "password123",
			mockSetup: func(m *repository_mocks.MockUserRepository) {
				m.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(apperrors.ErrUserAlreadyExists)
			},
			expectedErr: apperrors.ErrUserAlreadyExists,
		},
		{
			name:     "неизвестная ошибка создания",
			login:    "user3",
			password: "password123",
			mockSetup: func(m *repository_mocks.MockUserRepository) {
				m.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(errors.New("db fail"))
			},
			expectedErr: errors.New("db fail"),
		},
		{
			name:        "пустой логин",
			login:       "  ",
			password:    "password123",
			mockSetup:   func(m *repository_mocks.MockUserRepository) {},
			expectedErr: apperrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := repository_mocks.NewMockUserRepository(ctrl)
			tt.mockSetup(repo)

			service := NewUserService(repo)
			user, err := service.Register(context.Background(), tt.login, tt.password)

			if tt.expectedErr != nil && (err == nil || err.Error() != tt.expectedErr.Error()) {
				t.Errorf("expected error %v, got %v", tt.expectedErr, err)
			}
			if tt.expectedErr == nil {
				if err != nil {
					t.Errorf("expected nil error, got %v", err)
				}
				if user == nil || user.Login != tt.login {
					t.Errorf("expected registered user %s, got %+v", tt.login, user)
				}
			}
		})
	}
}

func TestUserService_Authenticate(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	tests := []struct {
		name        string
		login       string
		password    string
		mockUser    *models.User
		mockErr     error
		expectedErr error
	}{
		{
			name:     "успешная аутентификация",
			login:    "user1",
			password: "password123",
			mockUser: &models.User{ID: "parent-1", Login: "user1", Password: string(hashed)},
		},
		{
			name:        "неправильный пароль",
			login:       "user2",
			password:    "wrongpass",
			mockUser:    &models.User{ID: "parent-2", Login: "user2", Password: string(hashed)},
			expectedErr: apperrors.ErrInvalidCredentials,
		},
		{
			name:        "пользователь не найден",
			login:       "user3",
			password:    "any",
			mockErr:     apperrors.ErrUserNotFound,
			expectedErr: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := repository_mocks.NewMockUserRepository(ctrl)
			repo.EXPECT().GetUserByLogin(gomock.Any(), tt.login).Return(tt.mockUser, tt.mockErr)

			service := NewUserService(repo)
			user, err := service.Authenticate(context.Background(), tt.login, tt.password)

			if tt.expectedErr != nil && !errors.Is(err, tt.expectedErr) {
				t.Errorf("expected error %v, got %v", tt.expectedErr, err)
			}
			if tt.expectedErr == nil {
				if err != nil {
					t.Errorf("expected nil error, got %v", err)
				}
				if user == nil || user.ID != tt.mockUser.ID {
					t.Errorf("expected user %s, got %+v", tt.mockUser.ID, user)
				}
			}
		})
	}
}

func TestUserService_GetUserByLogin(t *testing.T) {
	expectedUser := &models.User{ID: "parent-1", Login: "user1", Password: "hashed"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repository_mocks.NewMockUserRepository(ctrl)
	repo.EXPECT().GetUserByLogin(gomock.Any(), "user1").Return(expectedUser, nil)

	service := NewUserService(repo)

	user, err := service.GetUserByLogin(context.Background(), "user1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Login != expectedUser.Login {
		t.Errorf("expected login %s, got %s", expectedUser.Login, user.Login)
	}
}
