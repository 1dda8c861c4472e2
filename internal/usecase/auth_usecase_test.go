package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hvac_crm/internal/domain/entities"
	mock_interfaces "hvac_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func hashed(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return string(h)
}

func TestAuthUseCase_Login(t *testing.T) {
	t.Run("blank credentials", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil)
		if _, err := uc.Login(context.Background(), " ", ""); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, mock_interfaces.NewMockITokenService(ctrl))
		users.EXPECT().GetByEmail(gomock.Any(), "admin@crm.local").Return(entities.User{}, nil)

		if _, err := uc.Login(context.Background(), " Admin@CRM.local ", "secret"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, mock_interfaces.NewMockITokenService(ctrl))
		users.EXPECT().GetByEmail(gomock.Any(), "admin@crm.local").Return(entities.User{ID: "u-1", PasswordHash: hashed(t, "secret")}, nil)

		if _, err := uc.Login(context.Background(), "admin@crm.local", "nope"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		tokens := mock_interfaces.NewMockITokenService(ctrl)
		uc := NewAuthUseCase(users, tokens)
		user := entities.User{ID: "u-1", Email: "admin@crm.local", Name: "Admin", Role: "admin", PasswordHash: hashed(t, "secret")}
		exp := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
		users.EXPECT().GetByEmail(gomock.Any(), "admin@crm.local").Return(user, nil)
		tokens.EXPECT().Issue(user).Return("tok", exp, nil)

		s, err := uc.Login(context.Background(), "admin@crm.local", "secret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Token != "tok" || !s.ExpiresAt.Equal(exp) || s.User.Role != "admin" {
			t.Fatalf("unexpected session: %+v", s)
		}
	})
}

func TestAuthUseCase_Verify(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil)
		if _, err := uc.Verify(context.Background(), ""); !errors.Is(err, ErrMissingToken) {
			t.Fatalf("expected ErrMissingToken, got %v", err)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tokens := mock_interfaces.NewMockITokenService(ctrl)
		uc := NewAuthUseCase(mock_interfaces.NewMockIUserRepository(ctrl), tokens)
		tokens.EXPECT().Parse("bad").Return(entities.VerifiedUser{}, errors.New("signature"))

		if _, err := uc.Verify(context.Background(), "bad"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("lookup failure is not an auth error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tokens := mock_interfaces.NewMockITokenService(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, tokens)
		tokens.EXPECT().Parse("tok").Return(entities.VerifiedUser{ID: "u-1"}, nil)
		users.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{}, errors.New("db"))

		_, err := uc.Verify(context.Background(), "tok")
		if err == nil || errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected storage error, got %v", err)
		}
	})

	t.Run("deleted user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tokens := mock_interfaces.NewMockITokenService(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, tokens)
		tokens.EXPECT().Parse("tok").Return(entities.VerifiedUser{ID: "u-1"}, nil)
		users.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{}, nil)

		if _, err := uc.Verify(context.Background(), "tok"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("success reflects current user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tokens := mock_interfaces.NewMockITokenService(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, tokens)
		tokens.EXPECT().Parse("tok").Return(entities.VerifiedUser{ID: "u-1", Role: "staff"}, nil)
		users.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1", Email: "a@b.com", Name: "A", Role: "admin"}, nil)

		u, err := uc.Verify(context.Background(), " tok ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.Role != "admin" || u.Email != "a@b.com" {
			t.Fatalf("unexpected user: %+v", u)
		}
	})
}
