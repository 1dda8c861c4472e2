package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"hvac_crm/internal/domain/entities"
	"hvac_crm/internal/usecase/interfaces"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingToken       = errors.New("missing session token")
	ErrInvalidToken       = errors.New("invalid or expired session token")
)

type Session struct {
	Token     string                `json:"token"`
	ExpiresAt time.Time             `json:"expires_at"`
	User      entities.VerifiedUser `json:"user"`
}

type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (Session, error)
	Verify(ctx context.Context, token string) (entities.VerifiedUser, error)
}

type AuthUseCase struct {
	users  interfaces.IUserRepository
	tokens interfaces.ITokenService
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, tokens interfaces.ITokenService) *AuthUseCase {
	return &AuthUseCase{users: users, tokens: tokens}
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return Session{}, ErrInvalidCredentials
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		log.Printf("[auth][usecase] user lookup failed email=%s err=%v", email, err)
		return Session{}, err
	}
	if user.ID == "" {
		return Session{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Printf("[auth][usecase] password mismatch email=%s", email)
		return Session{}, ErrInvalidCredentials
	}

	token, exp, err := u.tokens.Issue(user)
	if err != nil {
		return Session{}, fmt.Errorf("issue token: %w", err)
	}
	log.Printf("[auth][usecase] login user_id=%s", user.ID)
	return Session{Token: token, ExpiresAt: exp, User: verified(user)}, nil
}

// Verify resolves a session token to the current state of its user.
func (u *AuthUseCase) Verify(ctx context.Context, token string) (entities.VerifiedUser, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.VerifiedUser{}, ErrMissingToken
	}
	claims, err := u.tokens.Parse(token)
	if err != nil {
		log.Printf("[auth][usecase] token rejected err=%v", err)
		return entities.VerifiedUser{}, ErrInvalidToken
	}

	user, err := u.users.GetByID(ctx, claims.ID)
	if err != nil {
		log.Printf("[auth][usecase] user lookup failed user_id=%s err=%v", claims.ID, err)
		return entities.VerifiedUser{}, err
	}
	if user.ID == "" {
		return entities.VerifiedUser{}, ErrInvalidToken
	}
	return verified(user), nil
}

func verified(u entities.User) entities.VerifiedUser {
	return entities.VerifiedUser{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}
