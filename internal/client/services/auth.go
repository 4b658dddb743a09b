// Package services contains the application services of the RentIQ client.
// Services orchestrate the REST client, the session manager, and the
// client-side state components; presentation code talks only to them.
package services

import (
	"context"
	"fmt"

	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/client/api"
	"github.com/jninan13/CSCECapstoneProject-RentIQ-Spring2026/internal/client/models"
)

// AuthService defines the authentication operations of the client.
//
// Contract:
//   - Login / Register / GoogleAuth: obtain a token from the server and hand
//     it to the session manager, which persists it.
//   - CurrentUser: fetch the identity behind the stored token.
//   - Logout: end the session voluntarily.
//
// All methods honor context cancellation.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) error
	Register(ctx context.Context, email, username string, password []byte) error
	GoogleAuth(ctx context.Context, code string) error
	CurrentUser(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
}

// SessionWriter is the slice of the session manager the auth service needs.
// Only auth flows are allowed to set or clear the token.
type SessionWriter interface {
	SetToken(ctx context.Context, token string) error
	SetEmail(ctx context.Context, email string) error
	ClearToken(ctx context.Context) error
}

type authService struct {
	client  api.Client
	session SessionWriter
}

func NewAuthService(client api.Client, session SessionWriter) AuthService {
	return &authService{client: client, session: session}
}

func (a *authService) Login(ctx context.Context, email string, password []byte) error {
	token, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}
	if err := a.session.SetToken(ctx, token); err != nil {
		return fmt.Errorf("session error: %w", err)
	}
	return a.session.SetEmail(ctx, email)
}

func (a *authService) Register(ctx context.Context, email, username string, password []byte) error {
	token, err := a.client.Register(ctx, email, username, string(password))
	if err != nil {
		return fmt.Errorf("registration error: %w", err)
	}
	if err := a.session.SetToken(ctx, token); err != nil {
		return fmt.Errorf("session error: %w", err)
	}
	return a.session.SetEmail(ctx, email)
}

func (a *authService) GoogleAuth(ctx context.Context, code string) error {
	token, err := a.client.GoogleAuth(ctx, code)
	if err != nil {
		return fmt.Errorf("google auth error: %w", err)
	}
	if err := a.session.SetToken(ctx, token); err != nil {
		return fmt.Errorf("session error: %w", err)
	}
	return nil
}

func (a *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	user, err := a.client.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching current user: %w", err)
	}
	return user, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.ClearToken(ctx)
}
