package session

import (
	"context"

	"github.com/rpggio/termstate/internal/model"
)

// API is the slice of the Remote Access Layer the session store calls.
type API interface {
	Login(ctx context.Context, email, password string) (string, error)
	Signup(ctx context.Context, name, email, password string) (string, error)
	ExchangeProviderCode(ctx context.Context, provider, code, redirectURL string) (string, error)
	ListAuthProviders(ctx context.Context) ([]model.AuthProvider, error)
	GetMe(ctx context.Context) (*model.User, error)
	UpdateMe(ctx context.Context, name, email string) (*model.User, error)
	DeleteMe(ctx context.Context) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, token, password string) error
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error
}
