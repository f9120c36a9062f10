package auth

import (
	"context"
	"strings"

	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/ports/secondary"
	"gitlab.com/codearena.net/internal/domain"
	"gitlab.com/codearena.net/internal/global/logger"
	"gitlab.com/codearena.net/internal/static/errs"
)

var _ IAuthService = &googleAuthService{}

type googleAuthService struct {
	userPort    secondary.UserPort
	jwtProvider primary.JWTService
	opts        options
}

func NewGoogleAuthService(userPort secondary.UserPort, jwtProvider primary.JWTService, opts ...Option) IAuthService {
	return &googleAuthService{
		userPort:    userPort,
		jwtProvider: jwtProvider,
		opts:        newOptions(opts),
	}
}

func (g googleAuthService) ProviderName() domain.Provider {
	return domain.ProviderGoogle
}

// Login signs in a Google account, creating the user on first login
func (g googleAuthService) Login(ctx context.Context, users *domain.Users) (string, error) {
	if users.GoogleID == nil || *users.GoogleID == "" {
		return "", errs.InvalidCredentials
	}

	if users.AuthProvider != string(domain.ProviderGoogle) {
		return "", errs.InvalidCredentials
	}

	if users.Email == nil || *users.Email == "" {
		return "", errs.EmailRequired
	}

	usr, err := g.userPort.GetByGoogleID(ctx, *users.GoogleID)
	if err != nil {
		return "", err
	}

	if usr != nil {
		return generateToken(ctx, g.jwtProvider, usr, g.opts.permissions(usr))
	}

	users.PasswordHash = nil
	if users.UserName == "" {
		users.UserName = strings.Split(*users.Email, "@")[0]
	}
	users.AuthProvider = string(domain.ProviderGoogle)
	err = g.userPort.Create(ctx, users)
	if err != nil {
		logger.Error("Failed to create google user", "email", *users.Email, "error", err)
		return "", errs.FailedToCreateUser
	}

	return generateToken(ctx, g.jwtProvider, users, g.opts.permissions(users))
}
