package auth

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/golang-jwt/jwt/v5"

	"gitlab.com/codearena.net/internal/config"
	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/domain"
	"gitlab.com/codearena.net/internal/global/logger"
	"gitlab.com/codearena.net/internal/static/errs"
)

const (
	// PermissionSubmit allows a token holder to submit solutions
	PermissionSubmit = "submission.create"
	// PermissionManageProblems allows creating, editing and deleting problems
	PermissionManageProblems = "problem.manage"
)

// Option configures an auth service
type Option func(*options)

type options struct {
	admins *config.AdminConfig
}

// WithAdmins grants PermissionManageProblems to the listed accounts at login
func WithAdmins(admins *config.AdminConfig) Option {
	return func(o *options) {
		o.admins = admins
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) permissions(user *domain.Users) []string {
	permissions := []string{PermissionSubmit}
	if user.Email != nil && o.admins.IsAdmin(*user.Email) {
		permissions = append(permissions, PermissionManageProblems)
	}
	return permissions
}

type IAuthService interface {
	ProviderName() domain.Provider
	Login(ctx context.Context, users *domain.Users) (string, error)
}

func generateToken(ctx context.Context, jwtProvider primary.JWTService, user *domain.Users, permissions []string) (string, error) {
	authPayload := domain.AuthPayload{
		UserID:     user.ID.String(),
		Username:   user.UserName,
		Permission: permissions,
	}
	var buf bytes.Buffer

	err := json.NewEncoder(&buf).Encode(authPayload)
	if err != nil {
		return "", errs.InternalError
	}
	var payload map[string]interface{}
	err = json.Unmarshal(buf.Bytes(), &payload)
	if err != nil {
		logger.Error("Failed to unmarshal auth payload", "error", err)
		return "", errs.InternalError
	}
	token, err := jwtProvider.GenerateTokenHMAC(ctx, jwt.SigningMethodHS256.Name, payload)
	if err != nil {
		logger.Error("Failed to sign token", "userId", user.ID, "error", err)
		return "", errs.GeneratingToken
	}
	return token, nil
}
