package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/handlers/response"
	"gitlab.com/codearena.net/internal/static/errs"
)

type contextKey string

const (
	userIDKey      contextKey = "userId"
	permissionsKey contextKey = "permissions"
)

type MiddlewareProvider struct {
	jwtService primary.JWTService
	logger     primary.Logger
}

func New(jwtService primary.JWTService, logger primary.Logger) *MiddlewareProvider {
	return &MiddlewareProvider{
		jwtService: jwtService,
		logger:     logger,
	}
}

// JWTMiddleware rejects requests without a valid bearer token and stores the
// token subject as the caller's user id, along with its permissions
func (m *MiddlewareProvider) JWTMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			unauthorized(w, "Authorization header missing")
			return
		}

		// Extract token from "Bearer <token>"
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		valid, err := m.jwtService.VerifyTokenHMAC(r.Context(), tokenString, jwt.SigningMethodHS256.Name)
		if err != nil || !valid {
			m.logger.Debug("Rejected token", "error", err)
			unauthorized(w, "Invalid token")
			return
		}

		payload, err := m.jwtService.DecodeTokenPayload(r.Context(), tokenString)
		if err != nil {
			unauthorized(w, "Invalid token")
			return
		}
		userID, err := uuid.Parse(payload.UserID)
		if err != nil {
			unauthorized(w, "Invalid token")
			return
		}

		ctx := WithUserID(r.Context(), userID)
		ctx = WithPermissions(ctx, payload.Permission)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequirePermission answers 403 unless the token carries permission. It runs
// after JWTMiddleware.
func (m *MiddlewareProvider) RequirePermission(permission string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !HasPermission(r.Context(), permission) {
				userID, _ := UserIDFromContext(r.Context())
				m.logger.Warn("Permission denied", "userId", userID, "permission", permission, "path", r.URL.Path)
				response.WriteError(w, response.FromError(errs.Forbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the id stored by JWTMiddleware
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	return userID, ok
}

func WithPermissions(ctx context.Context, permissions []string) context.Context {
	return context.WithValue(ctx, permissionsKey, permissions)
}

func HasPermission(ctx context.Context, permission string) bool {
	permissions, _ := ctx.Value(permissionsKey).([]string)
	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}

func unauthorized(w http.ResponseWriter, message string) {
	response.WriteError(w, response.ErrorMessage{
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	})
}
