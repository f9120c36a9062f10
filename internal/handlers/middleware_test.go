package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"gitlab.com/codearena.net/internal/adapter/logging"
)

func TestHasPermission(t *testing.T) {
	ctx := WithPermissions(context.Background(), []string{"submission.create", "problem.manage"})
	assert.True(t, HasPermission(ctx, "problem.manage"))
	assert.False(t, HasPermission(ctx, "user.delete"))
	assert.False(t, HasPermission(context.Background(), "problem.manage"))
}

func TestRequirePermission(t *testing.T) {
	m := New(nil, logging.NewNopLogger())
	called := false
	guarded := m.RequirePermission("problem.manage")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	}))

	serve := func(permissions ...string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodDelete, "/api/admin/problems/two-sum", nil)
		ctx := WithUserID(req.Context(), uuid.New())
		ctx = WithPermissions(ctx, permissions)
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, req.WithContext(ctx))
		return rec
	}

	rec := serve("submission.create")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "admin privileges required")
	assert.False(t, called)

	rec = serve("submission.create", "problem.manage")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, called)
}
