package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gitlab.com/codearena.net/internal/handlers/response"
)

// RegisterHealth exposes the liveness probe
func RegisterHealth(router *mux.Router, serviceName string) {
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		response.WriteSuccess(w, map[string]string{"status": "ok", "service": serviceName})
	}).Methods("GET")
}

// MustUserID returns the authenticated caller or writes a 401. Handlers
// behind JWTMiddleware always find one.
func MustUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := UserIDFromContext(r.Context())
	if !ok {
		unauthorized(w, "Unauthorized")
		return uuid.Nil, false
	}
	return id, true
}
