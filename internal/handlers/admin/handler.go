package admin

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/services/problem"
	"gitlab.com/codearena.net/internal/domain"
	"gitlab.com/codearena.net/internal/handlers/response"
)

// ApiHandler manages the problem catalog. Routes must sit behind the admin
// permission check.
type ApiHandler struct {
	ProblemAdmin problem.IProblemAdminService
	logger       primary.Logger
}

func NewHandler(problemAdmin problem.IProblemAdminService, logger primary.Logger) *ApiHandler {
	return &ApiHandler{
		ProblemAdmin: problemAdmin,
		logger:       logger,
	}
}

func (api *ApiHandler) Register(admin *mux.Router) {
	admin.HandleFunc("/api/admin/problems", api.CreateProblem).Methods("POST")
	admin.HandleFunc("/api/admin/problems/{id}", api.UpdateProblem).Methods("PUT")
	admin.HandleFunc("/api/admin/problems/{id}", api.DeleteProblem).Methods("DELETE")
}

func (api *ApiHandler) CreateProblem(w http.ResponseWriter, r *http.Request) {
	var p domain.Problem
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		api.logger.Error("Failed to decode problem", "error", err)
		response.BadRequest(w, "Invalid request")
		return
	}

	created, err := api.ProblemAdmin.CreateProblem(r.Context(), &p)
	if err != nil {
		response.WriteError(w, response.FromError(err))
		return
	}
	response.WriteJSON(w, http.StatusCreated, created)
}

// UpdateProblem merges the fields present in the body into the stored problem
func (api *ApiHandler) UpdateProblem(w http.ResponseWriter, r *http.Request) {
	updated, err := api.ProblemAdmin.UpdateProblem(r.Context(), mux.Vars(r)["id"], func(p *domain.Problem) error {
		return json.NewDecoder(r.Body).Decode(p)
	})
	if err != nil {
		response.WriteError(w, response.FromError(err))
		return
	}
	response.WriteSuccess(w, updated)
}

func (api *ApiHandler) DeleteProblem(w http.ResponseWriter, r *http.Request) {
	deleted, err := api.ProblemAdmin.DeleteProblem(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		response.WriteError(w, response.FromError(err))
		return
	}
	response.WriteSuccess(w, deleted)
}
