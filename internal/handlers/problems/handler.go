package problems

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/services/problem"
	"gitlab.com/codearena.net/internal/core/services/submission"
	"gitlab.com/codearena.net/internal/handlers"
	"gitlab.com/codearena.net/internal/handlers/response"
)

// ProblemHandler serves the problem catalog and accepts submissions
type ProblemHandler struct {
	problemService    problem.IProblemService
	submissionService submission.ISubmissionService
	logger            primary.Logger
}

func NewProblemHandler(problemService problem.IProblemService, submissionService submission.ISubmissionService, logger primary.Logger) *ProblemHandler {
	return &ProblemHandler{
		problemService:    problemService,
		submissionService: submissionService,
		logger:            logger,
	}
}

// RegisterRoutes registers the catalog on the public router and submission
// routes on the authenticated one
func (h *ProblemHandler) RegisterRoutes(public *mux.Router, protected *mux.Router) {
	public.HandleFunc("/api/problems", h.ListProblems).Methods("GET")
	public.HandleFunc("/api/problems/{id}", h.GetProblem).Methods("GET")

	protected.HandleFunc("/api/problems/{id}/submit", h.Submit).Methods("POST")
	protected.HandleFunc("/api/problems/{id}/submissions", h.ListSubmissions).Methods("GET")
}

func (h *ProblemHandler) ListProblems(w http.ResponseWriter, r *http.Request) {
	list, err := h.problemService.ListProblems(r.Context())
	if err != nil {
		response.WriteError(w, response.FromError(err))
		return
	}
	response.WriteSuccess(w, list)
}

func (h *ProblemHandler) GetProblem(w http.ResponseWriter, r *http.Request) {
	p, err := h.problemService.GetProblem(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		response.WriteError(w, response.FromError(err))
		return
	}
	response.WriteSuccess(w, p)
}

// Submit judges the posted code and answers with the full outcome
func (h *ProblemHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.MustUserID(w, r)
	if !ok {
		return
	}

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		response.BadRequest(w, "Invalid request")
		return
	}

	// judging outlasts the server write timeout on large suites, every case
	// is bounded by its own sandbox deadline instead
	if err := http.NewResponseController(w).SetWriteDeadline(time.Time{}); err != nil {
		h.logger.Debug("Could not lift write deadline", "error", err)
	}

	result, err := h.submissionService.Submit(r.Context(), userID, mux.Vars(r)["id"], req.Language, req.Code)
	if err != nil {
		response.WriteError(w, response.FromError(err))
		return
	}
	response.WriteSuccess(w, result)
}

func (h *ProblemHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.MustUserID(w, r)
	if !ok {
		return
	}

	list, err := h.submissionService.ListForProblem(r.Context(), userID, mux.Vars(r)["id"])
	if err != nil {
		response.WriteError(w, response.FromError(err))
		return
	}
	response.WriteSuccess(w, list)
}
