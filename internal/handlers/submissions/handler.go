package submissions

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/services/submission"
	"gitlab.com/codearena.net/internal/handlers"
	"gitlab.com/codearena.net/internal/handlers/response"
)

type ApiHandler struct {
	SubmissionService submission.ISubmissionService
	logger            primary.Logger
}

func NewHandler(submissionService submission.ISubmissionService, logger primary.Logger) *ApiHandler {
	return &ApiHandler{
		SubmissionService: submissionService,
		logger:            logger,
	}
}

func (api *ApiHandler) Register(protected *mux.Router) {
	protected.HandleFunc("/api/submissions/{submissionId}", api.GetSubmission).Methods("GET")
}

// GetSubmission returns one of the caller's own submissions, source included
func (api *ApiHandler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.MustUserID(w, r)
	if !ok {
		return
	}

	idStr := mux.Vars(r)["submissionId"]
	id, err := uuid.Parse(idStr)
	if err != nil {
		api.logger.Error("Invalid submission ID", "id", idStr)
		response.BadRequest(w, "Invalid submission ID")
		return
	}

	sub, err := api.SubmissionService.Get(r.Context(), userID, id)
	if err != nil {
		response.WriteError(w, response.FromError(err))
		return
	}
	response.WriteSuccess(w, sub)
}
