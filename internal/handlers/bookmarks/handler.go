package bookmarks

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/services/bookmark"
	"gitlab.com/codearena.net/internal/domain"
	"gitlab.com/codearena.net/internal/handlers"
	"gitlab.com/codearena.net/internal/handlers/response"
)

type ApiHandler struct {
	BookmarkService bookmark.IBookmarkService
	logger          primary.Logger
}

func NewHandler(bookmarkService bookmark.IBookmarkService, logger primary.Logger) *ApiHandler {
	return &ApiHandler{
		BookmarkService: bookmarkService,
		logger:          logger,
	}
}

func (api *ApiHandler) Register(protected *mux.Router) {
	protected.HandleFunc("/api/bookmarks", api.List).Methods("GET")
	protected.HandleFunc("/api/bookmarks/check/{problemId}", api.Check).Methods("GET")
	protected.HandleFunc("/api/bookmarks/{problemId}", api.Add).Methods("POST")
	protected.HandleFunc("/api/bookmarks/{problemId}", api.Update).Methods("PUT")
	protected.HandleFunc("/api/bookmarks/{problemId}", api.Remove).Methods("DELETE")
}

func (api *ApiHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.MustUserID(w, r)
	if !ok {
		return
	}

	list, err := api.BookmarkService.List(r.Context(), userID)
	if err != nil {
		response.WriteError(w, response.FromError(err))
		return
	}
	response.WriteSuccess(w, list)
}

func (api *ApiHandler) Check(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.MustUserID(w, r)
	if !ok {
		return
	}

	bookmarked, err := api.BookmarkService.IsBookmarked(r.Context(), userID, mux.Vars(r)["problemId"])
	if err != nil {
		response.WriteError(w, response.FromError(err))
		return
	}
	response.WriteSuccess(w, CheckResponse{IsBookmarked: bookmarked})
}

// Add bookmarks a problem. The body is optional.
func (api *ApiHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.MustUserID(w, r)
	if !ok {
		return
	}

	var req AddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		api.logger.Error("Failed to decode request", "error", err)
		response.BadRequest(w, "Invalid request")
		return
	}

	list, err := api.BookmarkService.Add(r.Context(), userID, mux.Vars(r)["problemId"], req.Notes, req.Tags)
	if err != nil {
		response.WriteError(w, response.FromError(err))
		return
	}
	response.WriteSuccess(w, list)
}

func (api *ApiHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.MustUserID(w, r)
	if !ok {
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.logger.Error("Failed to decode request", "error", err)
		response.BadRequest(w, "Invalid request")
		return
	}

	b, err := api.BookmarkService.Update(r.Context(), userID, mux.Vars(r)["problemId"], domain.BookmarkUpdate{
		Notes: req.Notes,
		Tags:  req.Tags,
	})
	if err != nil {
		response.WriteError(w, response.FromError(err))
		return
	}
	response.WriteSuccess(w, b)
}

func (api *ApiHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.MustUserID(w, r)
	if !ok {
		return
	}

	list, err := api.BookmarkService.Remove(r.Context(), userID, mux.Vars(r)["problemId"])
	if err != nil {
		response.WriteError(w, response.FromError(err))
		return
	}
	response.WriteSuccess(w, list)
}
