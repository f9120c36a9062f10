package dashboard

import (
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/codearena.net/internal/core/services/leaderboard"
	"gitlab.com/codearena.net/internal/core/services/stats"
	"gitlab.com/codearena.net/internal/domain"
	"gitlab.com/codearena.net/internal/handlers"
	"gitlab.com/codearena.net/internal/handlers/response"
)

type ApiHandler struct {
	StatsService       stats.IStatsService
	LeaderboardService leaderboard.ILeaderboardService
}

func NewHandler(statsService stats.IStatsService, leaderboardService leaderboard.ILeaderboardService) *ApiHandler {
	return &ApiHandler{
		StatsService:       statsService,
		LeaderboardService: leaderboardService,
	}
}

func (api *ApiHandler) Register(protected *mux.Router) {
	protected.HandleFunc("/api/dashboard/stats", api.GetStats).Methods("GET")
	protected.HandleFunc("/api/dashboard/leaderboard", api.GetLeaderboard).Methods("GET")
}

func (api *ApiHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.MustUserID(w, r)
	if !ok {
		return
	}

	dashboard, err := api.StatsService.Dashboard(r.Context(), userID)
	if err != nil {
		response.WriteError(w, response.FromError(err))
		return
	}
	response.WriteSuccess(w, dashboard)
}

// GetLeaderboard reads ?timeframe=all|daily|weekly|monthly, defaulting to all
func (api *ApiHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	timeframe := domain.ParseTimeframe(r.URL.Query().Get("timeframe"))

	board, err := api.LeaderboardService.Leaderboard(r.Context(), timeframe)
	if err != nil {
		response.WriteError(w, response.FromError(err))
		return
	}
	response.WriteSuccess(w, board)
}
