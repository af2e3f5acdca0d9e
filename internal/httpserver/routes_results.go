// internal/httpserver/routes_results.go
//
// Read-only routes over the results ledger:
//   - GET /leaderboard                → won games for a date (default today, UTC)
//   - GET /players/{player}/results   → a player's most recent finished games
//
// Both accept ?limit=N (default results.DefaultLimit, capped at maxLimit).

package httpserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordguess/internal/daily"
)

const maxLimit = 100

// mountResults registers the ledger routes.
func (s *Server) mountResults(r chi.Router) {
	r.Get("/leaderboard", s.handleLeaderboard)
	r.Get("/players/{player}/results", s.handlePlayerResults)
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	if s.results == nil {
		writeError(w, http.StatusServiceUnavailable, "ledger_disabled")
		return
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		date = daily.DateKey(s.now())
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		writeError(w, http.StatusBadRequest, "bad_date")
		return
	}
	rows, err := s.results.Leaderboard(r.Context(), date, limitParam(r))
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("leaderboard")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"date": date, "results": rows})
}

func (s *Server) handlePlayerResults(w http.ResponseWriter, r *http.Request) {
	if s.results == nil {
		writeError(w, http.StatusServiceUnavailable, "ledger_disabled")
		return
	}
	player := chi.URLParam(r, "player")
	rows, err := s.results.PlayerResults(r.Context(), player, limitParam(r))
	if err != nil {
		log.Error().Err(err).Str("player", player).Msg("player results")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"player": player, "results": rows})
}

// limitParam parses ?limit, returning 0 (store default) when absent or bad.
func limitParam(r *http.Request) int {
	n, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || n <= 0 {
		return 0
	}
	if n > maxLimit {
		return maxLimit
	}
	return n
}
