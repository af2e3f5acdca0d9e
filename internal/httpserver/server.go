// internal/httpserver/server.go
//
// HTTP host for the word-guessing engine.
// Responsibilities:
//   - Router + middleware (request IDs, real IP, panic recovery, timeouts,
//     JSON, CORS, per-client rate limiting, request logging).
//   - Public endpoints: "/", "/health".
//   - Game endpoints: POST /game/new, POST /game/guess, GET /game/{id}.
//   - Results endpoints: GET /leaderboard, GET /players/{player}/results.
//
// Notes:
//   - Live sessions stay in the session store; each guess runs inside
//     store.Update so one game is never mutated concurrently.
//   - A finished game is written to the results ledger exactly once, by
//     the guess that ended it. Ledger failures are logged, never surfaced.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordguess/internal/daily"
	"github.com/robalobadob/wordguess/internal/game"
	"github.com/robalobadob/wordguess/internal/results"
	"github.com/robalobadob/wordguess/internal/store"
	"github.com/robalobadob/wordguess/internal/words"
)

// Game modes.
const (
	ModeRandom = "random"
	ModeDaily  = "daily"
	ModeCustom = "custom"
)

// Options wires the server's collaborators and settings.
type Options struct {
	Store          store.Store
	Results        *results.Store // nil disables the ledger
	Words          *words.List
	Classifier     game.Classifier
	TokenSecret    string
	TokenTTL       time.Duration
	DailySalt      string
	ClientOrigin   string
	RateLimitRPS   int
	RateLimitBurst int
	RequestTimeout time.Duration
	Now            func() time.Time
}

// Server bundles router, session store and results ledger.
type Server struct {
	r          *chi.Mux
	store      store.Store
	results    *results.Store
	words      *words.List
	classifier game.Classifier
	tokens     tokenIssuer
	dailySalt  string
	validate   *validator.Validate
	now        func() time.Time
}

// New constructs a Server, installs middleware, and registers routes.
func New(o Options) *Server {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.TokenTTL <= 0 {
		o.TokenTTL = 24 * time.Hour
	}
	if o.RequestTimeout <= 0 {
		o.RequestTimeout = 10 * time.Second
	}
	if o.Classifier == nil {
		o.Classifier = game.GuardClassifier
	}
	s := &Server{
		r:          chi.NewRouter(),
		store:      o.Store,
		results:    o.Results,
		words:      o.Words,
		classifier: o.Classifier,
		tokens:     tokenIssuer{secret: []byte(o.TokenSecret), ttl: o.TokenTTL, now: o.Now},
		dailySalt:  o.DailySalt,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		now:        o.Now,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(requestLogger)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(o.RequestTimeout))
	s.r.Use(jsonContentType)
	s.r.Use(cors(o.ClientOrigin))
	s.r.Use(newLimiters(o.RateLimitRPS, o.RateLimitBurst).middleware)

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service":   "wordguess",
			"endpoints": []string{"/health", "POST /game/new", "POST /game/guess", "GET /game/{id}", "/leaderboard"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "games": s.store.Len()})
	})

	// --- game ---
	s.r.Post("/game/new", s.handleNewGame)
	s.r.With(s.requireGameToken).Post("/game/guess", s.handleGuess)
	s.r.With(s.requireGameToken).Get("/game/{id}", s.handleGetGame)

	// --- results ---
	s.mountResults(s.r)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})
	return s
}

// Handler exposes the router (useful for tests and custom http.Server setups).
func (s *Server) Handler() http.Handler { return s.r }

// ------------------------------ GAME ---------------------------------------

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Player string `json:"player" validate:"required,max=64"`
	Word   string `json:"word" validate:"omitempty,max=32"` // fixed secret; implies mode "custom"
	Mode   string `json:"mode" validate:"omitempty,oneof=random daily custom"`
}
type newGameRes struct {
	game.Snapshot
	Mode      string    `json:"mode"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// handleNewGame picks the secret word, creates the session, and issues
// the game token.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	word, mode := s.pickWord(req)
	if word == "" {
		writeError(w, http.StatusServiceUnavailable, "no_words")
		return
	}
	g, err := game.New(word, req.Player, game.WithClassifier(s.classifier))
	if err != nil {
		var iw *game.InvalidWordError
		if errors.As(err, &iw) {
			writeError(w, http.StatusBadRequest, "invalid_word")
			return
		}
		writeError(w, http.StatusInternalServerError, "init_failed")
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	tok, exp, err := s.tokens.sign(g.ID, req.Player, mode)
	if err != nil {
		log.Error().Err(err).Str("gameId", g.ID).Msg("sign token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}

	log.Info().Str("gameId", g.ID).Str("player", req.Player).Str("mode", mode).Msg("game started")
	writeJSON(w, http.StatusCreated, newGameRes{Snapshot: g.Snapshot(), Mode: mode, Token: tok, ExpiresAt: exp})
}

// pickWord resolves the secret word and effective mode of a new game.
func (s *Server) pickWord(req newGameReq) (word, mode string) {
	switch {
	case req.Word != "":
		return req.Word, ModeCustom
	case req.Mode == ModeDaily:
		if s.words == nil {
			return "", ModeDaily
		}
		word, _ = daily.Word(s.now(), s.dailySalt, s.words.Words())
		return word, ModeDaily
	case req.Mode == ModeCustom:
		// custom without a word: nothing to play
		return "", ModeCustom
	}
	if s.words == nil {
		return "", ModeRandom
	}
	return s.words.Random(), ModeRandom
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess" validate:"max=256"`
}
type guessRes struct {
	Code    game.Code `json:"code"`
	Outcome string    `json:"outcome"`
	game.Snapshot
}

// handleGuess applies one guess to the token's game and, when that guess
// ends the game, records the result.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}
	if req.GameID == "" {
		req.GameID = claims.GameID
	}
	if req.GameID != claims.GameID {
		writeError(w, http.StatusForbidden, "token_game_mismatch")
		return
	}

	var (
		code     game.Code
		snap     game.Snapshot
		finished bool
	)
	err := s.store.Update(r.Context(), req.GameID, func(g *game.Session) error {
		before := g.Status()
		code = g.Guess(req.Guess)
		snap = g.Snapshot()
		finished = !before.Terminal() && g.Status().Terminal()
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "update_failed")
		return
	}

	if finished {
		log.Info().Str("gameId", snap.ID).Str("status", snap.Status.String()).Int("points", snap.Points).Msg("game finished")
		s.recordResult(r, snap, claims.Mode)
	}
	writeJSON(w, http.StatusOK, guessRes{Code: code, Outcome: code.Meaning(), Snapshot: snap})
}

// recordResult writes a finished game to the ledger (best effort).
func (s *Server) recordResult(r *http.Request, snap game.Snapshot, mode string) {
	if s.results == nil {
		return
	}
	res, err := results.FromSnapshot(snap, mode)
	if err != nil {
		log.Warn().Err(err).Str("gameId", snap.ID).Msg("build result")
		return
	}
	res.Date = daily.DateKey(s.now())
	if err := s.results.Record(r.Context(), res); err != nil {
		log.Warn().Err(err).Str("gameId", snap.ID).Msg("record result")
	}
}

// handleGetGame returns the snapshot of the token's game.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id != claimsFrom(r).GameID {
		writeError(w, http.StatusForbidden, "token_game_mismatch")
		return
	}
	snap, err := s.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "lookup_failed")
		return
	}
	writeJSON(w, http.StatusOK, snap)
}
