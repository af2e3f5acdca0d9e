package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordguess/assets"
	"github.com/robalobadob/wordguess/internal/config"
	"github.com/robalobadob/wordguess/internal/game"
	"github.com/robalobadob/wordguess/internal/httpserver"
	"github.com/robalobadob/wordguess/internal/results"
	"github.com/robalobadob/wordguess/internal/store"
	"github.com/robalobadob/wordguess/internal/words"
)

func main() {
	cfg := config.Load()
	zerolog.SetGlobalLevel(cfg.LogLevel)

	list, err := words.Load(cfg.WordsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	count, shortest, longest := list.Stats()
	log.Info().Int("words", count).Int("shortest", shortest).Int("longest", longest).Msg("word list loaded")

	classifier, err := game.ClassifierByName(cfg.Classifier)
	if err != nil {
		log.Fatal().Err(err).Msg("bad CLASSIFIER")
	}

	db, err := results.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database")
	}
	defer db.Close()
	migrations, err := assets.Migrations()
	if err != nil {
		log.Fatal().Err(err).Msg("load migrations")
	}
	if err := results.Migrate(db, migrations); err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mem := store.NewMemoryStore()
	go sweepIdle(ctx, mem, cfg.SessionTTL)

	srv := httpserver.New(httpserver.Options{
		Store:          mem,
		Results:        results.NewStore(db),
		Words:          list,
		Classifier:     classifier,
		TokenSecret:    cfg.TokenSecret,
		TokenTTL:       cfg.TokenTTL,
		DailySalt:      cfg.DailySalt,
		ClientOrigin:   cfg.ClientOrigin,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		RequestTimeout: cfg.RequestTimeout,
	})
	httpSrv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("shutdown")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("classifier", cfg.Classifier).Msg("starting wordguess server")
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("server stopped")
}

// sweepIdle drops sessions nobody has touched within ttl.
func sweepIdle(ctx context.Context, st store.Store, ttl time.Duration) {
	t := time.NewTicker(ttl / 4)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := st.Sweep(ctx, ttl); n > 0 {
				log.Info().Int("removed", n).Int("live", st.Len()).Msg("swept idle games")
			}
		}
	}
}
