// Command play runs a word-guessing game in the terminal.
//
//	play -player "Dr. M"            random word from the embedded list
//	play -daily                     today's shared word
//	play -word lion                 fixed secret (for demos and tests)
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordguess/internal/config"
	"github.com/robalobadob/wordguess/internal/daily"
	"github.com/robalobadob/wordguess/internal/game"
	"github.com/robalobadob/wordguess/internal/words"
)

func main() {
	cfg := config.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(cfg.LogLevel)

	player := flag.String("player", envOr("USER", "player"), "player name")
	word := flag.String("word", "", "secret word (default: random from the word list)")
	useDaily := flag.Bool("daily", false, "play today's daily word")
	wordsFile := flag.String("words", cfg.WordsFile, "word list file (default: embedded list)")
	classifierName := flag.String("classifier", cfg.Classifier, `classification strategy: "guard" or "table"`)
	flag.Parse()

	classifier, err := game.ClassifierByName(*classifierName)
	if err != nil {
		log.Fatal().Err(err).Msg("bad -classifier")
	}
	list, err := words.Load(*wordsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}

	pick := list.Random
	switch {
	case *word != "":
		fixed := *word
		pick = func() string { return fixed }
	case *useDaily:
		pick = func() string {
			w, _ := daily.Word(time.Now(), cfg.DailySalt, list.Words())
			return w
		}
	}

	r := &repl{
		in:     os.Stdin,
		out:    os.Stdout,
		player: *player,
		pick:   pick,
		opts:   []game.Option{game.WithClassifier(classifier)},
	}
	if err := r.run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
