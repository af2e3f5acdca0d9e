package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordguess/internal/game"
)

// repl reads one guess per line and prints the outcome.
// Lines starting with ':' are commands (:new, :points, :quit).
type repl struct {
	in     io.Reader
	out    io.Writer
	player string
	pick   func() string
	opts   []game.Option

	styles styles
}

type styles struct {
	good, bad, neutral, muted, title lipgloss.Style
}

func newStyles(out io.Writer) styles {
	re := lipgloss.NewRenderer(out)
	return styles{
		good:    re.NewStyle().Foreground(lipgloss.Color("#98C379")).Bold(true),
		bad:     re.NewStyle().Foreground(lipgloss.Color("#E06C75")),
		neutral: re.NewStyle().Foreground(lipgloss.Color("#E5C07B")),
		muted:   re.NewStyle().Foreground(lipgloss.Color("#636B78")),
		title:   re.NewStyle().Foreground(lipgloss.Color("#C678DD")).Bold(true),
	}
}

func (r *repl) run() error {
	r.styles = newStyles(r.out)

	g, err := r.newGame()
	if err != nil {
		return err
	}
	sc := bufio.NewScanner(r.in)
	r.prompt()
	for sc.Scan() {
		line := sc.Text()
		switch strings.TrimSpace(line) {
		case ":q", ":quit":
			return nil
		case ":new":
			if g, err = r.newGame(); err != nil {
				return err
			}
		case ":points":
			r.printStatus(g)
		default:
			r.guess(g, line)
		}
		r.prompt()
	}
	return sc.Err()
}

func (r *repl) newGame() (*game.Session, error) {
	g, err := game.New(r.pick(), r.player, r.opts...)
	if err != nil {
		return nil, fmt.Errorf("start game: %w", err)
	}
	log.Debug().Str("gameId", g.ID).Str("player", r.player).Msg("game started")
	fmt.Fprintln(r.out, r.styles.title.Render(
		fmt.Sprintf("New game for %s: %d letters, %d attempts.", r.player, len(g.Word()), game.MaxAttempts)))
	return g, nil
}

func (r *repl) prompt() { fmt.Fprint(r.out, "> ") }

func (r *repl) guess(g *game.Session, line string) {
	code := g.Guess(line)
	fmt.Fprintf(r.out, "%s %s\n", r.styleFor(code).Render(code.String()+" "+describe(code)),
		r.styles.muted.Render(fmt.Sprintf("points %d · attempt %d/%d", g.Points(), g.Attempts(), game.MaxAttempts)))

	switch {
	case code == game.CodeWin:
		fmt.Fprintln(r.out, r.styles.good.Render(fmt.Sprintf("You won with %d points!", g.Points())))
	case code == game.CodeOutOfAttempts:
		fmt.Fprintln(r.out, r.styles.bad.Render(fmt.Sprintf("Game over. The word was %q.", g.Word())))
	case code == game.CodeGameEnded:
		fmt.Fprintln(r.out, r.styles.muted.Render("Type :new to play again or :quit to leave."))
	}
}

func (r *repl) printStatus(g *game.Session) {
	fmt.Fprintln(r.out, r.styles.muted.Render(fmt.Sprintf("status %s · points %d · attempt %d/%d",
		g.Status(), g.Points(), g.Attempts(), game.MaxAttempts)))
}

func (r *repl) styleFor(c game.Code) lipgloss.Style {
	switch c {
	case game.CodeWin, game.CodeLetterPresent, game.CodeSubstring, game.CodeSameLength:
		return r.styles.good
	case game.CodeLetterAbsent, game.CodeGameEnded:
		return r.styles.neutral
	}
	return r.styles.bad
}

// describe renders a code for people.
func describe(c game.Code) string {
	switch c {
	case game.CodeWin:
		return "correct!"
	case game.CodeLetterAbsent:
		return "letter not in the word"
	case game.CodeLetterPresent:
		return "letter is in the word"
	case game.CodeSameLength:
		return "right length, wrong word"
	case game.CodeTooLong:
		return "too long"
	case game.CodeTooShort:
		return "too short"
	case game.CodeSubstring:
		return "part of the word"
	case game.CodeRepeat:
		return "already guessed"
	case game.CodeInvalid:
		return "letters only"
	case game.CodeOutOfAttempts:
		return "out of attempts"
	case game.CodeGameEnded:
		return "game already ended"
	}
	return c.Meaning()
}
