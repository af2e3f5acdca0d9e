// Package results keeps a ledger of finished games in SQLite.
// Rows are written once, when a session reaches a terminal status; live
// sessions are never read back from here.
package results

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/robalobadob/wordguess/internal/daily"
	"github.com/robalobadob/wordguess/internal/game"
)

// DefaultLimit caps list queries when the caller passes limit <= 0.
const DefaultLimit = 20

// Result is one finished game.
type Result struct {
	GameID    string    `json:"gameId"`
	Player    string    `json:"player"`
	Word      string    `json:"word"`
	Points    int       `json:"points"`
	Attempts  int       `json:"attempts"`
	Status    string    `json:"status"` // "won" | "over"
	Mode      string    `json:"mode"`   // "random" | "daily" | "custom"
	Date      string    `json:"date"`   // YYYY-MM-DD, UTC
	CreatedAt time.Time `json:"createdAt"`
}

// FromSnapshot builds a Result for a finished session snapshot.
func FromSnapshot(snap game.Snapshot, mode string) (Result, error) {
	if !snap.Status.Terminal() {
		return Result{}, errors.New("results: game is still in progress")
	}
	return Result{
		GameID:   snap.ID,
		Player:   snap.Player,
		Word:     snap.Word,
		Points:   snap.Points,
		Attempts: snap.Attempts,
		Status:   snap.Status.String(),
		Mode:     mode,
		Date:     daily.DateKey(time.Now()),
	}, nil
}

// Store reads and writes the results table.
type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Record inserts a result. Recording the same game twice is ignored.
func (s *Store) Record(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO results(game_id, player, word, points, attempts, status, mode, date)
		VALUES(?,?,?,?,?,?,?,?)`,
		r.GameID, r.Player, r.Word, r.Points, r.Attempts, r.Status, r.Mode, r.Date,
	)
	return err
}

// Leaderboard returns the won games of a date, best score first, then
// fewest attempts, then earliest.
func (s *Store) Leaderboard(ctx context.Context, date string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return s.query(ctx, `
		SELECT game_id, player, word, points, attempts, status, mode, date, created_at
		FROM results
		WHERE date=? AND status='won'
		ORDER BY points DESC, attempts ASC, created_at ASC
		LIMIT ?`, date, limit)
}

// PlayerResults returns a player's most recent results.
func (s *Store) PlayerResults(ctx context.Context, player string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return s.query(ctx, `
		SELECT game_id, player, word, points, attempts, status, mode, date, created_at
		FROM results
		WHERE player=?
		ORDER BY created_at DESC, game_id ASC
		LIMIT ?`, player, limit)
}

func (s *Store) query(ctx context.Context, q string, args ...any) ([]Result, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Result{}
	for rows.Next() {
		var r Result
		var created string
		if err := rows.Scan(&r.GameID, &r.Player, &r.Word, &r.Points, &r.Attempts,
			&r.Status, &r.Mode, &r.Date, &created); err != nil {
			return nil, err
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		out = append(out, r)
	}
	return out, rows.Err()
}
