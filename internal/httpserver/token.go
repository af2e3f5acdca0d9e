// internal/httpserver/token.go
//
// Game tokens: HS256 JWTs that bind a bearer to one game session.
// A token is issued by POST /game/new and required by every route that
// reads or mutates that game.

package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// gameClaims are carried by a game token.
type gameClaims struct {
	GameID string `json:"gid"`
	Player string `json:"player"`
	Mode   string `json:"mode"`
	jwt.RegisteredClaims
}

type tokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// sign issues a token for a game, valid for the issuer's TTL.
func (ti tokenIssuer) sign(gameID, player, mode string) (string, time.Time, error) {
	now := ti.now()
	exp := now.Add(ti.ttl)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, gameClaims{
		GameID: gameID,
		Player: player,
		Mode:   mode,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   gameID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	ss, err := t.SignedString(ti.secret)
	return ss, exp, err
}

// parse verifies signature, algorithm and expiry.
func (ti tokenIssuer) parse(tok string) (*gameClaims, error) {
	claims := &gameClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(*jwt.Token) (interface{}, error) {
		return ti.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(ti.now))
	if err != nil {
		return nil, err
	}
	if !t.Valid || claims.GameID == "" {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// bearer extracts the token from "Authorization: Bearer <token>".
func bearer(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}

// ctxClaimsKey is the context key type for storing gameClaims.
type ctxClaimsKey struct{}

// requireGameToken enforces a valid game token and injects its claims.
func (s *Server) requireGameToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok := bearer(r)
		if tok == "" {
			writeError(w, http.StatusUnauthorized, "missing_token")
			return
		}
		claims, err := s.tokens.parse(tok)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid_token")
			return
		}
		ctx := context.WithValue(r.Context(), ctxClaimsKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// claimsFrom returns the claims injected by requireGameToken.
func claimsFrom(r *http.Request) *gameClaims {
	c, _ := r.Context().Value(ctxClaimsKey{}).(*gameClaims)
	return c
}
