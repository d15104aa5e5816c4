package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/naveenraj/dairy-api/internal/auth"
	"github.com/naveenraj/dairy-api/internal/repo"
)

// AuthMiddleware gates every protected route. It verifies the bearer token,
// resolves the subject to an existing user and threads a typed Identity
// through the request context. Every credential failure mode gets the same
// response so callers cannot probe which check failed; a store failure is a
// server error, not a credential problem.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr, err := bearerToken(r)
		if err != nil {
			unauthorized(w)
			return
		}

		username, err := tokens.Verify(tokenStr)
		if err != nil {
			unauthorized(w)
			return
		}

		user, err := userRepo.GetByUsername(username)
		if err != nil {
			if errors.Is(err, repo.ErrUserNotFound) {
				unauthorized(w)
				return
			}
			serverError(w)
			return
		}

		ctx := auth.WithIdentity(r.Context(), auth.Identity{UserID: user.ID, Username: user.Username})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) (string, error) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return "", errors.New("missing authorization")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization")
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", errors.New("invalid authorization")
	}
	return token, nil
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Could not validate credentials"})
}

func serverError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": "internal server error"})
}
