package http

import (
	"github.com/naveenraj/dairy-api/internal/auth"
	"github.com/naveenraj/dairy-api/internal/repo"
)

var (
	userRepo repo.UserRepository
	tokens   *auth.TokenManager
)

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetTokens(t *auth.TokenManager) {
	tokens = t
}
