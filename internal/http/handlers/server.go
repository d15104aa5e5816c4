package handlers

import (
	"github.com/naveenraj/dairy-api/internal/auth"
	"github.com/naveenraj/dairy-api/internal/http/guard"
	"github.com/naveenraj/dairy-api/internal/repo"
)

var (
	userRepo  repo.UserRepository
	entryRepo repo.EntryRepository
	tokens    *auth.TokenManager
	// loginGuard stays nil when redis is not configured; login then runs
	// without lockout tracking.
	loginGuard *guard.Guard
)

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetEntryRepo(r repo.EntryRepository) {
	entryRepo = r
}

func SetTokens(t *auth.TokenManager) {
	tokens = t
}

func SetLoginGuard(g *guard.Guard) {
	loginGuard = g
}
