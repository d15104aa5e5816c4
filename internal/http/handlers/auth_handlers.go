package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/mail"
	"time"

	"github.com/naveenraj/dairy-api/internal/models"
	"github.com/naveenraj/dairy-api/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

// SignupHandler godoc
// @Summary Register a new user
// @Description The username must be a syntactically valid email address and may only be registered once
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username (email) and password"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "Username already registered"
// @Router /signup [post]
func SignupHandler(w http.ResponseWriter, r *http.Request) {
	var creds CredentialsRequest
	if err := readJSON(w, r, &creds); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	if !validEmail(creds.Username) {
		writeError(w, http.StatusBadRequest, "username must be a valid email address")
		return
	}
	if creds.Password == "" {
		writeError(w, http.StatusBadRequest, "password is required")
		return
	}

	if _, err := userRepo.GetByUsername(creds.Username); err == nil {
		writeError(w, http.StatusConflict, "Username already registered")
		return
	} else if !errors.Is(err, repo.ErrUserNotFound) {
		writeError(w, http.StatusInternalServerError, "failed to register user")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to register user")
		return
	}

	user := models.User{
		Username:     creds.Username,
		PasswordHash: string(hashed),
		CreatedDate:  time.Now(),
	}

	if _, err := userRepo.CreateUser(user); err != nil {
		// The unique index is the real arbiter; the lookup above only
		// narrows the race window.
		if errors.Is(err, repo.ErrDuplicateUsername) {
			writeError(w, http.StatusConflict, "Username already registered")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to register user")
		return
	}

	if err := writeJSON(w, http.StatusCreated, MessageResponse{Message: "User created successfully"}); err != nil {
		slog.Error("failed to write JSON response", "error", err)
	}
}

// LoginHandler godoc
// @Summary Authenticate and issue an access token
// @Description Unknown user and wrong password produce the identical response so usernames cannot be enumerated
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username (email) and password"
// @Success 200 {object} LoginResult
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Invalid username or password"
// @Failure 429 {object} ErrorResponse "Too many failed login attempts"
// @Router /login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	ip := clientIP(r)
	if loginGuard != nil && loginGuard.Blocked(r.Context(), ip) {
		writeError(w, http.StatusTooManyRequests, "too many failed login attempts")
		return
	}

	var creds CredentialsRequest
	if err := readJSON(w, r, &creds); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	user, err := userRepo.GetByUsername(creds.Username)
	if err != nil {
		if !errors.Is(err, repo.ErrUserNotFound) {
			writeError(w, http.StatusInternalServerError, "failed to authenticate")
			return
		}
		recordFailure(r, ip)
		writeError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)) != nil {
		recordFailure(r, ip)
		writeError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := tokens.Issue(user.Username)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not generate token")
		return
	}

	if loginGuard != nil {
		loginGuard.Reset(r.Context(), ip)
	}

	if err := writeJSON(w, http.StatusOK, LoginResult{AccessToken: token, TokenType: "bearer"}); err != nil {
		slog.Error("failed to write JSON response", "error", err)
	}
}

func recordFailure(r *http.Request, ip string) {
	if loginGuard != nil {
		loginGuard.Failure(r.Context(), ip)
	}
}

func validEmail(username string) bool {
	if username == "" {
		return false
	}
	addr, err := mail.ParseAddress(username)
	// Reject the "Name <user@host>" form; the bare address must be the
	// whole username.
	return err == nil && addr.Address == username
}
