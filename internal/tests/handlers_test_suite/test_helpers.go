package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/naveenraj/dairy-api/internal/auth"
	api "github.com/naveenraj/dairy-api/internal/http"
	handler "github.com/naveenraj/dairy-api/internal/http/handlers"
	"github.com/naveenraj/dairy-api/internal/models"
	"github.com/naveenraj/dairy-api/internal/repo"
)

const testSecret = "test-secret"

var (
	userRepo  *repo.InMemoryUserRepository
	entryRepo *repo.InMemoryEntryRepository
	tokens    *auth.TokenManager
)

func init() {
	tokens = auth.NewTokenManager(testSecret, 30*time.Minute)
	api.SetTokens(tokens)
	handler.SetTokens(tokens)
	resetRepos()
}

func resetRepos() {
	userRepo = repo.NewInMemoryUserRepository()
	entryRepo = repo.NewInMemoryEntryRepository()
	api.SetUserRepo(userRepo)
	handler.SetUserRepo(userRepo)
	handler.SetEntryRepo(entryRepo)
}

func newRouter() http.Handler {
	return api.NewRouter(api.RouterConfig{})
}

// failingUserRepo simulates an unreachable backing store.
type failingUserRepo struct{}

func (failingUserRepo) CreateUser(u models.User) (models.User, error) {
	return models.User{}, errors.New("store unreachable")
}

func (failingUserRepo) GetByUsername(username string) (models.User, error) {
	return models.User{}, errors.New("store unreachable")
}

func doJSON(r http.Handler, method, path, token string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func signup(r http.Handler, username, password string) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/signup", "", handler.CredentialsRequest{Username: username, Password: password})
}

func login(r http.Handler, username, password string) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/login", "", handler.CredentialsRequest{Username: username, Password: password})
}

func registerAndLogin(t *testing.T, r http.Handler, username, password string) string {
	t.Helper()

	if w := signup(r, username, password); w.Code != http.StatusCreated {
		t.Fatalf("signup for %s failed with status %d: %s", username, w.Code, w.Body.String())
	}

	w := login(r, username, password)
	if w.Code != http.StatusOK {
		t.Fatalf("login for %s failed with status %d: %s", username, w.Code, w.Body.String())
	}

	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("token decoding failed: %v", err)
	}
	if resp.AccessToken == "" {
		t.Fatal("login returned an empty access token")
	}
	return resp.AccessToken
}

func createEntry(r http.Handler, token string, e handler.EntryRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/dairy", token, e)
}

func listEntries(r http.Handler, token string) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodGet, "/dairy", token, nil)
}

func updateEntry(r http.Handler, token string, id int, e handler.EntryRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPut, fmt.Sprintf("/dairy/%d", id), token, e)
}

func deleteEntry(r http.Handler, token string, id int) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodDelete, fmt.Sprintf("/dairy/%d", id), token, nil)
}

// listedEntries decodes a populated list response and fails the test on the
// "No entries found" message.
func listedEntries(t *testing.T, r http.Handler, token string) handler.EntriesResult {
	t.Helper()

	w := listEntries(r, token)
	if w.Code != http.StatusOK {
		t.Fatalf("list failed with status %d: %s", w.Code, w.Body.String())
	}

	var resp handler.EntriesResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding list response: %v", err)
	}
	if resp.Dairy == nil {
		t.Fatalf("expected a populated dairy list, got: %s", w.Body.String())
	}
	return resp
}

// assertNoEntries expects the explicit empty-collection message.
func assertNoEntries(t *testing.T, r http.Handler, token string) {
	t.Helper()

	w := listEntries(r, token)
	if w.Code != http.StatusOK {
		t.Fatalf("list failed with status %d: %s", w.Code, w.Body.String())
	}

	var resp handler.MessageResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding list response: %v", err)
	}
	if resp.Message != "No entries found" {
		t.Fatalf("expected 'No entries found', got %q", resp.Message)
	}
}
