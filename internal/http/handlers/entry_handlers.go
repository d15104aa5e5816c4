package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/naveenraj/dairy-api/internal/auth"
	"github.com/naveenraj/dairy-api/internal/models"
)

// CreateEntryHandler godoc
// @Summary Create a diary entry
// @Description Persists a new entry owned by the caller. Fields are stored verbatim; the generated id is not returned
// @Tags dairy
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entry body EntryRequest true "Entry to add"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Could not validate credentials"
// @Router /dairy [post]
func CreateEntryHandler(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	var req EntryRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	entry := models.Entry{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		Image:       req.Image,
		Location:    req.Location,
		UserID:      identity.UserID,
	}

	if _, err := entryRepo.Create(entry); err != nil {
		writeError(w, http.StatusInternalServerError, "could not create dairy entry")
		return
	}

	if err := writeJSON(w, http.StatusCreated, MessageResponse{Message: "Dairy entry created successfully"}); err != nil {
		slog.Error("failed to write JSON response", "error", err)
	}
}

// GetEntriesHandler godoc
// @Summary List the caller's diary entries
// @Description An owner with no entries gets an explicit message rather than an empty list
// @Tags dairy
// @Produce json
// @Security BearerAuth
// @Success 200 {object} EntriesResult
// @Failure 401 {object} ErrorResponse "Could not validate credentials"
// @Router /dairy [get]
func GetEntriesHandler(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	entries, err := entryRepo.GetAllByUser(identity.UserID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not fetch dairy entries")
		return
	}

	if len(entries) == 0 {
		_ = writeJSON(w, http.StatusOK, MessageResponse{Message: "No entries found"})
		return
	}

	if err := writeJSON(w, http.StatusOK, EntriesResult{Dairy: entries}); err != nil {
		slog.Error("failed to write JSON response", "error", err)
	}
}

// UpdateEntryHandler godoc
// @Summary Update a diary entry
// @Description Rewrites an entry, filtered by owner and id. An id that matches nothing (wrong owner or nonexistent) still reports success; the statement simply affects zero rows
// @Tags dairy
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Param entry body EntryRequest true "Replacement fields"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Could not validate credentials"
// @Router /dairy/{id} [put]
func UpdateEntryHandler(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid dairy entry ID")
		return
	}

	var req EntryRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	entry := models.Entry{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		Image:       req.Image,
		Location:    req.Location,
		UserID:      identity.UserID,
	}

	affected, err := entryRepo.Update(entry)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not update dairy entry")
		return
	}
	if affected == 0 {
		slog.Debug("update matched no rows", "entry_id", id, "user_id", identity.UserID)
	}

	if err := writeJSON(w, http.StatusOK, MessageResponse{Message: "Dairy entry updated successfully"}); err != nil {
		slog.Error("failed to write JSON response", "error", err)
	}
}

// DeleteEntryHandler godoc
// @Summary Delete a diary entry
// @Description Removes an entry, with the same zero-row-silent-success semantics as update
// @Tags dairy
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Could not validate credentials"
// @Router /dairy/{id} [delete]
func DeleteEntryHandler(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid dairy entry ID")
		return
	}

	affected, err := entryRepo.Delete(identity.UserID, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not delete dairy entry")
		return
	}
	if affected == 0 {
		slog.Debug("delete matched no rows", "entry_id", id, "user_id", identity.UserID)
	}

	if err := writeJSON(w, http.StatusOK, MessageResponse{Message: "Dairy entry deleted successfully"}); err != nil {
		slog.Error("failed to write JSON response", "error", err)
	}
}
