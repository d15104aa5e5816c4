package repo

import "github.com/naveenraj/dairy-api/internal/models"

// EntryRepository persists diary entries. Update and Delete report the number
// of rows matched; zero is not an error, callers decide what it means.
type EntryRepository interface {
	Create(e models.Entry) (models.Entry, error)
	GetAllByUser(userID int) ([]models.Entry, error)
	Update(e models.Entry) (int64, error)
	Delete(userID, entryID int) (int64, error)
}
