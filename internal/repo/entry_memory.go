package repo

import (
	"sync"

	"github.com/naveenraj/dairy-api/internal/models"
)

type InMemoryEntryRepository struct {
	mu      sync.Mutex
	entries []models.Entry
	nextID  int
}

func NewInMemoryEntryRepository() *InMemoryEntryRepository {
	return &InMemoryEntryRepository{entries: []models.Entry{}, nextID: 1}
}

func (r *InMemoryEntryRepository) Create(e models.Entry) (models.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e.ID = r.nextID
	r.nextID++
	r.entries = append(r.entries, e)
	return e, nil
}

func (r *InMemoryEntryRepository) GetAllByUser(userID int) ([]models.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []models.Entry
	for _, e := range r.entries {
		if e.UserID == userID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (r *InMemoryEntryRepository) Update(e models.Entry) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.entries {
		if existing.ID == e.ID && existing.UserID == e.UserID {
			r.entries[i] = e
			return 1, nil
		}
	}
	return 0, nil
}

func (r *InMemoryEntryRepository) Delete(userID, entryID int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.entries {
		if existing.ID == entryID && existing.UserID == userID {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *InMemoryEntryRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = r.entries[:0]
	r.nextID = 1
}
