package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/naveenraj/dairy-api/internal/models"
)

type PostgresEntryRepository struct {
	db *sql.DB
}

func NewPostgresEntryRepository(db *sql.DB) *PostgresEntryRepository {
	return &PostgresEntryRepository{db: db}
}

func (r *PostgresEntryRepository) Create(e models.Entry) (models.Entry, error) {
	query := `INSERT INTO dairy (name, description, date, image, location, user_id) VALUES ($1, $2, $3, $4, $5, $6) RETURNING dairy_id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, e.Name, e.Description, e.Date, e.Image, e.Location, e.UserID).Scan(&e.ID)
	return e, err
}

func (r *PostgresEntryRepository) GetAllByUser(userID int) ([]models.Entry, error) {
	query := `SELECT dairy_id, name, description, date, image, location, user_id FROM dairy WHERE user_id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		var e models.Entry
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.Date, &e.Image, &e.Location, &e.UserID); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Update rewrites every mutable column, filtered by owner and id. A mismatch
// on either affects zero rows and is reported through the count, not an error.
func (r *PostgresEntryRepository) Update(e models.Entry) (int64, error) {
	query := `UPDATE dairy SET name = $1, description = $2, date = $3, image = $4, location = $5 WHERE user_id = $6 AND dairy_id = $7`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, e.Name, e.Description, e.Date, e.Image, e.Location, e.UserID, e.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *PostgresEntryRepository) Delete(userID, entryID int) (int64, error) {
	query := `DELETE FROM dairy WHERE user_id = $1 AND dairy_id = $2`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, userID, entryID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
