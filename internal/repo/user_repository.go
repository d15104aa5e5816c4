package repo

import "github.com/naveenraj/dairy-api/internal/models"

type UserRepository interface {
	CreateUser(u models.User) (models.User, error)
	GetByUsername(username string) (models.User, error)
}
