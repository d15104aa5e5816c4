package models

import "time"

type User struct {
	ID           int       `json:"uid"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedDate  time.Time `json:"created_date"`
}
