package model

import "time"

// User is an account record. The core services only ever read ID and Name;
// the remaining fields belong to the auth vertical.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password"`
	CreatedAt    time.Time `json:"created"`
}
