package models

import "time"

// Nota is a personal note. Notes are kept only in the local cache and are not
// scoped to an owner.
type Nota struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Usuario is the legacy local user profile.
type Usuario struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"created_at"`
}
