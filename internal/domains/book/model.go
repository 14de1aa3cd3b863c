package book

import (
	"time"

	"github.com/google/uuid"
)

// Book entity. UserUID is the owning user and may be null for books created
// before ownership tracking existed.
type Book struct {
	UID           uuid.UUID  `json:"uid" db:"uid"`
	Title         string     `json:"title" db:"title"`
	Author        string     `json:"author" db:"author"`
	Publisher     string     `json:"publisher" db:"publisher"`
	PublishedDate string     `json:"published_date" db:"published_date"` // YYYY-MM-DD
	PageCount     int        `json:"page_count" db:"page_count"`
	Language      string     `json:"language" db:"language"`
	UserUID       *uuid.UUID `json:"user_uid" db:"user_uid"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}
