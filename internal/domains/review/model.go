package review

import (
	"time"

	"github.com/google/uuid"
)

// Review entity. Both owner references are nullable so a review survives the
// deletion of its user or book row.
type Review struct {
	UID        uuid.UUID  `json:"uid" db:"uid"`
	Rating     int        `json:"rating" db:"rating"`
	ReviewText string     `json:"review_text" db:"review_text"`
	UserUID    *uuid.UUID `json:"user_uid" db:"user_uid"`
	BookUID    *uuid.UUID `json:"book_uid" db:"book_uid"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
}
