package entity

import (
	"time"

	"github.com/google/uuid"
)

// Airport represents an airport reference record
type Airport struct {
	ID        uuid.UUID
	Name      string
	Address   string
	Code      string
	CreatedAt time.Time
}
