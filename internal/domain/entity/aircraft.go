package entity

import (
	"time"

	"github.com/google/uuid"
)

// Aircraft represents an aircraft reference record
type Aircraft struct {
	ID                uuid.UUID
	Name              string
	Model             string
	ManufacturingYear int
	CreatedAt         time.Time
}
