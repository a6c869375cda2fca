package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName string    `gorm:"type:varchar(120);not null"`
	Email    string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_employee_email"`

	IsManager bool `gorm:"not null;default:false"`

	// Debited only by the vacation workflow on approval, never here.
	RemainingVacationDays int `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
