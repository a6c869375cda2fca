package vacation

import (
	"time"

	"github.com/google/uuid"
)

type VacationRequest struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AuthorID uuid.UUID `gorm:"type:uuid;not null;index:idx_vacation_requests_author_dates"`

	StartDate time.Time `gorm:"type:date;not null;index:idx_vacation_requests_author_dates"`
	EndDate   time.Time `gorm:"type:date;not null;index:idx_vacation_requests_author_dates"`
	TotalDays int       `gorm:"type:int;not null"`

	Status       string     `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_vacation_requests_status"`
	ResolvedByID *uuid.UUID `gorm:"type:uuid"`
	ResolvedAt   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
