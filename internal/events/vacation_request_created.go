package events

import "time"

const VacationRequestCreatedTopic = "vacation.request.created.v1"

type VacationRequestCreatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id"`
	VacationID string    `json:"vacation_id"`
	AuthorID   string    `json:"author_id"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	TotalDays  int       `json:"total_days"`
	OccurredAt time.Time `json:"occurred_at"`
}
