package events

import "time"

const VacationRequestDecidedTopic = "vacation.request.decided.v1"

type VacationRequestDecidedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id"`
	VacationID   string    `json:"vacation_id"`
	AuthorID     string    `json:"author_id"`
	ResolvedByID string    `json:"resolved_by_id"`
	Status       string    `json:"status"`
	TotalDays    int       `json:"total_days"`
	OccurredAt   time.Time `json:"occurred_at"`
}
