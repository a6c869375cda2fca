package vacation

type CreateVacationRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

type UpdateStatusRequest struct {
	ManagerID string `json:"manager_id" binding:"required,uuid"`
	Status    string `json:"status" binding:"required"`
}

type VacationResponse struct {
	ID           string  `json:"id"`
	AuthorID     string  `json:"author_id"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	TotalDays    int     `json:"total_days"`
	Status       string  `json:"status"`
	ResolvedByID *string `json:"resolved_by_id,omitempty"`
	ResolvedAt   *string `json:"resolved_at,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

type RemainingDaysResponse struct {
	EmployeeID    string `json:"employee_id"`
	RemainingDays int    `json:"remaining_days"`
}
