package employee

type CreateEmployeeRequest struct {
	FullName              string `json:"full_name" binding:"required"`
	Email                 string `json:"email" binding:"required,email"`
	IsManager             bool   `json:"is_manager"`
	RemainingVacationDays int    `json:"remaining_vacation_days" binding:"gte=0"`
}

type UpdateEmployeeRequest struct {
	FullName              string `json:"full_name" binding:"required"`
	Email                 string `json:"email" binding:"required,email"`
	IsManager             bool   `json:"is_manager"`
	RemainingVacationDays int    `json:"remaining_vacation_days" binding:"gte=0"`
}

type EmployeeResponse struct {
	ID                    string `json:"id"`
	FullName              string `json:"full_name"`
	Email                 string `json:"email"`
	IsManager             bool   `json:"is_manager"`
	RemainingVacationDays int    `json:"remaining_vacation_days"`
}
