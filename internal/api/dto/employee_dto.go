package dto

import "github.com/spec-kit/employee-directory/internal/domain"

// EmployeeResponse is one directory row.
type EmployeeResponse struct {
	EmployeeID    string  `json:"employee_id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	JobTitle      string  `json:"job_title"`
	MonthlySalary float64 `json:"monthly_salary"`
	PictureURL    string  `json:"picture_url"`
}

// NewEmployeeListResponse maps directory rows, preserving order.
func NewEmployeeListResponse(employees []domain.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, EmployeeResponse{
			EmployeeID:    e.EmployeeID,
			Name:          e.Name,
			Email:         e.Email,
			JobTitle:      e.JobTitle,
			MonthlySalary: e.MonthlySalary,
			PictureURL:    e.PictureURL,
		})
	}
	return out
}
