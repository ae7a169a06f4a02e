package domain

// Employee is the read-only directory entry joined from the employee,
// jobtitle, salary and picture tables.
type Employee struct {
	EmployeeID    string
	Name          string
	Email         string
	JobTitle      string
	MonthlySalary float64
	PictureURL    string
}
