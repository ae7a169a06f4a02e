package domain

// Account is a credential record: one login per employee identifier.
type Account struct {
	EmployeeID   string
	PasswordHash string
	Role         Role
}

// AccountSummary is the listing projection; it never carries the secret.
type AccountSummary struct {
	EmployeeID string
	Role       Role
}
