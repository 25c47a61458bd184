package domain

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// User is the authenticated identity persisted in the session slot.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// MockUser is one row of the fixed credential roster.
// Passwords are plaintext: the roster is demo data, not an auth backend.
type MockUser struct {
	User
	Password string
}
