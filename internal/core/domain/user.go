package domain

import "time"

// User models an account on the platform. Each user holds exactly one Role.
type User struct {
	ID           string     `json:"id"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Email        string     `json:"email"`
	PhoneNumber  string     `json:"phone_number,omitempty"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	Active       bool       `json:"active"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// FullName joins the user's first and last names.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Usable reports whether the account may authenticate and act. It is the
// single predicate combining the active flag and the soft-delete marker;
// call sites must never check the two columns separately. A deleted user is
// never usable, whatever Active says.
func (u *User) Usable() bool {
	return u.Active && u.DeletedAt == nil
}
