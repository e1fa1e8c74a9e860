package handler

import (
	"time"

	"github.com/brightline/tutoring-platform/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses.
type errorResponse struct {
	Error string `json:"error"`
}

// fieldErrorsResponse carries per-field validation failures for a rejected
// contact submission.
type fieldErrorsResponse struct {
	Errors domain.FieldErrors `json:"errors"`
}

// --- Auth ---

type registerRequest struct {
	FirstName   string `json:"first_name" form:"first_name" validate:"required"`
	LastName    string `json:"last_name"  form:"last_name"  validate:"required"`
	Email       string `json:"email"      form:"email"      validate:"required,email"`
	PhoneNumber string `json:"phone_number" form:"phone_number"`
	Password    string `json:"password"   form:"password"   validate:"required,min=8"`
	Role        string `json:"role"       form:"role"       validate:"required,oneof=parent student tutor"`
}

type loginRequest struct {
	Email    string `json:"email"    form:"email"    validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type authResponse struct {
	Token      string       `json:"token,omitempty"`
	User       *domain.User `json:"user,omitempty"`
	RedirectTo string       `json:"redirect_to,omitempty"`
}

// --- Users (admin) ---

type createUserRequest struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name"  validate:"required"`
	Email       string `json:"email"      validate:"required,email"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"   validate:"required,min=8"`
	Role        string `json:"role"       validate:"required,oneof=parent student tutor administrator"`
}

type updateUserRequest struct {
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

type userListResponse struct {
	Users []*domain.User `json:"users"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// --- Contact form ---

type contactFormRequest struct {
	Name    string `json:"name"    form:"name"`
	Email   string `json:"email"   form:"email"`
	Phone   string `json:"phone"   form:"phone"`
	Message string `json:"message" form:"message"`
}

type submissionListResponse struct {
	Submissions []*domain.ContactSubmission `json:"submissions"`
	Total       int64                       `json:"total"`
}

// --- Dashboards ---

type dashboardResponse struct {
	Dashboard string       `json:"dashboard"`
	Role      domain.Role  `json:"role"`
	User      *domain.User `json:"user"`
	LoadedAt  time.Time    `json:"loaded_at"`
}
