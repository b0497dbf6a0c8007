package domain

// User models the profile cached in the session. The upstream ERP owns
// the record; the gateway only carries it.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	IsStaff  bool   `json:"is_staff"`
	Phone    string `json:"phone,omitempty"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// CreateUserInput is the user-management form payload.
type CreateUserInput struct {
	FullName string `json:"full_name" validate:"required,min=2"`
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=owner manager accountant worker viewer"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,min=7"`
}

// UpdateUserInput carries partial profile updates. Nil fields are left
// untouched upstream.
type UpdateUserInput struct {
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	FullName *string `json:"full_name,omitempty" validate:"omitempty,min=2"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=owner manager accountant worker viewer"`
	Phone    *string `json:"phone,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}
