package dto

import "github.com/WilsonnnTan/auth-backend/internal/auth/domain"

// UserOutput is the identity shape returned to clients. It never carries the
// password hash.
type UserOutput struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name"`
	Disabled *bool   `json:"disabled"`
}

func NewUserOutput(user *domain.User) UserOutput {
	return UserOutput{
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
		Disabled: user.Disabled,
	}
}
