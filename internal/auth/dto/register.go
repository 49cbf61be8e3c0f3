package dto

type RegisterInput struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	FullName *string `json:"full_name,omitempty"`
}

type RegisterOutput struct {
	Message  string `json:"message"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
