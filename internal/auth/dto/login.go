package dto

// LoginInput accepts either the username or the email in the username field,
// mirroring the OAuth2 password form.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
