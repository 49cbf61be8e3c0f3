package constant

const (
	// TokenTypeBearer is the token_type value returned on successful login.
	TokenTypeBearer = "bearer"

	// DefaultTokenExpiryMinutes is the access token lifetime used when the
	// environment does not override it.
	DefaultTokenExpiryMinutes = 30
)
