package auth

// RegisterDTO carries the credentials for a new account.
type RegisterDTO struct {
	Email    string
	Password string
}

// LoginDTO carries the credentials presented at login.
type LoginDTO struct {
	Email    string
	Password string
}

// TokenDTO is the login response body.
type TokenDTO struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
