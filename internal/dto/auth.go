package dto

// LoginRequest carries the credentials for token issuance.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest asks for a new access token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse is the issued token pair.
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// RecoverPasswordRequest starts the password-recovery flow.
type RecoverPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest completes the password-recovery flow.
type ResetPasswordRequest struct {
	Hash     string `json:"hash" binding:"required,uuid"`
	Code     string `json:"code" binding:"required,len=5"`
	Password string `json:"password" binding:"required,min=8,max=32"`
}
