package dto

type LoginRequest struct {
	Email  string `json:"email"`
	APIKey string `json:"api_key"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type OperatorResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type AuthResponse struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	TokenType    string           `json:"token_type"`
	ExpiresIn    int64            `json:"expires_in"`
	Operator     OperatorResponse `json:"operator"`
}
