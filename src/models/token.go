package models

type TokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	GrantType    string `json:"grant_type"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type ExchangeRequest struct {
	PublicToken string `json:"public_token"`
}

type ExchangeResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      string `json:"user_id"`
}

type CreatePublicTokenRequest struct {
	UserID string `json:"user_id"`
}

type CreatePublicTokenResponse struct {
	PublicToken string `json:"public_token"`
}
