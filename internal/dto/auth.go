package dto

type RegisterRequest struct {
	Username string `json:"username" validate:"required,uname"`
	Password string `json:"password" validate:"required,passwd"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required,uname"`
	Password string `json:"password" validate:"required,passwd"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type TokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type AccessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}
