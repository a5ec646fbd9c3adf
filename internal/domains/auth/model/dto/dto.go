package dto

import (
	"time"

	"autocare/infras/jwt"
	userModel "autocare/internal/domains/user/model"
	userDto "autocare/internal/domains/user/model/dto"
	"autocare/shared/constant"
	gModel "autocare/shared/model"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Name     string  `json:"name"            validate:"required,min=2,max=100"`
	Email    string  `json:"email"           validate:"required,email"`
	Password string  `json:"password"        validate:"required,min=8"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

func (r *RegisterRequest) ToUserModel(hashedPassword string) userModel.User {
	id := uuid.NewString()

	return userModel.User{
		ID:       id,
		Name:     r.Name,
		Email:    r.Email,
		Password: hashedPassword,
		Phone:    r.Phone,
		Role:     constant.RoleUser,
		Active:   true,
		Metadata: gModel.NewMetadata(id),
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login"`
}

// AuthResponse is returned by register, login and refresh.
type AuthResponse struct {
	AccessToken  string               `json:"accessToken"`
	RefreshToken string               `json:"refreshToken"`
	TokenType    string               `json:"tokenType"`
	ExpiresIn    int64                `json:"expiresIn"`
	User         userDto.UserResponse `json:"user"`
}

func (a *AuthResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	a.AccessToken = tokenPair.AccessToken
	a.RefreshToken = tokenPair.RefreshToken
	a.TokenType = tokenPair.TokenType
	a.ExpiresIn = tokenPair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=8"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password"`
}
