package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/opl-logistica/backoffice-go/internal/domain/auth"
	"github.com/opl-logistica/backoffice-go/internal/domain/user"
	"github.com/opl-logistica/backoffice-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	userRepo user.UserRepository
	jwtSvc   jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtSvc jwt.Service) auth.AuthService {
	return &AuthServiceImpl{userRepo: userRepo, jwtSvc: jwtSvc}
}

func (s *AuthServiceImpl) Login(ctx context.Context, req *auth.LoginRequest) (*auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		// Do not reveal whether the email exists.
		return nil, auth.ErrInvalidCredentials
	}
	if !u.Active {
		return nil, auth.ErrAccountInactive
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	var resp auth.TokenResponse
	resp.AccessToken, resp.AccessTokenExpiresIn, err = s.jwtSvc.GenerateAccessToken(u.ID, u.Email, u.IsAdmin)
	if err != nil {
		return nil, err
	}
	resp.RefreshToken, resp.RefreshTokenExpiresIn, err = s.jwtSvc.GenerateRefreshToken(u.ID)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *AuthServiceImpl) RefreshToken(ctx context.Context, req *auth.RefreshTokenRequest) (*auth.AccessTokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if s.jwtSvc.IsTokenRevoked(req.RefreshToken) {
		return nil, auth.ErrRefreshTokenRevoked
	}

	token, err := s.jwtSvc.JWTAuth().Decode(req.RefreshToken)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}
	claims, err := token.AsMap(ctx)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return nil, auth.ErrInvalidToken
	}
	userID, _ := claims["user_id"].(string)

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}
	if !u.Active {
		return nil, auth.ErrAccountInactive
	}

	var resp auth.AccessTokenResponse
	resp.AccessToken, resp.AccessTokenExpiresIn, err = s.jwtSvc.GenerateAccessToken(u.ID, u.Email, u.IsAdmin)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken != "" {
		s.jwtSvc.RevokeToken(refreshToken)
	}
	return nil
}
