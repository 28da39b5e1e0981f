package services

import (
	"context"
	"time"

	"github.com/Galang0304/kasir-pos-capstone/apperr"
	"github.com/Galang0304/kasir-pos-capstone/models"
	"github.com/Galang0304/kasir-pos-capstone/utils"
)

// AuthService issues and verifies bearer credentials. Login failures use one
// generic message regardless of which part was wrong.
type AuthService struct {
	store  Store
	secret []byte
	ttl    time.Duration
}

func NewAuthService(store Store, secret []byte, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthService{store: store, secret: secret, ttl: ttl}
}

// Authenticate checks the credential pair and returns a signed token plus
// the user profile.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (string, *models.User, error) {
	user, err := s.store.UserByUsername(ctx, username)
	if err != nil {
		// Missing user and bad password must be indistinguishable.
		return "", nil, &apperr.AuthError{Msg: "invalid username or password", Err: apperr.ErrInvalidCredentials}
	}
	if !utils.CheckPassword(user.Password, password) {
		return "", nil, &apperr.AuthError{Msg: "invalid username or password", Err: apperr.ErrInvalidCredentials}
	}

	token, err := utils.GenerateToken(s.secret, s.ttl, user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Verify validates a bearer token and returns its claims.
func (s *AuthService) Verify(tokenStr string) (*utils.Claims, error) {
	return utils.ParseToken(s.secret, tokenStr)
}

// Me resolves the profile behind a verified identity.
func (s *AuthService) Me(ctx context.Context, userID string) (*models.User, error) {
	return s.store.UserByID(ctx, userID)
}
