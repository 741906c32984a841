package users_services

import (
	"context"
	"errors"
	"fmt"
	"time"

	users_models "teamcamp/internal/features/users/models"
	users_repositories "teamcamp/internal/features/users/repositories"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// tokenAudience is the audience the hosted identity provider stamps on
// end-user access tokens.
const tokenAudience = "authenticated"

// IdentityService verifies bearer credentials and keeps the local profile
// table in sync with the claims they carry. Token issuance and formats are
// the identity provider's business; this service only validates and extracts.
type IdentityService struct {
	jwtSecret      []byte
	userRepository *users_repositories.UserRepository
}

func NewIdentityService(jwtSecret string, userRepository *users_repositories.UserRepository) *IdentityService {
	return &IdentityService{
		jwtSecret:      []byte(jwtSecret),
		userRepository: userRepository,
	}
}

// VerifyToken validates the token signature, expiry and audience, and
// returns the principal described by its claims.
func (s *IdentityService) VerifyToken(token string) (*users_models.Principal, error) {
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return nil, errors.New("invalid token claims")
	}

	if !claims.VerifyAudience(tokenAudience, true) {
		return nil, errors.New("invalid token audience")
	}

	subject, ok := claims["sub"].(string)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, errors.New("invalid token claims")
	}

	principal := &users_models.Principal{ID: userID}
	if email, ok := claims["email"].(string); ok {
		principal.Email = email
	}

	if metadata, ok := claims["user_metadata"].(map[string]any); ok {
		if fullName, ok := metadata["full_name"].(string); ok {
			principal.FullName = fullName
		}
		if avatarURL, ok := metadata["avatar_url"].(string); ok {
			principal.AvatarURL = avatarURL
		}
	}

	principal.Provider = "email"
	if metadata, ok := claims["app_metadata"].(map[string]any); ok {
		if provider, ok := metadata["provider"].(string); ok && provider != "" {
			principal.Provider = provider
		}
	}

	return principal, nil
}

// Authenticate verifies the token and makes sure a profile row exists for the
// subject, so member lists can join display names later.
func (s *IdentityService) Authenticate(ctx context.Context, token string) (*users_models.Principal, error) {
	principal, err := s.VerifyToken(token)
	if err != nil {
		return nil, err
	}

	if err := s.ensureProfile(ctx, principal); err != nil {
		return nil, fmt.Errorf("failed to sync user profile: %w", err)
	}

	return principal, nil
}

func (s *IdentityService) GetUserByID(ctx context.Context, userID uuid.UUID) (*users_models.User, error) {
	return s.userRepository.GetUserByID(ctx, userID)
}

func (s *IdentityService) ensureProfile(ctx context.Context, principal *users_models.Principal) error {
	existing, err := s.userRepository.GetUserByID(ctx, principal.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		if existing.Email == principal.Email &&
			existing.FullName == principal.FullName &&
			existing.AvatarURL == principal.AvatarURL {
			return nil
		}

		// claims changed upstream, refresh the local profile copy
		existing.Email = principal.Email
		existing.FullName = principal.FullName
		existing.AvatarURL = principal.AvatarURL

		return s.userRepository.UpdateUser(ctx, existing)
	}

	return s.userRepository.CreateUser(ctx, &users_models.User{
		ID:        principal.ID,
		Email:     principal.Email,
		FullName:  principal.FullName,
		AvatarURL: principal.AvatarURL,
		CreatedAt: time.Now().UTC(),
	})
}
