package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/opwolken/facturatie-api/internal/application/dto"
	"github.com/opwolken/facturatie-api/internal/domain"
	"github.com/opwolken/facturatie-api/internal/domain/entity"
	"github.com/opwolken/facturatie-api/internal/domain/repository"
	"github.com/opwolken/facturatie-api/pkg/config"
	"github.com/opwolken/facturatie-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase authentication for the two-partner administration. Only
// allow-listed emails can log in or register; every account shares the one
// OwnerID so both partners work on the same books.
type AuthUseCase struct {
	userRepo repository.UserRepository
	authCfg  config.AuthConfig
	jwtCfg   JWTConfig
}

// NewAuthUseCase builds the auth use case.
func NewAuthUseCase(userRepo repository.UserRepository, authCfg config.AuthConfig, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, authCfg: authCfg, jwtCfg: jwtCfg}
}

// Register creates an account for an allow-listed partner email: hashes the
// password with bcrypt and persists. Returns ErrForbidden for any other email
// and ErrDuplicate when the account already exists.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.LoginRequest, name string) (*dto.UserResponse, error) {
	if !uc.authCfg.EmailAllowed(in.Email) {
		return nil, domain.ErrForbidden
	}
	existing, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = in.Email
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		OwnerID:      uc.authCfg.OwnerID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifies email/password, generates a JWT and returns token + user.
// The allow-list is checked again on every login so removing an email from
// the configuration locks the account out immediately.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if !uc.authCfg.EmailAllowed(in.Email) {
		return nil, domain.ErrForbidden
	}
	user, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.OwnerID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
	}
}
