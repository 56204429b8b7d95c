package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/edupanel/edu-admin-api/internal/models"
	"github.com/edupanel/edu-admin-api/internal/repository"
	appErrors "github.com/edupanel/edu-admin-api/pkg/errors"
)

// bcryptCost is the fixed work factor for password hashing.
const bcryptCost = 10

type authAdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
	Count(ctx context.Context) (int, error)
}

// AuthConfig defines configuration for authentication flows.
type AuthConfig struct {
	Secret      string
	TokenExpiry time.Duration
}

// AuthService provides admin registration, login and token verification.
type AuthService struct {
	repo      authAdminRepository
	validator *validator.Validate
	logger    *zap.Logger
	config    AuthConfig
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(repo authAdminRepository, validate *validator.Validate, logger *zap.Logger, config AuthConfig) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if config.TokenExpiry <= 0 {
		config.TokenExpiry = time.Hour
	}
	return &AuthService{repo: repo, validator: validate, logger: logger, config: config}
}

// Register creates an admin with a bcrypt-hashed password. Registration is
// not closed once an admin exists; the frontend hides the form based on
// AdminExists, but the API accepts further registrations. A duplicate email
// is rejected by the store and surfaces as a conflict.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.Admin, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid register payload")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	admin := &models.Admin{Email: req.Email, PasswordHash: string(hash)}
	if err := s.repo.Create(ctx, admin); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "Admin with this email already exists")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create admin")
	}

	s.logger.Info("admin registered", zap.String("admin_id", admin.ID))
	return admin, nil
}

// Login authenticates the admin and issues a signed token valid for the
// configured window. Unknown email and wrong password return the identical
// error so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}

	admin, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "Invalid credentials")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch admin")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "Invalid credentials")
	}

	token, err := s.generateToken(admin)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create token")
	}

	return &models.LoginResponse{Token: token}, nil
}

// AdminExists reports whether at least one admin is registered.
func (s *AuthService) AdminExists(ctx context.Context) (bool, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count admins")
	}
	return count > 0, nil
}

// ValidateToken parses and validates an access token returning the claims.
// Expiry is self-encoded in the token and checked on every call; the admin
// record itself is not re-read.
func (s *AuthService) ValidateToken(tokenString string) (*models.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "Invalid token")
	}

	claims, ok := token.Claims.(*models.JWTClaims)
	if !ok || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "Invalid token")
	}

	return claims, nil
}

func (s *AuthService) generateToken(admin *models.Admin) (string, error) {
	issuedAt := time.Now().UTC()
	claims := &models.JWTClaims{
		AdminID: admin.ID,
		Email:   admin.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.ID,
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.config.TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Secret))
}
