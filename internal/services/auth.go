package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/hirehub/internship-portal/internal/logger"
	"github.com/hirehub/internship-portal/internal/models"
)

// Error variables
var (
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AccountReader defines read-only operations for accounts.
type AccountReader interface {
	GetByEmail(ctx context.Context, email string) (*models.AccountDB, error)
	GetByID(ctx context.Context, id int64) (*models.AccountDB, error)
}

// AccountWriter defines write operations for accounts.
type AccountWriter interface {
	Save(ctx context.Context, name, email, passwordHash string, role models.Role) (int64, error)
}

// TokenGenerator defines an interface for issuing identity tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID int64, email string, role models.Role) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader AccountReader
	writer AccountWriter
	jwt    TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader AccountReader, writer AccountWriter, jwt TokenGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a new account with a hashed password and returns its id.
func (svc *AuthService) Register(ctx context.Context, name, email, password string, role models.Role) (int64, error) {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check account exists", "err", err)
		return 0, err
	}
	if existing != nil {
		logger.Log.Errorw("email already registered", "email", email)
		return 0, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return 0, err
	}

	id, err := svc.writer.Save(ctx, name, email, string(hashedPassword), role)
	if err != nil {
		logger.Log.Errorw("failed to save account", "err", err)
		return 0, err
	}

	return id, nil
}

// Login verifies credentials and returns a signed token and the
// account's role. Unknown email and wrong password are indistinguishable.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, models.Role, error) {
	account, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get account", "err", err)
		return "", "", err
	}
	if account == nil {
		logger.Log.Errorw("email not registered", "email", email)
		return "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return "", "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, account.ID, account.Email, account.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", "", err
	}

	return token, account.Role, nil
}
