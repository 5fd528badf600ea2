package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"eventlisting/internal/domain"
)

type signUpInput struct {
	Email    string `validate:"required,email,max=254"`
	Password string `validate:"min=8"`
	Name     string `validate:"max=100"`
	LastName string `validate:"max=100"`
}

type authService struct {
	userRepo    domain.UserRepository
	hasher      domain.PasswordHasher
	issuer      domain.TokenIssuer
	tokenExpiry time.Duration
	validate    *validator.Validate
}

// NewAuthService creates the AuthService for editor accounts.
func NewAuthService(userRepo domain.UserRepository, hasher domain.PasswordHasher, issuer domain.TokenIssuer, tokenExpiry time.Duration) domain.AuthService {
	return &authService{
		userRepo:    userRepo,
		hasher:      hasher,
		issuer:      issuer,
		tokenExpiry: tokenExpiry,
		validate:    validator.New(),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) SignUp(ctx context.Context, email, password, name, lastName string) (*domain.User, error) {
	in := signUpInput{
		Email:    normalizeEmail(email),
		Password: password,
		Name:     strings.TrimSpace(name),
		LastName: strings.TrimSpace(lastName),
	}
	if err := s.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fe := verrs[0]
			return nil, fmt.Errorf("%w: %s fails %s", domain.ErrInvalidInput, strings.ToLower(fe.Field()), fe.Tag())
		}
		return nil, err
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(salt, in.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &domain.User{
		Email:        in.Email,
		PasswordHash: hash,
		Salt:         salt,
		Name:         in.Name,
		LastName:     in.LastName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create editor: %w", err)
	}
	return user, nil
}

// Login returns a bearer token. Unknown emails and wrong passwords both yield
// ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, domain.ErrNotFound) {
		return "", domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("load editor: %w", err)
	}
	if err := s.hasher.Compare(user.PasswordHash, user.Salt, password); err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return "", err
		}
		return "", fmt.Errorf("check password of %s: %w", user.ID, err)
	}
	token, err := s.issuer.Issue(user.ID, user.Email, s.tokenExpiry)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
