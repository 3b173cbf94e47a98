package services

import (
	"context"
	"errors"
	"strings"

	apperrors "github.com/Utkarsh-Jain2199/Meal-Express-Backend/common/errors"
	"github.com/Utkarsh-Jain2199/Meal-Express-Backend/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrBadCredentials  = apperrors.ValidationFailed("Try Logging in with correct credentials")
	ErrEmailRegistered = apperrors.ValidationFailed("This email is already registered. Please use a different email or try logging in instead.")
	ErrNameTooShort    = apperrors.ValidationFailed("Name must be at least 3 characters long")
	ErrUserNotFound    = apperrors.NotFound("User not found")
)

// IUserRepository is the persistence collaborator for accounts.
type IUserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpdateProfile(ctx context.Context, id, name, location, mobile string) (*models.User, error)
}

// GoogleIdentity is the subset of a verified Google ID token the service
// needs.
type GoogleIdentity struct {
	Subject string
	Email   string
	Name    string
}

// IGoogleVerifier validates a Google-issued ID token credential.
type IGoogleVerifier interface {
	Verify(ctx context.Context, credential string) (*GoogleIdentity, error)
}

type AuthService struct {
	users  IUserRepository
	tokens *TokenService
	google IGoogleVerifier
}

func NewAuthService(users IUserRepository, tokens *TokenService, google IGoogleVerifier) *AuthService {
	return &AuthService{users: users, tokens: tokens, google: google}
}

// Signup creates an account and returns a session token. The unique email
// index makes duplicate detection race-free.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", apperrors.Storage(err)
	}

	user := &models.User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrEmailRegistered
		}
		return "", apperrors.Storage(err)
	}

	return s.tokens.Generate(user.ID, user.Email)
}

// Login checks credentials and returns a session token. Unknown email and
// wrong password yield the same message.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrBadCredentials
		}
		return "", apperrors.Storage(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrBadCredentials
	}

	return s.tokens.Generate(user.ID, user.Email)
}

// GoogleLogin verifies a Google ID token and finds or creates the matching
// account.
func (s *AuthService) GoogleLogin(ctx context.Context, credential string) (string, *models.User, error) {
	if credential == "" {
		return "", nil, apperrors.MalformedInput("Google credential is required")
	}

	ident, err := s.google.Verify(ctx, credential)
	if err != nil {
		return "", nil, apperrors.Upstream("Google authentication failed. Please try again.", err)
	}

	user, err := s.users.FindByEmail(ctx, ident.Email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		user, err = s.createGoogleUser(ctx, ident)
	}
	if err != nil {
		return "", nil, apperrors.Storage(err)
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return "", nil, apperrors.Storage(err)
	}
	return token, user, nil
}

func (s *AuthService) createGoogleUser(ctx context.Context, ident *GoogleIdentity) (*models.User, error) {
	// The account needs some password hash; the Google subject is opaque
	// and never used for local login.
	hash, err := bcrypt.GenerateFromPassword([]byte(ident.Subject), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:       uuid.NewString(),
		Name:     ident.Name,
		Email:    ident.Email,
		Password: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Lost a race with a concurrent first sign-in for this email.
			return s.users.FindByEmail(ctx, ident.Email)
		}
		return nil, err
	}
	return user, nil
}

// GetProfile returns the account for a user id.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, apperrors.Storage(err)
	}
	return user, nil
}

// UpdateProfile updates name, location and mobile. The mobile rule is the
// same validator the payment flow uses.
func (s *AuthService) UpdateProfile(ctx context.Context, userID, name, location, mobile string) (*models.User, error) {
	if len(strings.TrimSpace(name)) < 3 {
		return nil, ErrNameTooShort
	}
	if strings.TrimSpace(mobile) != "" {
		if err := ValidateMobile(mobile); err != nil {
			return nil, err
		}
	}

	user, err := s.users.UpdateProfile(ctx, userID, name, location, strings.TrimSpace(mobile))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, apperrors.Storage(err)
	}
	return user, nil
}
