package service

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vstore-backend/internal/apperrors"
	"vstore-backend/internal/models"
	"vstore-backend/internal/repository"
)

type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// AccountService handles signup, login and profile lookup.
type AccountService struct {
	users  UserStore
	hasher PasswordHasher
	tokens TokenIssuer
}

func NewAccountService(users UserStore, hasher PasswordHasher, tokens TokenIssuer) *AccountService {
	return &AccountService{users: users, hasher: hasher, tokens: tokens}
}

func (s *AccountService) Signup(ctx context.Context, req models.SignupRequest) (*models.AuthResponse, error) {
	email := strings.TrimSpace(req.Email)

	_, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, apperrors.Conflict("email already registered")
	case !errors.Is(err, repository.ErrNotFound):
		return nil, apperrors.Internal("could not create account", err)
	}

	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperrors.Internal("could not create account", err)
	}

	user := &models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: digest,
		Phone:    strings.TrimSpace(req.Phone),
	}
	// the unique email index settles concurrent signups for one address
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.Conflict("email already registered")
		}
		return nil, apperrors.Internal("could not create account", err)
	}

	return s.respond(user)
}

// Login reports the same error for an unknown email and a wrong password.
func (s *AccountService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.Unauthenticated("invalid credentials")
	}
	if err != nil {
		return nil, apperrors.Internal("could not log in", err)
	}
	if !s.hasher.Verify(req.Password, user.Password) {
		return nil, apperrors.Unauthenticated("invalid credentials")
	}
	return s.respond(user)
}

func (s *AccountService) Profile(ctx context.Context, userID string) (*models.User, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.NotFound("user not found")
	}
	user, err := s.users.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NotFound("user not found")
	}
	if err != nil {
		return nil, apperrors.Internal("could not load profile", err)
	}
	return user, nil
}

func (s *AccountService) respond(user *models.User) (*models.AuthResponse, error) {
	token, err := s.tokens.Issue(user.ID.Hex())
	if err != nil {
		return nil, apperrors.Internal("could not issue token", err)
	}
	return &models.AuthResponse{Token: token, User: *user}, nil
}
