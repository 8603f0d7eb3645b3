package usecase

import (
	"context"
	"fmt"
	"time"

	"go-hiretrack-backend/internal/domain"
	"go-hiretrack-backend/pkg/apperror"
	"go-hiretrack-backend/pkg/token"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *token.Service
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *token.Service) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, tokens: tokens}
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, apperror.BadRequest("Email and password are required")
	}

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	// Same outcome for unknown email, deactivated account and wrong
	// password: the caller learns nothing about which one it was
	if user == nil || !user.IsActive {
		return "", nil, apperror.Unauthorized("Invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", nil, apperror.Unauthorized("Invalid credentials")
	}

	tok, err := u.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}
	return tok, user, nil
}

func (u *authUsecase) Register(ctx context.Context, user *domain.User, plainPassword string) (string, error) {
	existing, err := u.userRepo.GetByEmail(ctx, user.Email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", apperror.Conflict("User with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcryptCost)
	if err != nil {
		return "", err
	}

	now := time.Now()
	user.ID = uuid.NewString()
	user.Password = string(hash)
	user.IsActive = true
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Avatar == "" {
		user.Avatar = defaultAvatar(user.FirstName, user.LastName)
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return "", err
	}
	return u.tokens.Issue(user)
}

func defaultAvatar(firstName, lastName string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s+%s", firstName, lastName)
}
