package usecase

import (
	"context"
	"time"

	"go-hiretrack-backend/internal/domain"
	"go-hiretrack-backend/pkg/apperror"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type userUsecase struct {
	repo domain.UserRepository
}

func NewUserUsecase(repo domain.UserRepository) domain.UserUsecase {
	return &userUsecase{repo: repo}
}

func (u *userUsecase) List(ctx context.Context) ([]domain.User, error) {
	return u.repo.Fetch(ctx)
}

func (u *userUsecase) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}

func (u *userUsecase) Create(ctx context.Context, user *domain.User, plainPassword string) error {
	existing, err := u.repo.GetByEmail(ctx, user.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperror.Conflict("A user with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcryptCost)
	if err != nil {
		return err
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

	return u.repo.Create(ctx, user)
}

func (u *userUsecase) Update(ctx context.Context, id string, upd *domain.UserUpdate) (*domain.User, error) {
	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	// Partial merge: unset fields keep their current value
	if upd.FirstName != nil {
		user.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		user.LastName = *upd.LastName
	}
	if upd.Role != nil {
		user.Role = *upd.Role
	}
	if upd.Department != nil {
		user.Department = upd.Department
	}
	if upd.IsActive != nil {
		user.IsActive = *upd.IsActive
	}
	if upd.Avatar != nil {
		user.Avatar = *upd.Avatar
	}
	user.UpdatedAt = time.Now()

	if err := u.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *userUsecase) ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return apperror.BadRequest("Current password and new password are required")
	}

	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NotFound("User not found")
	}

	// The caller proves knowledge of the current password regardless of role
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)) != nil {
		return apperror.Unauthorized("Current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return err
	}
	return u.repo.UpdatePassword(ctx, id, string(hash))
}

func (u *userUsecase) Delete(ctx context.Context, id string) error {
	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NotFound("User not found")
	}
	return u.repo.Delete(ctx, id)
}
