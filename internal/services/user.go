package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/user-profile-api/internal/logger"
	"github.com/sbilibin2017/user-profile-api/internal/models"
	"github.com/sbilibin2017/user-profile-api/internal/repositories"
)

// Error variables
var (
	ErrUserNotFound   = errors.New("user does not exist")
	ErrUsernameExists = errors.New("username already exists")
	ErrEmailExists    = errors.New("email already exists")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	Get(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// UserService handles user profile operations against the record store.
type UserService struct {
	reader UserReader
	writer UserWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
	}
}

// Get returns the user with the given ID.
func (svc *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	user, err := svc.reader.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			logger.Log.Warnw("user not found", "id", id)
			return nil, ErrUserNotFound
		}
		logger.Log.Errorw("failed to get user", "id", id, "err", err)
		return nil, err
	}
	return user, nil
}

// List returns all users in insertion order.
func (svc *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// Create builds a record from the validated input, stamps its creation
// timestamp and inserts it. The store assigns the ID.
func (svc *UserService) Create(ctx context.Context, input models.NewUser) (*models.User, error) {
	user := &models.User{
		Username:  input.Username,
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Age:       input.Age,
		CreatedAt: models.Timestamp(),
	}

	created, err := svc.writer.Save(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrUsernameExists):
			logger.Log.Warnw("username already exists", "username", input.Username)
			return nil, ErrUsernameExists
		case errors.Is(err, repositories.ErrEmailExists):
			logger.Log.Warnw("email already exists", "email", input.Email)
			return nil, ErrEmailExists
		default:
			logger.Log.Errorw("failed to save user", "err", err)
			return nil, err
		}
	}
	return created, nil
}

// Update applies a partial update to the user with the given ID.
// Uniqueness checks exclude the record itself.
func (svc *UserService) Update(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error) {
	updated, err := svc.writer.Update(ctx, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrUserNotFound):
			logger.Log.Warnw("user not found", "id", id)
			return nil, ErrUserNotFound
		case errors.Is(err, repositories.ErrUsernameExists):
			logger.Log.Warnw("username already exists", "id", id)
			return nil, ErrUsernameExists
		case errors.Is(err, repositories.ErrEmailExists):
			logger.Log.Warnw("email already exists", "id", id)
			return nil, ErrEmailExists
		default:
			logger.Log.Errorw("failed to update user", "id", id, "err", err)
			return nil, err
		}
	}
	return updated, nil
}

// Delete removes the user with the given ID.
func (svc *UserService) Delete(ctx context.Context, id int64) error {
	if _, err := svc.writer.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			logger.Log.Warnw("user not found", "id", id)
			return ErrUserNotFound
		}
		logger.Log.Errorw("failed to delete user", "id", id, "err", err)
		return err
	}
	return nil
}
