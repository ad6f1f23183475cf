package services

//go:generate mockgen -source=users.go -destination=users_mock.go -package=services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-accounts/internal/apperr"
	"github.com/sbilibin2017/gw-accounts/internal/logger"
	"github.com/sbilibin2017/gw-accounts/internal/models"
)

// UserProfileReader defines lookups used by the user endpoints.
type UserProfileReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

// UserProfileWriter defines mutations used by the user endpoints.
type UserProfileWriter interface {
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.User, error)
	Update(ctx context.Context, id uuid.UUID, email, username string) (*models.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserService serves the user read/update/delete endpoints.
type UserService struct {
	reader UserProfileReader
	writer UserProfileWriter
	hasher PasswordHasher
	tx     Transactor
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserProfileReader, writer UserProfileWriter, hasher PasswordHasher, tx Transactor) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
		hasher: hasher,
		tx:     tx,
	}
}

// List returns every user profile.
func (svc *UserService) List(ctx context.Context) ([]models.UserProfile, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, classify(err)
	}

	profiles := make([]models.UserProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].Profile())
	}
	return profiles, nil
}

// GetByID returns the profile of one user.
func (svc *UserService) GetByID(ctx context.Context, id uuid.UUID) (*models.UserProfile, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		return nil, classify(err)
	}
	profile := user.Profile()
	return &profile, nil
}

// GetByEmail returns the profile registered under email.
func (svc *UserService) GetByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	user, err := svc.reader.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, classify(err)
	}
	profile := user.Profile()
	return &profile, nil
}

// Update changes the email and username of a user.
func (svc *UserService) Update(ctx context.Context, id uuid.UUID, email, username string) (*models.UserProfile, error) {
	email = strings.TrimSpace(email)
	if email == "" || strings.TrimSpace(username) == "" {
		return nil, apperr.New(apperr.KindInvalidInput, apperr.MsgMissingFields)
	}

	user, err := svc.writer.Update(ctx, id, email, username)
	if err != nil {
		logger.Log.Errorw("failed to update user", "id", id, "err", err)
		return nil, classify(err)
	}
	profile := user.Profile()
	return &profile, nil
}

// ChangePassword replaces a user's password after checking the current one.
// The row stays locked from the check until the new hash is written.
func (svc *UserService) ChangePassword(ctx context.Context, id uuid.UUID, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return apperr.New(apperr.KindInvalidInput, apperr.MsgMissingFields)
	}

	hashedPassword, err := hashPassword(svc.hasher, newPassword)
	if err != nil {
		return err
	}

	err = svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		user, err := svc.writer.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !svc.hasher.Verify(oldPassword, user.PasswordHash) {
			return apperr.New(apperr.KindInvalidCredentials, apperr.MsgInvalidCredentials)
		}
		return svc.writer.UpdatePassword(ctx, id, hashedPassword)
	})
	if err != nil {
		logger.Log.Errorw("failed to change password", "id", id, "err", err)
		return classify(err)
	}
	return nil
}

// Delete removes a user.
func (svc *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := svc.writer.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete user", "id", id, "err", err)
		return classify(err)
	}
	return nil
}
