package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/sbilibin2017/gw-accounts/internal/apperr"
	"github.com/sbilibin2017/gw-accounts/internal/logger"
	"github.com/sbilibin2017/gw-accounts/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// UserReader defines read-only operations for credential records.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// UserWriter defines the insert used by registration.
type UserWriter interface {
	Insert(ctx context.Context, email, username, passwordHash, firstName, lastName string) (*models.User, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// Transactor runs fn inside a transaction that commits only if fn returns nil.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserEventPublisher announces committed registrations.
type UserEventPublisher interface {
	PublishUserRegistered(ctx context.Context, event models.UserRegisteredEvent) error
}

// AuthService handles registration and login.
type AuthService struct {
	reader    UserReader
	writer    UserWriter
	hasher    PasswordHasher
	tx        Transactor
	publisher UserEventPublisher
}

// NewAuthService creates a new AuthService instance. publisher may be nil.
func NewAuthService(reader UserReader, writer UserWriter, hasher PasswordHasher, tx Transactor, publisher UserEventPublisher) *AuthService {
	return &AuthService{
		reader:    reader,
		writer:    writer,
		hasher:    hasher,
		tx:        tx,
		publisher: publisher,
	}
}

// Register creates an account. The password is hashed before the transaction
// opens; the insert commits alone or not at all.
func (svc *AuthService) Register(ctx context.Context, email, username, password string) (*models.UserData, error) {
	email = strings.TrimSpace(email)
	if email == "" || strings.TrimSpace(username) == "" || password == "" {
		return nil, apperr.New(apperr.KindInvalidInput, apperr.MsgMissingFields)
	}

	firstName, lastName := SplitUsername(username)

	hashedPassword, err := hashPassword(svc.hasher, password)
	if err != nil {
		return nil, err
	}

	var user *models.User
	err = svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		user, err = svc.writer.Insert(ctx, email, username, hashedPassword, firstName, lastName)
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to register user", "email", email, "err", err)
		return nil, classify(err)
	}

	if svc.publisher != nil {
		event := models.UserRegisteredEvent{
			UserID:    user.ID,
			Email:     user.Email,
			Username:  user.Username,
			CreatedAt: user.CreatedAt,
		}
		if err := svc.publisher.PublishUserRegistered(ctx, event); err != nil {
			logger.Log.Warnw("user registered but event not published", "user_id", user.ID, "err", err)
		}
	}

	data := user.Data()
	return &data, nil
}

// Login verifies credentials. A missing account is NotFound and a wrong
// password is InvalidCredentials; the two stay distinguishable.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.UserData, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, apperr.New(apperr.KindInvalidInput, apperr.MsgMissingFields)
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			logger.Log.Infow("login for unknown email", "email", email)
		} else {
			logger.Log.Errorw("failed to get user", "email", email, "err", err)
		}
		return nil, classify(err)
	}

	if !svc.hasher.Verify(password, user.PasswordHash) {
		logger.Log.Infow("invalid credentials", "email", email)
		return nil, apperr.New(apperr.KindInvalidCredentials, apperr.MsgInvalidCredentials)
	}

	data := user.Data()
	return &data, nil
}

// SplitUsername splits username at its first whitespace into first and last name.
func SplitUsername(username string) (firstName, lastName string) {
	username = strings.TrimSpace(username)
	i := strings.IndexFunc(username, unicode.IsSpace)
	if i < 0 {
		return username, ""
	}
	return username[:i], strings.TrimSpace(username[i:])
}

func hashPassword(hasher PasswordHasher, password string) (string, error) {
	hashed, err := hasher.Hash(password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", apperr.Wrap(apperr.KindInvalidInput, "Password is too long", err)
		}
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", apperr.Wrap(apperr.KindInternal, "failed to hash password", err)
	}
	return hashed, nil
}

// classify leaves classified errors alone and marks everything else internal.
func classify(err error) error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return err
	}
	return apperr.Wrap(apperr.KindInternal, apperr.MsgInternal, err)
}
