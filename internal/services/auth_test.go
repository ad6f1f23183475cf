package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-accounts/internal/apperr"
	"github.com/sbilibin2017/gw-accounts/internal/hasher"
	"github.com/sbilibin2017/gw-accounts/internal/models"
	"github.com/sbilibin2017/gw-accounts/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func passThroughTx(m *services.MockTransactor) *gomock.Call {
	return m.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	createdAt := time.Now()

	tests := []struct {
		name     string
		email    string
		username string
		password string
		setup    func(w *services.MockUserWriter, h *services.MockPasswordHasher, tx *services.MockTransactor, p *services.MockUserEventPublisher)
		wantKind apperr.Kind
		wantErr  bool
	}{
		{
			name:     "successful registration",
			email:    "a@x.com",
			username: "Jane Doe",
			password: "pw1",
			setup: func(w *services.MockUserWriter, h *services.MockPasswordHasher, tx *services.MockTransactor, p *services.MockUserEventPublisher) {
				gomock.InOrder(
					h.EXPECT().Hash("pw1").Return("hashed-pw1", nil),
					passThroughTx(tx),
				)
				w.EXPECT().
					Insert(gomock.Any(), "a@x.com", "Jane Doe", "hashed-pw1", "Jane", "Doe").
					Return(&models.User{ID: userID, Email: "a@x.com", Username: "Jane Doe", PasswordHash: "hashed-pw1", CreatedAt: createdAt}, nil)
				p.EXPECT().
					PublishUserRegistered(gomock.Any(), models.UserRegisteredEvent{UserID: userID, Email: "a@x.com", Username: "Jane Doe", CreatedAt: createdAt}).
					Return(nil)
			},
		},
		{
			name:     "publish failure does not fail registration",
			email:    "b@x.com",
			username: "Solo",
			password: "pw",
			setup: func(w *services.MockUserWriter, h *services.MockPasswordHasher, tx *services.MockTransactor, p *services.MockUserEventPublisher) {
				h.EXPECT().Hash("pw").Return("hashed", nil)
				passThroughTx(tx)
				w.EXPECT().
					Insert(gomock.Any(), "b@x.com", "Solo", "hashed", "Solo", "").
					Return(&models.User{ID: userID, Email: "b@x.com", Username: "Solo"}, nil)
				p.EXPECT().PublishUserRegistered(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
			},
		},
		{
			name:     "missing username",
			email:    "c@x.com",
			username: "   ",
			password: "pw",
			wantErr:  true,
			wantKind: apperr.KindInvalidInput,
		},
		{
			name:     "missing email",
			username: "Jane",
			password: "pw",
			wantErr:  true,
			wantKind: apperr.KindInvalidInput,
		},
		{
			name:     "missing password",
			email:    "c@x.com",
			username: "Jane",
			wantErr:  true,
			wantKind: apperr.KindInvalidInput,
		},
		{
			name:     "password too long",
			email:    "c@x.com",
			username: "Jane",
			password: "long",
			setup: func(w *services.MockUserWriter, h *services.MockPasswordHasher, tx *services.MockTransactor, p *services.MockUserEventPublisher) {
				h.EXPECT().Hash("long").Return("", bcrypt.ErrPasswordTooLong)
			},
			wantErr:  true,
			wantKind: apperr.KindInvalidInput,
		},
		{
			name:     "hash failure",
			email:    "c@x.com",
			username: "Jane",
			password: "pw",
			setup: func(w *services.MockUserWriter, h *services.MockPasswordHasher, tx *services.MockTransactor, p *services.MockUserEventPublisher) {
				h.EXPECT().Hash("pw").Return("", errors.New("entropy exhausted"))
			},
			wantErr:  true,
			wantKind: apperr.KindInternal,
		},
		{
			name:     "duplicate email",
			email:    "a@x.com",
			username: "Jane Doe",
			password: "pw1",
			setup: func(w *services.MockUserWriter, h *services.MockPasswordHasher, tx *services.MockTransactor, p *services.MockUserEventPublisher) {
				h.EXPECT().Hash("pw1").Return("hashed", nil)
				passThroughTx(tx)
				w.EXPECT().
					Insert(gomock.Any(), "a@x.com", "Jane Doe", "hashed", "Jane", "Doe").
					Return(nil, apperr.New(apperr.KindConflict, apperr.MsgEmailTaken))
			},
			wantErr:  true,
			wantKind: apperr.KindConflict,
		},
		{
			name:     "store unavailable",
			email:    "a@x.com",
			username: "Jane Doe",
			password: "pw1",
			setup: func(w *services.MockUserWriter, h *services.MockPasswordHasher, tx *services.MockTransactor, p *services.MockUserEventPublisher) {
				h.EXPECT().Hash("pw1").Return("hashed", nil)
				passThroughTx(tx)
				w.EXPECT().
					Insert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, apperr.New(apperr.KindUnavailable, "database unavailable"))
			},
			wantErr:  true,
			wantKind: apperr.KindUnavailable,
		},
		{
			name:     "commit failure",
			email:    "a@x.com",
			username: "Jane Doe",
			password: "pw1",
			setup: func(w *services.MockUserWriter, h *services.MockPasswordHasher, tx *services.MockTransactor, p *services.MockUserEventPublisher) {
				h.EXPECT().Hash("pw1").Return("hashed", nil)
				tx.EXPECT().
					WithinTx(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
						if err := fn(ctx); err != nil {
							return err
						}
						return errors.New("commit transaction: conn closed")
					})
				w.EXPECT().
					Insert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&models.User{ID: userID}, nil)
			},
			wantErr:  true,
			wantKind: apperr.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockHasher := services.NewMockPasswordHasher(ctrl)
			mockTx := services.NewMockTransactor(ctrl)
			mockPublisher := services.NewMockUserEventPublisher(ctrl)
			if tt.setup != nil {
				tt.setup(mockWriter, mockHasher, mockTx, mockPublisher)
			}

			svc := services.NewAuthService(mockReader, mockWriter, mockHasher, mockTx, mockPublisher)

			data, err := svc.Register(context.Background(), tt.email, tt.username, tt.password)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, data)
				assert.Equal(t, tt.wantKind, apperr.KindOf(err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, userID, data.ID)
			assert.Equal(t, tt.email, data.Email)
			assert.Equal(t, tt.username, data.Username)
		})
	}
}

func TestAuthService_Register_NilPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockUserWriter(ctrl)
	mockTx := services.NewMockTransactor(ctrl)
	passThroughTx(mockTx)
	mockWriter.EXPECT().
		Insert(gomock.Any(), "a@x.com", "Jane Doe", gomock.Any(), "Jane", "Doe").
		Return(&models.User{ID: uuid.New(), Email: "a@x.com", Username: "Jane Doe"}, nil)

	svc := services.NewAuthService(services.NewMockUserReader(ctrl), mockWriter, hasher.New(bcrypt.MinCost), mockTx, nil)

	data, err := svc.Register(context.Background(), "a@x.com", "Jane Doe", "pw1")
	assert.NoError(t, err)
	assert.NotNil(t, data)
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := hasher.New(bcrypt.MinCost)
	hashed, err := h.Hash("pw1")
	assert.NoError(t, err)
	userID := uuid.New()

	tests := []struct {
		name      string
		email     string
		password  string
		user      *models.User
		readerErr error
		callsRead bool
		wantKind  apperr.Kind
		wantErr   bool
	}{
		{
			name:      "successful login",
			email:     "a@x.com",
			password:  "pw1",
			user:      &models.User{ID: userID, Email: "a@x.com", Username: "Jane Doe", PasswordHash: hashed},
			callsRead: true,
		},
		{
			name:      "wrong password",
			email:     "a@x.com",
			password:  "wrong",
			user:      &models.User{ID: userID, Email: "a@x.com", Username: "Jane Doe", PasswordHash: hashed},
			callsRead: true,
			wantErr:   true,
			wantKind:  apperr.KindInvalidCredentials,
		},
		{
			name:      "user does not exist",
			email:     "nobody@x.com",
			password:  "pw1",
			readerErr: apperr.New(apperr.KindNotFound, apperr.MsgUserNotFound),
			callsRead: true,
			wantErr:   true,
			wantKind:  apperr.KindNotFound,
		},
		{
			name:      "missing stored hash",
			email:     "a@x.com",
			password:  "pw1",
			user:      &models.User{ID: userID, Email: "a@x.com"},
			callsRead: true,
			wantErr:   true,
			wantKind:  apperr.KindInvalidCredentials,
		},
		{
			name:      "store unavailable",
			email:     "a@x.com",
			password:  "pw1",
			readerErr: apperr.New(apperr.KindUnavailable, "database unavailable"),
			callsRead: true,
			wantErr:   true,
			wantKind:  apperr.KindUnavailable,
		},
		{
			name:      "unclassified store error",
			email:     "a@x.com",
			password:  "pw1",
			readerErr: errors.New("db error"),
			callsRead: true,
			wantErr:   true,
			wantKind:  apperr.KindInternal,
		},
		{
			name:     "missing password",
			email:    "a@x.com",
			wantErr:  true,
			wantKind: apperr.KindInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			if tt.callsRead {
				mockReader.EXPECT().GetByEmail(gomock.Any(), tt.email).Return(tt.user, tt.readerErr)
			}

			svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), h, services.NewMockTransactor(ctrl), nil)

			data, err := svc.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, data)
				assert.Equal(t, tt.wantKind, apperr.KindOf(err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, models.UserData{ID: userID, Email: "a@x.com", Username: "Jane Doe"}, *data)
		})
	}
}

func TestSplitUsername(t *testing.T) {
	tests := []struct {
		username  string
		wantFirst string
		wantLast  string
	}{
		{"Jane Doe", "Jane", "Doe"},
		{"Jane", "Jane", ""},
		{"Jane Mary Doe", "Jane", "Mary Doe"},
		{"  Jane   Doe  ", "Jane", "Doe"},
		{"Jane\tDoe", "Jane", "Doe"},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			first, last := services.SplitUsername(tt.username)
			assert.Equal(t, tt.wantFirst, first)
			assert.Equal(t, tt.wantLast, last)
		})
	}
}
