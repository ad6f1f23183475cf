package handlers

//go:generate mockgen -source=users.go -destination=users_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-accounts/internal/apperr"
	"github.com/sbilibin2017/gw-accounts/internal/models"
)

// UserManager defines the user operations behind the /users endpoints.
type UserManager interface {
	List(ctx context.Context) ([]models.UserProfile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserProfile, error)
	GetByEmail(ctx context.Context, email string) (*models.UserProfile, error)
	Update(ctx context.Context, id uuid.UUID, email, username string) (*models.UserProfile, error)
	ChangePassword(ctx context.Context, id uuid.UUID, oldPassword, newPassword string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UsersResponse lists user profiles
// swagger:model UsersResponse
type UsersResponse struct {
	// example: success
	Status string               `json:"status"`
	Users  []models.UserProfile `json:"users"`
}

// UserResponse wraps a single user profile
// swagger:model UserResponse
type UserResponse struct {
	// example: success
	Status string             `json:"status"`
	User   models.UserProfile `json:"user"`
}

// UserByEmailResponse wraps the profile found by email
// swagger:model UserByEmailResponse
type UserByEmailResponse struct {
	// example: success
	Status string             `json:"status"`
	Data   models.UserProfile `json:"data"`
}

// UpdateUserRequest represents the JSON body for a profile update
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	// required: true
	// default: jane@example.com
	Email string `json:"email" validate:"required,email"`

	// required: true
	// default: Jane Doe
	Username string `json:"username" validate:"required"`
}

// ChangePasswordRequest represents the JSON body for a password change
// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	// required: true
	OldPassword string `json:"oldPassword" validate:"required"`

	// required: true
	NewPassword string `json:"newPassword" validate:"required"`
}

// parseUserID reads the {id} path parameter.
func parseUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, apperr.Wrap(apperr.KindInvalidInput, "Invalid user id", err))
		return uuid.Nil, false
	}
	return id, true
}

// NewListUsersHandler returns an HTTP handler listing all users.
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {object} handlers.UsersResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /users [get]
func NewListUsersHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, UsersResponse{Status: statusSuccess, Users: users})
	}
}

// NewGetUserHandler returns an HTTP handler fetching a user by id.
// @Summary Get user by id
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} handlers.UserResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /users/{id} [get]
func NewGetUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseUserID(w, r)
		if !ok {
			return
		}

		user, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, UserResponse{Status: statusSuccess, User: *user})
	}
}

// NewGetUserByEmailHandler returns an HTTP handler fetching a user by email.
// @Summary Get user by email
// @Tags users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} handlers.UserByEmailResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /users/email/{email} [get]
func NewGetUserByEmailHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := svc.GetByEmail(r.Context(), chi.URLParam(r, "email"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, UserByEmailResponse{Status: statusSuccess, Data: *user})
	}
}

// NewUpdateUserHandler returns an HTTP handler updating email and username.
// @Summary Update user
// @Description Updates email and username. First and last name keep the values derived at registration.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body handlers.UpdateUserRequest true "Profile update"
// @Success 200 {object} handlers.UserResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /users/{id} [put]
func NewUpdateUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseUserID(w, r)
		if !ok {
			return
		}

		var req UpdateUserRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		user, err := svc.Update(r.Context(), id, req.Email, req.Username)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, UserResponse{Status: statusSuccess, User: *user})
	}
}

// NewChangePasswordHandler returns an HTTP handler replacing a user's password.
// @Summary Change password
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body handlers.ChangePasswordRequest true "Old and new password"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /users/{id}/password [put]
func NewChangePasswordHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseUserID(w, r)
		if !ok {
			return
		}

		var req ChangePasswordRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		if err := svc.ChangePassword(r.Context(), id, req.OldPassword, req.NewPassword); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Status: statusSuccess, Message: "Password updated successfully"})
	}
}

// NewDeleteUserHandler returns an HTTP handler deleting a user.
// @Summary Delete user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /users/{id} [delete]
func NewDeleteUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseUserID(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Status: statusSuccess, Message: "User deleted successfully"})
	}
}
