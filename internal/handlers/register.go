package handlers

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-accounts/internal/models"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, email, username, password string) (*models.UserData, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email, used as the login key
	// required: true
	// default: jane@example.com
	Email string `json:"email" validate:"required,email"`

	// Display name, split into first and last name on the first space
	// required: true
	// default: Jane Doe
	Username string `json:"username" validate:"required"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// default: 200
	Status int `json:"status"`

	// Success message
	// default: User Registered Successfully
	Message string `json:"message"`

	// Registered account
	Data models.UserData `json:"data"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Email must be unique. The password is hashed before it is stored and is never returned.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 200 {object} handlers.RegisterResponse "User registered"
// @Failure 400 {object} handlers.ErrorResponse "Missing or invalid fields"
// @Failure 409 {object} handlers.ErrorResponse "Email already registered"
// @Failure 429 {object} handlers.ErrorResponse "Too many requests"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		data, err := svc.Register(r.Context(), req.Email, req.Username, req.Password)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, RegisterResponse{
			Status:  http.StatusOK,
			Message: "User Registered Successfully",
			Data:    *data,
		})
	}
}
