package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/gw-accounts/internal/apperr"
	"github.com/sbilibin2017/gw-accounts/internal/logger"
)

const (
	statusSuccess = "success"
	statusFailed  = "failed"

	msgInvalidBody = "Invalid request body"
)

// FieldError describes one rejected request field
// swagger:model FieldError
type FieldError struct {
	// Field name as sent in the request
	// example: email
	Field string `json:"field"`

	// Reason the field was rejected
	// example: Invalid email address
	Message string `json:"message"`
}

// ErrorResponse is returned by every endpoint on failure
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Always "failed"
	// example: failed
	Status string `json:"status"`

	// Error message
	// example: Invalid credentials
	Message string `json:"message"`

	// Field level details for validation failures
	Errors []FieldError `json:"errors,omitempty"`
}

// MessageResponse is returned by endpoints that only confirm an action
// swagger:model MessageResponse
type MessageResponse struct {
	// example: success
	Status string `json:"status"`

	// example: User deleted successfully
	Message string `json:"message"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeRequest reads a JSON body into dst and runs the validation gate on it.
// It writes the 400 response itself and reports whether the handler may go on.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Status: statusFailed, Message: msgInvalidBody})
		return false
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			logger.Log.Errorw("request validation failed", "err", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Status: statusFailed, Message: msgInvalidBody})
			return false
		}

		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
		}
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Status:  statusFailed,
			Message: apperr.MsgMissingFields,
			Errors:  fields,
		})
		return false
	}
	return true
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "Invalid email address"
	default:
		return fe.Field() + " is invalid"
	}
}

// writeError answers with the status mapped from err's kind. Detail of
// internal errors goes to the log only.
func writeError(w http.ResponseWriter, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.KindInternal || kind == apperr.KindUnavailable {
		logger.Log.Errorw("internal server error", "kind", kind.String(), "err", err)
	}
	writeJSON(w, apperr.HTTPStatus(kind), ErrorResponse{
		Status:  statusFailed,
		Message: apperr.PublicMessage(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}
