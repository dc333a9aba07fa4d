package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/sbilibin2017/user-profile-api/internal/logger"
	"github.com/sbilibin2017/user-profile-api/internal/models"
	"github.com/sbilibin2017/user-profile-api/internal/services"
	"github.com/sbilibin2017/user-profile-api/internal/validation"
)

// UserCreator defines the interface that the service must implement.
type UserCreator interface {
	Create(ctx context.Context, input models.NewUser) (*models.User, error)
}

// CreateUserRequest represents the JSON body for creating a user.
// Age stays raw so the validator can accept a number or a numeric string.
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// Username
	// required: true
	// example: john_doe
	Username string `json:"username"`

	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email"`

	// First name
	// required: true
	// example: John
	FirstName string `json:"first_name"`

	// Last name
	// required: true
	// example: Doe
	LastName string `json:"last_name"`

	// Age (optional, 0-150)
	// example: 30
	Age json.RawMessage `json:"age"`
}

// CreateUserResponse represents a successful creation response
// swagger:model CreateUserResponse
type CreateUserResponse struct {
	// Success message
	// example: User created successfully
	Message string `json:"message"`

	// Created user, without email
	User UserProfile `json:"user"`

	// Response timestamp
	// example: 2023-01-15T10:30:00Z
	Timestamp string `json:"timestamp"`
}

// NewCreateUserHandler returns an HTTP handler for creating a user.
// @Summary Create user
// @Description Creates a new user. Validates field formats and ensures unique username and email. The response excludes the email.
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.CreateUserRequest true "User creation request"
// @Success 201 {object} handlers.CreateUserResponse "User created"
// @Failure 400 {object} models.ErrorResponse "Validation or uniqueness failure"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /users [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil || len(bytes.TrimSpace(body)) == 0 {
			writeError(w, http.StatusBadRequest, models.ErrLabelBadRequest, "Request body cannot be empty")
			return
		}

		var req CreateUserRequest
		if err := json.Unmarshal(body, &req); err != nil {
			writeError(w, http.StatusBadRequest, models.ErrLabelBadRequest, "Request body must be valid JSON")
			return
		}

		var missing []string
		for _, f := range []struct {
			name  string
			value string
		}{
			{"username", req.Username},
			{"email", req.Email},
			{"first_name", req.FirstName},
			{"last_name", req.LastName},
		} {
			if f.value == "" {
				missing = append(missing, f.name)
			}
		}
		if len(missing) > 0 {
			writeError(w, http.StatusBadRequest, models.ErrLabelBadRequest,
				"Missing required fields: "+strings.Join(missing, ", "))
			return
		}

		username, err := validation.Username(req.Username)
		if err != nil {
			writeError(w, http.StatusBadRequest, models.ErrLabelValidation, err.Error())
			return
		}
		email, err := validation.Email(req.Email)
		if err != nil {
			writeError(w, http.StatusBadRequest, models.ErrLabelValidation, err.Error())
			return
		}
		firstName, err := validation.Name("First name", req.FirstName)
		if err != nil {
			writeError(w, http.StatusBadRequest, models.ErrLabelBadRequest, err.Error())
			return
		}
		lastName, err := validation.Name("Last name", req.LastName)
		if err != nil {
			writeError(w, http.StatusBadRequest, models.ErrLabelBadRequest, err.Error())
			return
		}
		age, err := validation.Age(req.Age)
		if err != nil {
			writeError(w, http.StatusBadRequest, models.ErrLabelValidation, err.Error())
			return
		}

		user, err := svc.Create(r.Context(), models.NewUser{
			Username:  username,
			Email:     email,
			FirstName: firstName,
			LastName:  lastName,
			Age:       age,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUsernameExists):
				writeError(w, http.StatusBadRequest, models.ErrLabelBadRequest, "Username already exists")
			case errors.Is(err, services.ErrEmailExists):
				writeError(w, http.StatusBadRequest, models.ErrLabelBadRequest, "Email already exists")
			default:
				logger.Log.Errorw("failed to create user", "err", err)
				writeError(w, http.StatusInternalServerError, models.ErrLabelInternal, "Failed to create user")
			}
			return
		}

		writeJSON(w, http.StatusCreated, CreateUserResponse{
			Message:   "User created successfully",
			User:      newUserProfile(user),
			Timestamp: models.Timestamp(),
		})
	}
}
