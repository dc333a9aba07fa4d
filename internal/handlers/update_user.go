package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/user-profile-api/internal/logger"
	"github.com/sbilibin2017/user-profile-api/internal/models"
	"github.com/sbilibin2017/user-profile-api/internal/services"
	"github.com/sbilibin2017/user-profile-api/internal/validation"
)

// UserUpdater defines the interface that the service must implement.
type UserUpdater interface {
	Get(ctx context.Context, id int64) (*models.User, error)
	Update(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error)
}

// UpdateUserRequest represents the JSON body for a partial update.
// Fields stay raw so an absent key, an explicit null and a value are
// distinguishable; only keys present in the body are applied.
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	// Username (optional)
	// example: john_doe
	Username json.RawMessage `json:"username"`

	// Email (optional)
	// example: john@example.com
	Email json.RawMessage `json:"email"`

	// First name (optional)
	// example: John
	FirstName json.RawMessage `json:"first_name"`

	// Last name (optional)
	// example: Doe
	LastName json.RawMessage `json:"last_name"`

	// Age (optional, 0-150, null clears it)
	// example: 30
	Age json.RawMessage `json:"age"`
}

// UpdateUserResponse represents a successful update response
// swagger:model UpdateUserResponse
type UpdateUserResponse struct {
	// Success message
	// example: User updated successfully
	Message string `json:"message"`

	// Updated user, without email
	User UserProfile `json:"user"`

	// Response timestamp
	// example: 2023-01-15T10:30:00Z
	Timestamp string `json:"timestamp"`
}

// decodeStringField decodes a present raw JSON value into a string.
// An explicit null decodes to "" so the field validator reports its own
// required/empty message.
func decodeStringField(raw json.RawMessage, label string) (string, error) {
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("%s must be a string", label)
	}
	if s == nil {
		return "", nil
	}
	return *s, nil
}

// NewUpdateUserHandler returns an HTTP handler for partially updating a user.
// @Summary Update user
// @Description Applies a partial update. Absent fields are left untouched; provided fields are validated and uniqueness checks exclude the record itself. The response excludes the email.
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body handlers.UpdateUserRequest true "Fields to update"
// @Success 200 {object} handlers.UpdateUserResponse "User updated"
// @Failure 400 {object} models.ErrorResponse "Validation or uniqueness failure"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /users/{id} [put]
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validation.UserID(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, models.ErrLabelValidation, err.Error())
			return
		}

		// Existence is checked before the body so an unknown ID yields
		// 404 even with a malformed payload.
		if _, err := svc.Get(r.Context(), id); err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, models.ErrLabelNotFound,
					fmt.Sprintf("User with ID %d does not exist", id))
				return
			}
			logger.Log.Errorw("failed to fetch user", "id", id, "err", err)
			writeError(w, http.StatusInternalServerError, models.ErrLabelInternal, "Failed to update user")
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil || len(bytes.TrimSpace(body)) == 0 {
			writeError(w, http.StatusBadRequest, models.ErrLabelBadRequest, "Request body cannot be empty")
			return
		}

		var req UpdateUserRequest
		if err := json.Unmarshal(body, &req); err != nil {
			writeError(w, http.StatusBadRequest, models.ErrLabelBadRequest, "Request body must be valid JSON")
			return
		}

		var patch models.UserPatch

		if len(req.Username) > 0 {
			raw, err := decodeStringField(req.Username, "Username")
			if err != nil {
				writeError(w, http.StatusBadRequest, models.ErrLabelValidation, err.Error())
				return
			}
			username, err := validation.Username(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, models.ErrLabelValidation, err.Error())
				return
			}
			patch.Username = &username
		}

		if len(req.Email) > 0 {
			raw, err := decodeStringField(req.Email, "Email")
			if err != nil {
				writeError(w, http.StatusBadRequest, models.ErrLabelValidation, err.Error())
				return
			}
			email, err := validation.Email(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, models.ErrLabelValidation, err.Error())
				return
			}
			patch.Email = &email
		}

		if len(req.FirstName) > 0 {
			raw, err := decodeStringField(req.FirstName, "First name")
			if err != nil {
				writeError(w, http.StatusBadRequest, models.ErrLabelValidation, err.Error())
				return
			}
			firstName, err := validation.Name("First name", raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, models.ErrLabelBadRequest, err.Error())
				return
			}
			patch.FirstName = &firstName
		}

		if len(req.LastName) > 0 {
			raw, err := decodeStringField(req.LastName, "Last name")
			if err != nil {
				writeError(w, http.StatusBadRequest, models.ErrLabelValidation, err.Error())
				return
			}
			lastName, err := validation.Name("Last name", raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, models.ErrLabelBadRequest, err.Error())
				return
			}
			patch.LastName = &lastName
		}

		if len(req.Age) > 0 {
			age, err := validation.Age(req.Age)
			if err != nil {
				writeError(w, http.StatusBadRequest, models.ErrLabelValidation, err.Error())
				return
			}
			patch.Age = age
			patch.AgeSet = true
		}

		user, err := svc.Update(r.Context(), id, patch)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, models.ErrLabelNotFound,
					fmt.Sprintf("User with ID %d does not exist", id))
			case errors.Is(err, services.ErrUsernameExists):
				writeError(w, http.StatusBadRequest, models.ErrLabelBadRequest, "Username already exists")
			case errors.Is(err, services.ErrEmailExists):
				writeError(w, http.StatusBadRequest, models.ErrLabelBadRequest, "Email already exists")
			default:
				logger.Log.Errorw("failed to update user", "id", id, "err", err)
				writeError(w, http.StatusInternalServerError, models.ErrLabelInternal, "Failed to update user")
			}
			return
		}

		writeJSON(w, http.StatusOK, UpdateUserResponse{
			Message:   "User updated successfully",
			User:      newUserProfile(user),
			Timestamp: models.Timestamp(),
		})
	}
}
