package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/user-profile-api/internal/logger"
	"github.com/sbilibin2017/user-profile-api/internal/models"
	"github.com/sbilibin2017/user-profile-api/internal/services"
	"github.com/sbilibin2017/user-profile-api/internal/validation"
)

// UserGetter defines the interface that the service must implement.
type UserGetter interface {
	Get(ctx context.Context, id int64) (*models.User, error)
}

// UserProfile represents a single user in responses. Email is excluded
// for privacy.
// swagger:model UserProfile
type UserProfile struct {
	// User ID
	// example: 1
	ID int64 `json:"id"`

	// Username
	// example: john_doe
	Username string `json:"username"`

	// First name
	// example: John
	FirstName string `json:"first_name"`

	// Last name
	// example: Doe
	LastName string `json:"last_name"`

	// Age, null when unset
	// example: 30
	Age *int `json:"age"`

	// Creation timestamp
	// example: 2023-01-15T10:30:00Z
	CreatedAt string `json:"created_at"`
}

// GetUserResponse represents the response for fetching a single user
// swagger:model GetUserResponse
type GetUserResponse struct {
	// User profile
	User UserProfile `json:"user"`

	// Response timestamp
	// example: 2023-01-15T10:30:00Z
	Timestamp string `json:"timestamp"`
}

func newUserProfile(u *models.User) UserProfile {
	return UserProfile{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Age:       u.Age,
		CreatedAt: u.CreatedAt,
	}
}

// NewGetUserHandler returns an HTTP handler that fetches a user by ID.
// @Summary Get user profile
// @Description Returns the user profile for the given ID, excluding the email.
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} handlers.GetUserResponse "User profile"
// @Failure 400 {object} models.ErrorResponse "Invalid user ID"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /users/{id} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validation.UserID(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, models.ErrLabelValidation, err.Error())
			return
		}

		user, err := svc.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, models.ErrLabelNotFound,
					fmt.Sprintf("User with ID %d does not exist", id))
				return
			}
			logger.Log.Errorw("failed to fetch user", "id", id, "err", err)
			writeError(w, http.StatusInternalServerError, models.ErrLabelInternal, "Failed to fetch user profile")
			return
		}

		writeJSON(w, http.StatusOK, GetUserResponse{
			User:      newUserProfile(user),
			Timestamp: models.Timestamp(),
		})
	}
}
