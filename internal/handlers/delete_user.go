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

// UserDeleter defines the interface that the service must implement.
type UserDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// DeleteUserResponse represents a successful deletion response
// swagger:model DeleteUserResponse
type DeleteUserResponse struct {
	// Success message
	// example: User deleted successfully
	Message string `json:"message"`

	// ID of the deleted user
	// example: 4
	UserID int64 `json:"user_id"`

	// Response timestamp
	// example: 2023-01-15T10:30:00Z
	Timestamp string `json:"timestamp"`
}

// NewDeleteUserHandler returns an HTTP handler for deleting a user.
// @Summary Delete user
// @Description Removes the user with the given ID. The ID is never reused.
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} handlers.DeleteUserResponse "User deleted"
// @Failure 400 {object} models.ErrorResponse "Invalid user ID"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /users/{id} [delete]
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validation.UserID(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, models.ErrLabelValidation, err.Error())
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, models.ErrLabelNotFound,
					fmt.Sprintf("User with ID %d does not exist", id))
				return
			}
			logger.Log.Errorw("failed to delete user", "id", id, "err", err)
			writeError(w, http.StatusInternalServerError, models.ErrLabelInternal, "Failed to delete user")
			return
		}

		writeJSON(w, http.StatusOK, DeleteUserResponse{
			Message:   "User deleted successfully",
			UserID:    id,
			Timestamp: models.Timestamp(),
		})
	}
}
