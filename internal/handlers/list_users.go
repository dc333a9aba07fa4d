package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/user-profile-api/internal/logger"
	"github.com/sbilibin2017/user-profile-api/internal/models"
)

// UserLister defines the interface that the service must implement.
type UserLister interface {
	List(ctx context.Context) ([]models.User, error)
}

// UserSummary represents a user in list responses. Email is write-only
// from the client's perspective and never exposed; age is omitted here.
// swagger:model UserSummary
type UserSummary struct {
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

	// Creation timestamp
	// example: 2023-01-15T10:30:00Z
	CreatedAt string `json:"created_at"`
}

// ListUsersResponse represents the response for listing all users
// swagger:model ListUsersResponse
type ListUsersResponse struct {
	// Users
	Users []UserSummary `json:"users"`

	// Number of users
	// example: 3
	Count int `json:"count"`

	// Response timestamp
	// example: 2023-01-15T10:30:00Z
	Timestamp string `json:"timestamp"`
}

// NewListUsersHandler returns an HTTP handler that lists all users.
// @Summary List users
// @Description Returns all users in insertion order with basic info only.
// @Tags users
// @Produce json
// @Success 200 {object} handlers.ListUsersResponse "All users"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to fetch users", "err", err)
			writeError(w, http.StatusInternalServerError, models.ErrLabelInternal, "Failed to fetch users")
			return
		}

		summaries := make([]UserSummary, 0, len(users))
		for _, u := range users {
			summaries = append(summaries, UserSummary{
				ID:        u.ID,
				Username:  u.Username,
				FirstName: u.FirstName,
				LastName:  u.LastName,
				CreatedAt: u.CreatedAt,
			})
		}

		writeJSON(w, http.StatusOK, ListUsersResponse{
			Users:     summaries,
			Count:     len(summaries),
			Timestamp: models.Timestamp(),
		})
	}
}
