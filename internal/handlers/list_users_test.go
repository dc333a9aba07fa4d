package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/user-profile-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	age := 30
	users := []models.User{
		{
			ID:        1,
			Username:  "john_doe",
			Email:     "john.doe@example.com",
			FirstName: "John",
			LastName:  "Doe",
			Age:       &age,
			CreatedAt: "2023-01-15T10:30:00Z",
		},
		{
			ID:        2,
			Username:  "jane_smith",
			Email:     "jane.smith@example.com",
			FirstName: "Jane",
			LastName:  "Smith",
			CreatedAt: "2023-02-20T14:45:00Z",
		},
	}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockUserLister(ctrl)
		mockSvc.EXPECT().List(gomock.Any()).Return(users, nil)

		handler := NewListUsersHandler(mockSvc)
		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, float64(2), resp["count"])
		assert.NotEmpty(t, resp["timestamp"])

		list, ok := resp["users"].([]any)
		require.True(t, ok)
		require.Len(t, list, 2)

		first, ok := list[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "john_doe", first["username"])
		assert.Equal(t, "John", first["first_name"])
		// Neither email nor age belong in list entries.
		assert.NotContains(t, first, "email")
		assert.NotContains(t, first, "age")
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc := NewMockUserLister(ctrl)
		mockSvc.EXPECT().List(gomock.Any()).Return(nil, errors.New("store failure"))

		handler := NewListUsersHandler(mockSvc)
		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)

		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, models.ErrLabelInternal, resp.Error)
		assert.Equal(t, "Failed to fetch users", resp.Message)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.NotEmpty(t, resp.Timestamp)
	})
}
