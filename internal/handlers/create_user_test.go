package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/user-profile-api/internal/models"
	"github.com/sbilibin2017/user-profile-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	age := 25
	created := &models.User{
		ID:        4,
		Username:  "alice_w",
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Walker",
		Age:       &age,
		CreatedAt: "2024-06-01T12:00:00Z",
	}

	validBody := `{"username":"alice_w","email":"alice@example.com","first_name":"Alice","last_name":"Walker","age":25}`

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockUserCreator)
		expectedCode int
		expectedErr  string
		expectedMsg  string
	}{
		{
			name: "success",
			body: validBody,
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().
					Create(gomock.Any(), models.NewUser{
						Username:  "alice_w",
						Email:     "alice@example.com",
						FirstName: "Alice",
						LastName:  "Walker",
						Age:       &age,
					}).
					Return(created, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "empty body",
			body:         "",
			expectedCode: http.StatusBadRequest,
			expectedErr:  models.ErrLabelBadRequest,
			expectedMsg:  "Request body cannot be empty",
		},
		{
			name:         "invalid json",
			body:         "{invalid json}",
			expectedCode: http.StatusBadRequest,
			expectedErr:  models.ErrLabelBadRequest,
			expectedMsg:  "Request body must be valid JSON",
		},
		{
			name:         "missing fields",
			body:         `{"username":"alice_w"}`,
			expectedCode: http.StatusBadRequest,
			expectedErr:  models.ErrLabelBadRequest,
			expectedMsg:  "Missing required fields: email, first_name, last_name",
		},
		{
			name:         "short username",
			body:         `{"username":"ab","email":"a@b.co","first_name":"A","last_name":"B"}`,
			expectedCode: http.StatusBadRequest,
			expectedErr:  models.ErrLabelValidation,
			expectedMsg:  "Username must be at least 3 characters long",
		},
		{
			name:         "invalid email",
			body:         `{"username":"abc","email":"not-an-email","first_name":"A","last_name":"B"}`,
			expectedCode: http.StatusBadRequest,
			expectedErr:  models.ErrLabelValidation,
			expectedMsg:  "Invalid email format",
		},
		{
			name:         "whitespace first name",
			body:         `{"username":"abc","email":"a@b.co","first_name":"   ","last_name":"B"}`,
			expectedCode: http.StatusBadRequest,
			expectedErr:  models.ErrLabelBadRequest,
			expectedMsg:  "First name cannot be empty",
		},
		{
			name:         "age out of range",
			body:         `{"username":"abc","email":"a@b.co","first_name":"A","last_name":"B","age":151}`,
			expectedCode: http.StatusBadRequest,
			expectedErr:  models.ErrLabelValidation,
			expectedMsg:  "Age must be between 0 and 150",
		},
		{
			name: "username already exists",
			body: validBody,
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, services.ErrUsernameExists)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  models.ErrLabelBadRequest,
			expectedMsg:  "Username already exists",
		},
		{
			name: "email already exists",
			body: validBody,
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, services.ErrEmailExists)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  models.ErrLabelBadRequest,
			expectedMsg:  "Email already exists",
		},
		{
			name: "internal error",
			body: validBody,
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("store failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  models.ErrLabelInternal,
			expectedMsg:  "Failed to create user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewCreateUserHandler(mockSvc)
			req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedErr != "" {
				var resp models.ErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedErr, resp.Error)
				assert.Equal(t, tt.expectedMsg, resp.Message)
				assert.Equal(t, tt.expectedCode, resp.StatusCode)
				assert.NotEmpty(t, resp.Timestamp)
				return
			}

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "User created successfully", resp["message"])
			assert.NotEmpty(t, resp["timestamp"])

			got, ok := resp["user"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, float64(4), got["id"])
			assert.Equal(t, "alice_w", got["username"])
			assert.Equal(t, float64(25), got["age"])
			assert.NotContains(t, got, "email")
		})
	}
}
