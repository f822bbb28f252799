package login

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eventhub/internal/http-server/handlers/auth/login/mocks"
	"eventhub/internal/lib/logger/handlers/slogdiscard"
	"eventhub/internal/models"
	"eventhub/internal/service"
)

func TestLoginHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	demoUser := models.User{ID: "1", Name: "Demo User", Email: "demo@example.com"}

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.UserAuthenticator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: `{"email": "demo@example.com", "password": "password123"}`,
			mockSetup: func(m *mocks.UserAuthenticator) {
				m.On("Login", mock.Anything, "demo@example.com", "password123").Return(demoUser, "tok-1", nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"token":"tok-1"`)
				assert.Contains(t, body, `"email":"demo@example.com"`)
				assert.NotContains(t, body, "password123")
			},
		},
		{
			name:           "Missing email",
			requestBody:    `{"password": "password123"}`,
			mockSetup:      func(m *mocks.UserAuthenticator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Email")
			},
		},
		{
			name:           "Malformed email",
			requestBody:    `{"email": "not-an-email", "password": "password123"}`,
			mockSetup:      func(m *mocks.UserAuthenticator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Email")
			},
		},
		{
			name:        "Unknown user",
			requestBody: `{"email": "nobody@example.com", "password": "password123"}`,
			mockSetup: func(m *mocks.UserAuthenticator) {
				m.On("Login", mock.Anything, "nobody@example.com", "password123").Return(models.User{}, "", service.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"user not found"}`,
		},
		{
			name:        "Wrong password",
			requestBody: `{"email": "demo@example.com", "password": "wrong"}`,
			mockSetup: func(m *mocks.UserAuthenticator) {
				m.On("Login", mock.Anything, "demo@example.com", "wrong").Return(models.User{}, "", service.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"invalid password"}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `not json`,
			mockSetup:      func(m *mocks.UserAuthenticator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			authMock := mocks.NewUserAuthenticator(t)
			tc.mockSetup(authMock)

			handler := New(logger, authMock)

			req, err := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
