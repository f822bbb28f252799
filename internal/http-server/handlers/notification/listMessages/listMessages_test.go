package listMessages

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventhub/internal/http-server/handlers/notification/listMessages/mocks"
	"eventhub/internal/lib/logger/handlers/slogdiscard"
	"eventhub/internal/models"
)

func TestListMessagesHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	globalMsg := models.SnackbarMessage{ID: "g1", Message: "saved", Type: models.MessageSuccess, Scope: models.ScopeGlobal}
	modalMsg := models.SnackbarMessage{ID: "m1", Message: "booked out", Type: models.MessageError, Scope: models.ScopeModal}

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(m *mocks.MessagesViewer)
		expectedStatus int
		wantIDs        []string
	}{
		{
			name: "Default scope is global",
			url:  "/notifications",
			mockSetup: func(m *mocks.MessagesViewer) {
				m.On("Global").Return([]models.SnackbarMessage{globalMsg})
			},
			expectedStatus: http.StatusOK,
			wantIDs:        []string{"g1"},
		},
		{
			name: "Explicit global scope",
			url:  "/notifications?scope=global",
			mockSetup: func(m *mocks.MessagesViewer) {
				m.On("Global").Return([]models.SnackbarMessage{globalMsg})
			},
			expectedStatus: http.StatusOK,
			wantIDs:        []string{"g1"},
		},
		{
			name: "Modal scope",
			url:  "/notifications?scope=modal",
			mockSetup: func(m *mocks.MessagesViewer) {
				m.On("Modal").Return([]models.SnackbarMessage{modalMsg})
			},
			expectedStatus: http.StatusOK,
			wantIDs:        []string{"m1"},
		},
		{
			name: "All scope",
			url:  "/notifications?scope=all",
			mockSetup: func(m *mocks.MessagesViewer) {
				m.On("All").Return([]models.SnackbarMessage{globalMsg, modalMsg})
			},
			expectedStatus: http.StatusOK,
			wantIDs:        []string{"g1", "m1"},
		},
		{
			name:           "Unknown scope",
			url:            "/notifications?scope=everywhere",
			mockSetup:      func(m *mocks.MessagesViewer) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			viewerMock := mocks.NewMessagesViewer(t)
			tc.mockSetup(viewerMock)

			handler := New(logger, viewerMock)

			req, err := http.NewRequest(http.MethodGet, tc.url, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus != http.StatusOK {
				assert.JSONEq(t, `{"status":"Error","error":"invalid scope"}`, rr.Body.String())
				return
			}

			for _, id := range tc.wantIDs {
				assert.Contains(t, rr.Body.String(), `"id":"`+id+`"`)
			}
		})
	}
}
