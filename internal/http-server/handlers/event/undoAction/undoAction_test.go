package undoAction

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventhub/internal/http-server/handlers/event/undoAction/mocks"
	"eventhub/internal/lib/logger/handlers/slogdiscard"
)

func TestUndoActionHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name         string
		undone       bool
		expectedBody string
	}{
		{
			name:         "Undo applied",
			undone:       true,
			expectedBody: `{"status":"OK","undone":true}`,
		},
		{
			name:         "Nothing to undo",
			undone:       false,
			expectedBody: `{"status":"OK","undone":false}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			undoerMock := mocks.NewActionUndoer(t)
			undoerMock.On("UndoLast").Return(tc.undone)

			handler := New(logger, undoerMock)

			req, err := http.NewRequest(http.MethodPost, "/events/undo", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
