package getAllEvents

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventhub/internal/http-server/handlers/event/getAllEvents/mocks"
	"eventhub/internal/lib/logger/handlers/slogdiscard"
	"eventhub/internal/models"
)

func TestGetAllEventsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	defaultFilters := models.FilterState{
		SortBy:        models.SortByDate,
		SortDirection: models.SortAsc,
	}

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(m *mocks.EventsViewer)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "No params returns current view",
			url:  "/events",
			mockSetup: func(m *mocks.EventsViewer) {
				m.On("Filtered").Return([]models.Event{{ID: "1", Name: "Jazz Night", Price: 45, Capacity: 40, AvailableSpots: 25}})
				m.On("Filters").Return(defaultFilters)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"name":"Jazz Night"`)
				assert.Contains(t, body, `"is_free":false`)
				assert.Contains(t, body, `"registered_count":15`)
			},
		},
		{
			name: "Search query is applied before reading the view",
			url:  "/events?q=jazz",
			mockSetup: func(m *mocks.EventsViewer) {
				m.On("SetSearchQuery", "jazz").Return()
				m.On("Filtered").Return([]models.Event{})
				m.On("Filters").Return(models.FilterState{SearchQuery: "jazz", SortBy: models.SortByDate, SortDirection: models.SortAsc})
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"search_query":"jazz"`)
			},
		},
		{
			name: "Sort params are applied",
			url:  "/events?sort_by=price&sort_dir=desc",
			mockSetup: func(m *mocks.EventsViewer) {
				m.On("SetSortBy", models.SortByPrice).Return()
				m.On("SetSortDirection", models.SortDesc).Return()
				m.On("Filtered").Return([]models.Event{})
				m.On("Filters").Return(models.FilterState{SortBy: models.SortByPrice, SortDirection: models.SortDesc})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid sort_by",
			url:            "/events?sort_by=bogus",
			mockSetup:      func(m *mocks.EventsViewer) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"invalid sort_by"}`, body)
			},
		},
		{
			name:           "Invalid sort_dir",
			url:            "/events?sort_dir=sideways",
			mockSetup:      func(m *mocks.EventsViewer) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"invalid sort_dir"}`, body)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			viewerMock := mocks.NewEventsViewer(t)
			tc.mockSetup(viewerMock)

			handler := New(logger, viewerMock)

			req, err := http.NewRequest(http.MethodGet, tc.url, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

func TestGetAllEventsResponseShape(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	viewerMock := mocks.NewEventsViewer(t)
	viewerMock.On("Filtered").Return([]models.Event{{ID: "7", Name: "Free Meetup", Capacity: 10, AvailableSpots: 10}})
	viewerMock.On("Filters").Return(models.FilterState{SortBy: models.SortByDate, SortDirection: models.SortAsc})

	handler := New(logger, viewerMock)

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	var resp EventsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	require.Len(t, resp.Events, 1)
	assert.Equal(t, "7", resp.Events[0].ID)
	assert.True(t, resp.Events[0].IsFree())
	assert.Equal(t, models.SortByDate, resp.Filters.SortBy)
}
