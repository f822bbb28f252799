package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventhub/internal/models"
)

func sampleEvents() []models.Event {
	return []models.Event{
		{ID: "1", Name: "Tech Conference", Title: "Tech Conference 2024", Location: "San Francisco Convention Center", Description: "keynotes and workshops", Date: "2024-03-15", Price: 299},
		{ID: "2", Name: "Music Festival", Title: "Music Festival Summer Vibes", Location: "Golden Gate Park", Description: "three days of music", Date: "2024-07-20", Price: 150},
		{ID: "10", Name: "Jazz Night", Title: "Jazz Night Live", Location: "The Blue Note Jazz Club", Description: "smooth jazz performances", Date: "2024-04-05", Price: 45},
	}
}

func TestFilterBySearchQuery(t *testing.T) {
	t.Parallel()

	events := sampleEvents()

	filters := models.FilterState{
		SearchQuery:   "jazz",
		SortBy:        models.SortByName,
		SortDirection: models.SortAsc,
	}

	got := FilterAndSort(events, filters)

	require.Len(t, got, 1)
	assert.Equal(t, "Jazz Night", got[0].Name)
}

func TestFilterMatchesAnyField(t *testing.T) {
	t.Parallel()

	events := sampleEvents()

	testCases := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "matches name", query: "music", want: []string{"2"}},
		{name: "matches location", query: "golden gate", want: []string{"2"}},
		{name: "matches description", query: "keynotes", want: []string{"1"}},
		{name: "case insensitive", query: "JAZZ", want: []string{"10"}},
		{name: "empty query matches everything", query: "", want: []string{"1", "10", "2"}},
		{name: "no match", query: "opera", want: []string{}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := FilterAndSort(events, models.FilterState{
				SearchQuery:   tc.query,
				SortBy:        models.SortByName,
				SortDirection: models.SortAsc,
			})

			ids := make([]string, 0, len(got))
			for _, ev := range got {
				ids = append(ids, ev.ID)
			}

			assert.ElementsMatch(t, tc.want, ids)
		})
	}
}

func TestSortOrders(t *testing.T) {
	t.Parallel()

	events := sampleEvents()

	testCases := []struct {
		name    string
		filters models.FilterState
		want    []string
	}{
		{
			name:    "by name asc",
			filters: models.FilterState{SortBy: models.SortByName, SortDirection: models.SortAsc},
			want:    []string{"10", "2", "1"}, // Jazz Night, Music Festival, Tech Conference
		},
		{
			name:    "by name desc",
			filters: models.FilterState{SortBy: models.SortByName, SortDirection: models.SortDesc},
			want:    []string{"1", "2", "10"},
		},
		{
			name:    "by date asc",
			filters: models.FilterState{SortBy: models.SortByDate, SortDirection: models.SortAsc},
			want:    []string{"1", "10", "2"},
		},
		{
			name:    "by price asc",
			filters: models.FilterState{SortBy: models.SortByPrice, SortDirection: models.SortAsc},
			want:    []string{"10", "2", "1"},
		},
		{
			name:    "by price desc",
			filters: models.FilterState{SortBy: models.SortByPrice, SortDirection: models.SortDesc},
			want:    []string{"1", "2", "10"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := FilterAndSort(events, tc.filters)

			ids := make([]string, 0, len(got))
			for _, ev := range got {
				ids = append(ids, ev.ID)
			}

			assert.Equal(t, tc.want, ids)
		})
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	t.Parallel()

	events := sampleEvents()
	filters := models.FilterState{
		SearchQuery:   "a",
		SortBy:        models.SortByPrice,
		SortDirection: models.SortDesc,
	}

	first := FilterAndSort(events, filters)
	second := FilterAndSort(events, filters)

	assert.Equal(t, first, second)
}

func TestSortIsStable(t *testing.T) {
	t.Parallel()

	// All three share the same price; their relative order must survive
	// any number of direction toggles.
	events := []models.Event{
		{ID: "a", Name: "A", Price: 50, Date: "2024-01-01"},
		{ID: "b", Name: "B", Price: 50, Date: "2024-01-02"},
		{ID: "c", Name: "C", Price: 50, Date: "2024-01-03"},
	}

	asc := models.FilterState{SortBy: models.SortByPrice, SortDirection: models.SortAsc}
	desc := models.FilterState{SortBy: models.SortByPrice, SortDirection: models.SortDesc}

	original := FilterAndSort(events, asc)

	toggled := FilterAndSort(FilterAndSort(FilterAndSort(events, asc), desc), asc)

	assert.Equal(t, original, toggled)

	ids := make([]string, 0, len(toggled))
	for _, ev := range toggled {
		ids = append(ids, ev.ID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestInputSliceNotMutated(t *testing.T) {
	t.Parallel()

	events := sampleEvents()
	originalFirst := events[0].ID

	FilterAndSort(events, models.FilterState{
		SortBy:        models.SortByName,
		SortDirection: models.SortDesc,
	})

	assert.Equal(t, originalFirst, events[0].ID)
}
