package store

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"eventhub/internal/models"
)

// FilterAndSort is a pure transform from (events, filters) to an ordered
// view. The input slice is never mutated. The sort is stable: events with
// equal keys keep their relative order.
func FilterAndSort(events []models.Event, filters models.FilterState) []models.Event {
	filtered := make([]models.Event, 0, len(events))

	if query := strings.ToLower(filters.SearchQuery); query != "" {
		for _, ev := range events {
			if strings.Contains(strings.ToLower(ev.Name), query) ||
				strings.Contains(strings.ToLower(ev.Title), query) ||
				strings.Contains(strings.ToLower(ev.Location), query) ||
				strings.Contains(strings.ToLower(ev.Description), query) {
				filtered = append(filtered, ev)
			}
		}
	} else {
		filtered = append(filtered, events...)
	}

	// Collators carry an internal buffer, so one is built per call.
	collator := collate.New(language.English, collate.Loose)

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]

		var comparison int

		switch filters.SortBy {
		case models.SortByName:
			comparison = collator.CompareString(a.Name, b.Name)
		case models.SortByPrice:
			comparison = compareFloat(a.Price, b.Price)
		case models.SortByLastUpdated:
			comparison = compareInt64(a.LastUpdated, b.LastUpdated)
		default: // models.SortByDate
			comparison = compareInt64(dateMillis(a.Date), dateMillis(b.Date))
		}

		if filters.SortDirection == models.SortDesc {
			comparison = -comparison
		}

		return comparison < 0
	})

	return filtered
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// dateMillis turns an ISO date into a numeric sort key. Unparseable dates
// sort first, matching how the original data treats a missing date as zero.
func dateMillis(date string) int64 {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0
	}

	return t.UnixMilli()
}
