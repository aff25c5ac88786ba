package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportvenue-backend/internal/domain"
	"sportvenue-backend/internal/repository"
)

func TestToggleSort(t *testing.T) {
	tests := []struct {
		name     string
		state    SortState
		column   SortColumn
		expected SortState
	}{
		{
			name:     "First click on a column sorts ascending",
			state:    SortState{},
			column:   SortColumnDate,
			expected: SortState{Column: SortColumnDate, Order: SortAsc},
		},
		{
			name:     "Second click on the active column flips to descending",
			state:    SortState{Column: SortColumnDate, Order: SortAsc},
			column:   SortColumnDate,
			expected: SortState{Column: SortColumnDate, Order: SortDesc},
		},
		{
			name:     "Third click flips back to ascending",
			state:    SortState{Column: SortColumnDate, Order: SortDesc},
			column:   SortColumnDate,
			expected: SortState{Column: SortColumnDate, Order: SortAsc},
		},
		{
			name:     "Clicking a different column starts ascending",
			state:    SortState{Column: SortColumnDate, Order: SortDesc},
			column:   SortColumnTotalAmount,
			expected: SortState{Column: SortColumnTotalAmount, Order: SortAsc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToggleSort(tt.state, tt.column))
		})
	}
}

func requestIDs(requests []domain.BookingRequest) []string {
	ids := make([]string, 0, len(requests))
	for _, r := range requests {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestFilterAndSortRequests_IdentityQuery(t *testing.T) {
	requests := repository.SeedBookingRequests()

	result := FilterAndSortRequests(requests, RequestQuery{})

	require.Len(t, result, len(requests))
	assert.Equal(t, requestIDs(requests), requestIDs(result))
}

func TestFilterAndSortRequests_Filters(t *testing.T) {
	requests := repository.SeedBookingRequests()

	tests := []struct {
		name     string
		query    RequestQuery
		expected []string
	}{
		{
			name:     "Status paid matches exactly one request",
			query:    RequestQuery{Status: "paid"},
			expected: []string{"GR8WV3H"},
		},
		{
			name:     "Status all matches everything",
			query:    RequestQuery{Status: "all"},
			expected: []string{"BR7XK9M", "FR2LQ5P", "GR8WV3H", "HS4JK7N", "TS9MR2X", "KS3LP9W", "NS7TR1Q"},
		},
		{
			name:     "Activity filter keeps matching rows in input order",
			query:    RequestQuery{Activity: "Tennis Court"},
			expected: []string{"FR2LQ5P", "KS3LP9W"},
		},
		{
			name:     "Search is case-insensitive over guest name",
			query:    RequestQuery{Search: "jane"},
			expected: []string{"FR2LQ5P"},
		},
		{
			name:     "Search matches request IDs",
			query:    RequestQuery{Search: "br7"},
			expected: []string{"BR7XK9M"},
		},
		{
			name:     "Search matches activity names",
			query:    RequestQuery{Search: "badminton"},
			expected: []string{"BR7XK9M", "NS7TR1Q"},
		},
		{
			name:     "Filters combine with AND",
			query:    RequestQuery{Search: "court", Status: "reviewed"},
			expected: []string{"FR2LQ5P"},
		},
		{
			name:     "Nothing matches an impossible combination",
			query:    RequestQuery{Status: "paid", Activity: "Yoga Class"},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FilterAndSortRequests(requests, tt.query)
			assert.Equal(t, tt.expected, requestIDs(result))
		})
	}
}

func TestFilterAndSortRequests_SortColumns(t *testing.T) {
	requests := repository.SeedBookingRequests()

	t.Run("Total ascending", func(t *testing.T) {
		result := FilterAndSortRequests(requests, RequestQuery{
			Sort: SortState{Column: SortColumnTotalAmount, Order: SortAsc},
		})
		assert.Equal(t, []string{"NS7TR1Q", "GR8WV3H", "HS4JK7N", "BR7XK9M", "TS9MR2X", "FR2LQ5P", "KS3LP9W"}, requestIDs(result))
	})

	t.Run("Descending reverses the value order", func(t *testing.T) {
		asc := FilterAndSortRequests(requests, RequestQuery{
			Sort: SortState{Column: SortColumnTotalAmount, Order: SortAsc},
		})
		desc := FilterAndSortRequests(requests, RequestQuery{
			Sort: SortState{Column: SortColumnTotalAmount, Order: SortDesc},
		})

		require.Len(t, desc, len(asc))
		for i := range asc {
			assert.Equal(t, asc[i].TotalAmount, desc[len(desc)-1-i].TotalAmount)
		}
	})

	t.Run("Ties keep input order in both directions", func(t *testing.T) {
		// FR2LQ5P and KS3LP9W both total 1200
		for _, order := range []SortOrder{SortAsc, SortDesc} {
			result := FilterAndSortRequests(requests, RequestQuery{
				Sort: SortState{Column: SortColumnTotalAmount, Order: order},
			})
			ids := requestIDs(result)
			posFR, posKS := -1, -1
			for i, id := range ids {
				if id == "FR2LQ5P" {
					posFR = i
				}
				if id == "KS3LP9W" {
					posKS = i
				}
			}
			require.NotEqual(t, -1, posFR)
			require.NotEqual(t, -1, posKS)
			assert.Less(t, posFR, posKS, "stable sort should keep input order for order=%s", order)
		}
	})

	t.Run("Date ascending", func(t *testing.T) {
		result := FilterAndSortRequests(requests, RequestQuery{
			Sort: SortState{Column: SortColumnDate, Order: SortAsc},
		})
		assert.Equal(t, []string{"KS3LP9W", "BR7XK9M", "HS4JK7N", "FR2LQ5P", "GR8WV3H", "TS9MR2X", "NS7TR1Q"}, requestIDs(result))
	})

	t.Run("Guest name ascending", func(t *testing.T) {
		result := FilterAndSortRequests(requests, RequestQuery{
			Sort: SortState{Column: SortColumnGuestName, Order: SortAsc},
		})
		assert.Equal(t, "David Brown", result[0].GuestName)
		assert.Equal(t, "Sarah Williams", result[len(result)-1].GuestName)
	})

	t.Run("Malformed dates sort before valid ones", func(t *testing.T) {
		withBad := append([]domain.BookingRequest{
			{ID: "BADDATE", GuestName: "No Date", Activity: "Tennis Court", Date: "soon", TotalAmount: 100, Status: domain.StatusNew},
		}, requests...)

		result := FilterAndSortRequests(withBad, RequestQuery{
			Sort: SortState{Column: SortColumnDate, Order: SortAsc},
		})
		assert.Equal(t, "BADDATE", result[0].ID)
	})

	t.Run("Input slice is not mutated", func(t *testing.T) {
		before := requestIDs(requests)
		FilterAndSortRequests(requests, RequestQuery{
			Sort: SortState{Column: SortColumnID, Order: SortDesc},
		})
		assert.Equal(t, before, requestIDs(requests))
	})
}
