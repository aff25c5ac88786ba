package service

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"sportvenue-backend/internal/domain"
)

// SortColumn identifies a sortable column of the booking requests table
type SortColumn string

const (
	SortColumnNone        SortColumn = ""
	SortColumnID          SortColumn = "id"
	SortColumnGuestName   SortColumn = "guestName"
	SortColumnActivity    SortColumn = "activity"
	SortColumnDate        SortColumn = "date"
	SortColumnTotalAmount SortColumn = "totalAmount"
)

// SortOrder is the direction of a column sort
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SortState is the current table sort selection
type SortState struct {
	Column SortColumn `json:"column"`
	Order  SortOrder  `json:"order"`
}

// ToggleSort returns the sort state after a click on a column header:
// clicking the active column flips the order, a new column starts ascending.
func ToggleSort(state SortState, column SortColumn) SortState {
	if state.Column == column {
		if state.Order == SortAsc {
			return SortState{Column: column, Order: SortDesc}
		}
		return SortState{Column: column, Order: SortAsc}
	}
	return SortState{Column: column, Order: SortAsc}
}

// RequestQuery holds the dashboard table's filter and sort selections.
// Empty or "all" filters match everything.
type RequestQuery struct {
	Search   string
	Status   string
	Activity string
	Sort     SortState
}

// requestCollator orders id, guest name and activity columns the way the
// admin console's locale renders them
var requestCollator = collate.New(language.English)

// FilterAndSortRequests applies the dashboard's search, filters and column
// sort to a list of booking requests. The input is not mutated, and the sort
// is stable: ties keep their input order.
func FilterAndSortRequests(requests []domain.BookingRequest, query RequestQuery) []domain.BookingRequest {
	result := make([]domain.BookingRequest, 0, len(requests))

	search := toSearchTerm(query.Search)
	for _, request := range requests {
		if query.Status != "" && query.Status != "all" && string(request.Status) != query.Status {
			continue
		}
		if query.Activity != "" && query.Activity != "all" && request.Activity != query.Activity {
			continue
		}
		if !matchesSearch(&request, search) {
			continue
		}
		result = append(result, request)
	}

	if query.Sort.Column == SortColumnNone {
		return result
	}

	sort.SliceStable(result, func(i, j int) bool {
		compare := compareRequests(&result[i], &result[j], query.Sort.Column)
		if query.Sort.Order == SortDesc {
			compare = -compare
		}
		return compare < 0
	})

	return result
}

func compareRequests(a, b *domain.BookingRequest, column SortColumn) int {
	switch column {
	case SortColumnID:
		return requestCollator.CompareString(a.ID, b.ID)
	case SortColumnGuestName:
		return requestCollator.CompareString(a.GuestName, b.GuestName)
	case SortColumnActivity:
		return requestCollator.CompareString(a.Activity, b.Activity)
	case SortColumnDate:
		at, bt := parseRequestDate(a.Date), parseRequestDate(b.Date)
		switch {
		case at.Before(bt):
			return -1
		case at.After(bt):
			return 1
		default:
			return 0
		}
	case SortColumnTotalAmount:
		return a.TotalAmount - b.TotalAmount
	default:
		return 0
	}
}

// parseRequestDate treats malformed dates as the zero instant rather than
// failing the whole sort
func parseRequestDate(date string) time.Time {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}
	}
	return t
}

func toSearchTerm(search string) string {
	return strings.ToLower(strings.TrimSpace(search))
}

// matchesSearch checks the term against request ID, guest name and activity.
// An empty term matches everything.
func matchesSearch(request *domain.BookingRequest, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(request.ID), term) ||
		strings.Contains(strings.ToLower(request.GuestName), term) ||
		strings.Contains(strings.ToLower(request.Activity), term)
}
