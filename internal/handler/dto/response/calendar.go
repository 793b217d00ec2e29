package response

import "hotel-board/internal/usecase/readmodel"

type CalendarResponse struct {
	Entries []readmodel.CalendarEntry `json:"entries"`
}

func FromCalendar(entries []readmodel.CalendarEntry) *CalendarResponse {
	if entries == nil {
		entries = []readmodel.CalendarEntry{}
	}
	return &CalendarResponse{Entries: entries}
}
