package models

import "time"

// Exhibition statuses as stored in the exhibitions.status column.
const (
	ExhibitionStatusUpcoming = "upcoming"
	ExhibitionStatusOngoing  = "ongoing"
	ExhibitionStatusPast     = "past"
)

// Exhibition is a gallery event with a bookable slot count.
// StartDate and EndDate are calendar dates in "YYYY-MM-DD" form; they are
// stored and echoed verbatim, the server never does date arithmetic on them.
type Exhibition struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	StartDate      string    `json:"startDate"`
	EndDate        string    `json:"endDate"`
	TicketPrice    float64   `json:"ticketPrice"`
	TotalSlots     int       `json:"totalSlots"`
	AvailableSlots int       `json:"availableSlots"`
	ImageURL       string    `json:"imageUrl"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}
