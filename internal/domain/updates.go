package domain

import "time"

// ListFilter narrows the browse listings of jobs and marketplace items.
// Empty fields do not filter.
type ListFilter struct {
	Category string
	Location string
	Search   string
}

// Update requests carry only the fields a caller may change. A nil field
// keeps the stored value.

type UserUpdate struct {
	FirstName    *string
	LastName     *string
	Phone        *string
	ProfileImage *string
	Location     *string
	Skills       []string
}

type JobUpdate struct {
	Title       *string
	Description *string
	Category    *string
	Budget      *string
	Location    *string
	Coordinates *Coordinates
	Status      *string
	Urgency     *string
}

type ApplicationUpdate struct {
	Message *string
	Status  *string
}

type ItemUpdate struct {
	Title       *string
	Description *string
	Price       *string
	Category    *string
	Condition   *string
	Images      []string
	Location    *string
	Status      *string
}

type EventUpdate struct {
	Title        *string
	Description  *string
	Date         *time.Time
	Location     *string
	Venue        *string
	TicketPrice  *string
	TotalTickets *int
	Image        *string
	Status       *string
}

type TicketUpdate struct {
	Status *string
}
