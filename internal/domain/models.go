package domain

import "time"

const (
	JobStatusActive    = "active"
	JobStatusCompleted = "completed"
	JobStatusCancelled = "cancelled"

	UrgencyUrgent = "urgent"
	UrgencyNormal = "normal"

	ApplicationStatusPending  = "pending"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"

	ConditionNew         = "new"
	ConditionUsed        = "used"
	ConditionRefurbished = "refurbished"

	ItemStatusActive   = "active"
	ItemStatusSold     = "sold"
	ItemStatusInactive = "inactive"

	EventStatusActive    = "active"
	EventStatusCompleted = "completed"
	EventStatusCancelled = "cancelled"

	TicketStatusActive   = "active"
	TicketStatusUsed     = "used"
	TicketStatusRefunded = "refunded"

	NotificationTypeJob     = "job"
	NotificationTypePayment = "payment"
	NotificationTypeEvent   = "event"
	NotificationTypeSystem  = "system"
)

type User struct {
	ID            int      `json:"id"`
	Username      string   `json:"username"`
	Email         string   `json:"email"`
	PasswordHash  string   `json:"-"`
	FirstName     string   `json:"firstName"`
	LastName      string   `json:"lastName"`
	Phone         string   `json:"phone"`
	ProfileImage  *string  `json:"profileImage"`
	IsVerified    bool     `json:"isVerified"`
	Rating        string   `json:"rating"`
	CompletedJobs int      `json:"completedJobs"`
	WalletBalance string   `json:"walletBalance"`
	Location      *string  `json:"location"`
	Skills        []string `json:"skills"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Job struct {
	ID          int          `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	Budget      string       `json:"budget"`
	Location    string       `json:"location"`
	Coordinates *Coordinates `json:"coordinates"`
	UserID      int          `json:"userId"`
	Status      string       `json:"status"`
	Urgency     string       `json:"urgency"`
	Applicants  int          `json:"applicants"`
	CreatedAt   time.Time    `json:"createdAt"`
}

type JobApplication struct {
	ID        int       `json:"id"`
	JobID     int       `json:"jobId"`
	UserID    int       `json:"userId"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type MarketplaceItem struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Category    string    `json:"category"`
	Condition   string    `json:"condition"`
	Images      []string  `json:"images"`
	Location    string    `json:"location"`
	UserID      int       `json:"userId"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Event struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Date         time.Time `json:"date"`
	Location     string    `json:"location"`
	Venue        string    `json:"venue"`
	TicketPrice  string    `json:"ticketPrice"`
	TotalTickets int       `json:"totalTickets"`
	SoldTickets  int       `json:"soldTickets"`
	Image        string    `json:"image,omitempty"`
	UserID       int       `json:"userId"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SoldOut reports whether every ticket of the event has been issued.
func (e Event) SoldOut() bool {
	return e.SoldTickets >= e.TotalTickets
}

type EventTicket struct {
	ID           int       `json:"id"`
	EventID      int       `json:"eventId"`
	UserID       int       `json:"userId"`
	TicketNumber string    `json:"ticketNumber"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Review struct {
	ID         int       `json:"id"`
	ReviewerID int       `json:"reviewerId"`
	RevieweeID int       `json:"revieweeId"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	JobID      *int      `json:"jobId"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Notification struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}
