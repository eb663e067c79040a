package domain

import "time"

// TicketStatus enumerates the lifecycle states a ticket is expected to be in.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusClosed     TicketStatus = "closed"
)

// KnownStatus reports whether s is one of the enumerated statuses. Status
// writes are not forced through this check by default; see service.StatusPolicy.
func KnownStatus(s string) bool {
	switch TicketStatus(s) {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusClosed:
		return true
	}
	return false
}

// Ticket is the aggregate for support requests. IDs are supplied by the
// caller at creation time; status always starts at open.
type Ticket struct {
	ID        int64
	Title     string
	Status    string
	CreatedAt time.Time
}
