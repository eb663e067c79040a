package domain

import "time"

// Assignment links a ticket to a responsible user at a point in time. Rows are
// append-only: there is no update or delete surface, only cascade removal when
// the referenced ticket or user goes away.
type Assignment struct {
	ID         int64
	TicketID   int64
	UserID     int64
	AssignedAt time.Time
}

// AssignedTicket is the joined view returned by the assigned-tickets listing:
// one row per assignment with the ticket and assignee folded in.
type AssignedTicket struct {
	AssignmentID  int64
	TicketID      int64
	Title         string
	Status        string
	AssigneeID    int64
	AssigneeName  string
	AssigneeEmail string
	AssignedAt    time.Time
}
