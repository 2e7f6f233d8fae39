package models

import (
	"time"
)

// LeaveStatus is the state of a leave request. Transitions are restricted
// to the table below; anything else is rejected as a conflict.
type LeaveStatus string

const (
	LeavePending    LeaveStatus = "Pending"
	LeaveApproved   LeaveStatus = "Approved"
	LeaveRejected   LeaveStatus = "Rejected"
	LeaveCheckedOut LeaveStatus = "CheckedOut"
	LeaveCompleted  LeaveStatus = "Completed"
)

// leaveTransitions lists the legal next states per source state.
// Rejected and Completed are terminal.
var leaveTransitions = map[LeaveStatus][]LeaveStatus{
	LeavePending:    {LeaveApproved, LeaveRejected},
	LeaveApproved:   {LeaveCheckedOut},
	LeaveCheckedOut: {LeaveCompleted},
}

// Valid reports whether s is a known leave status.
func (s LeaveStatus) Valid() bool {
	switch s {
	case LeavePending, LeaveApproved, LeaveRejected, LeaveCheckedOut, LeaveCompleted:
		return true
	}
	return false
}

// Terminal reports whether no further transition is possible from s.
func (s LeaveStatus) Terminal() bool {
	return len(leaveTransitions[s]) == 0
}

// CanTransitionTo reports whether the transition s -> next is in the table.
func (s LeaveStatus) CanTransitionTo(next LeaveStatus) bool {
	for _, t := range leaveTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// Leave defines a time-bounded absence request based on the 'leaves' table.
// Records are never deleted; history is kept for listing and audit.
type Leave struct {
	ID           int64       `json:"id" db:"id" example:"1"`
	StudentID    int64       `json:"studentId" db:"student_id" example:"5"`
	FromDate     time.Time   `json:"fromDate" db:"from_date"`
	ToDate       time.Time   `json:"toDate" db:"to_date"`
	Reason       string      `json:"reason" db:"reason" example:"Family visit"`
	Status       LeaveStatus `json:"status" db:"status" example:"Pending"`
	CheckoutDate *time.Time  `json:"checkoutDate,omitempty" db:"checkout_date"`
	CheckinDate  *time.Time  `json:"checkinDate,omitempty" db:"checkin_date"`
	CreatedAt    time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time   `json:"updatedAt" db:"updated_at"`

	// Student summary (populated by the listing service when resolving
	// the studentId reference)
	Student *StudentSummary `json:"student,omitempty"`
}

// StudentSummary is the resolved view of a studentId reference substituted
// into leave and complaint listings.
type StudentSummary struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone string  `json:"phone,omitempty"`
	Room  *string `json:"room"`
	Block *string `json:"block"`
}
