package models

import "time"

// TicketStatus enumerates escalation ticket states.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in-progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

// EscalationTicket represents a query handed off from the assistant to a human.
//
// Lifecycle: created open → optionally in-progress → terminal resolved or
// closed. ResolvedAt is set exactly once, at the transition into a terminal state.
type EscalationTicket struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Reference   string       `gorm:"size:64;uniqueIndex" json:"reference"`
	StudentID   uint         `gorm:"index" json:"student_id"`
	StudentName string       `gorm:"size:255" json:"student_name"`
	Department  string       `gorm:"size:128" json:"department"`
	Title       string       `gorm:"size:255;not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	Status      TicketStatus `gorm:"size:32;default:open" json:"status"`
	Priority    Priority     `gorm:"size:16;default:medium" json:"priority"`
	AssignedTo  string       `gorm:"size:255" json:"assigned_to,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	ResolvedAt  *time.Time   `json:"resolved_at,omitempty"`
}

// IsTerminal reports whether the ticket can no longer change state.
func (t EscalationTicket) IsTerminal() bool {
	return t.Status == TicketStatusResolved || t.Status == TicketStatusClosed
}

// Badge maps a ticket status to its display badge class.
func (s TicketStatus) Badge() BadgeClass {
	switch s {
	case TicketStatusResolved:
		return BadgeSuccess
	case TicketStatusClosed:
		return BadgeInfo
	case TicketStatusInProgress:
		return BadgePrimary
	case TicketStatusOpen:
		return BadgeDanger
	default:
		return BadgeInfo
	}
}
