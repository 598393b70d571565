package entity

import (
	"time"

	"github.com/google/uuid"
)

type MessageDirection string

const (
	StudentToVendor MessageDirection = "student_to_vendor"
	VendorToStudent MessageDirection = "vendor_to_student"
)

type MessagePriority string

const (
	PriorityLow    MessagePriority = "low"
	PriorityNormal MessagePriority = "normal"
	PriorityHigh   MessagePriority = "high"
	PriorityUrgent MessagePriority = "urgent"
)

type Attachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type,omitempty"`
}

// Message is one entry in a student-vendor conversation thread.
type Message struct {
	ID                    uuid.UUID        `json:"id"`
	ThreadID              uuid.UUID        `json:"threadId"`
	IsThreadStart         bool             `json:"isThreadStart"`
	StudentID             uuid.UUID        `json:"studentId"`
	VendorID              uuid.UUID        `json:"vendorId"`
	Direction             MessageDirection `json:"direction"`
	Subject               string           `json:"subject,omitempty"`
	Body                  string           `json:"body"`
	Attachments           []Attachment     `json:"attachments,omitempty"`
	Priority              MessagePriority  `json:"priority"`
	IsRead                bool             `json:"isRead"`
	ReadAt                *time.Time       `json:"readAt,omitempty"`
	RelatedSubscriptionID *uuid.UUID       `json:"relatedSubscriptionId,omitempty"`
	RelatedOrderID        *uuid.UUID       `json:"relatedOrderId,omitempty"`
	CreatedAt             time.Time        `json:"createdAt"`
}

// Recipient is the participant the message was sent to.
func (m *Message) Recipient() Principal {
	if m.Direction == StudentToVendor {
		return Principal{ID: m.VendorID, Role: RoleVendor}
	}

	return Principal{ID: m.StudentID, Role: RoleStudent}
}

// Involves reports whether the principal is one side of the conversation.
func (m *Message) Involves(p Principal) bool {
	switch p.Role {
	case RoleStudent:
		return m.StudentID == p.ID
	case RoleVendor:
		return m.VendorID == p.ID
	default:
		return false
	}
}

// DirectionFrom is the direction of a message sent by role.
func DirectionFrom(role Role) MessageDirection {
	if role == RoleVendor {
		return VendorToStudent
	}

	return StudentToVendor
}

// MessageThread summarises a conversation.
type MessageThread struct {
	ThreadID      uuid.UUID `json:"threadId"`
	Subject       string    `json:"subject"`
	StudentID     uuid.UUID `json:"studentId"`
	VendorID      uuid.UUID `json:"vendorId"`
	LastMessage   *Message  `json:"lastMessage"`
	UnreadCount   int64     `json:"unreadCount"`
	LastMessageAt time.Time `json:"lastMessageAt"`
}
