package entities

import "time"

type AuditEventType string

const (
	AuditEventAuth AuditEventType = "auth"
)

type AuditStatus string

const (
	AuditStatusSuccess  AuditStatus = "success"
	AuditStatusRejected AuditStatus = "rejected"
	AuditStatusFailed   AuditStatus = "failed"
)

// AuditEvent records the outcome of an authentication attempt.
type AuditEvent struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"index" json:"user_id"`
	EventType AuditEventType `gorm:"index;size:50" json:"event_type"`
	Action    string         `gorm:"size:100" json:"action"` // e.g., "register", "login"
	Username  string         `gorm:"size:100" json:"username"`
	IPAddress string         `gorm:"size:45" json:"ip_address,omitempty"`
	Status    AuditStatus    `gorm:"size:20" json:"status"`
	Detail    string         `gorm:"size:500" json:"detail,omitempty"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
}

func (AuditEvent) TableName() string {
	return "audit_events"
}
