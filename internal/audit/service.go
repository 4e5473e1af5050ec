// Package audit records the outcome of authentication attempts for later
// inspection. Auditing is best-effort: a failed write is logged and never
// fails the operation being audited.
package audit

import (
	"log"
	"time"

	"github.com/mvoskres/postroom/internal/database/audit"
	"github.com/mvoskres/postroom/internal/entities"
)

// Service provides high-level audit logging.
type Service struct {
	repo *audit.Repository
}

// NewService creates a new audit service.
func NewService(repo *audit.Repository) *Service {
	return &Service{repo: repo}
}

// Log records a generic audit event.
func (s *Service) Log(event *entities.AuditEvent) error {
	return s.repo.LogEvent(event)
}

// LogAsync records an audit event in the background (non-blocking).
func (s *Service) LogAsync(event *entities.AuditEvent) {
	go func() {
		if err := s.repo.LogEvent(event); err != nil {
			log.Printf("Failed to log audit event: %v", err)
		}
	}()
}

// LogAuth records the outcome of a register or login attempt. A nil
// receiver is a no-op so callers need not guard against auditing being
// disabled.
func (s *Service) LogAuth(action, username, ipAddr string, userID uint, status entities.AuditStatus, detail string) {
	if s == nil {
		return
	}

	s.LogAsync(&entities.AuditEvent{
		UserID:    userID,
		EventType: entities.AuditEventAuth,
		Action:    action,
		Username:  username,
		IPAddress: ipAddr,
		Status:    status,
		Detail:    truncate(detail, 500),
	})
}

// DeleteOldEvents removes events older than the specified duration.
func (s *Service) DeleteOldEvents(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	return s.repo.DeleteOldEvents(cutoff)
}

// truncate shortens a string to max length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
