package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cardledger/cards-backend/internal/models"
)

type AuditLogsRepo struct {
	mu   sync.Mutex
	logs []models.AuditLog
}

func NewAuditLogsRepo() *AuditLogsRepo { return &AuditLogsRepo{} }

func (r *AuditLogsRepo) Create(l models.AuditLog) error {
	l.ID = uuid.NewString()
	l.CreatedAt = time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, l)
	return nil
}

// Len is used by tests to observe asynchronous writes.
func (r *AuditLogsRepo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.logs)
}
