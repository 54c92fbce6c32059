package services

import (
	"sync"

	"github.com/footyhub/footyhub/models"
)

// recorderStub collects audit entries in memory
type recorderStub struct {
	mu      sync.Mutex
	entries []models.AuditLogEntry
}

func (r *recorderStub) Record(entry models.AuditLogEntry) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return true
}

func (r *recorderStub) all() []models.AuditLogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.AuditLogEntry(nil), r.entries...)
}

func (r *recorderStub) last() models.AuditLogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.entries) == 0 {
		return models.AuditLogEntry{}
	}
	return r.entries[len(r.entries)-1]
}
