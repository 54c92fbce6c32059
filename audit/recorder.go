// Package audit writes audit log entries off the request path.
package audit

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/footyhub/footyhub/models"
	"github.com/footyhub/footyhub/repositories"
)

// DefaultQueueSize is used when a non-positive queue size is configured
const DefaultQueueSize = 256

const writeTimeout = 5 * time.Second

// ErrStopped is returned by Start on a recorder that was already stopped
var ErrStopped = errors.New("audit recorder stopped")

// Recorder queues audit entries and persists them from a single background writer.
// Record never blocks: when the queue is full the entry is dropped.
type Recorder struct {
	repo  repositories.AuditRepository
	clock clockwork.Clock
	queue chan models.AuditLogEntry

	mu      sync.RWMutex
	started bool
	stopped bool
	done    chan struct{}
}

// NewRecorder creates a recorder with a bounded queue
func NewRecorder(repo repositories.AuditRepository, queueSize int, clock clockwork.Clock) *Recorder {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Recorder{
		repo:  repo,
		clock: clock,
		queue: make(chan models.AuditLogEntry, queueSize),
		done:  make(chan struct{}),
	}
}

// Record stamps the entry and enqueues it. It reports whether the entry was accepted.
func (r *Recorder) Record(entry models.AuditLogEntry) bool {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = r.clock.Now().UTC()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.stopped {
		log.Warn().Str("request_type", entry.RequestType).Msg("audit recorder stopped, dropping entry")
		return false
	}

	select {
	case r.queue <- entry:
		return true
	default:
		log.Warn().
			Str("request_type", entry.RequestType).
			Int("queue_size", cap(r.queue)).
			Msg("audit queue full, dropping entry")
		return false
	}
}

// Start launches the background writer. Calling it more than once is a no-op.
func (r *Recorder) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped {
		return ErrStopped
	}
	if r.started {
		return nil
	}
	r.started = true

	go r.run()
	return nil
}

// Stop closes the queue and waits for queued entries to be written, or for ctx to end
func (r *Recorder) Stop(ctx context.Context) error {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return nil
	}
	r.stopped = true
	close(r.queue)
	started := r.started
	r.mu.Unlock()

	if !started {
		// Nothing is consuming; drain inline.
		r.drain()
		close(r.done)
		return nil
	}

	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Pending returns the number of queued entries not yet written
func (r *Recorder) Pending() int {
	return len(r.queue)
}

func (r *Recorder) run() {
	defer close(r.done)
	r.drain()
}

func (r *Recorder) drain() {
	for entry := range r.queue {
		r.write(entry)
	}
}

func (r *Recorder) write(entry models.AuditLogEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := r.repo.Create(ctx, &entry); err != nil {
		log.Error().
			Err(err).
			Str("request_type", entry.RequestType).
			Int("status_code", entry.StatusCode).
			Msg("failed to write audit log entry")
	}
}
