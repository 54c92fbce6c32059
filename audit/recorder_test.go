package audit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/footyhub/footyhub/models"
	"github.com/footyhub/footyhub/repositories/mocks"
)

// memoryAuditRepository collects written entries
type memoryAuditRepository struct {
	mocks.MockAuditRepository
	mu      sync.Mutex
	entries []models.AuditLogEntry
	release chan struct{}
}

func (m *memoryAuditRepository) Create(ctx context.Context, entry *models.AuditLogEntry) error {
	if m.release != nil {
		<-m.release
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	entry.ID = int64(len(m.entries) + 1)
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *memoryAuditRepository) written() []models.AuditLogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.AuditLogEntry(nil), m.entries...)
}

func TestRecorderStampsAndWrites(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	repo := &memoryAuditRepository{}
	recorder := NewRecorder(repo, 8, clock)
	require.NoError(t, recorder.Start())

	userID := int64(7)
	assert.True(t, recorder.Record(models.AuditLogEntry{
		UserID:      &userID,
		RequestType: models.RequestLogin,
		RequestData: "alice",
		StatusCode:  200,
	}))

	require.NoError(t, recorder.Stop(context.Background()))

	entries := repo.written()
	require.Len(t, entries, 1)
	assert.Equal(t, clock.Now(), entries[0].Timestamp)
	assert.Equal(t, models.RequestLogin, entries[0].RequestType)
	assert.Equal(t, int64(7), *entries[0].UserID)
}

func TestRecorderDropsWhenFull(t *testing.T) {
	repo := &memoryAuditRepository{}
	// Not started: nothing consumes the queue.
	recorder := NewRecorder(repo, 2, clockwork.NewFakeClock())

	assert.True(t, recorder.Record(models.AuditLogEntry{RequestType: models.RequestLogout, StatusCode: 200}))
	assert.True(t, recorder.Record(models.AuditLogEntry{RequestType: models.RequestLogout, StatusCode: 200}))
	assert.False(t, recorder.Record(models.AuditLogEntry{RequestType: models.RequestLogout, StatusCode: 200}))
	assert.Equal(t, 2, recorder.Pending())

	// Stop drains what was accepted.
	require.NoError(t, recorder.Stop(context.Background()))
	assert.Len(t, repo.written(), 2)
}

func TestRecorderRejectsAfterStop(t *testing.T) {
	repo := &memoryAuditRepository{}
	recorder := NewRecorder(repo, 4, clockwork.NewFakeClock())
	require.NoError(t, recorder.Start())
	require.NoError(t, recorder.Stop(context.Background()))

	assert.False(t, recorder.Record(models.AuditLogEntry{RequestType: models.RequestLogin}))
	assert.ErrorIs(t, recorder.Start(), ErrStopped)
	assert.NoError(t, recorder.Stop(context.Background()))
}

func TestRecorderStopHonorsContext(t *testing.T) {
	repo := &memoryAuditRepository{release: make(chan struct{})}
	recorder := NewRecorder(repo, 4, clockwork.NewFakeClock())
	require.NoError(t, recorder.Start())
	require.True(t, recorder.Record(models.AuditLogEntry{RequestType: models.RequestWeather}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := recorder.Stop(ctx)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))

	close(repo.release)
}

func TestRecorderLogsWriteFailures(t *testing.T) {
	repo := mocks.NewMockAuditRepository(t)
	repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*models.AuditLogEntry")).
		Return(errors.New("disk full")).Once()

	recorder := NewRecorder(repo, 1, clockwork.NewFakeClock())
	require.NoError(t, recorder.Start())
	assert.True(t, recorder.Record(models.AuditLogEntry{RequestType: models.RequestSignup, StatusCode: 200}))
	assert.NoError(t, recorder.Stop(context.Background()))
}
