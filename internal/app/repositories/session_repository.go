package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yigit/gpacalc/internal/domain/grading"
	"github.com/yigit/gpacalc/internal/pkg/apperrors"
)

// Session is one calculator session: its ledger and the last result shown
// to the user.
type Session struct {
	ID         uuid.UUID
	Ledger     *grading.Ledger
	LastResult *grading.GPAResult
	CreatedAt  time.Time
	LastAccess time.Time
}

type sessionEntry struct {
	mu      sync.Mutex
	session *Session
}

// SessionRepository keeps sessions in memory. Access to one session's ledger
// is serialized through WithSession.
type SessionRepository struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*sessionEntry
	scale    *grading.GradeScale
	now      func() time.Time
}

// NewSessionRepository creates a repository whose ledgers use scale
func NewSessionRepository(scale *grading.GradeScale) *SessionRepository {
	return &SessionRepository{
		sessions: make(map[uuid.UUID]*sessionEntry),
		scale:    scale,
		now:      time.Now,
	}
}

// Create starts a new session with an empty ledger
func (r *SessionRepository) Create(ctx context.Context) (uuid.UUID, error) {
	if err := ctx.Err(); err != nil {
		return uuid.Nil, err
	}

	now := r.now()
	entry := &sessionEntry{
		session: &Session{
			ID:         uuid.New(),
			Ledger:     grading.NewLedger(r.scale),
			CreatedAt:  now,
			LastAccess: now,
		},
	}

	r.mu.Lock()
	r.sessions[entry.session.ID] = entry
	r.mu.Unlock()

	return entry.session.ID, nil
}

// WithSession runs fn while holding the session's lock and marks the session
// as used. It returns ErrSessionNotFound for unknown ids.
func (r *SessionRepository) WithSession(ctx context.Context, id uuid.UUID, fn func(*Session) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	entry, ok := r.sessions[id]
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", apperrors.ErrSessionNotFound, id)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.session.LastAccess = r.now()
	return fn(entry.session)
}

// Delete ends a session
func (r *SessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", apperrors.ErrSessionNotFound, id)
	}
	delete(r.sessions, id)
	return nil
}

// Count returns the number of live sessions
func (r *SessionRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// SweepIdle removes sessions unused for longer than idle and returns how
// many were removed. Sessions busy in WithSession are skipped.
func (r *SessionRepository) SweepIdle(idle time.Duration) int {
	cutoff := r.now().Add(-idle)

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, entry := range r.sessions {
		if !entry.mu.TryLock() {
			continue
		}
		if entry.session.LastAccess.Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
		entry.mu.Unlock()
	}
	return removed
}

// RunSweeper evicts idle sessions every interval until ctx is cancelled
func (r *SessionRepository) RunSweeper(ctx context.Context, interval, idle time.Duration, lgr zerolog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			lgr.Debug().Msg("Session sweeper stopped")
			return
		case <-ticker.C:
			if removed := r.SweepIdle(idle); removed > 0 {
				lgr.Info().Int("removed", removed).Int("remaining", r.Count()).Msg("Evicted idle sessions")
			}
		}
	}
}
