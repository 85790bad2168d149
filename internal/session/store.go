package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rshade/carbonfocus/internal/logging"
)

const fileName = "current.json"

// DefaultTTLSeconds keeps a session for a day.
const DefaultTTLSeconds = 86400

// Session store errors.
var (
	ErrSessionNotFound = errors.New("no saved session")
	ErrSessionExpired  = errors.New("saved session expired")
	ErrSessionDisabled = errors.New("session store is disabled")
)

// Store is a file-backed session store. It is safe for concurrent use.
type Store struct {
	directory string
	enabled   bool
	ttl       time.Duration
	now       func() time.Time

	mu sync.RWMutex
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore opens a store in directory, creating it if needed. A disabled
// store returns ErrSessionDisabled from every operation. ttlSeconds <= 0
// means sessions never expire.
func NewStore(directory string, enabled bool, ttlSeconds int, opts ...Option) (*Store, error) {
	s := &Store{enabled: enabled, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	if !enabled {
		return s, nil
	}
	if directory == "" {
		return nil, errors.New("session directory cannot be empty")
	}
	if err := os.MkdirAll(directory, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}
	s.directory = directory
	if ttlSeconds > 0 {
		s.ttl = time.Duration(ttlSeconds) * time.Second
	}
	return s, nil
}

// Save replaces the current session.
func (s *Store) Save(ctx context.Context, sess Session) error {
	if !s.enabled {
		return ErrSessionDisabled
	}

	now := s.now().UTC()
	e := entry{Session: sess, CreatedAt: now}
	if s.ttl > 0 {
		e.ExpiresAt = now.Add(s.ttl)
	}
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path()
	tmp := path + ".tmp"
	if err = os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err = os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to rename session file: %w", err)
	}

	logging.FromContext(ctx).Debug().Ctx(ctx).
		Str("component", "session").
		Str("session_id", sess.ID).
		Str("path", path).
		Msg("session saved")
	return nil
}

// Load returns the current session. An expired session is removed and
// reported as ErrSessionExpired.
func (s *Store) Load(ctx context.Context) (*Session, error) {
	if !s.enabled {
		return nil, ErrSessionDisabled
	}

	s.mu.RLock()
	data, err := os.ReadFile(s.path())
	s.mu.RUnlock()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var e entry
	if err = json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	if e.expired(s.now()) {
		logging.FromContext(ctx).Debug().Ctx(ctx).
			Str("component", "session").
			Time("expired_at", e.ExpiresAt).
			Msg("discarding expired session")
		_ = s.Clear()
		return nil, ErrSessionExpired
	}
	return &e.Session, nil
}

// Update loads the current session, applies fn and saves the result.
func (s *Store) Update(ctx context.Context, fn func(*Session) error) error {
	sess, err := s.Load(ctx)
	if err != nil {
		return err
	}
	if err = fn(sess); err != nil {
		return err
	}
	return s.Save(ctx, *sess)
}

// Clear removes the current session. It is a no-op when none exists.
func (s *Store) Clear() error {
	if !s.enabled {
		return ErrSessionDisabled
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete session file: %w", err)
	}
	return nil
}

// IsEnabled reports whether the store persists anything.
func (s *Store) IsEnabled() bool { return s.enabled }

// Directory returns the store directory.
func (s *Store) Directory() string { return s.directory }

func (s *Store) path() string {
	return filepath.Join(s.directory, fileName)
}
