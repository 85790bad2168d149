package engine

import (
	"context"
	"errors"

	"github.com/rshade/carbonfocus/internal/logging"
	"github.com/rshade/carbonfocus/internal/session"
	"github.com/rshade/carbonfocus/internal/targets"
)

// DefaultConcurrency bounds how many files are loaded at once.
const DefaultConcurrency = 10

// ErrNoInputs is returned when no files are given.
var ErrNoInputs = errors.New("no activity files given")

// Engine runs calculations and keeps the session up to date.
type Engine struct {
	store       *session.Store
	concurrency int
}

// Option configures an Engine.
type Option func(*Engine)

// WithSessionStore records every calculation in store.
func WithSessionStore(store *session.Store) Option {
	return func(e *Engine) { e.store = store }
}

// WithConcurrency sets the file loading limit. Values below 1 mean 1.
func WithConcurrency(n int) Option {
	return func(e *Engine) { e.concurrency = max(1, n) }
}

// New returns an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{concurrency: DefaultConcurrency}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Session returns the stored session. Without a store it reports
// session.ErrSessionDisabled.
func (e *Engine) Session(ctx context.Context) (*session.Session, error) {
	if e.store == nil {
		return nil, session.ErrSessionDisabled
	}
	return e.store.Load(ctx)
}

// RecordTarget attaches t to the stored session. Missing or disabled
// sessions are not an error; there is simply nothing to update.
func (e *Engine) RecordTarget(ctx context.Context, t targets.Target) error {
	if e.store == nil || !e.store.IsEnabled() {
		return nil
	}
	err := e.store.Update(ctx, func(s *session.Session) error {
		s.Target = &t
		return nil
	})
	if errors.Is(err, session.ErrSessionNotFound) || errors.Is(err, session.ErrSessionExpired) {
		return nil
	}
	return err
}

func (e *Engine) save(ctx context.Context, sess session.Session) {
	if e.store == nil || !e.store.IsEnabled() {
		return
	}
	if err := e.store.Save(ctx, sess); err != nil {
		log := logging.FromContext(ctx)
		log.Warn().
			Ctx(ctx).
			Str("component", "engine").
			Str("operation", "save_session").
			Err(err).
			Msg("could not save session, continuing without it")
	}
}
