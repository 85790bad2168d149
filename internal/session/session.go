package session

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/rshade/carbonfocus/internal/input"
	"github.com/rshade/carbonfocus/internal/inventory"
	"github.com/rshade/carbonfocus/internal/targets"
)

// Session is the state carried between commands.
type Session struct {
	ID           string             `json:"id"`
	Sources      []string           `json:"sources,omitempty"`
	Organization input.Profile      `json:"organization"`
	Snapshot     inventory.Snapshot `json:"snapshot"`
	Target       *targets.Target    `json:"target,omitempty"`
}

// New starts a session for a freshly computed snapshot.
func New(profile input.Profile, snap inventory.Snapshot, sources ...string) Session {
	return Session{
		ID:           ulid.MustNew(ulid.Now(), rand.Reader).String(),
		Sources:      sources,
		Organization: profile,
		Snapshot:     snap,
	}
}

// entry is the on-disk envelope.
type entry struct {
	Session   Session   `json:"session"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (e entry) expired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && now.After(e.ExpiresAt)
}
