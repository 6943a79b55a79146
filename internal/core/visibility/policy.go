package visibility

import "time"

// Block reasons returned alongside a denied decision
const (
	ReasonLoginRequired   = "LOGIN_REQUIRED"
	ReasonPremiumRequired = "PREMIUM_REQUIRED"
)

// DefaultWindowDays is the default recency window: content no older than
// this is visible to everyone regardless of account state
const DefaultWindowDays = 30

// Viewer identifies an authenticated reader. A nil *Viewer means anonymous.
// Premium comes from the identity provider, never derived here.
type Viewer struct {
	UserID  int64
	Premium bool
}

// Decision is the outcome of the visibility gate for one (viewer, content)
// pair. Never persisted; recomputed per request.
type Decision struct {
	Reason  string
	Allowed bool
}

// Policy decides content visibility from viewer state and content age.
// The window is a deployment policy parameter (default 30 days).
type Policy struct {
	Window time.Duration
}

// NewPolicy creates a visibility policy with the given recency window
func NewPolicy(window time.Duration) Policy {
	if window <= 0 {
		window = DefaultWindowDays * 24 * time.Hour
	}
	return Policy{Window: window}
}

// Decide applies the visibility gate:
//   - content age within the window: allowed for everyone
//   - older content, anonymous viewer: blocked, login required
//   - older content, authenticated non-premium viewer: blocked, premium required
//   - older content, premium viewer: allowed
func (p Policy) Decide(viewer *Viewer, createdAt, now time.Time) Decision {
	if now.Sub(createdAt) <= p.Window {
		return Decision{Allowed: true}
	}
	if viewer == nil {
		return Decision{Reason: ReasonLoginRequired}
	}
	if !viewer.Premium {
		return Decision{Reason: ReasonPremiumRequired}
	}
	return Decision{Allowed: true}
}
