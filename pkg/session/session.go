/*
Package session mediates between raw keystroke events and the matcher.

A Session debounces input so the matcher is not invoked on every keystroke,
and keeps the navigable candidate state the host renders as a dropdown:
the ordered candidate list, the highlighted index, and whether a match is
still pending. One Session serves one model-number input field; any number
of sessions may share a catalog since it is read-only.

The key ordering guarantee: each new input cancels the previous debounce
timer, so at most one rank operation is ever in flight and its result
always corresponds to the latest query. A superseded keystroke's result can
never overwrite newer state. Internally this is a generation counter
checked under the session mutex when the timer fires.
*/
package session

import (
	"sync"
	"time"

	"github.com/vshtohryn/assetserve/pkg/catalog"
	"github.com/vshtohryn/assetserve/pkg/match"
)

// DefaultDebounce is the delay between the last keystroke and the rank
// call. Short enough to feel live, long enough to collapse a typing burst.
const DefaultDebounce = 160 * time.Millisecond

// State enumerates the session lifecycle.
type State int

const (
	// Idle: no query, no candidates.
	Idle State = iota
	// Pending: a debounce timer is running for the current query.
	Pending
	// Open: candidates are present and ActiveIndex is valid.
	Open
	// Closed: explicitly dismissed; behaves as Idle for subsequent input.
	Closed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Open:
		return "open"
	case Closed:
		return "closed"
	}
	return "unknown"
}

// Snapshot is the render-facing view of a session. Rendering code reads
// snapshots; it never mutates session state directly.
type Snapshot struct {
	State       State
	Query       string
	Candidates  []string
	ActiveIndex int
}

// Session drives debounced autocomplete for a single input field.
type Session struct {
	mu       sync.Mutex
	catalog  *catalog.Catalog
	limit    int
	debounce time.Duration
	notify   func(Snapshot)

	state      State
	query      string
	candidates []string
	active     int
	timer      *time.Timer
	gen        uint64
}

// Option configures a Session.
type Option func(*Session)

// WithLimit caps the candidate list (default match.DefaultLimit).
func WithLimit(n int) Option {
	return func(s *Session) { s.limit = n }
}

// WithDebounce overrides the debounce delay. Tests use a tiny value.
func WithDebounce(d time.Duration) Option {
	return func(s *Session) { s.debounce = d }
}

// WithNotify registers a callback invoked with a fresh snapshot whenever
// candidate state changes from a timer fire. Input-event mutations are
// synchronous, so callers already know about those.
func WithNotify(fn func(Snapshot)) Option {
	return func(s *Session) { s.notify = fn }
}

// New creates an idle session over the given catalog.
func New(cat *catalog.Catalog, opts ...Option) *Session {
	s := &Session{
		catalog:  cat,
		limit:    match.DefaultLimit,
		debounce: DefaultDebounce,
		state:    Idle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnInput records the latest text of the host field. Empty text resets to
// Idle and cancels any pending timer. Non-empty text (re)starts the
// debounce: only the latest keystroke's timer may fire.
func (s *Session) OnInput(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.stopTimerLocked()

	if text == "" {
		s.resetLocked(Idle)
		return
	}

	s.query = text
	s.state = Pending
	fireGen := s.gen
	s.timer = time.AfterFunc(s.debounce, func() {
		s.fire(fireGen)
	})
}

// fire runs when the debounce timer elapses. A stale generation means a
// newer input or a dismiss got there first; the result is discarded before
// it is even computed.
func (s *Session) fire(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen || s.state != Pending {
		return
	}

	candidates := match.Rank(s.query, s.catalog, s.limit)
	if len(candidates) == 0 {
		s.resetLocked(Idle)
		s.notifyLocked()
		return
	}

	s.candidates = s.candidates[:0]
	for _, c := range candidates {
		s.candidates = append(s.candidates, c.Text)
	}
	s.active = 0
	s.state = Open
	s.notifyLocked()
}

// OnNavigate moves the highlight by direction (+1 next, -1 previous),
// wrapping at both ends. Ignored unless the session is Open.
func (s *Session) OnNavigate(direction int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Open || len(s.candidates) == 0 {
		return
	}
	n := len(s.candidates)
	s.active = ((s.active+direction)%n + n) % n
}

// OnAccept returns the highlighted candidate and resets to Idle. The
// second return is false unless the session was Open. The caller writes
// the accepted value into the host field and classifies it.
func (s *Session) OnAccept() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Open || len(s.candidates) == 0 {
		return "", false
	}
	accepted := s.candidates[s.active]
	s.gen++
	s.stopTimerLocked()
	s.resetLocked(Idle)
	return accepted, true
}

// OnDismiss cancels any pending match and closes the candidate list.
// Valid in Open or Pending; a no-op otherwise.
func (s *Session) OnDismiss() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Open && s.state != Pending {
		return
	}
	s.gen++
	s.stopTimerLocked()
	s.resetLocked(Closed)
}

// OnBlurOutside has the same effect as OnDismiss, triggered when focus
// leaves both the input and the candidate list.
func (s *Session) OnBlurOutside() {
	s.OnDismiss()
}

// Snapshot returns a copy of the current render state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	out := Snapshot{
		State:       s.state,
		Query:       s.query,
		ActiveIndex: s.active,
	}
	out.Candidates = append([]string(nil), s.candidates...)
	return out
}

func (s *Session) resetLocked(state State) {
	s.state = state
	s.query = ""
	s.candidates = s.candidates[:0]
	s.active = 0
}

func (s *Session) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Session) notifyLocked() {
	if s.notify == nil {
		return
	}
	snap := s.snapshotLocked()
	// Deliver outside the lock so the callback can call back into the
	// session without deadlocking.
	go s.notify(snap)
}
