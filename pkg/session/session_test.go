package session

import (
	"testing"
	"time"

	"github.com/vshtohryn/assetserve/pkg/catalog"
)

const testDebounce = 40 * time.Millisecond

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.ManufacturerSpec{
		{
			Name: "Dell",
			Categories: []catalog.CategorySpec{
				{ID: "laptops", Keywords: []string{"Latitude", "Latitude 5420", "XPS"}},
				{ID: "systems", Keywords: []string{"OptiPlex"}},
			},
		},
	})
	if err != nil {
		t.Fatalf("building test catalog: %v", err)
	}
	return c
}

// openSession types the query, waits for the timer to fire, and fails the
// test unless the session opened.
func openSession(t *testing.T, s *Session, ch <-chan Snapshot, query string) Snapshot {
	t.Helper()
	s.OnInput(query)
	snap := waitNotify(t, ch)
	if snap.State != Open {
		t.Fatalf("expected Open after %q, got %v", query, snap.State)
	}
	return snap
}

func waitNotify(t *testing.T, ch <-chan Snapshot) Snapshot {
	t.Helper()
	select {
	case snap := <-ch:
		return snap
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for session notification")
		return Snapshot{}
	}
}

func TestDebounceCollapsesBurst(t *testing.T) {
	ch := make(chan Snapshot, 8)
	s := New(testCatalog(t),
		WithDebounce(testDebounce),
		WithNotify(func(snap Snapshot) { ch <- snap }))

	// a typing burst faster than the debounce window
	s.OnInput("L")
	s.OnInput("La")
	s.OnInput("Lat")

	snap := waitNotify(t, ch)
	if snap.State != Open {
		t.Fatalf("expected Open, got %v", snap.State)
	}
	if snap.Query != "Lat" {
		t.Errorf("expected the final query to be matched, got %q", snap.Query)
	}
	if len(snap.Candidates) == 0 || snap.Candidates[0] != "Latitude" {
		t.Errorf("unexpected candidates: %v", snap.Candidates)
	}
	if snap.ActiveIndex != 0 {
		t.Errorf("expected highlight on first candidate, got %d", snap.ActiveIndex)
	}

	// the superseded keystrokes must not produce further notifications
	select {
	case extra := <-ch:
		t.Errorf("unexpected extra notification: %+v", extra)
	case <-time.After(4 * testDebounce):
	}
}

func TestPendingBeforeTimerFires(t *testing.T) {
	s := New(testCatalog(t), WithDebounce(time.Hour))
	s.OnInput("Lat")

	snap := s.Snapshot()
	if snap.State != Pending {
		t.Fatalf("expected Pending while timer runs, got %v", snap.State)
	}
	if len(snap.Candidates) != 0 {
		t.Errorf("no candidates should exist before the timer fires, got %v", snap.Candidates)
	}
}

func TestEmptyInputResets(t *testing.T) {
	ch := make(chan Snapshot, 8)
	s := New(testCatalog(t),
		WithDebounce(testDebounce),
		WithNotify(func(snap Snapshot) { ch <- snap }))

	openSession(t, s, ch, "Lat")

	s.OnInput("")
	snap := s.Snapshot()
	if snap.State != Idle || len(snap.Candidates) != 0 || snap.Query != "" {
		t.Errorf("expected clean Idle state after clearing input, got %+v", snap)
	}
}

func TestNoMatchGoesIdle(t *testing.T) {
	ch := make(chan Snapshot, 8)
	s := New(testCatalog(t),
		WithDebounce(testDebounce),
		WithNotify(func(snap Snapshot) { ch <- snap }))

	s.OnInput("Chromebook")
	snap := waitNotify(t, ch)
	if snap.State != Idle || len(snap.Candidates) != 0 {
		t.Errorf("expected Idle with no candidates, got %+v", snap)
	}
}

func TestNavigateWraps(t *testing.T) {
	ch := make(chan Snapshot, 8)
	s := New(testCatalog(t),
		WithDebounce(testDebounce),
		WithNotify(func(snap Snapshot) { ch <- snap }))

	snap := openSession(t, s, ch, "Lat")
	n := len(snap.Candidates)
	if n < 2 {
		t.Fatalf("test needs at least 2 candidates, got %v", snap.Candidates)
	}

	// previous from the top wraps to the last candidate
	s.OnNavigate(-1)
	if got := s.Snapshot().ActiveIndex; got != n-1 {
		t.Errorf("expected wrap to %d, got %d", n-1, got)
	}

	// next from the last wraps back to the top
	s.OnNavigate(1)
	if got := s.Snapshot().ActiveIndex; got != 0 {
		t.Errorf("expected wrap to 0, got %d", got)
	}

	s.OnNavigate(1)
	if got := s.Snapshot().ActiveIndex; got != 1 {
		t.Errorf("expected move to 1, got %d", got)
	}
}

func TestNavigateIgnoredUnlessOpen(t *testing.T) {
	s := New(testCatalog(t), WithDebounce(time.Hour))

	s.OnNavigate(1)
	if got := s.Snapshot(); got.State != Idle || got.ActiveIndex != 0 {
		t.Errorf("navigate on idle session changed state: %+v", got)
	}

	s.OnInput("Lat")
	s.OnNavigate(1)
	if got := s.Snapshot(); got.State != Pending || got.ActiveIndex != 0 {
		t.Errorf("navigate on pending session changed state: %+v", got)
	}
}

func TestAcceptReturnsHighlighted(t *testing.T) {
	ch := make(chan Snapshot, 8)
	s := New(testCatalog(t),
		WithDebounce(testDebounce),
		WithNotify(func(snap Snapshot) { ch <- snap }))

	snap := openSession(t, s, ch, "Lat")
	s.OnNavigate(1)
	want := snap.Candidates[1]

	got, ok := s.OnAccept()
	if !ok {
		t.Fatal("expected accept to succeed on an open session")
	}
	if got != want {
		t.Errorf("accepted %q, want %q", got, want)
	}

	after := s.Snapshot()
	if after.State != Idle || len(after.Candidates) != 0 {
		t.Errorf("expected Idle after accept, got %+v", after)
	}
}

func TestAcceptFailsWhenNotOpen(t *testing.T) {
	s := New(testCatalog(t), WithDebounce(time.Hour))

	if _, ok := s.OnAccept(); ok {
		t.Error("accept on an idle session must fail")
	}

	s.OnInput("Lat")
	if _, ok := s.OnAccept(); ok {
		t.Error("accept on a pending session must fail")
	}
}

func TestDismissCancelsPending(t *testing.T) {
	ch := make(chan Snapshot, 8)
	s := New(testCatalog(t),
		WithDebounce(testDebounce),
		WithNotify(func(snap Snapshot) { ch <- snap }))

	s.OnInput("Lat")
	s.OnDismiss()

	if got := s.Snapshot().State; got != Closed {
		t.Fatalf("expected Closed after dismiss, got %v", got)
	}

	// the cancelled timer must never deliver a result
	select {
	case snap := <-ch:
		t.Errorf("dismissed match still fired: %+v", snap)
	case <-time.After(4 * testDebounce):
	}
}

func TestDismissClosesOpen(t *testing.T) {
	ch := make(chan Snapshot, 8)
	s := New(testCatalog(t),
		WithDebounce(testDebounce),
		WithNotify(func(snap Snapshot) { ch <- snap }))

	openSession(t, s, ch, "Lat")
	s.OnBlurOutside()

	snap := s.Snapshot()
	if snap.State != Closed || len(snap.Candidates) != 0 {
		t.Errorf("expected Closed with no candidates, got %+v", snap)
	}

	// a closed session accepts fresh input like an idle one
	openSession(t, s, ch, "Opti")
}
