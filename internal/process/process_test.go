package process

import (
	"testing"

	"github.com/brettlangdon/disksim/internal/event"
)

func TestLifecycleCursor(t *testing.T) {
	p := New(1, []Request{
		{Op: event.Read, Sector: 100},
		{Op: event.Write, Sector: 200},
	})

	if p.IsFinished() {
		t.Fatal("fresh process should not be finished")
	}
	req, ok := p.PeekNextRequest()
	if !ok {
		t.Fatal("PeekNextRequest() = false, want true")
	}
	if req.Sector != 100 {
		t.Errorf("req.Sector = %d, want 100", req.Sector)
	}

	p.Advance()
	req, ok = p.PeekNextRequest()
	if !ok {
		t.Fatal("PeekNextRequest() = false, want true")
	}
	if req.Sector != 200 {
		t.Errorf("req.Sector = %d, want 200", req.Sector)
	}

	p.Advance()
	if !p.IsFinished() {
		t.Error("process should be finished after advancing past the last request")
	}
	if _, ok := p.PeekNextRequest(); ok {
		t.Error("PeekNextRequest() = true after the last request, want false")
	}
}

func TestEmptyProcessIsImmediatelyFinished(t *testing.T) {
	p := New(1, nil)
	if !p.IsFinished() {
		t.Error("empty process should be immediately finished")
	}
	if got := p.CompletedRequests(); got != 0 {
		t.Errorf("CompletedRequests() = %d, want 0", got)
	}
	if got := p.TotalRequests(); got != 0 {
		t.Errorf("TotalRequests() = %d, want 0", got)
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Ready, "READY"},
		{Running, "RUNNING"},
		{Blocked, "BLOCKED"},
		{Finished, "FINISHED"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
