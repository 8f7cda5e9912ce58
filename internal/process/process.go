// Package process models a user process: an ordered list of (op, sector)
// requests, a read cursor, lifecycle state, and quantum residue. All
// transitions are driven by the event engine — this package holds data and
// cursor advancement only.
package process

import "github.com/brettlangdon/disksim/internal/event"

// State is a process's lifecycle state.
type State int

const (
	Ready State = iota
	Running
	Blocked
	Finished
)

func (s State) String() string {
	switch s {
	case Ready:
		return "READY"
	case Running:
		return "RUNNING"
	case Blocked:
		return "BLOCKED"
	case Finished:
		return "FINISHED"
	default:
		return "UNKNOWN"
	}
}

// Request is one (op, sector) entry in a process's request sequence.
type Request struct {
	Op     event.RequestType
	Sector int
}

// Process is a single user process under simulation.
type Process struct {
	PID              int
	Requests         []Request
	Cursor           int
	State            State
	RemainingQuantum float64
}

// New constructs a process ready to run, with an empty quantum until the
// engine assigns one at PROCESS_START.
func New(pid int, requests []Request) *Process {
	return &Process{PID: pid, Requests: requests, State: Ready}
}

// PeekNextRequest returns the request at the cursor without advancing it.
// The second return is false once the cursor has passed the last request.
func (p *Process) PeekNextRequest() (Request, bool) {
	if p.Cursor >= len(p.Requests) {
		return Request{}, false
	}
	return p.Requests[p.Cursor], true
}

// Advance moves the cursor past the request just completed.
func (p *Process) Advance() {
	p.Cursor++
}

// IsFinished reports whether the cursor has passed the last request.
func (p *Process) IsFinished() bool {
	return p.Cursor >= len(p.Requests)
}

// TotalRequests returns the number of requests in the process's sequence.
func (p *Process) TotalRequests() int {
	return len(p.Requests)
}

// CompletedRequests returns how many requests have been advanced past.
func (p *Process) CompletedRequests() int {
	if p.Cursor > len(p.Requests) {
		return len(p.Requests)
	}
	return p.Cursor
}
