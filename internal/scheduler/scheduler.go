// Package scheduler implements the pluggable disk I/O request scheduler:
// FIFO, LOOK, and N-LOOK, behind a common Scheduler interface.
package scheduler

import "github.com/brettlangdon/disksim/internal/event"

// Request is a disk I/O request: the sector targeted, the operation, the
// originating process, and the time it was submitted.
type Request struct {
	Sector      int
	Op          event.RequestType
	PID         int
	SubmitTime  float64
}

// Track returns the track a request targets, given the disk's geometry.
func (r Request) Track(sectorsPerTrack int) int {
	return r.Sector / sectorsPerTrack
}

// Scheduler is the capability set every disk I/O scheduling policy
// implements: submit a request, pick the next one to service, and report
// emptiness.
type Scheduler interface {
	// Name identifies the policy for tracing and statistics.
	Name() string

	// Submit appends a request to the scheduler's internal state. It does
	// not select anything.
	Submit(req Request)

	// PickNext selects and removes one pending request. sectorsPerTrack and
	// currentTrack describe disk state directly; seekCost evaluates the
	// full three-path seek cost formula (§4.1) for a candidate target
	// track, needed only by LOOK's endpoint-reversal tie-break. Passing it
	// as a function keeps this package independent of the disk package's
	// concrete type. Returns false if nothing is pending.
	PickNext(sectorsPerTrack, currentTrack int, seekCost func(targetTrack int) float64) (Request, bool)

	// Empty reports whether any request is pending.
	Empty() bool
}

// New constructs a Scheduler by name: "fifo", "look", or "nlook". FLOOK is
// referenced in the original documentation but intentionally unimplemented
// (spec §4.3.3 names it optional and out of scope); configuration
// validation rejects it before a Scheduler is ever requested.
func New(name string) (Scheduler, bool) {
	switch name {
	case "fifo":
		return NewFIFO(), true
	case "look":
		return NewLOOK(10), true
	case "nlook":
		return NewNLOOK(5), true
	default:
		return nil, false
	}
}
