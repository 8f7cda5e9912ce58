// Package event defines the tagged event variants the engine's priority
// queue carries and the min-heap that orders them by (time, insertion
// sequence).
package event

import "container/heap"

// RequestType distinguishes a READ from a WRITE syscall. Per spec, WRITE is
// not distinguished from READ in cache or disk timing — the model is
// read-through and this type exists only to label requests for tracing and
// workload generation.
type RequestType int

const (
	Read RequestType = iota
	Write
)

func (t RequestType) String() string {
	if t == Write {
		return "WRITE"
	}
	return "READ"
}

// Kind discriminates the Event payload variants.
type Kind int

const (
	ProcessStart Kind = iota
	SyscallStart
	SyscallEnd
	DiskSeekEnd
	DiskRotationEnd
	DiskTransferEnd
	InterruptStart
	InterruptEnd
	ProcessCompute
)

func (k Kind) String() string {
	switch k {
	case ProcessStart:
		return "PROCESS_START"
	case SyscallStart:
		return "SYSCALL_START"
	case SyscallEnd:
		return "SYSCALL_END"
	case DiskSeekEnd:
		return "DISK_SEEK_END"
	case DiskRotationEnd:
		return "DISK_ROTATION_END"
	case DiskTransferEnd:
		return "DISK_TRANSFER_END"
	case InterruptStart:
		return "INTERRUPT_START"
	case InterruptEnd:
		return "INTERRUPT_END"
	case ProcessCompute:
		return "PROCESS_COMPUTE"
	default:
		return "UNKNOWN"
	}
}

// ProcessStartPayload carries the process about to start/resume running.
type ProcessStartPayload struct {
	PID int
}

// SyscallStartPayload carries the syscall a process is about to issue.
type SyscallStartPayload struct {
	PID    int
	Op     RequestType
	Sector int
}

// SyscallEndPayload carries the outcome of the cache lookup made at
// SYSCALL_START.
type SyscallEndPayload struct {
	PID    int
	Op     RequestType
	Sector int
	Miss   bool
}

// InterruptEndPayload names the process that was blocked on the completed
// I/O and should be unblocked.
type InterruptEndPayload struct {
	BlockedPID int
}

// ProcessComputePayload carries the process performing CPU work after a
// cache hit.
type ProcessComputePayload struct {
	PID int
}

// Event is one entry in the engine's priority queue: a virtual time, a
// kind tag, and exactly the payload fields that kind needs. Ties at equal
// time are broken by Seq, assigned in submission order.
type Event struct {
	Time    float64
	Seq     uint64
	Kind    Kind
	Payload any
}

// eventHeap backs Queue's container/heap.Interface implementation. Kept
// unexported so Queue's own Push/Pop (which also assign sequence numbers)
// are the only public surface.
type eventHeap []*Event

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if h[i].Time != h[j].Time {
		return h[i].Time < h[j].Time
	}
	return h[i].Seq < h[j].Seq
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) { *h = append(*h, x.(*Event)) }

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// Queue is a min-heap of Events ordered by (Time, Seq) ascending. Equal-time
// FIFO order is load-bearing: it is what makes the zero-delay event chains
// in the engine (SYSCALL_START -> ... -> INTERRUPT_END) deterministic.
type Queue struct {
	h   eventHeap
	seq uint64
}

// NewQueue returns an empty event queue.
func NewQueue() *Queue {
	q := &Queue{}
	heap.Init(&q.h)
	return q
}

// Push schedules an event at the given absolute time, assigning the next
// insertion sequence number.
func (q *Queue) Push(t float64, kind Kind, payload any) *Event {
	e := &Event{Time: t, Seq: q.seq, Kind: kind, Payload: payload}
	q.seq++
	heap.Push(&q.h, e)
	return e
}

// Pop removes and returns the earliest (time, seq)-ordered event, or nil if
// the queue is empty.
func (q *Queue) Pop() *Event {
	if q.Len() == 0 {
		return nil
	}
	return heap.Pop(&q.h).(*Event)
}

// Len reports the number of pending events.
func (q *Queue) Len() int { return q.h.Len() }

// HasKind reports whether any pending event has one of the given kinds,
// used by the engine to decide whether a drain is owed before declaring
// completion (spec §9 Open Question 6).
func (q *Queue) HasKind(kinds ...Kind) bool {
	for _, e := range q.h {
		for _, k := range kinds {
			if e.Kind == k {
				return true
			}
		}
	}
	return false
}
