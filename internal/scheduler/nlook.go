package scheduler

import "sort"

// NLOOK maintains a list of FIFO sub-queues, each capped at maxQueueLength.
// Submissions always append to the tail sub-queue, creating a new one when
// it's full. PickNext always draws from the head sub-queue, sorted by track
// ascending, always in the increasing direction; sub-queue rotation gives
// fairness across epochs without ever reversing sweep direction.
type NLOOK struct {
	queues         [][]Request
	maxQueueLength int
}

// NewNLOOK constructs an N-LOOK scheduler with the given per-sub-queue
// capacity (spec default: 5).
func NewNLOOK(maxQueueLength int) *NLOOK {
	return &NLOOK{
		queues:         [][]Request{{}},
		maxQueueLength: maxQueueLength,
	}
}

func (n *NLOOK) Name() string { return "NLOOK" }

func (n *NLOOK) Submit(req Request) {
	if len(n.queues) == 0 {
		n.queues = append(n.queues, nil)
	}
	tail := len(n.queues) - 1
	if len(n.queues[tail]) >= n.maxQueueLength {
		n.queues = append(n.queues, nil)
		tail++
	}
	n.queues[tail] = append(n.queues[tail], req)
}

func (n *NLOOK) Empty() bool {
	for _, q := range n.queues {
		if len(q) > 0 {
			return false
		}
	}
	return true
}

func (n *NLOOK) PickNext(sectorsPerTrack, currentTrack int, seekCost func(int) float64) (Request, bool) {
	n.dropEmptyQueues()
	if len(n.queues) == 0 {
		return Request{}, false
	}

	head := n.queues[0]
	sorted := append([]Request(nil), head...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Track(sectorsPerTrack) < sorted[j].Track(sectorsPerTrack)
	})

	selected := sorted[0]
	for _, req := range sorted {
		if req.Track(sectorsPerTrack) >= currentTrack {
			selected = req
			break
		}
	}

	n.queues[0] = removeOne(head, selected)
	if len(n.queues[0]) == 0 {
		n.queues = n.queues[1:]
	}
	return selected, true
}

func (n *NLOOK) dropEmptyQueues() {
	kept := n.queues[:0]
	for _, q := range n.queues {
		if len(q) > 0 {
			kept = append(kept, q)
		}
	}
	n.queues = kept
}

func removeOne(queue []Request, target Request) []Request {
	for i, req := range queue {
		if req == target {
			out := append([]Request(nil), queue[:i]...)
			return append(out, queue[i+1:]...)
		}
	}
	return queue
}
