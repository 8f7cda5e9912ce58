package scheduler

import "sort"

// LOOK sorts pending requests by sector and services them in the current
// sweep direction, reversing at either an anti-starvation limit on a single
// track or when no request remains in the current direction.
type LOOK struct {
	queue               []Request
	maxTrackAccesses     int
	directionIncreasing  bool
	currentTrackAccesses int
	lastTrack            int
	haveLastTrack        bool
}

// NewLOOK constructs a LOOK scheduler with the given anti-starvation limit
// on consecutive picks at the same track (spec default: 10).
func NewLOOK(maxTrackAccesses int) *LOOK {
	return &LOOK{
		maxTrackAccesses:    maxTrackAccesses,
		directionIncreasing: true,
	}
}

func (l *LOOK) Name() string { return "LOOK" }

func (l *LOOK) Submit(req Request) {
	l.queue = append(l.queue, req)
}

func (l *LOOK) Empty() bool { return len(l.queue) == 0 }

func (l *LOOK) PickNext(sectorsPerTrack, currentTrack int, seekCost func(int) float64) (Request, bool) {
	if len(l.queue) == 0 {
		return Request{}, false
	}

	sorted := append([]Request(nil), l.queue...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Sector < sorted[j].Sector })

	if l.haveLastTrack && l.lastTrack == currentTrack {
		l.currentTrackAccesses++
		if l.currentTrackAccesses >= l.maxTrackAccesses {
			l.directionIncreasing = !l.directionIncreasing
			l.currentTrackAccesses = 0
		}
	} else {
		l.currentTrackAccesses = 0
	}
	l.lastTrack = currentTrack
	l.haveLastTrack = true

	idx, ok := l.pickInDirection(sorted, sectorsPerTrack, currentTrack)
	if !ok {
		l.directionIncreasing = !l.directionIncreasing
		l.currentTrackAccesses = 0
		idx = l.pickEndpoint(sorted, sectorsPerTrack, seekCost)
	}

	selected := sorted[idx]
	l.remove(selected)
	return selected, true
}

// pickInDirection returns the index within sorted of the request to service
// in the current direction, or ok=false if none qualifies.
func (l *LOOK) pickInDirection(sorted []Request, sectorsPerTrack, currentTrack int) (int, bool) {
	if l.directionIncreasing {
		for i, req := range sorted {
			if req.Track(sectorsPerTrack) >= currentTrack {
				return i, true
			}
		}
		return 0, false
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i].Track(sectorsPerTrack) <= currentTrack {
			return i, true
		}
	}
	return 0, false
}

// pickEndpoint chooses whichever end of the sorted queue is cheaper to seek
// to (the first end on a tie), used on direction reversal when nothing
// qualifies in the current direction.
func (l *LOOK) pickEndpoint(sorted []Request, sectorsPerTrack int, seekCost func(int) float64) int {
	firstTrack := sorted[0].Track(sectorsPerTrack)
	lastTrack := sorted[len(sorted)-1].Track(sectorsPerTrack)
	if seekCost(firstTrack) <= seekCost(lastTrack) {
		return 0
	}
	return len(sorted) - 1
}

func (l *LOOK) remove(target Request) {
	for i, req := range l.queue {
		if req == target {
			l.queue = append(l.queue[:i], l.queue[i+1:]...)
			return
		}
	}
}
