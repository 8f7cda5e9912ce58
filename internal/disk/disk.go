// Package disk models a single-platter, single-spindle hard disk: immutable
// geometry plus the three-way seek-path cost function and the rotational
// and transfer constants derived from it.
package disk

import (
	"fmt"
)

// SeekPath names which of the three candidate head-movement routes a seek
// took, for tracing.
type SeekPath int

const (
	// PathDirect moves straight from the current track to the target.
	PathDirect SeekPath = iota
	// PathViaStart recalibrates at track 0 before moving to the target.
	PathViaStart
	// PathViaEnd recalibrates at the outermost track before moving to the target.
	PathViaEnd
)

// String renders a short descriptor suitable for trace lines.
func (p SeekPath) String() string {
	switch p {
	case PathDirect:
		return "direct"
	case PathViaStart:
		return "via track 0"
	case PathViaEnd:
		return "via outer edge"
	default:
		return "unknown"
	}
}

// Geometry is the immutable physical description of the disk.
type Geometry struct {
	NumTracks        int
	SectorsPerTrack  int
	SeekTimePerTrack float64 // ms, per track of direct head movement
	SeekTimeToEdge   float64 // ms, fixed recalibration cost of an edge seek
	RPM              float64
}

// RotationTime is the time for one full platter revolution, in ms.
func (g Geometry) RotationTime() float64 {
	return (60 * 1000) / g.RPM
}

// AvgRotationalLatency is half a revolution, in ms.
func (g Geometry) AvgRotationalLatency() float64 {
	return g.RotationTime() / 2
}

// SectorTransferTime is the time to transfer one sector under the head, in ms.
func (g Geometry) SectorTransferTime() float64 {
	return g.RotationTime() / float64(g.SectorsPerTrack)
}

// Track returns the track containing sector.
func (g Geometry) Track(sector int) int {
	return sector / g.SectorsPerTrack
}

// Disk is the geometry plus the single piece of mutable state: the current
// head position. current_track only ever changes in MoveHead, called once
// per I/O at DISK_SEEK_END.
type Disk struct {
	Geometry
	currentTrack int
}

// New constructs a Disk with the head parked at track 0.
func New(g Geometry) *Disk {
	return &Disk{Geometry: g}
}

// CurrentTrack returns the head's current track.
func (d *Disk) CurrentTrack() int {
	return d.currentTrack
}

// SeekCost returns the minimum-time path from the current track to target
// and a tag describing which of the three candidate routes won.
//
// Tie-break priority is Direct > ViaStart > ViaEnd, matching the Python
// original's calculate_seek_time: each comparison uses <=, so an earlier
// candidate wins any tie against a later one.
func (d *Disk) SeekCost(target int) (ms float64, path SeekPath) {
	direct := absInt(target-d.currentTrack)
	directTime := float64(direct) * d.SeekTimePerTrack

	lastTrack := d.NumTracks - 1
	viaStartTracks := absInt(d.currentTrack) + absInt(target)
	viaStartTime := d.SeekTimeToEdge + float64(viaStartTracks)*d.SeekTimePerTrack

	viaEndTracks := absInt(d.currentTrack-lastTrack) + absInt(target-lastTrack)
	viaEndTime := d.SeekTimeToEdge + float64(viaEndTracks)*d.SeekTimePerTrack

	switch {
	case directTime <= viaStartTime && directTime <= viaEndTime:
		return directTime, PathDirect
	case viaStartTime <= viaEndTime:
		return viaStartTime, PathViaStart
	default:
		return viaEndTime, PathViaEnd
	}
}

// MoveHead sets the head's current track. Called exactly once per I/O, at
// DISK_SEEK_END.
func (d *Disk) MoveHead(target int) {
	d.currentTrack = target
}

// String renders a short disk-state descriptor for trace/diagnostic output.
func (d *Disk) String() string {
	return fmt.Sprintf("disk: %d tracks, %d sectors/track, %.0f RPM, head at track %d",
		d.NumTracks, d.SectorsPerTrack, d.RPM, d.currentTrack)
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
