// Package engine implements the discrete-event simulation loop: the
// priority queue of events, the virtual clock, and every handler that
// drives the disk, cache, scheduler, and process list forward in lockstep.
package engine

import (
	"fmt"
	"sort"

	"github.com/brettlangdon/disksim/internal/cache"
	"github.com/brettlangdon/disksim/internal/disk"
	"github.com/brettlangdon/disksim/internal/event"
	"github.com/brettlangdon/disksim/internal/process"
	"github.com/brettlangdon/disksim/internal/scheduler"
	"github.com/brettlangdon/disksim/internal/simerrors"
	"github.com/brettlangdon/disksim/internal/stats"
	"github.com/brettlangdon/disksim/internal/trace"
)

// Engine owns every piece of mutable simulation state: the event queue, the
// virtual clock, the singleton disk/cache/scheduler, the process list, the
// currently running process, and the single in-flight disk request.
type Engine struct {
	queue *event.Queue
	clock float64

	disk  *disk.Disk
	cache *cache.LRU2Q
	sched scheduler.Scheduler

	processes  []*process.Process
	byPID      map[int]*process.Process
	current    *process.Process
	currentIO  *scheduler.Request

	quantum       float64
	syscallTime   float64
	interruptTime float64
	computeTime   float64

	stats *stats.Stats
	trace *trace.Sink
}

// New constructs an Engine ready to Run. processes must be sorted or will be
// sorted by New into PID order, since scheduler-next (§4.5.4) depends on
// pid order, not arrival order.
func New(d *disk.Disk, c *cache.LRU2Q, sched scheduler.Scheduler, processes []*process.Process,
	quantum, syscallTime, interruptTime, computeTime float64, tr *trace.Sink) *Engine {

	sorted := append([]*process.Process(nil), processes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].PID < sorted[j].PID })

	byPID := make(map[int]*process.Process, len(sorted))
	for _, p := range sorted {
		byPID[p.PID] = p
	}

	return &Engine{
		queue:         event.NewQueue(),
		disk:          d,
		cache:         c,
		sched:         sched,
		processes:     sorted,
		byPID:         byPID,
		quantum:       quantum,
		syscallTime:   syscallTime,
		interruptTime: interruptTime,
		computeTime:   computeTime,
		stats:         stats.New(),
		trace:         tr,
	}
}

// Stats exposes the run's accumulated counters, for reporting after Run
// returns.
func (e *Engine) Stats() *stats.Stats { return e.stats }

// ProcessReports renders the terminal completion state of every process, in
// PID order, for the end-of-run statistics block.
func (e *Engine) ProcessReports() []stats.ProcessReport {
	out := make([]stats.ProcessReport, 0, len(e.processes))
	for _, p := range e.processes {
		out = append(out, stats.ProcessReport{
			PID:       p.PID,
			Completed: p.CompletedRequests(),
			Total:     p.TotalRequests(),
			State:     p.State.String(),
		})
	}
	return out
}

// CacheOccupancy renders the final segment sizes, for the statistics block.
func (e *Engine) CacheOccupancy() string {
	return fmt.Sprintf("Segment occupancy — left: %d, right: %d", e.cache.LeftLen(), e.cache.RightLen())
}

// ClockMs returns the virtual clock's final value.
func (e *Engine) ClockMs() float64 { return e.clock }

// Run drives the event loop to completion: §4.5.1. Seeds one PROCESS_START
// for processes[0] at time 0, then pops/dispatches until either every
// process is FINISHED and no disk or interrupt event remains pending (§9
// Open Question 6 — draining owed before exit), or the queue empties on its
// own. Returns a CodeInvariant error if the queue drains while a process is
// still not FINISHED (deadlock, §4.5.5).
func (e *Engine) Run() error {
	if len(e.processes) > 0 {
		e.push(0, event.ProcessStart, event.ProcessStartPayload{PID: e.processes[0].PID})
	}

	for {
		ev := e.queue.Pop()
		if ev == nil {
			break
		}
		e.clock = ev.Time
		e.dispatch(ev)

		if e.stats.FinishedCount() == len(e.processes) &&
			!e.queue.HasKind(event.DiskSeekEnd, event.DiskRotationEnd, event.DiskTransferEnd,
				event.InterruptStart, event.InterruptEnd) {
			e.trace.Info(e.clock, "all processes finished")
			break
		}
	}

	for _, p := range e.processes {
		if p.State != process.Finished {
			return simerrors.Invariantf("engine.Run", "deadlock: process %d left in state %s with event queue empty", p.PID, p.State)
		}
	}
	return nil
}

func (e *Engine) push(delay float64, kind event.Kind, payload any) {
	e.queue.Push(e.clock+delay, kind, payload)
}

func (e *Engine) dispatch(ev *event.Event) {
	switch ev.Kind {
	case event.ProcessStart:
		e.handleProcessStart(ev.Payload.(event.ProcessStartPayload))
	case event.SyscallStart:
		e.handleSyscallStart(ev.Payload.(event.SyscallStartPayload))
	case event.SyscallEnd:
		e.handleSyscallEnd(ev.Payload.(event.SyscallEndPayload))
	case event.DiskSeekEnd:
		e.handleDiskSeekEnd()
	case event.DiskRotationEnd:
		e.handleDiskRotationEnd()
	case event.DiskTransferEnd:
		e.handleDiskTransferEnd()
	case event.InterruptStart:
		e.handleInterruptStart()
	case event.InterruptEnd:
		e.handleInterruptEnd(ev.Payload.(event.InterruptEndPayload))
	case event.ProcessCompute:
		e.handleProcessCompute(ev.Payload.(event.ProcessComputePayload))
	}
}

func (e *Engine) handleProcessStart(p event.ProcessStartPayload) {
	proc := e.byPID[p.PID]
	e.trace.Info(e.clock, "Process %d: started (quantum: %.2f ms)", proc.PID, e.quantum)

	proc.State = process.Running
	proc.RemainingQuantum = e.quantum
	e.current = proc

	if req, ok := proc.PeekNextRequest(); ok {
		e.trace.Info(e.clock, "Process %d: next operation %s sector %d", proc.PID, req.Op, req.Sector)
		e.push(0, event.SyscallStart, event.SyscallStartPayload{PID: proc.PID, Op: req.Op, Sector: req.Sector})
		return
	}

	proc.State = process.Finished
	e.trace.Info(e.clock, "Process %d: FINISHED", proc.PID)
	e.stats.ProcessFinished(proc.PID)
	e.scheduleNextProcess()
}

func (e *Engine) handleSyscallStart(p event.SyscallStartPayload) {
	proc := e.byPID[p.PID]
	e.trace.Info(e.clock, "Process %d: syscall %s(sector=%d) started", proc.PID, p.Op, p.Sector)

	proc.RemainingQuantum -= e.syscallTime
	_, miss := e.cache.Access(p.Sector)
	e.trace.Debug(e.clock, "Cache: left=%v right=%v", e.cache.LeftSectors(), e.cache.RightSectors())
	if miss {
		e.stats.RecordCacheMiss()
	} else {
		e.stats.RecordCacheHit()
	}

	e.push(e.syscallTime, event.SyscallEnd, event.SyscallEndPayload{PID: p.PID, Op: p.Op, Sector: p.Sector, Miss: miss})
}

func (e *Engine) handleSyscallEnd(p event.SyscallEndPayload) {
	proc := e.byPID[p.PID]

	if !p.Miss {
		e.trace.Info(e.clock, "Process %d: syscall ended, data in cache", proc.PID)
		proc.Advance()
		e.push(e.computeTime, event.ProcessCompute, event.ProcessComputePayload{PID: proc.PID})
		return
	}

	e.trace.Info(e.clock, "Process %d: syscall ended, need disk I/O", proc.PID)
	proc.State = process.Blocked

	e.sched.Submit(scheduler.Request{Sector: p.Sector, Op: p.Op, PID: proc.PID, SubmitTime: e.clock})
	if e.currentIO == nil {
		e.startDiskOperation()
	}
	e.scheduleNextProcess()
}

// startDiskOperation implements §4.5.3: precondition current_io_request is
// nil, pick the next request, compute its seek cost, record the stat, and
// schedule DISK_SEEK_END — at +0 if the head is already on target.
func (e *Engine) startDiskOperation() {
	if e.currentIO != nil {
		return
	}

	seekCost := func(track int) float64 {
		ms, _ := e.disk.SeekCost(track)
		return ms
	}
	req, ok := e.sched.PickNext(e.disk.SectorsPerTrack, e.disk.CurrentTrack(), seekCost)
	if !ok {
		return
	}

	e.trace.Debug(e.clock, "Scheduler %s: selected sector %d for process %d", e.sched.Name(), req.Sector, req.PID)

	e.currentIO = &req
	targetTrack := req.Track(e.disk.SectorsPerTrack)
	seekMs, path := e.disk.SeekCost(targetTrack)
	e.stats.RecordDiskSeek(seekMs)

	if seekMs > 0 {
		e.trace.Info(e.clock, "Disk: seeking to track %d (%s, %.2f ms)", targetTrack, path, seekMs)
	} else {
		e.trace.Info(e.clock, "Disk: already at track %d", targetTrack)
	}
	e.push(seekMs, event.DiskSeekEnd, nil)
}

func (e *Engine) handleDiskSeekEnd() {
	targetTrack := e.currentIO.Track(e.disk.SectorsPerTrack)
	e.disk.MoveHead(targetTrack)

	latency := e.disk.AvgRotationalLatency()
	e.trace.Info(e.clock, "Disk: rotational latency %.2f ms", latency)
	e.push(latency, event.DiskRotationEnd, nil)
}

func (e *Engine) handleDiskRotationEnd() {
	transfer := e.disk.SectorTransferTime()
	e.trace.Info(e.clock, "Disk: transferring sector %d (%.2f ms)", e.currentIO.Sector, transfer)
	e.push(transfer, event.DiskTransferEnd, nil)
}

func (e *Engine) handleDiskTransferEnd() {
	e.trace.Info(e.clock, "Disk: sector %d transfer complete", e.currentIO.Sector)
	e.push(0, event.InterruptStart, nil)
}

// handleInterruptStart implements §4.5.2/§4.5.5's lost-owner failure mode:
// if the in-flight request's PID isn't a known process, this is a
// consistency bug, not a normal path — log and stop handling this
// interrupt rather than crash. No INTERRUPT_END follows, matching the
// original's behavior of returning early.
func (e *Engine) handleInterruptStart() {
	e.trace.Info(e.clock, "Interrupt: disk I/O complete for sector %d", e.currentIO.Sector)

	if e.current != nil {
		e.current.RemainingQuantum -= e.interruptTime
	}

	blockedPID := e.currentIO.PID
	if _, ok := e.byPID[blockedPID]; !ok {
		e.trace.Info(e.clock, "ERROR: process %d not found", blockedPID)
		return
	}

	e.push(e.interruptTime, event.InterruptEnd, event.InterruptEndPayload{BlockedPID: blockedPID})
}

func (e *Engine) handleInterruptEnd(p event.InterruptEndPayload) {
	blocked := e.byPID[p.BlockedPID]
	e.trace.Info(e.clock, "Interrupt: handled, unblocking process %d", blocked.PID)

	blocked.State = process.Ready
	blocked.Advance()

	e.currentIO = nil
	e.startDiskOperation()

	// §4.5.4 says progress after a process blocks "depends on a future
	// INTERRUPT_END to unblock" it — but unblocking alone doesn't restart
	// the CPU. If nothing is RUNNING right now, the process just readied
	// would otherwise sit READY forever once no other process remains to
	// trigger scheduler-next on its own account (every process blocked at
	// once is the common case with two or more overlapping I/O-bound
	// processes). Re-run scheduler-next here whenever the CPU is idle.
	if e.current == nil {
		e.scheduleNextProcess()
	}
}

func (e *Engine) handleProcessCompute(p event.ProcessComputePayload) {
	proc := e.byPID[p.PID]
	e.trace.Info(e.clock, "Process %d: computing data (%.2f ms)", proc.PID, e.computeTime)

	proc.RemainingQuantum -= e.computeTime

	// Quantum expiry does not return proc to READY — only INTERRUPT_END
	// does that, for whichever process owns the completed I/O. Combined
	// with scheduler-next always picking the lowest-pid READY process
	// (§9 Open Question 5), a process that preempts on pure compute and
	// never submitted a disk request is not revisited: preserved as-is,
	// matching handle_process_compute in the original.
	if proc.RemainingQuantum <= 0 {
		e.trace.Info(e.clock, "Process %d: quantum expired", proc.PID)
		e.scheduleNextProcess()
		return
	}

	if !proc.IsFinished() {
		req, _ := proc.PeekNextRequest()
		e.push(0, event.SyscallStart, event.SyscallStartPayload{PID: proc.PID, Op: req.Op, Sector: req.Sector})
		return
	}

	proc.State = process.Finished
	e.trace.Info(e.clock, "Process %d: FINISHED", proc.PID)
	e.stats.ProcessFinished(proc.PID)
	e.scheduleNextProcess()
}

// scheduleNextProcess implements §4.5.4: the first READY process in PID
// order gets a fresh PROCESS_START at +0. If none is READY, nothing is
// scheduled — progress then depends entirely on a future INTERRUPT_END.
func (e *Engine) scheduleNextProcess() {
	for _, p := range e.processes {
		if p.State == process.Ready {
			e.push(0, event.ProcessStart, event.ProcessStartPayload{PID: p.PID})
			return
		}
	}
	e.trace.Info(e.clock, "Scheduler: no ready processes")
	e.current = nil
}
