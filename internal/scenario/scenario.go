// Package scenario builds the initial process/request workload for a run.
// Each generator is a direct translation of one of the reference
// implementation's scenario modules into the process.Process representation.
package scenario

import (
	"math/rand"

	"github.com/brettlangdon/disksim/internal/event"
	"github.com/brettlangdon/disksim/internal/process"
	"github.com/brettlangdon/disksim/internal/simconfig"
	"github.com/brettlangdon/disksim/internal/simerrors"
)

// randomScenarioSeed pins the random scenario's PRNG so repeated runs with
// the same config reproduce the same workload, matching random.seed(42) in
// the scenario this was translated from.
const randomScenarioSeed = 42

// Build dispatches on cfg.ScenarioName to the matching generator.
func Build(cfg simconfig.Config) ([]*process.Process, error) {
	switch cfg.ScenarioName {
	case "default":
		return Default(cfg), nil
	case "sequential":
		return Sequential(cfg), nil
	case "random":
		return Random(cfg), nil
	case "cache-test":
		return CacheTest(cfg), nil
	default:
		return nil, simerrors.Configf("scenario.Build", "unknown scenario %q", cfg.ScenarioName)
	}
}

func reqs(pairs ...any) []process.Request {
	out := make([]process.Request, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, process.Request{Op: pairs[i].(event.RequestType), Sector: pairs[i+1].(int)})
	}
	return out
}

// Default mirrors create_default_scenario: a small set of processes with
// mixed read/write traffic over varied regions of the disk, including
// repeat accesses that exercise the buffer cache.
func Default(cfg simconfig.Config) []*process.Process {
	procs := []*process.Process{
		process.New(1, reqs(
			event.Read, 1250,
			event.Write, 1700,
			event.Read, 1250,
			event.Read, 500,
		)),
	}

	if cfg.NumProcesses >= 2 {
		procs = append(procs, process.New(2, reqs(
			event.Read, 5000,
			event.Read, 5100,
			event.Write, 3000,
		)))
	}
	if cfg.NumProcesses >= 3 {
		procs = append(procs, process.New(3, reqs(
			event.Read, 2500,
			event.Write, 2600,
			event.Read, 2500,
		)))
	}
	return procs
}

// Sequential mirrors create_sequential_scenario: each process walks 10
// ascending sectors spaced 100 apart, alternating read/write, starting from a distinct
// offset so processes don't collide. This is the layout LOOK and N-LOOK are
// built to exploit.
func Sequential(cfg simconfig.Config) []*process.Process {
	const baseSector = 1000
	procs := make([]*process.Process, 0, cfg.NumProcesses)

	for i := 0; i < cfg.NumProcesses; i++ {
		start := baseSector + i*2000
		requests := make([]process.Request, 0, 10)
		for j := 0; j < 10; j++ {
			op := event.Read
			if j%2 != 0 {
				op = event.Write
			}
			requests = append(requests, process.Request{Op: op, Sector: start + j*100})
		}
		procs = append(procs, process.New(i+1, requests))
	}
	return procs
}

// Random mirrors create_random_scenario: every process issues 15 requests
// at uniformly random sectors across the whole disk, under a fixed seed so
// the workload is reproducible. This is the scenario that most separates
// FIFO from the sorting schedulers.
func Random(cfg simconfig.Config) []*process.Process {
	totalSectors := cfg.NumTracks * cfg.SectorsPerTrack
	rng := rand.New(rand.NewSource(randomScenarioSeed))

	procs := make([]*process.Process, 0, cfg.NumProcesses)
	for i := 0; i < cfg.NumProcesses; i++ {
		requests := make([]process.Request, 0, 15)
		for j := 0; j < 15; j++ {
			sector := rng.Intn(totalSectors)
			op := event.Read
			if rng.Intn(2) == 1 {
				op = event.Write
			}
			requests = append(requests, process.Request{Op: op, Sector: sector})
		}
		procs = append(procs, process.New(i+1, requests))
	}
	return procs
}

// CacheTest mirrors create_cache_test_scenario: heavy repeat access to a
// small handful of sectors per process, built to demonstrate the LRU-2Q
// cache's hit rate under locality.
func CacheTest(cfg simconfig.Config) []*process.Process {
	procs := []*process.Process{
		process.New(1, reqs(
			event.Read, 100,
			event.Read, 200,
			event.Read, 100,
			event.Read, 200,
			event.Read, 300,
			event.Read, 100,
			event.Write, 200,
			event.Read, 100,
		)),
	}

	if cfg.NumProcesses >= 2 {
		procs = append(procs, process.New(2, reqs(
			event.Read, 500,
			event.Read, 600,
			event.Read, 500,
			event.Read, 600,
			event.Read, 500,
		)))
	}
	if cfg.NumProcesses >= 3 {
		procs = append(procs, process.New(3, reqs(
			event.Read, 1000,
			event.Write, 1000,
			event.Read, 1100,
			event.Read, 1000,
			event.Read, 1100,
		)))
	}
	return procs
}
