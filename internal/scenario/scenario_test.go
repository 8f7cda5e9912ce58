package scenario

import (
	"testing"

	"github.com/brettlangdon/disksim/internal/event"
	"github.com/brettlangdon/disksim/internal/simconfig"
)

func TestDefaultScenarioGrowsWithNumProcesses(t *testing.T) {
	cfg := simconfig.Default()

	cfg.NumProcesses = 1
	if got := len(Default(cfg)); got != 1 {
		t.Errorf("NumProcesses=1: len(Default()) = %d, want 1", got)
	}

	cfg.NumProcesses = 2
	procs := Default(cfg)
	if got := len(procs); got != 2 {
		t.Fatalf("NumProcesses=2: len(Default()) = %d, want 2", got)
	}
	if got := procs[0].TotalRequests(); got != 4 {
		t.Errorf("procs[0].TotalRequests() = %d, want 4", got)
	}
	if got := procs[0].Requests[0].Op; got != event.Read {
		t.Errorf("procs[0].Requests[0].Op = %v, want Read", got)
	}
	if got := procs[0].Requests[0].Sector; got != 1250 {
		t.Errorf("procs[0].Requests[0].Sector = %d, want 1250", got)
	}

	cfg.NumProcesses = 3
	if got := len(Default(cfg)); got != 3 {
		t.Errorf("NumProcesses=3: len(Default()) = %d, want 3", got)
	}
}

func TestSequentialScenarioIsMonotonicPerProcess(t *testing.T) {
	cfg := simconfig.Default()
	cfg.NumProcesses = 2
	procs := Sequential(cfg)
	if got := len(procs); got != 2 {
		t.Fatalf("len(Sequential()) = %d, want 2", got)
	}

	for _, p := range procs {
		if got := p.TotalRequests(); got != 10 {
			t.Errorf("process %d: TotalRequests() = %d, want 10", p.PID, got)
		}
		for i := 1; i < len(p.Requests); i++ {
			if p.Requests[i].Sector <= p.Requests[i-1].Sector {
				t.Errorf("process %d: request %d sector %d not greater than previous %d",
					p.PID, i, p.Requests[i].Sector, p.Requests[i-1].Sector)
			}
		}
	}
	if procs[0].Requests[0].Sector == procs[1].Requests[0].Sector {
		t.Error("the two processes should start at different sectors")
	}
}

func TestRandomScenarioIsReproducibleUnderFixedSeed(t *testing.T) {
	cfg := simconfig.Default()
	cfg.NumProcesses = 2

	a := Random(cfg)
	b := Random(cfg)
	if len(a) != len(b) {
		t.Fatalf("len(a) = %d, len(b) = %d, want equal", len(a), len(b))
	}
	for i := range a {
		if a[i].TotalRequests() != b[i].TotalRequests() {
			t.Fatalf("process %d: TotalRequests differ between runs", i)
		}
		for j := range a[i].Requests {
			if a[i].Requests[j] != b[i].Requests[j] {
				t.Errorf("process %d request %d = %v, want %v (same seed should reproduce)",
					i, j, a[i].Requests[j], b[i].Requests[j])
			}
		}
	}
}

func TestRandomScenarioStaysWithinDiskBounds(t *testing.T) {
	cfg := simconfig.Default()
	cfg.NumTracks = 10
	cfg.SectorsPerTrack = 5
	cfg.NumProcesses = 1
	total := cfg.NumTracks * cfg.SectorsPerTrack

	procs := Random(cfg)
	if got := len(procs); got != 1 {
		t.Fatalf("len(Random()) = %d, want 1", got)
	}
	for _, r := range procs[0].Requests {
		if r.Sector < 0 || r.Sector >= total {
			t.Errorf("sector %d out of bounds [0, %d)", r.Sector, total)
		}
	}
}

func TestCacheTestScenarioRepeatsSectors(t *testing.T) {
	cfg := simconfig.Default()
	cfg.NumProcesses = 1
	procs := CacheTest(cfg)
	if got := len(procs); got != 1 {
		t.Fatalf("len(CacheTest()) = %d, want 1", got)
	}

	seen := map[int]int{}
	for _, r := range procs[0].Requests {
		seen[r.Sector]++
	}
	if seen[100] <= 1 {
		t.Errorf("sector 100 seen %d times, want >1 to exercise the cache", seen[100])
	}
}

func TestBuildDispatchesByName(t *testing.T) {
	cfg := simconfig.Default()

	for _, name := range simconfig.ValidScenarios {
		cfg.ScenarioName = name
		procs, err := Build(cfg)
		if err != nil {
			t.Errorf("Build(%q) returned error: %v", name, err)
		}
		if len(procs) == 0 {
			t.Errorf("Build(%q) returned no processes", name)
		}
	}

	cfg.ScenarioName = "bogus"
	if _, err := Build(cfg); err == nil {
		t.Error(`Build("bogus") = nil error, want error`)
	}
}
