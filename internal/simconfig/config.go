// Package simconfig holds the simulator's configuration surface: the tunable
// parameters accepted at the CLI boundary, their defaults, and validation.
package simconfig

import (
	"strings"

	"github.com/brettlangdon/disksim/internal/simerrors"
)

// Config is the full set of tunables for one simulation run, mirroring the
// CLI flags of spec.md §6.
type Config struct {
	// Disk geometry.
	NumTracks        int
	SectorsPerTrack  int
	SeekTimePerTrack float64
	SeekTimeToEdge   float64
	RPM              int

	// Buffer cache.
	TotalBuffers    int
	MaxRightSegment int

	// Scheduling timing.
	Quantum      float64
	SyscallTime  float64
	InterruptTime float64
	ComputeTime  float64

	// Run configuration.
	SchedulerName string
	NumProcesses  int
	ScenarioName  string
	OutputFile    string
	Verbose       bool
}

// Default returns the default configuration, matching the original
// reference implementation's defaults.
func Default() Config {
	return Config{
		NumTracks:        10000,
		SectorsPerTrack:  500,
		SeekTimePerTrack: 0.5,
		SeekTimeToEdge:   10.0,
		RPM:              7500,

		TotalBuffers:    10,
		MaxRightSegment: 5,

		Quantum:       20.0,
		SyscallTime:   0.15,
		InterruptTime: 0.05,
		ComputeTime:   7.0,

		SchedulerName: "fifo",
		NumProcesses:  2,
		ScenarioName:  "default",
	}
}

// ValidSchedulers lists the scheduler names spec.md §6 permits. FLOOK is
// documented in the original tooling but never implemented consistently
// (spec.md §9 Open Question 4) and is intentionally excluded here.
var ValidSchedulers = []string{"fifo", "look", "nlook"}

// ValidScenarios lists the scenario names spec.md §6 permits.
var ValidScenarios = []string{"default", "sequential", "random", "cache-test"}

// Validate checks every constraint in spec.md §6, returning the first
// violation found as a CodeConfig error — matching the reference
// implementation's first-failure-wins validate_config.
func Validate(c Config) error {
	switch {
	case c.NumTracks <= 0:
		return simerrors.Configf("validate_config", "num_tracks must be positive, got %d", c.NumTracks)
	case c.SectorsPerTrack <= 0:
		return simerrors.Configf("validate_config", "sectors_per_track must be positive, got %d", c.SectorsPerTrack)
	case c.SeekTimePerTrack < 0:
		return simerrors.Configf("validate_config", "seek_time_per_track must not be negative, got %v", c.SeekTimePerTrack)
	case c.SeekTimeToEdge < 0:
		return simerrors.Configf("validate_config", "seek_time_to_edge must not be negative, got %v", c.SeekTimeToEdge)
	case c.RPM <= 0:
		return simerrors.Configf("validate_config", "rpm must be positive, got %d", c.RPM)
	case c.TotalBuffers <= 0:
		return simerrors.Configf("validate_config", "total_buffers must be positive, got %d", c.TotalBuffers)
	case c.MaxRightSegment >= c.TotalBuffers:
		return simerrors.Configf("validate_config", "max_right_segment (%d) must be less than total_buffers (%d)", c.MaxRightSegment, c.TotalBuffers)
	case c.Quantum <= 0:
		return simerrors.Configf("validate_config", "quantum must be positive, got %v", c.Quantum)
	case c.SyscallTime < 0:
		return simerrors.Configf("validate_config", "syscall_time must not be negative, got %v", c.SyscallTime)
	case c.InterruptTime < 0:
		return simerrors.Configf("validate_config", "interrupt_time must not be negative, got %v", c.InterruptTime)
	case c.ComputeTime < 0:
		return simerrors.Configf("validate_config", "compute_time must not be negative, got %v", c.ComputeTime)
	case c.NumProcesses <= 0:
		return simerrors.Configf("validate_config", "num_processes must be positive, got %d", c.NumProcesses)
	case !contains(ValidSchedulers, strings.ToLower(c.SchedulerName)):
		return simerrors.Configf("validate_config", "unknown scheduler %q, available: %s", c.SchedulerName, strings.Join(ValidSchedulers, ", "))
	case !contains(ValidScenarios, strings.ToLower(c.ScenarioName)):
		return simerrors.Configf("validate_config", "unknown scenario %q, available: %s", c.ScenarioName, strings.Join(ValidScenarios, ", "))
	default:
		return nil
	}
}

func contains(xs []string, target string) bool {
	for _, x := range xs {
		if x == target {
			return true
		}
	}
	return false
}
