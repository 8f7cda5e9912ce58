// disksim simulates a single-spindle hard-disk I/O subsystem: process
// scheduling, syscall/interrupt timing, the two-segment LRU buffer cache,
// and a pluggable disk I/O scheduler, all driven by one discrete-event loop.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/brettlangdon/disksim/internal/cache"
	"github.com/brettlangdon/disksim/internal/disk"
	"github.com/brettlangdon/disksim/internal/engine"
	"github.com/brettlangdon/disksim/internal/scenario"
	"github.com/brettlangdon/disksim/internal/scheduler"
	"github.com/brettlangdon/disksim/internal/simconfig"
	"github.com/brettlangdon/disksim/internal/simerrors"
	"github.com/brettlangdon/disksim/internal/stats"
	"github.com/brettlangdon/disksim/internal/trace"
)

func main() {
	os.Exit(run())
}

// run builds the root command, executes it, and maps the returned error to
// an exit code: 0 success, 1 configuration or runtime error, 130 on
// SIGINT/SIGTERM — matching main.py's exit code contract.
func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	cmd := newRootCommand(ctx)
	err := cmd.Execute()

	select {
	case <-ctx.Done():
		if err == nil {
			fmt.Fprintln(os.Stderr, "\nsimulation interrupted by user")
		}
		return 130
	default:
	}

	if err == nil {
		return 0
	}
	fmt.Fprintln(os.Stderr, err)
	return 1
}

func newRootCommand(ctx context.Context) *cobra.Command {
	cfg := simconfig.Default()

	cmd := &cobra.Command{
		Use:   "disksim",
		Short: "Discrete-event simulator of a single-spindle hard-disk I/O subsystem",
		Long: `disksim simulates process scheduling, the two-segment LRU-2Q buffer
cache, and a pluggable disk I/O scheduler (FIFO, LOOK, N-LOOK) over a
virtual clock, and reports seek, cache, and per-process statistics.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runSimulation(ctx, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.SchedulerName, "scheduler", cfg.SchedulerName,
		fmt.Sprintf("I/O scheduler: %s", strings.Join(simconfig.ValidSchedulers, ", ")))
	flags.IntVar(&cfg.NumProcesses, "processes", cfg.NumProcesses, "number of user processes")
	flags.Float64Var(&cfg.Quantum, "quantum", cfg.Quantum, "CPU quantum per process, ms")
	flags.IntVar(&cfg.TotalBuffers, "buffers", cfg.TotalBuffers, "total buffer cache slots")
	flags.IntVar(&cfg.NumTracks, "tracks", cfg.NumTracks, "disk track count")
	flags.IntVar(&cfg.SectorsPerTrack, "sectors-per-track", cfg.SectorsPerTrack, "sectors per disk track")
	flags.IntVar(&cfg.RPM, "rpm", cfg.RPM, "disk rotation speed, RPM")
	flags.StringVar(&cfg.ScenarioName, "scenario", cfg.ScenarioName,
		fmt.Sprintf("workload scenario: %s", strings.Join(simconfig.ValidScenarios, ", ")))
	flags.StringVar(&cfg.OutputFile, "output", cfg.OutputFile, "write trace and statistics to this file instead of stdout")
	flags.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "emit scheduler/cache internals as well as state transitions")

	return cmd
}

// runSimulation implements the body of main.py's main(): validate, open the
// output sink (falling back to stdout on failure), print the configuration
// banner, build every component, run the engine, and print the final
// statistics report.
func runSimulation(ctx context.Context, cfg simconfig.Config) error {
	if err := simconfig.Validate(cfg); err != nil {
		return err
	}

	out, closeOut := openOutput(cfg.OutputFile)
	defer closeOut()

	level := trace.LevelInfo
	if cfg.Verbose {
		level = trace.LevelDebug
	}
	tr := trace.New(&trace.Config{Level: level, Output: out})

	printConfiguration(tr, cfg)

	d := disk.New(disk.Geometry{
		NumTracks:        cfg.NumTracks,
		SectorsPerTrack:  cfg.SectorsPerTrack,
		SeekTimePerTrack: cfg.SeekTimePerTrack,
		SeekTimeToEdge:   cfg.SeekTimeToEdge,
		RPM:              float64(cfg.RPM),
	})
	c := cache.New(cfg.TotalBuffers, cfg.MaxRightSegment)

	sched, ok := scheduler.New(strings.ToLower(cfg.SchedulerName))
	if !ok {
		return simerrors.Configf("run", "unknown scheduler %q", cfg.SchedulerName)
	}

	processes, err := scenario.Build(cfg)
	if err != nil {
		return err
	}

	e := engine.New(d, c, sched, processes, cfg.Quantum, cfg.SyscallTime, cfg.InterruptTime, cfg.ComputeTime, tr)

	runDone := make(chan error, 1)
	go func() { runDone <- e.Run() }()

	select {
	case <-ctx.Done():
		return simerrors.Interrupted("run")
	case err := <-runDone:
		if err != nil {
			return err
		}
	}

	tr.Blank()
	tr.Raw("%s", stats.Report(e.Stats(), e.ClockMs(), e.ProcessReports(), e.CacheOccupancy()))

	if cfg.OutputFile != "" {
		fmt.Printf("\nresults saved to file: %s\n", cfg.OutputFile)
	}
	return nil
}

// openOutput implements §7's output-redirection contract: an unopenable
// file falls back to stdout with a warning rather than aborting the run.
func openOutput(filename string) (*os.File, func()) {
	if filename == "" {
		return os.Stdout, func() {}
	}
	f, err := os.Create(filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, simerrors.IOErrorf("open_output", err))
		fmt.Fprintln(os.Stderr, "falling back to stdout")
		return os.Stdout, func() {}
	}
	return f, func() { f.Close() }
}

func printConfiguration(tr *trace.Sink, cfg simconfig.Config) {
	tr.Raw("System configuration:")
	tr.Raw("  Scheduler: %s", strings.ToUpper(cfg.SchedulerName))
	tr.Raw("  Processes: %d", cfg.NumProcesses)
	tr.Raw("  Scenario: %s", cfg.ScenarioName)
	tr.Raw("  Quantum: %g ms", cfg.Quantum)
	tr.Raw("")
	tr.Raw("Disk geometry:")
	tr.Raw("  Tracks: %d", cfg.NumTracks)
	tr.Raw("  Sectors per track: %d", cfg.SectorsPerTrack)
	tr.Raw("  RPM: %d", cfg.RPM)
	tr.Raw("  Seek time per track: %g ms", cfg.SeekTimePerTrack)
	tr.Raw("")
	tr.Raw("Buffer cache:")
	tr.Raw("  Buffers: %d", cfg.TotalBuffers)
	tr.Raw("  Max right segment: %d", cfg.MaxRightSegment)
	if cfg.OutputFile != "" {
		tr.Raw("")
		tr.Raw("Results will be saved to: %s", cfg.OutputFile)
	}
	tr.Raw("")
	tr.Raw(strings.Repeat("-", 80))
	tr.Raw("")
}
