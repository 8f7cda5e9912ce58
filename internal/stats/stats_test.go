package stats

import (
	"strings"
	"testing"
)

func TestEmptyWorkloadStats(t *testing.T) {
	s := New()
	if s.TotalDiskSeeks != 0 {
		t.Errorf("TotalDiskSeeks = %d, want 0", s.TotalDiskSeeks)
	}
	if s.CacheHits != 0 {
		t.Errorf("CacheHits = %d, want 0", s.CacheHits)
	}
	if s.CacheMisses != 0 {
		t.Errorf("CacheMisses = %d, want 0", s.CacheMisses)
	}
	if got := s.CacheHitRate(); got != 0 {
		t.Errorf("CacheHitRate() = %v, want 0", got)
	}
	if got := s.AvgSeekTimeMs(); got != 0 {
		t.Errorf("AvgSeekTimeMs() = %v, want 0", got)
	}
}

func TestHitRateComputation(t *testing.T) {
	s := New()
	s.RecordCacheHit()
	s.RecordCacheHit()
	s.RecordCacheMiss()
	if got, want := s.CacheHitRate(), 66.666; got < want-0.01 || got > want+0.01 {
		t.Errorf("CacheHitRate() = %v, want ~%v", got, want)
	}
}

func TestFinishedProcessesDeduped(t *testing.T) {
	s := New()
	s.ProcessFinished(1)
	s.ProcessFinished(1)
	s.ProcessFinished(2)
	if got := s.FinishedCount(); got != 2 {
		t.Errorf("FinishedCount() = %d, want 2", got)
	}
}

func TestReportIncludesPerProcessLines(t *testing.T) {
	s := New()
	s.RecordDiskSeek(5)
	s.RecordCacheHit()
	out := Report(s, 123.45, []ProcessReport{
		{PID: 2, Completed: 1, Total: 3, State: "BLOCKED"},
		{PID: 1, Completed: 3, Total: 3, State: "FINISHED"},
	}, "Left: 1, Right: 0")

	for _, want := range []string{
		"Process 1: 3/3 operations, state: FINISHED",
		"Process 2: 1/3 operations, state: BLOCKED",
		"Total simulated time: 123.45 ms",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q, got:\n%s", want, out)
		}
	}
}
