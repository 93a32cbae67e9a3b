package service

import (
	"testing"
	"time"

	"github.com/campuseats/canteen/internal/core/domain"
)

const (
	testTick  = 5 * time.Millisecond
	testDelay = 5 * time.Millisecond
)

func TestProgressTracker_RunsToCompletion(t *testing.T) {
	tracker := NewProgressTracker(testTick, testDelay)
	tracker.Start()

	select {
	case <-tracker.Done():
	case <-time.After(time.Second):
		t.Fatal("tracker did not complete in time")
	}

	if got := tracker.Progress(); got != domain.ProgressMax {
		t.Errorf("expected progress %d, got %d", domain.ProgressMax, got)
	}
	if !tracker.Ready() {
		t.Error("expected ready flag after completion")
	}
}

func TestProgressTracker_NoTickBeyondMax(t *testing.T) {
	tracker := NewProgressTracker(testTick, testDelay)
	tracker.Start()

	<-tracker.Done()

	// Give a stale ticker time to misfire if one were still running.
	time.Sleep(5 * testTick)
	if got := tracker.Progress(); got != domain.ProgressMax {
		t.Errorf("progress advanced past max: %d", got)
	}
}

func TestProgressTracker_ReadyOnlyAfterMax(t *testing.T) {
	tracker := NewProgressTracker(50*time.Millisecond, 50*time.Millisecond)
	tracker.Start()
	defer tracker.Stop()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case <-deadline:
			t.Fatal("tracker did not finish")
		default:
		}
		// Read ready first: progress is monotonic, so ready observed
		// true guarantees progress had already reached max.
		ready := tracker.Ready()
		progress := tracker.Progress()
		if ready {
			if progress != domain.ProgressMax {
				t.Fatalf("ready at progress %d", progress)
			}
			return
		}
		time.Sleep(time.Millisecond)
	}
}

func TestProgressTracker_Monotonic(t *testing.T) {
	tracker := NewProgressTracker(testTick, testDelay)
	tracker.Start()

	last := 0
	for !tracker.Ready() {
		p := tracker.Progress()
		if p < last {
			t.Fatalf("progress moved backwards: %d after %d", p, last)
		}
		last = p
		time.Sleep(time.Millisecond)
	}
}

func TestProgressTracker_StopCancelsRun(t *testing.T) {
	tracker := NewProgressTracker(20*time.Millisecond, 20*time.Millisecond)
	tracker.Start()

	time.Sleep(50 * time.Millisecond)
	tracker.Stop()
	frozen := tracker.Progress()

	time.Sleep(100 * time.Millisecond)
	if got := tracker.Progress(); got != frozen {
		t.Errorf("progress advanced after Stop: %d -> %d", frozen, got)
	}
	if tracker.Ready() {
		t.Error("ready flag fired on a stopped tracker")
	}
}

func TestProgressTracker_StopIsIdempotent(t *testing.T) {
	tracker := NewProgressTracker(testTick, testDelay)
	tracker.Start()
	tracker.Stop()
	tracker.Stop()
}
