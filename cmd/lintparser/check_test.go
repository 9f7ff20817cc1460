package main

import (
	"testing"

	"github.com/Machtan/lintparser/internal/driver"
)

// The checker goroutine keeps emitting events after the live display has
// stopped reading them; collecting the results must first drain the
// channel or the goroutine blocks mid-send and the collect hangs.
func TestAwaitResults_DrainsAbandonedEvents(t *testing.T) {
	events := make(chan driver.Event, 1)
	resCh := make(chan []driver.DirResult, 1)
	want := []driver.DirResult{{Dir: "crates/a"}, {Dir: "crates/b"}}

	go func() {
		sink := driver.ChannelSink{Ch: events}
		// More events than the channel buffers, with no reader yet.
		for range want {
			sink.OnEvent(driver.Event{Dir: "crates/a", Stage: driver.StageCheck, Status: driver.StatusWorking})
			sink.OnEvent(driver.Event{Dir: "crates/a", Stage: driver.StageCheck, Status: driver.StatusDone})
		}
		resCh <- want
		close(events)
	}()

	got := awaitResults(events, resCh)
	if len(got) != len(want) {
		t.Fatalf("result count = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Dir != want[i].Dir {
			t.Errorf("results[%d].Dir = %q, want %q", i, got[i].Dir, want[i].Dir)
		}
	}
}
