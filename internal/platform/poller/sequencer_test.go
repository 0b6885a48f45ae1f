package poller

import "testing"

func TestSequencer_DiscardsStaleResponses(t *testing.T) {
	t.Parallel()

	var seq Sequencer
	manual := seq.Next()
	tick := seq.Next()

	var shown uint64
	if !seq.Apply(tick, func() { shown = tick }) {
		t.Fatalf("newest response should apply")
	}
	if seq.Apply(manual, func() { shown = manual }) {
		t.Fatalf("older manual refresh must be discarded")
	}
	if shown != tick || seq.Applied() != tick {
		t.Fatalf("expected tick %d to stay applied, shown=%d applied=%d", tick, shown, seq.Applied())
	}
	if seq.Apply(tick, nil) {
		t.Fatalf("same sequence must not apply twice")
	}
}
