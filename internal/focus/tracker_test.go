package focus

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/primer/internal/tutor"
)

func testConfig() Config {
	return Config{
		Debounce:        40 * time.Millisecond,
		TopExclusion:    0.20,
		BottomExclusion: 0.50,
	}
}

// viewport of height 100 → focus band covers lines [20, 50).
func newTestTracker(ch tutor.Channel) *Tracker {
	tr := New(ch, testConfig())
	tr.SetViewport(0, 100)
	return tr
}

func waitForSwitches(t *testing.T, rec *tutor.Recorder, want int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if len(rec.Switches()) >= want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	require.Len(t, rec.Switches(), want)
}

func TestTracker_CommitsAfterDebounce(t *testing.T) {
	rec := tutor.NewRecorder()
	tr := newTestTracker(rec)
	defer tr.Close()

	tr.Observe("w1", "balancer", 22, 10)
	waitForSwitches(t, rec, 1)

	switches := rec.Switches()
	require.Len(t, switches, 1)
	assert.Equal(t, "w1", switches[0].InstanceID)
	assert.Equal(t, "balancer", switches[0].PrimitiveType)
	assert.Equal(t, "w1", tr.Current())
}

func TestTracker_BurstYieldsSingleSwitch(t *testing.T) {
	rec := tutor.NewRecorder()
	cfg := testConfig()
	cfg.Debounce = 150 * time.Millisecond
	tr := New(rec, cfg)
	tr.SetViewport(0, 100)
	defer tr.Close()

	// Five instances become "most in view" in quick succession, all
	// within one debounce window. Each newcomer sits closer to the
	// band top than the last, so each takes over as winner.
	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("w%d", i+1)
		tr.Observe(id, "flashcards", 30-2*i, 8)
		time.Sleep(5 * time.Millisecond)
	}

	waitForSwitches(t, rec, 1)
	// Give a stale timer a chance to misfire before asserting.
	time.Sleep(200 * time.Millisecond)

	switches := rec.Switches()
	require.Len(t, switches, 1, "only the last candidate standing may switch")
	assert.Equal(t, "w5", switches[0].InstanceID)
}

func TestTracker_RemoveBeforeFireCancels(t *testing.T) {
	rec := tutor.NewRecorder()
	tr := newTestTracker(rec)
	defer tr.Close()

	tr.Observe("w1", "balancer", 25, 10)
	tr.Remove("w1")

	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, rec.Switches(), "unmounted winner must not switch")
	assert.Equal(t, "", tr.Current())
}

func TestTracker_NoDeliveryAfterClose(t *testing.T) {
	rec := tutor.NewRecorder()
	tr := newTestTracker(rec)

	tr.Observe("w1", "balancer", 25, 10)
	tr.Close()

	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, rec.Switches())
}

func TestTracker_DropsWhenSessionInactive(t *testing.T) {
	rec := tutor.NewRecorder()
	rec.Mode = tutor.SessionModeIdle
	tr := newTestTracker(rec)
	defer tr.Close()

	tr.Observe("w1", "balancer", 25, 10)
	time.Sleep(100 * time.Millisecond)

	// The switch is dropped silently (no queueing) but the tracker
	// still commits its own focus state.
	assert.Empty(t, rec.Switches())
	assert.Equal(t, "w1", tr.Current())
}

func TestTracker_FocusBandExclusions(t *testing.T) {
	rec := tutor.NewRecorder()
	tr := newTestTracker(rec)
	defer tr.Close()

	// Band is [20, 50). Top-excluded and bottom-excluded widgets never
	// become candidates.
	tr.Observe("above", "media", 0, 18)   // entirely above the band
	tr.Observe("below", "media", 60, 30)  // in the bottom 50%
	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, rec.Switches())

	tr.Observe("inband", "media", 24, 10)
	waitForSwitches(t, rec, 1)
	assert.Equal(t, "inband", rec.Switches()[0].InstanceID)
}

func TestTracker_ClosestTopEdgeWins(t *testing.T) {
	rec := tutor.NewRecorder()
	tr := newTestTracker(rec)
	defer tr.Close()

	tr.Observe("far", "media", 40, 9)
	tr.Observe("near", "media", 21, 9)
	waitForSwitches(t, rec, 1)
	assert.Equal(t, "near", rec.Switches()[0].InstanceID)
}

func TestTracker_StableWinnerSurvivesScroll(t *testing.T) {
	rec := tutor.NewRecorder()
	tr := newTestTracker(rec)
	defer tr.Close()

	// The same widget stays the winner while its extent shifts a
	// little: the timer must not restart.
	tr.Observe("w1", "balancer", 25, 10)
	time.Sleep(15 * time.Millisecond)
	tr.Observe("w1", "balancer", 24, 10)
	time.Sleep(15 * time.Millisecond)
	tr.Observe("w1", "balancer", 23, 10)

	waitForSwitches(t, rec, 1)
}

func TestTracker_OnSwitchObserver(t *testing.T) {
	rec := tutor.NewRecorder()
	tr := newTestTracker(rec)
	defer tr.Close()

	var gotID, gotType string
	tr.OnSwitch(func(id, pt string) { gotID, gotType = id, pt })

	tr.Observe("w1", "placevalue", 25, 10)
	waitForSwitches(t, rec, 1)

	assert.Equal(t, "w1", gotID)
	assert.Equal(t, "placevalue", gotType)
}
