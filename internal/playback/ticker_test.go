package playback

import (
	"sync"
	"testing"
	"time"

	"github.com/san-kum/stepviz/internal/step"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestTickerScheduler_PlaysToEnd(t *testing.T) {
	defer goleak.VerifyNone(t)

	steps := make([]step.Step, 5)
	for i := range steps {
		steps[i] = &step.BitStep{Bit: i}
	}

	done := make(chan struct{})
	var (
		mu      sync.Mutex
		cursors []int
	)
	c := New(WithSpeed(time.Millisecond))
	c.Load(step.FromSteps(steps...))
	c.OnChange(func(s Snapshot) {
		mu.Lock()
		cursors = append(cursors, s.Cursor)
		mu.Unlock()
		if s.State == Paused && s.Cursor == s.Len-1 {
			close(done)
		}
	})
	c.Play()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("playback did not finish")
	}

	assert.Equal(t, Paused, c.State())
	assert.Equal(t, 4, c.Cursor())
	mu.Lock()
	require.ElementsMatch(t, []int{0, 1, 2, 3, 4}, cursors)
	mu.Unlock()
	c.Close()
}

func TestTickerScheduler_StopIsIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t)

	fired := make(chan struct{}, 16)
	timer := TickerScheduler{}.Every(time.Millisecond, func() { fired <- struct{}{} })
	<-fired
	timer.Stop()
	timer.Stop()
}

func TestClamp(t *testing.T) {
	tests := []struct{ v, want int }{{-5, 0}, {0, 0}, {4, 4}, {999, 9}}
	for _, tt := range tests {
		assert.Equal(t, tt.want, clamp(tt.v, 0, 9))
	}
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "paused", Paused.String())
	assert.Equal(t, "playing", Playing.String())
}
