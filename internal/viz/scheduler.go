package viz

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/stepviz/internal/playback"
)

// tickMsg carries the generation of the timer that asked for it.
type tickMsg struct{ gen uint64 }

// TeaScheduler runs playback timers on tea.Tick. Every only records the
// request; the model collects it with Cmd after each update and routes the
// resulting tickMsg back through Fire. Ticks from a stopped or replaced timer
// are dropped.
type TeaScheduler struct {
	mu      sync.Mutex
	gen     uint64
	live    *teaTimer
	pending bool
}

type teaTimer struct {
	s       *TeaScheduler
	gen     uint64
	d       time.Duration
	fn      func()
	stopped bool
}

func (s *TeaScheduler) Every(d time.Duration, fn func()) playback.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.live != nil {
		s.live.stopped = true
	}
	s.gen++
	s.live = &teaTimer{s: s, gen: s.gen, d: d, fn: fn}
	s.pending = true
	return s.live
}

func (t *teaTimer) Stop() {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	t.stopped = true
	if t.s.live == t {
		t.s.live = nil
		t.s.pending = false
	}
}

// Cmd returns the first tick of a newly armed timer, or nil.
func (s *TeaScheduler) Cmd() tea.Cmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.pending || s.live == nil {
		return nil
	}
	s.pending = false
	return tickCmd(s.live.gen, s.live.d)
}

// Fire runs the callback of the timer that produced msg and returns its next
// tick.
func (s *TeaScheduler) Fire(msg tickMsg) tea.Cmd {
	s.mu.Lock()
	t := s.live
	if t == nil || t.gen != msg.gen || t.stopped {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	t.fn()

	s.mu.Lock()
	defer s.mu.Unlock()
	if t.stopped || s.live != t {
		return nil
	}
	return tickCmd(t.gen, t.d)
}

func tickCmd(gen uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}
