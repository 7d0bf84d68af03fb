package playback

import (
	"sync"
	"time"
)

// Timer is a handle to a periodic callback.
type Timer interface {
	Stop()
}

// Scheduler arms periodic callbacks.
type Scheduler interface {
	Every(d time.Duration, fn func()) Timer
}

// TickerScheduler runs each callback on a time.Ticker in its own goroutine.
type TickerScheduler struct{}

func (TickerScheduler) Every(d time.Duration, fn func()) Timer {
	t := &tickerTimer{ticker: time.NewTicker(d), done: make(chan struct{})}
	go t.loop(fn)
	return t
}

type tickerTimer struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (t *tickerTimer) loop(fn func()) {
	for {
		select {
		case <-t.done:
			return
		case <-t.ticker.C:
			select {
			case <-t.done:
				return
			default:
			}
			fn()
		}
	}
}

// Stop does not wait for an in-flight callback; the Controller discards
// callbacks from stopped timers.
func (t *tickerTimer) Stop() {
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)
	})
}

// ManualScheduler fires timers only when Tick is called. It lets tests and
// headless runs step time deterministically.
type ManualScheduler struct {
	mu     sync.Mutex
	timers []*manualTimer
	armed  int
}

type manualTimer struct {
	owner    *ManualScheduler
	interval time.Duration
	fn       func()
	stopped  bool
}

func (m *ManualScheduler) Every(d time.Duration, fn func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTimer{owner: m, interval: d, fn: fn}
	m.timers = append(m.timers, t)
	m.armed++
	return t
}

func (t *manualTimer) Stop() {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	t.stopped = true
}

// Tick fires every live timer once and reports how many fired.
func (m *ManualScheduler) Tick() int {
	m.mu.Lock()
	live := make([]*manualTimer, 0, len(m.timers))
	for _, t := range m.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	m.timers = live
	m.mu.Unlock()

	for _, t := range live {
		t.fn()
	}
	return len(live)
}

// Active counts timers that have not been stopped.
func (m *ManualScheduler) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Interval returns the period of the live timer, or 0 when none is armed.
func (m *ManualScheduler) Interval() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.timers {
		if !t.stopped {
			return t.interval
		}
	}
	return 0
}

// Armed counts every timer ever created.
func (m *ManualScheduler) Armed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.armed
}
