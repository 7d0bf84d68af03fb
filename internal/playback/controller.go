package playback

import (
	"sync"
	"time"

	"github.com/san-kum/stepviz/internal/step"
	"go.uber.org/zap"
)

type State int

const (
	Idle State = iota
	Paused
	Playing
)

func (s State) String() string {
	switch s {
	case Paused:
		return "paused"
	case Playing:
		return "playing"
	default:
		return "idle"
	}
}

const DefaultSpeed = 500 * time.Millisecond

// Snapshot is a consistent view of a Controller taken under its lock.
type Snapshot struct {
	State  State
	Cursor int
	Len    int
	Speed  time.Duration
	Step   step.Step
}

type Option func(*Controller)

func WithScheduler(s Scheduler) Option {
	return func(c *Controller) { c.sched = s }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithSpeed sets the initial interval; non-positive values are ignored.
func WithSpeed(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.speed = d
		}
	}
}

type Controller struct {
	mu        sync.Mutex
	sched     Scheduler
	log       *zap.Logger
	seq       step.Sequence
	state     State
	cursor    int
	speed     time.Duration
	timer     Timer
	gen       uint64
	observers []func(Snapshot)
}

func New(opts ...Option) *Controller {
	c := &Controller{
		sched: TickerScheduler{},
		log:   zap.NewNop(),
		speed: DefaultSpeed,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnChange registers fn to run after every transition.
func (c *Controller) OnChange(fn func(Snapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

// Load replaces the sequence and cursor wholesale and parks at Paused(0).
// Loading an empty Sequence returns the Controller to Idle.
func (c *Controller) Load(seq step.Sequence) {
	c.transition("load", func() {
		c.stopTimer()
		c.seq = seq
		c.cursor = 0
		if seq.Len() == 0 {
			c.state = Idle
			return
		}
		c.state = Paused
	})
}

// Play starts the timer from the current cursor. It is a no-op when Idle,
// already Playing, or parked on the last Step.
func (c *Controller) Play() {
	c.transition("play", func() {
		if c.state != Paused || c.cursor >= c.last() {
			return
		}
		c.state = Playing
		c.armTimer()
	})
}

func (c *Controller) Pause() {
	c.transition("pause", func() {
		if c.state != Playing {
			return
		}
		c.stopTimer()
		c.state = Paused
	})
}

// Toggle pauses when playing and plays otherwise.
func (c *Controller) Toggle() {
	c.mu.Lock()
	playing := c.state == Playing
	c.mu.Unlock()
	if playing {
		c.Pause()
	} else {
		c.Play()
	}
}

// Seek moves to clamp(i, 0, last) and pauses. It is a no-op when Idle.
func (c *Controller) Seek(i int) {
	c.transition("seek", func() { c.seekLocked(i) })
}

func (c *Controller) StepForward() {
	c.transition("step_forward", func() { c.seekLocked(c.cursor + 1) })
}

func (c *Controller) StepBack() {
	c.transition("step_back", func() { c.seekLocked(c.cursor - 1) })
}

func (c *Controller) seekLocked(i int) {
	if c.state == Idle {
		return
	}
	c.stopTimer()
	c.cursor = clamp(i, 0, c.last())
	c.state = Paused
}

// SetSpeed changes the tick interval, re-arming a running timer without
// touching the cursor. Non-positive intervals are ignored.
func (c *Controller) SetSpeed(d time.Duration) {
	if d <= 0 {
		c.log.Debug("ignoring non-positive speed", zap.Duration("speed", d))
		return
	}
	c.transition("set_speed", func() {
		c.speed = d
		if c.state == Playing {
			c.stopTimer()
			c.armTimer()
		}
	})
}

// Reset returns to Paused(0), or stays Idle when nothing is loaded.
func (c *Controller) Reset() {
	c.transition("reset", func() {
		c.stopTimer()
		c.cursor = 0
		if c.seq.Len() == 0 {
			c.state = Idle
			return
		}
		c.state = Paused
	})
}

// Close stops any running timer and returns the Controller to Idle.
func (c *Controller) Close() {
	c.transition("close", func() {
		c.stopTimer()
		c.seq = step.Sequence{}
		c.cursor = 0
		c.state = Idle
	})
}

// Current returns the Step under the cursor, or nil when Idle.
func (c *Controller) Current() step.Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentLocked()
}

func (c *Controller) Cursor() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cursor
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Speed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.speed
}

func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq.Len()
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		State:  c.state,
		Cursor: c.cursor,
		Len:    c.seq.Len(),
		Speed:  c.speed,
		Step:   c.currentLocked(),
	}
}

func (c *Controller) currentLocked() step.Step {
	if c.state == Idle || c.seq.Len() == 0 {
		return nil
	}
	return c.seq.At(c.cursor)
}

func (c *Controller) last() int { return c.seq.Len() - 1 }

// armTimer must run with the lock held and no live timer.
func (c *Controller) armTimer() {
	c.gen++
	gen := c.gen
	c.timer = c.sched.Every(c.speed, func() { c.tick(gen) })
}

func (c *Controller) stopTimer() {
	if c.timer == nil {
		return
	}
	c.timer.Stop()
	c.timer = nil
	c.gen++
}

// tick advances one Step. Fires from a timer that has since been stopped
// carry an old generation and are dropped.
func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || c.state != Playing {
		c.mu.Unlock()
		return
	}
	if c.cursor < c.last() {
		c.cursor++
	}
	if c.cursor >= c.last() {
		c.stopTimer()
		c.state = Paused
		c.log.Debug("playback reached the last step", zap.Int("cursor", c.cursor))
	}
	snap, observers := c.snapshotLocked(), c.observers
	c.mu.Unlock()
	notify(observers, snap)
}

func (c *Controller) transition(op string, fn func()) {
	c.mu.Lock()
	before := c.state
	fn()
	snap, observers := c.snapshotLocked(), c.observers
	c.mu.Unlock()

	c.log.Debug("playback transition",
		zap.String("op", op),
		zap.Stringer("from", before),
		zap.Stringer("to", snap.State),
		zap.Int("cursor", snap.Cursor),
		zap.Int("len", snap.Len))
	notify(observers, snap)
}

func notify(observers []func(Snapshot), snap Snapshot) {
	for _, fn := range observers {
		fn(snap)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
