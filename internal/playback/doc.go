// Package playback drives a cursor over a materialized [step.Sequence].
//
// A [Controller] is a small state machine:
//
//	Idle ──Load──▶ Paused(0) ──Play──▶ Playing ──last step──▶ Paused(last)
//	                  ▲                   │
//	                  └──Pause/Seek/Reset─┘
//
// While playing, a timer from the configured [Scheduler] fires every Speed and
// moves the cursor forward by one. Every transition that can arm a timer stops
// the previous one first, so at most one timer is live per Controller. Out of
// range seeks clamp and non-positive speeds are ignored; no operation returns
// an error.
//
// # Thread Safety
//
// The [TickerScheduler] fires from its own goroutine, so Controller methods
// are safe for concurrent use. Observers registered with OnChange run after the
// lock is released and may call back into the Controller.
package playback
