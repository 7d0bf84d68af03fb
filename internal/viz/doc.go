// Package viz draws step sequences in the terminal.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Player]: plays one sequence through a playback.Controller
//   - [Menu]: picks an algorithm from the catalog and plays its sample
//   - [Render]: draws a single Step of any family without context
//   - [Canvas]: Braille-based pixel canvas used for graph layouts
//
// Playback timers run on tea.Tick through [TeaScheduler], so every
// controller transition happens on the Bubble Tea update loop.
//
// # Key Bindings
//
//	Space - Play/Pause
//	←/→   - Step back/forward
//	[ ]   - Seek 10 steps back/forward
//	g/G   - First/last step
//	+/-   - Faster/slower
//	R     - Reset to the first step
//	T     - Cycle color themes
//	?     - Show all keys
package viz
