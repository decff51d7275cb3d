// Package viz renders topics in the terminal.
//
//   - [Canvas]: braille dot raster with per-cell color and a text overlay
//   - [Raster]: scene.Surface over a Canvas
//   - [Model]: bubbletea preview hosting an engine.Driver
//   - [TeaScheduler]: engine.Scheduler backed by tea.Tick
//
// # Key Bindings
//
//	Space - Play/Pause
//	R     - Reset parameters and clock
//	←/→   - Previous/next topic
//	Tab   - Focus next parameter
//	↑/↓   - Nudge focused parameter by one step
//	T     - Cycle color themes
//	?     - Show full help
package viz
