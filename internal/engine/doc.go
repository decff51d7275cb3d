// Package engine drives a topic's draw routine onto a bound surface.
//
// A [Driver] is a small state machine:
//
//	Idle ──Attach──▶ Paused ──Play──▶ Playing
//	  ▲                ▲  ◀──Pause──     │
//	  └──Detach/SelectTopic (teardown)───┘
//
// While playing, the driver keeps exactly one frame outstanding on its
// [Scheduler]; each frame schedules the next from inside its own callback.
// Every chain owns a token, and tearing a chain down bumps the token and
// cancels the pending handle, so a callback that still fires afterwards
// draws nothing.
//
// # Thread Safety
//
// A Driver is NOT safe for concurrent use. Hosts deliver frame callbacks on
// the same goroutine that calls the control methods (a bubbletea Update, a
// raylib loop, or a [FrameQueue] pumped by a CLI).
package engine
