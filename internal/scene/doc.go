// Package scene defines the backend-agnostic drawing model shared by the
// draw routines and every rendering host.
//
//   - [Command]: a single primitive (circle, rect, line, polyline, polygon, text)
//   - [Builder]: fluent construction of a frame's command list
//   - [Surface]: the abstract 2D context a host implements
//   - [Replay]: dispatches a command list onto a [Surface]
//   - [Recorder]: a [Surface] that captures what was drawn
//
// Coordinates are surface pixels with the origin at the top-left corner and
// y growing downward.
package scene
