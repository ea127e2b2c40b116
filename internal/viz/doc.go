// Package viz is the terminal surface for playback, built on Bubble Tea.
//
// Frames are downscaled and drawn with half-block characters so that every
// terminal cell shows two vertically stacked pixels. The index view and the
// difference view are laid out side by side above a status pane.
//
// # Baseline Picking
//
// While a region is being picked, keys drive a cursor over the index view:
//
//	arrows/hjkl - move one cell
//	HJKL        - move five cells
//	space       - set the anchor corner
//	enter       - commit the rectangle between anchor and cursor
//	esc/c       - cancel (no selection)
//
// All other keys are forwarded to the playback controller.
package viz
