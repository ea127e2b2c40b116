// Package frame provides the raster primitives shared by the index pipeline.
//
// The package defines the fundamental types passed between pipeline stages:
//
//   - [Color]: three 8-bit channels per pixel (A, B, C), stored interleaved
//   - [Field]: one float64 per pixel, used for index and difference frames
//   - [Region]: an axis-aligned rectangle in pixel coordinates, or unset
//
// # Channel Order
//
// Channels are stored in decode order A, B, C which corresponds to the
// blue, green and red components of a decoded image. The index calculator
// reads channels A and C.
//
//	img := frame.FromImage(decoded)
//	a, b, c := img.At(x, y)
//
// # Ownership
//
// Frames are plain values without internal locking. A frame produced by one
// cycle is read by the next cycle only through the playback state.
package frame
