// Package displaylist records 2D drawing operations into immutable,
// replayable display lists.
//
// # Overview
//
// A Builder captures attribute changes, transforms, clips and draws. It
// tracks a save/restore stack, drops operations that cannot change any
// pixel, and delays each Save until something inside it needs reverting.
// Build returns a DisplayList that knows its bounds, whether a group
// opacity can be folded into its draws, and optionally carries an R-tree
// over its operations.
//
// # Quick Start
//
//	b := displaylist.NewBuilder(displaylist.WithRTree())
//	b.SetColor(paint.Red)
//	b.DrawRect(geom.XYWH(10, 10, 100, 50))
//	b.Save()
//	b.Translate(200, 0)
//	b.DrawCircle(geom.Pt(50, 50), 40)
//	b.Restore()
//	dl := b.Build()
//
//	dl.Dispatch(myBackend)                        // replay everything
//	dl.DispatchCulled(myBackend, geom.XYWH(0, 0, 120, 120)) // replay a region
//
// # Receivers
//
// Replay goes through the Receiver interface, which is split into
// attribute, state, transform, clip and draw families. Receivers that only
// care about some families embed IgnoreAttributes, IgnoreTransforms,
// IgnoreClips or IgnoreDraws for the rest.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Rotation angles in degrees, positive angles rotate clockwise on screen
//
// # Concurrency
//
// A Builder is not safe for concurrent use. A DisplayList is immutable and
// may be dispatched or searched from many goroutines at once.
package displaylist
