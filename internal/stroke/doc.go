// Package stroke converts stroked polylines into filled outlines.
//
// A stroke of width w is represented as a union of simple polygons:
//   - one rectangle per segment, offset w/2 to each side
//   - one disc per interior vertex (round joins)
//
// Every polygon is emitted with the same orientation so that a
// non-zero accumulation rasterizer fills the union without cancellation.
package stroke
