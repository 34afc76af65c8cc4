// Package viewport implements a dual-layer viewport engine for an
// unbounded 2D canvas.
//
// The engine coordinates two cooperating layers. The DataLayer owns the
// ground-truth geometry and samples it through a fixed-scale window in
// object space. The MirrorLayer presents a camera-transformed view of
// that sample, backed by a texture cache keyed by object identity. A
// CoordinationController routes input between the two layers based on
// the current zoom level and keeps the texture cache consistent with
// geometry edits.
//
// Coordinate spaces:
//
//   - Object space: where geometry is authored; scale-invariant.
//   - Grid space: integer-aligned mesh space; one grid unit is one
//     display pixel, so integer grid coordinates are pixel-exact.
//   - Display space: final output pixels.
//
// Conversions between spaces are explicit and parameterized by zoom
// level and window or camera offset; see ObjectToGrid and friends.
//
// Rendering is split across two seams. Textures enter through the
// Rasterizer interface, which renders objects at their native
// object-space scale (never at the camera zoom). Frames leave as a
// list of texture placements; the compose package provides a CPU
// compositor and the raster package a software Rasterizer, while GPU
// backends can implement both seams using gputypes-compatible
// textures.
//
// The engine is single-threaded: all mutation happens on one
// goroutine, driven by a per-frame tick. Asynchronous rasterization is
// supported through MirrorLayer.CompleteRasterization; completions for
// removed or superseded objects are discarded.
package viewport
