package viewport

// Rasterizer turns an object into a texture. It is the engine's inbound
// seam: the raster package provides a CPU implementation, and GPU
// backends can plug in any implementation producing gputypes-compatible
// textures.
//
// Contract:
//
//   - The object is rendered at its native object-space scale (scale
//     factor 1), never at the camera's zoom factor. The texture cache
//     is keyed by object identity only, and caching one texture per
//     (object, zoom) pair is exactly the memory blow-up this rule
//     prevents.
//   - Output is origin-aligned to the object's bounding box: the
//     texture's (0,0) pixel corresponds to Bounds().Min().
//   - Rasterization is deterministic for a given object version.
//
// A failed rasterization surfaces as ErrRasterizationFailed for that
// object; the MirrorLayer omits the object from the frame rather than
// aborting it.
//
// Rasterize may be called from the engine's goroutine only.
// Asynchronous backends should return promptly (for example with a
// queued placeholder error) and deliver the finished texture through
// MirrorLayer.CompleteRasterization; completions for objects that were
// removed or mutated in the meantime are discarded.
type Rasterizer interface {
	Rasterize(obj *Object) (Texture, error)
}
