// Package host defines the renderer adapter boundary between the fiber
// engine and a concrete node tree, plus the reference implementations
// shipped with Weft.
//
// The engine only ever touches host nodes through the Renderer interface:
// it creates leaf (text) and container nodes, sets and removes individual
// properties, and attaches or detaches children. It never inspects node
// internals, so any platform that can satisfy Renderer can be rendered
// into.
//
// MemoryHost is the reference implementation: a DOM-like tree of MemNode
// values. It backs the engine's tests, the HTML serializer (RenderHTML),
// and the terminal renderer (pkg/host/term). RecordingHost wraps another
// Renderer and emits a protocol patch for every mutation, which is how the
// live-preview server streams commits to browsers.
package host
