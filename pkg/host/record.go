package host

import (
	"fmt"
	"sync"

	"github.com/weft-dev/weft/pkg/protocol"
)

// RecordingHost wraps another Renderer and records every mutation as a
// protocol patch. It assigns a stable uint64 ID to each node it creates
// so that the patch stream can address nodes on the far side of a wire.
//
// The root container does not pass through CreateContainer, so it must
// be registered with RegisterRoot before rendering; it always receives
// ID 0.
type RecordingHost struct {
	inner Renderer

	mu      sync.Mutex
	ids     map[Node]uint64
	nextID  uint64
	seq     uint64
	pending []protocol.Patch
}

// NewRecordingHost wraps inner in a patch recorder.
func NewRecordingHost(inner Renderer) *RecordingHost {
	return &RecordingHost{
		inner:  inner,
		ids:    make(map[Node]uint64),
		nextID: 1,
	}
}

// RegisterRoot assigns ID 0 to the mount container so Append patches
// targeting it can be resolved by clients.
func (h *RecordingHost) RegisterRoot(root Node) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ids[root] = 0
}

// Flush returns the patches recorded since the last flush as a frame and
// clears the pending buffer. It returns nil when nothing was recorded.
func (h *RecordingHost) Flush() *protocol.PatchFrame {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.pending) == 0 {
		return nil
	}
	h.seq++
	frame := &protocol.PatchFrame{Seq: h.seq, Patches: h.pending}
	h.pending = nil
	return frame
}

func (h *RecordingHost) id(n Node) uint64 {
	id, ok := h.ids[n]
	if !ok {
		// A node the recorder never saw; should not happen when the
		// root is registered. Assign an ID so the stream stays usable.
		id = h.nextID
		h.nextID++
		h.ids[n] = id
	}
	return id
}

func (h *RecordingHost) record(p protocol.Patch) {
	h.pending = append(h.pending, p)
}

// CreateLeaf implements Renderer.
func (h *RecordingHost) CreateLeaf(text string) Node {
	n := h.inner.CreateLeaf(text)

	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	h.ids[n] = id
	h.record(protocol.Patch{Op: protocol.PatchCreateLeaf, ID: id, Value: text})
	return n
}

// CreateContainer implements Renderer.
func (h *RecordingHost) CreateContainer(typ string) Node {
	n := h.inner.CreateContainer(typ)

	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	h.ids[n] = id
	h.record(protocol.Patch{Op: protocol.PatchCreateContainer, ID: id, Value: typ})
	return n
}

// SetProperty implements Renderer.
func (h *RecordingHost) SetProperty(n Node, key string, value any) {
	h.inner.SetProperty(n, key, value)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.record(protocol.Patch{
		Op:    protocol.PatchSetAttr,
		ID:    h.id(n),
		Key:   key,
		Value: fmt.Sprintf("%v", value),
	})
}

// RemoveProperty implements Renderer.
func (h *RecordingHost) RemoveProperty(n Node, key string) {
	h.inner.RemoveProperty(n, key)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.record(protocol.Patch{Op: protocol.PatchRemoveAttr, ID: h.id(n), Key: key})
}

// SetText implements Renderer.
func (h *RecordingHost) SetText(n Node, text string) {
	h.inner.SetText(n, text)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.record(protocol.Patch{Op: protocol.PatchSetText, ID: h.id(n), Value: text})
}

// AppendChild implements Renderer.
func (h *RecordingHost) AppendChild(parent, child Node) {
	h.inner.AppendChild(parent, child)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.record(protocol.Patch{
		Op:       protocol.PatchAppend,
		ID:       h.id(child),
		ParentID: h.id(parent),
	})
}

// RemoveChild implements Renderer.
func (h *RecordingHost) RemoveChild(parent, child Node) {
	h.inner.RemoveChild(parent, child)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.record(protocol.Patch{
		Op:       protocol.PatchRemove,
		ID:       h.id(child),
		ParentID: h.id(parent),
	})
	// The node will never be referenced again; free its ID mapping.
	delete(h.ids, child)
}

// IsLeaf implements Renderer.
func (h *RecordingHost) IsLeaf(n Node) bool {
	return h.inner.IsLeaf(n)
}
