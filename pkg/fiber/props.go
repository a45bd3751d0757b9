package fiber

import (
	"reflect"
	"strings"

	"github.com/weft-dev/weft/pkg/element"
	"github.com/weft-dev/weft/pkg/host"
)

// applyProperties reconciles host-level properties between prev and next:
// stale keys are removed, new keys added, changed keys updated. Reserved
// keys (children, nodeValue) and event-handler-shaped keys never reach the
// host. prev may be nil for freshly created nodes.
func (p *Pass) applyProperties(n host.Node, prev, next element.Props) {
	for key, prevVal := range prev {
		if isReservedProp(key) || isEventProp(key) {
			continue
		}
		nextVal, exists := next[key]
		if !exists {
			p.renderer.RemoveProperty(n, key)
		} else if !propsEqual(prevVal, nextVal) {
			p.renderer.SetProperty(n, key, nextVal)
		}
	}

	for key, nextVal := range next {
		if isReservedProp(key) || isEventProp(key) {
			continue
		}
		if _, exists := prev[key]; !exists {
			p.renderer.SetProperty(n, key, nextVal)
		}
	}
}

// isReservedProp reports whether key is engine-owned and never a host
// property.
func isReservedProp(key string) bool {
	return key == element.ChildrenProp || key == element.NodeValueProp
}

// isEventProp reports whether key names an event handler ("on" prefix).
// Case-insensitive to catch onclick, OnClick, ONCLICK.
func isEventProp(key string) bool {
	return len(key) > 2 && strings.EqualFold(key[:2], "on")
}

// propsEqual compares two prop values for equality.
func propsEqual(a, b any) bool {
	// Fast path for common types
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return av == bv
		}
		return false
	case int:
		if bv, ok := b.(int); ok {
			return av == bv
		}
		return false
	case int64:
		if bv, ok := b.(int64); ok {
			return av == bv
		}
		return false
	case float64:
		if bv, ok := b.(float64); ok {
			return av == bv
		}
		return false
	case bool:
		if bv, ok := b.(bool); ok {
			return av == bv
		}
		return false
	case nil:
		return b == nil
	}
	// Fallback to reflect for complex types
	return reflect.DeepEqual(a, b)
}
