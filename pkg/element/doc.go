// Package element defines the immutable virtual element model consumed by
// the fiber reconciler.
//
// An Element describes one desired node: a host tag name, its properties,
// and an ordered list of child elements. Raw text is represented by the
// reserved TextType element, which carries its string under the "nodeValue"
// property and never has children.
//
// Elements are plain data. The engine never mutates them; it mirrors them
// with fibers (see pkg/fiber) and diffs successive trees positionally.
package element
