/*
File    : anvil/scope/heap.go
*/

// Package scope implements Anvil's tiered variable model: one process-wide
// global heap, one live heap per function invocation, and a stack of block
// heaps for whatever `if`/`else`/`block`/`loop` bodies are currently open
// (a `while` body does not get a block heap of its own).
// See spec.md §4.3.3/§4.3.4 for the read and assignment resolution rules
// this package encodes.
package scope

import "github.com/anvil-lang/anvil/objects"

// Heap is a flat name-to-value binding table, the unit every tier of the
// scope model is built from.
type Heap map[string]objects.Value

// Global is the process-wide heap written by `_global` and read by every
// invocation. It outlives any single call.
type Global struct {
	heap Heap
}

// NewGlobal creates an empty global heap.
func NewGlobal() *Global {
	return &Global{heap: make(Heap)}
}

func (g *Global) lookup(name string) (objects.Value, bool) {
	v, ok := g.heap[name]
	return v, ok
}

func (g *Global) has(name string) bool {
	_, ok := g.heap[name]
	return ok
}

func (g *Global) set(name string, v objects.Value) {
	g.heap[name] = v
}

// Frame is one function invocation's variable state: its live heap plus
// the stack of block heaps for whatever blocks are currently open, both
// scoped to this call alone, plus a shared pointer to the process-wide
// global heap.
type Frame struct {
	global *Global
	live   Heap
	blocks []Heap
}

// NewFrame creates a frame for one function invocation, sharing the given
// global heap.
func NewFrame(global *Global) *Frame {
	return &Frame{global: global, live: make(Heap)}
}

// SetLive unconditionally binds name in this frame's live heap, used
// for argument binding on call entry (spec.md §4.3's "insert into
// live_heap" rule, which is unconditional — unlike Bind's tiered rules).
func (f *Frame) SetLive(name string, v objects.Value) {
	f.live[name] = v
}

// OpenBlock pushes a fresh, empty heap for a newly entered `if`/`else`/
// `block`/`loop` body.
func (f *Frame) OpenBlock() {
	f.blocks = append(f.blocks, make(Heap))
}

// CloseBlock discards the innermost block heap on `end` (or `else`→`end`).
func (f *Frame) CloseBlock() {
	if len(f.blocks) == 0 {
		return
	}
	f.blocks = f.blocks[:len(f.blocks)-1]
}

// InBlock reports whether this frame currently has at least one open block.
func (f *Frame) InBlock() bool {
	return len(f.blocks) > 0
}

// Lookup resolves a read per spec.md §4.3.3: innermost-to-outermost block
// heaps first, then the live heap, then the global heap. The first tier
// that binds the name wins.
func (f *Frame) Lookup(name string) (objects.Value, bool) {
	for i := len(f.blocks) - 1; i >= 0; i-- {
		if v, ok := f.blocks[i][name]; ok {
			return v, true
		}
	}
	if v, ok := f.live[name]; ok {
		return v, true
	}
	return f.global.lookup(name)
}

// BindGlobal implements the assignment rule for code executing in
// `_global`: writes always land in the global heap, regardless of prior
// bindings.
func (f *Frame) BindGlobal(name string, v objects.Value) {
	f.global.set(name, v)
}

// BindInBlock implements the assignment rule for code executing inside an
// open block (spec.md §4.3.4): overwrite the global heap if it already
// binds the name, else overwrite the live heap if it already binds the
// name, else scan block heaps innermost-first for an existing binding to
// overwrite, else create the binding in the innermost block heap.
func (f *Frame) BindInBlock(name string, v objects.Value) {
	if f.global.has(name) {
		f.global.set(name, v)
		return
	}
	if _, ok := f.live[name]; ok {
		f.live[name] = v
		return
	}
	for i := len(f.blocks) - 1; i >= 0; i-- {
		if _, ok := f.blocks[i][name]; ok {
			f.blocks[i][name] = v
			return
		}
	}
	f.blocks[len(f.blocks)-1][name] = v
}

// BindInFunction implements the assignment rule for code executing in a
// plain function body with no open block: overwrite the global heap if
// it already binds the name, else write into the live heap.
func (f *Frame) BindInFunction(name string, v objects.Value) {
	if f.global.has(name) {
		f.global.set(name, v)
		return
	}
	f.live[name] = v
}

// Bind dispatches to the correct assignment rule given the current
// execution context: inGlobal is true while running `_global` itself.
func (f *Frame) Bind(name string, v objects.Value, inGlobal bool) {
	switch {
	case inGlobal:
		f.BindGlobal(name, v)
	case f.InBlock():
		f.BindInBlock(name, v)
	default:
		f.BindInFunction(name, v)
	}
}
