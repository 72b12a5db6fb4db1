package silver

import (
	"fmt"
	"strings"
)

// Tree is a generic rose tree. Every node carries a value; a branch also
// carries an ordered child list. A leaf has a nil child slice, a branch a
// non-nil one (possibly empty), so the two stay distinguishable even when a
// branch holds no children.
//
// The module registry uses Tree[DeferredFile] to mirror a source directory:
// branches are directories, leaves are registered files.
type Tree[T any] struct {
	Value    T
	Children []*Tree[T]
}

// NewLeaf returns a leaf node holding v.
func NewLeaf[T any](v T) *Tree[T] {
	return &Tree[T]{Value: v}
}

// NewBranch returns a branch node holding v and the given children.
func NewBranch[T any](v T, children ...*Tree[T]) *Tree[T] {
	if children == nil {
		children = make([]*Tree[T], 0)
	}
	return &Tree[T]{Value: v, Children: children}
}

// IsLeaf reports whether t is a leaf node.
func (t *Tree[T]) IsLeaf() bool { return t.Children == nil }

// Add appends child to t's children and returns the child, turning t into
// a branch if it was a leaf.
func (t *Tree[T]) Add(child *Tree[T]) *Tree[T] {
	t.Children = append(t.Children, child)
	return child
}

// Walker iterates a tree depth-first, parents before children, siblings in
// order. The stack is explicit so arbitrarily deep trees cannot overflow
// the goroutine stack during iteration.
type Walker[T any] struct {
	stack []*Tree[T]
}

// Walk returns a depth-first iterator rooted at t.
func (t *Tree[T]) Walk() *Walker[T] {
	return &Walker[T]{stack: []*Tree[T]{t}}
}

// Next returns the next node in depth-first order, or false when done.
func (w *Walker[T]) Next() (*Tree[T], bool) {
	if len(w.stack) == 0 {
		return nil, false
	}
	n := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	for i := len(n.Children) - 1; i >= 0; i-- {
		w.stack = append(w.stack, n.Children[i])
	}
	return n, true
}

// Leaves returns every leaf node under t in depth-first order.
func (t *Tree[T]) Leaves() []*Tree[T] {
	var out []*Tree[T]
	w := t.Walk()
	for n, ok := w.Next(); ok; n, ok = w.Next() {
		if n.IsLeaf() {
			out = append(out, n)
		}
	}
	return out
}

// Find returns the first node in depth-first order whose value satisfies
// pred, or nil when none does.
func (t *Tree[T]) Find(pred func(T) bool) *Tree[T] {
	w := t.Walk()
	for n, ok := w.Next(); ok; n, ok = w.Next() {
		if pred(n.Value) {
			return n
		}
	}
	return nil
}

// String renders the tree one node per line, "|-" markers, four spaces of
// indentation per depth level.
func (t *Tree[T]) String() string {
	var b strings.Builder
	t.write(&b, 0)
	return b.String()
}

func (t *Tree[T]) write(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("    ", depth))
	fmt.Fprintf(b, "|-%v\n", t.Value)
	for _, c := range t.Children {
		c.write(b, depth+1)
	}
}
