package ast

import "iter"

// Walk visits n and its descendants depth first in child order. When fn
// returns false the children of that node are skipped.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	switch c := n.(type) {
	case BlockContainer:
		for _, child := range c.Children() {
			Walk(child, fn)
		}
	case InlineContainer:
		for _, child := range c.Inlines() {
			Walk(child, fn)
		}
	}
}

// All yields n and every descendant in the order Walk visits them.
func All(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		stopped := false
		Walk(n, func(m Node) bool {
			if stopped {
				return false
			}
			if !yield(m) {
				stopped = true
				return false
			}
			return true
		})
	}
}
