package ast

import (
	"slices"

	"github.com/owl-domain/markdown"
)

// Node is anything with a source span.
type Node interface {
	Position() markdown.NodePosition
}

// Block is a node that occupies whole lines.
type Block interface {
	Node
	blockNode()
}

// Inline is a node inside a block's text.
type Inline interface {
	Node
	inlineNode()
}

// BlockContainer is implemented by nodes that hold child blocks.
type BlockContainer interface {
	Node
	Children() []Block
}

// InlineContainer is implemented by nodes that hold inline content.
type InlineContainer interface {
	Node
	Inlines() []Inline
}

type node struct {
	pos markdown.NodePosition
}

func (n node) Position() markdown.NodePosition { return n.pos }

type block struct{ node }

func (block) blockNode() {}

type inline struct{ node }

func (inline) inlineNode() {}

// BlockList is an insertion-ordered list of child blocks of type T.
type BlockList[T Block] struct {
	items []T
}

// Append adds children in order.
func (l *BlockList[T]) Append(items ...T) {
	l.items = append(l.items, items...)
}

// Items is the typed view. The returned slice must not be modified.
func (l *BlockList[T]) Items() []T {
	return slices.Clip(l.items)
}

// Children is the general view of the same children.
func (l *BlockList[T]) Children() []Block {
	out := make([]Block, len(l.items))
	for i, item := range l.items {
		out[i] = item
	}
	return out
}

func (l *BlockList[T]) Len() int { return len(l.items) }

// InlineList is an insertion-ordered list of inline children of type T.
type InlineList[T Inline] struct {
	items []T
}

func (l *InlineList[T]) Append(items ...T) {
	l.items = append(l.items, items...)
}

// Items is the typed view. The returned slice must not be modified.
func (l *InlineList[T]) Items() []T {
	return slices.Clip(l.items)
}

// Inlines is the general view of the same children.
func (l *InlineList[T]) Inlines() []Inline {
	out := make([]Inline, len(l.items))
	for i, item := range l.items {
		out[i] = item
	}
	return out
}

func (l *InlineList[T]) Len() int { return len(l.items) }
