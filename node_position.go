package markdown

import "fmt"

// NodePosition is an inclusive range of positions covered by a node.
type NodePosition struct {
	start Position
	end   Position
}

// NewNodePosition fails when end precedes start by offset.
func NewNodePosition(start, end Position) (NodePosition, error) {
	if end.offset < start.offset {
		return NodePosition{}, InvalidArgument("end", end,
			fmt.Sprintf("must not precede the start position %v", start))
	}
	return NodePosition{start: start, end: end}, nil
}

// MustNodePosition is like NewNodePosition but panics on invalid arguments.
func MustNodePosition(start, end Position) NodePosition {
	np, err := NewNodePosition(start, end)
	if err != nil {
		panic(err)
	}
	return np
}

func (n NodePosition) Start() Position { return n.start }
func (n NodePosition) End() Position   { return n.end }

// Len is the number of text elements covered, end inclusive.
func (n NodePosition) Len() int { return n.end.offset - n.start.offset + 1 }

// LineCount is the number of lines touched, end inclusive.
func (n NodePosition) LineCount() int { return n.end.line - n.start.line + 1 }

func (n NodePosition) IsMultiline() bool { return n.start.line != n.end.line }

// Contains reports whether p's offset lies within the range.
func (n NodePosition) Contains(p Position) bool {
	return p.offset >= n.start.offset && p.offset <= n.end.offset
}

func (n NodePosition) String() string {
	return fmt.Sprintf("[%v-%v]", n.start, n.end)
}
