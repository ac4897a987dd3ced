package ast

import "github.com/owl-domain/markdown"

const (
	MinHeadingLevel = 1
	MaxHeadingLevel = 6
)

// Document is the root of a parsed text.
type Document struct {
	node
	BlockList[Block]
}

func NewDocument(pos markdown.NodePosition, children ...Block) *Document {
	d := &Document{node: node{pos: pos}}
	d.Append(children...)
	return d
}

type Paragraph struct {
	block
	InlineList[Inline]
}

func NewParagraph(pos markdown.NodePosition, inlines ...Inline) *Paragraph {
	p := &Paragraph{block: block{node{pos: pos}}}
	p.Append(inlines...)
	return p
}

// Heading is an ATX or setext heading.
type Heading struct {
	block
	InlineList[Inline]
	level int
}

// NewHeading returns an error when level is outside 1..6.
func NewHeading(pos markdown.NodePosition, level int, inlines ...Inline) (*Heading, error) {
	if level < MinHeadingLevel || level > MaxHeadingLevel {
		return nil, markdown.OutOfRange("level", level, "must be between 1 and 6")
	}
	h := &Heading{block: block{node{pos: pos}}, level: level}
	h.Append(inlines...)
	return h, nil
}

func (h *Heading) Level() int { return h.level }

// CodeBlock is a fenced or indented code block. Info is the fence info
// string and is empty for indented blocks.
type CodeBlock struct {
	block
	Info string
	Text string
}

func NewCodeBlock(pos markdown.NodePosition, info, text string) *CodeBlock {
	return &CodeBlock{block: block{node{pos: pos}}, Info: info, Text: text}
}

type RawHTMLBlock struct {
	block
	Text string
}

func NewRawHTMLBlock(pos markdown.NodePosition, text string) *RawHTMLBlock {
	return &RawHTMLBlock{block: block{node{pos: pos}}, Text: text}
}
