package ast

import "github.com/owl-domain/markdown"

// Text is literal content.
type Text struct {
	inline
	Value string
}

func NewText(pos markdown.NodePosition, value string) *Text {
	return &Text{inline: inline{node{pos: pos}}, Value: value}
}

type CodeSpan struct {
	inline
	Code string
}

func NewCodeSpan(pos markdown.NodePosition, code string) *CodeSpan {
	return &CodeSpan{inline: inline{node{pos: pos}}, Code: code}
}

type RawHTMLInline struct {
	inline
	HTML string
}

func NewRawHTMLInline(pos markdown.NodePosition, html string) *RawHTMLInline {
	return &RawHTMLInline{inline: inline{node{pos: pos}}, HTML: html}
}

// Link holds its label as inline children.
type Link struct {
	inline
	InlineList[Inline]
	Destination string
	Title       string
}

func NewLink(pos markdown.NodePosition, destination, title string, label ...Inline) *Link {
	l := &Link{inline: inline{node{pos: pos}}, Destination: destination, Title: title}
	l.Append(label...)
	return l
}

// Image holds its alt text as inline children.
type Image struct {
	inline
	InlineList[Inline]
	Source string
	Title  string
}

func NewImage(pos markdown.NodePosition, source, title string, alt ...Inline) *Image {
	img := &Image{inline: inline{node{pos: pos}}, Source: source, Title: title}
	img.Append(alt...)
	return img
}

// WeakEmphasis is *text* or _text_.
type WeakEmphasis struct {
	inline
	InlineList[Inline]
}

func NewWeakEmphasis(pos markdown.NodePosition, inlines ...Inline) *WeakEmphasis {
	e := &WeakEmphasis{inline: inline{node{pos: pos}}}
	e.Append(inlines...)
	return e
}

// StrongEmphasis is **text** or __text__.
type StrongEmphasis struct {
	inline
	InlineList[Inline]
}

func NewStrongEmphasis(pos markdown.NodePosition, inlines ...Inline) *StrongEmphasis {
	e := &StrongEmphasis{inline: inline{node{pos: pos}}}
	e.Append(inlines...)
	return e
}
