package ast

import "github.com/owl-domain/markdown"

// Item is a list item. Lists hold only items.
type Item interface {
	Block
	BlockContainer
	listItem()
}

// ListItem holds the blocks of one item. Number is the item's ordinal in an
// ordered list and zero in an unordered one.
type ListItem struct {
	block
	BlockList[Block]
	Number int
}

func NewListItem(pos markdown.NodePosition, number int, children ...Block) *ListItem {
	li := &ListItem{block: block{node{pos: pos}}, Number: number}
	li.Append(children...)
	return li
}

func (*ListItem) listItem() {}

// TaskListItem is a list item with a checkbox. State is nil when the box
// was not recognised, otherwise it points at whether it is checked.
type TaskListItem struct {
	ListItem
	State *bool
}

func NewTaskListItem(pos markdown.NodePosition, number int, state *bool, children ...Block) *TaskListItem {
	return &TaskListItem{ListItem: *NewListItem(pos, number, children...), State: state}
}

// Checked reports a recognised, ticked box.
func (t *TaskListItem) Checked() bool { return t.State != nil && *t.State }

type UnorderedList struct {
	block
	BlockList[Item]
}

func NewUnorderedList(pos markdown.NodePosition, items ...Item) *UnorderedList {
	l := &UnorderedList{block: block{node{pos: pos}}}
	l.Append(items...)
	return l
}

// OrderedList numbers its items from Start.
type OrderedList struct {
	block
	BlockList[Item]
	Start int
}

func NewOrderedList(pos markdown.NodePosition, start int, items ...Item) *OrderedList {
	l := &OrderedList{block: block{node{pos: pos}}, Start: start}
	l.Append(items...)
	return l
}
