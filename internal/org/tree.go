package org

import "org2csv/internal/model"

// Kind distinguishes arena node types.
type Kind int

const (
	// KindDocument is the synthetic root node of a Document's arena.
	KindDocument Kind = iota
	// KindHeadline is an outline headline, task or not.
	KindHeadline
)

// Node is one entry in a Document arena. Nodes are appended in document
// pre-order, so iterating the arena is a depth-first pre-order walk.
type Node struct {
	Kind      Kind
	Parent    int // arena index of the parent node, -1 for the root
	Level     int // number of leading stars, 0 for the root
	Title     string
	Keyword   string // todo keyword, empty for non-task headlines
	Done      bool   // keyword classified as a closed state
	Priority  *int   // character code of the priority cookie letter
	Tags      []string
	Scheduled *model.Timespan
	Deadline  *model.Timespan
	Closed    *model.Timespan
}

// Document is one parsed outline source. Title and Category come from
// #+TITLE:/#+CATEGORY: keywords; they are carried for callers but no CSV
// column reads them.
type Document struct {
	Source   string
	Title    string
	Category string
	Nodes    []Node
}

// ParentHeadline returns the arena index of the nearest strict ancestor of
// node i that is a headline, or -1 if only the document root encloses it.
func (d *Document) ParentHeadline(i int) int {
	for p := d.Nodes[i].Parent; p >= 0; p = d.Nodes[p].Parent {
		if d.Nodes[p].Kind == KindHeadline {
			return p
		}
	}
	return -1
}
