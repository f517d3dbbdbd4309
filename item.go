package breadcrumb

import (
	"cmp"
	"encoding/json"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Item is a single node in a breadcrumb tree. Text is the label displayed
// for the node; when TextFunc is set it takes precedence and is evaluated at
// serialization time, allowing labels that depend on request state.
type Item struct {
	Text          string
	TextFunc      func() string
	URL           string
	Order         int
	IsCurrentPath bool
	Children      []*Item
}

func (it *Item) label() string {
	if it.TextFunc != nil {
		return it.TextFunc()
	}
	return it.Text
}

// addChild appends a child unless one with the same URL is already present.
// Children are kept sorted by (Order, URL).
func (it *Item) addChild(child *Item) {
	for _, existing := range it.Children {
		if existing.URL == child.URL {
			return
		}
	}
	it.Children = append(it.Children, child)
	sortItems(it.Children)
}

func sortItems(items []*Item) {
	slices.SortStableFunc(items, func(a, b *Item) int {
		if c := cmp.Compare(a.Order, b.Order); c != 0 {
			return c
		}
		return cmp.Compare(a.URL, b.URL)
	})
}

// Trail returns the chain of nodes from it down to the node marked as the
// current path, inclusive. It returns nil when no node in the subtree is the
// current path.
func (it *Item) Trail() []*Item {
	if it == nil {
		return nil
	}
	if it.IsCurrentPath {
		return []*Item{it}
	}
	for _, child := range it.Children {
		if trail := child.Trail(); trail != nil {
			return append([]*Item{it}, trail...)
		}
	}
	return nil
}

// All returns an iterator over the subtree rooted at it in depth-first order.
func (it *Item) All() iter.Seq[*Item] {
	return func(yield func(*Item) bool) {
		walk(it, yield)
	}
}

func walk(it *Item, fn func(*Item) bool) bool {
	if !fn(it) {
		return false
	}
	for _, child := range it.Children {
		if !walk(child, fn) {
			return false
		}
	}
	return true
}

// MarshalJSON serializes the node as a plain nested mapping with snake_case
// keys, evaluating TextFunc labels. Children is always an array, never null.
func (it *Item) MarshalJSON() ([]byte, error) {
	children := it.Children
	if children == nil {
		children = []*Item{}
	}
	return json.Marshal(struct {
		Text          string  `json:"text"`
		URL           string  `json:"url"`
		Order         int     `json:"order"`
		IsCurrentPath bool    `json:"is_current_path"`
		Children      []*Item `json:"children"`
	}{
		Text:          it.label(),
		URL:           it.URL,
		Order:         it.Order,
		IsCurrentPath: it.IsCurrentPath,
		Children:      children,
	})
}

func (it *Item) String() string {
	var sb strings.Builder
	sb.WriteString("Item{")
	sb.WriteString("\n  text: " + it.label())
	sb.WriteString("\n  url: " + it.URL)
	fmt.Fprintf(&sb, "\n  order: %d", it.Order)
	if it.IsCurrentPath {
		sb.WriteString("\n  current: true")
	}
	for i, child := range it.Children {
		fmt.Fprintf(&sb, "\n  child %d:", i+1)
		childStr := strings.TrimRight(child.String(), "\n")
		for _, line := range strings.SplitAfter(childStr, "\n") {
			sb.WriteString("  " + line)
		}
	}
	sb.WriteString("\n}")
	return sb.String()
}
