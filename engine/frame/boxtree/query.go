package boxtree

import (
	"fmt"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/cssbox/engine/frame"
)

// Query returns the boxes of a tree whose source elements match a CSS
// selector, in tree order. Anonymous boxes never match.
func Query(tree *frame.Tree, selector string) ([]*frame.Box, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	root := tree.Root()
	if root == nil {
		return nil, nil
	}
	var boxes []*frame.Box
	tree.Walk(root.ID(), func(b *frame.Box) bool {
		if b.Source != nil && sel.Match(b.Source) {
			boxes = append(boxes, b)
		}
		return true
	})
	tracer().Debugf("selector %q matches %d boxes", selector, len(boxes))
	return boxes, nil
}

// QueryFirst returns the first box matching a selector, or nil.
func QueryFirst(tree *frame.Tree, selector string) (*frame.Box, error) {
	boxes, err := Query(tree, selector)
	if err != nil || len(boxes) == 0 {
		return nil, err
	}
	return boxes[0], nil
}
