package framedebug

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/cssbox/engine/frame"
)

// Dump writes the geometry of a box tree as indented text, one box per
// line, followed by its fragments and line rectangles.
func Dump(tree *frame.Tree, w io.Writer) error {
	root := tree.Root()
	if root == nil {
		return nil
	}
	return dump(root, 0, w)
}

func dump(b *frame.Box, depth int, w io.Writer) error {
	indent := strings.Repeat("  ", depth)
	if _, err := fmt.Fprintf(w, "%s%s bottom=%.2f\n", indent, BoxLabel(b), float64(b.ActualBottom())); err != nil {
		return err
	}
	for _, f := range b.Fragments() {
		if _, err := fmt.Fprintf(w, "%s  · %s\n", indent, f); err != nil {
			return err
		}
	}
	for _, lr := range b.LineRects() {
		if _, err := fmt.Fprintf(w, "%s  ≡ line %d %s\n", indent, lr.Line, lr.Rect); err != nil {
			return err
		}
	}
	if m := b.Marker(); m != nil {
		if err := dump(m, depth+1, w); err != nil {
			return err
		}
	}
	for _, c := range b.ChildBoxes() {
		if err := dump(c, depth+1, w); err != nil {
			return err
		}
	}
	return nil
}
