package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/pterm/pterm"
	"golang.org/x/image/colornames"

	"github.com/npillmayer/cssbox/backend/gfx"
	"github.com/npillmayer/cssbox/core/dimen"
	"github.com/npillmayer/cssbox/engine/frame"
	"github.com/npillmayer/cssbox/engine/frame/framedebug"
	"github.com/npillmayer/cssbox/engine/frame/paint"
)

// maxPicture limits the edge length of painted pictures.
const maxPicture = 8192

func boxesOf(tree *frame.Tree) []*frame.Box {
	var boxes []*frame.Box
	if tree.Root() == nil {
		return boxes
	}
	tree.Walk(tree.Root().ID(), func(b *frame.Box) bool {
		boxes = append(boxes, b)
		return true
	})
	return boxes
}

// boxRows creates table rows for boxes, with a header row.
func boxRows(boxes []*frame.Box) pterm.TableData {
	data := pterm.TableData{{"ID", "Box", "Display", "Border Box", "Lines", "Content"}}
	for _, b := range boxes {
		name := b.Tag
		if name == "" {
			name = "anon"
		}
		content := ""
		if text, ok := b.Text(); ok {
			content = shorten(text, 24)
		} else if b.Kind.IsReplaced() {
			content = fmt.Sprintf("%s %v", b.Kind, b.Size())
		}
		data = append(data, []string{
			fmt.Sprintf("%d", b.ID()),
			name,
			b.Display().Symbol(),
			b.BorderRect().String(),
			fmt.Sprintf("%d", len(b.LineRects())),
			content,
		})
	}
	return data
}

func printBoxes(boxes []*frame.Box) {
	if err := pterm.DefaultTable.WithHasHeader().WithData(boxRows(boxes)).Render(); err != nil {
		tracer().Errorf("%v", err)
	}
}

// treeNode converts a subtree to a pterm tree.
func treeNode(b *frame.Box) pterm.TreeNode {
	node := pterm.TreeNode{Text: framedebug.BoxLabel(b)}
	if text, ok := b.Text(); ok {
		node.Text += " " + fmt.Sprintf("%q", shorten(text, 24))
	}
	for _, c := range b.ChildBoxes() {
		node.Children = append(node.Children, treeNode(c))
	}
	return node
}

func printTree(tree *frame.Tree) {
	if tree.Root() == nil {
		return
	}
	if err := pterm.DefaultTree.WithRoot(treeNode(tree.Root())).Render(); err != nil {
		tracer().Errorf("%v", err)
	}
}

// render paints a laid out tree onto a white raster of a given size.
func render(tree *frame.Tree, size dimen.Size) *gfx.Raster {
	edge := func(d dimen.Dimen) int {
		n := int(math.Ceil(float64(d)))
		if n < 1 {
			return 1
		}
		if n > maxPicture {
			tracer().Infof("clipping picture at %d pixels", maxPicture)
			return maxPicture
		}
		return n
	}
	r := gfx.NewRaster(edge(size.W), edge(size.H), colornames.White)
	paint.Paint(tree, r)
	return r
}

func shorten(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", "⏎")
	if r := []rune(s); len(r) > n {
		return string(r[:n-1]) + "…"
	}
	return s
}
