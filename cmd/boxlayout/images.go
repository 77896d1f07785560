package main

import (
	"context"
	"fmt"

	"github.com/npillmayer/cssbox/core"
	"github.com/npillmayer/cssbox/core/dimen"
	"github.com/npillmayer/cssbox/core/locate/resources"
	"github.com/npillmayer/cssbox/engine/frame"
	"github.com/npillmayer/cssbox/engine/frame/boxtree"
	htmlinput "github.com/npillmayer/cssbox/input/html"
)

type pendingImage struct {
	box     *frame.Box
	src     string
	promise resources.ImagePromise
}

// loadImages loads the images of all <img> boxes concurrently and hands
// their natural sizes to the tree. It returns true if the tree asked for
// a new layout.
func loadImages(ctx context.Context, tree *frame.Tree, doc *htmlinput.Document) bool {
	imgs, err := boxtree.Query(tree, "img[src]")
	if err != nil || len(imgs) == 0 {
		return false
	}
	relayout := false
	tree.Refresh = func(needsRelayout bool) {
		relayout = relayout || needsRelayout
	}
	defer func() { tree.Refresh = nil }()
	pending := make([]pendingImage, 0, len(imgs))
	for _, b := range imgs {
		src, _ := b.Attr("src")
		pending = append(pending, pendingImage{
			box:     b,
			src:     src,
			promise: resources.ResolveImage(doc.Resolve(src), ""),
		})
	}
	tracer().Infof("loading %d images", len(pending))
	for _, p := range pending {
		img, err := p.promise.Image(ctx)
		if err != nil {
			msg := fmt.Sprintf("cannot load image %q", p.src)
			tree.ReportError(core.EIMAGE, msg, err)
			continue
		}
		bounds := img.Bounds()
		if err := tree.SetImageHandle(p.box.ID(), img); err != nil {
			tracer().Errorf("%v", err)
			continue
		}
		if err := tree.SetImageSize(p.box.ID(), dimen.Dimen(bounds.Dx()), dimen.Dimen(bounds.Dy())); err != nil {
			tracer().Errorf("%v", err)
		}
	}
	return relayout
}
