package gfx

import (
	"fmt"
	"image/color"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/cssbox/core/dimen"
	"github.com/npillmayer/cssbox/core/font"
	"github.com/npillmayer/cssbox/engine/frame/paint"
)

// OpKind is the type of a recorded drawing operation.
type OpKind uint8

// Drawing operations
const (
	OpRect OpKind = iota
	OpLine
	OpText
	OpImage
	OpPushClip
	OpPushClipExcluding
	OpPopClip
)

var opNames = [...]string{"rect", "line", "text", "image", "clip", "clip-excluding", "pop-clip"}

func (k OpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return "?"
}

// Op is a recorded drawing operation. Only the fields relevant for its
// kind are set. Lines and text use From as their position.
type Op struct {
	Kind   OpKind
	Rect   dimen.Rect
	From   dimen.Point
	To     dimen.Point
	Width  dimen.Dimen
	Color  color.Color
	Fill   bool
	Text   string
	Font   font.Font
	Handle interface{}
	Depth  int // clip depth at the time of the operation
}

func (op Op) String() string {
	switch op.Kind {
	case OpRect, OpImage, OpPushClip, OpPushClipExcluding:
		return fmt.Sprintf("%s %s", op.Kind, op.Rect)
	case OpText:
		return fmt.Sprintf("%s %q at (%.2f,%.2f)", op.Kind, op.Text, float64(op.From.X), float64(op.From.Y))
	case OpLine:
		return fmt.Sprintf("%s (%.2f,%.2f)-(%.2f,%.2f)", op.Kind,
			float64(op.From.X), float64(op.From.Y), float64(op.To.X), float64(op.To.Y))
	}
	return op.Kind.String()
}

// Recorder is a painter recording drawing operations.
type Recorder struct {
	Ops   []Op
	clips *arraystack.Stack
}

var _ paint.Painter = &Recorder{}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{clips: arraystack.New()}
}

func (rec *Recorder) record(op Op) {
	if rec.clips == nil {
		rec.clips = arraystack.New()
	}
	op.Depth = rec.clips.Size()
	rec.Ops = append(rec.Ops, op)
}

// DrawRect records a rectangle.
func (rec *Recorder) DrawRect(r dimen.Rect, c color.Color, fill bool) {
	rec.record(Op{Kind: OpRect, Rect: r, Color: c, Fill: fill})
}

// DrawLine records a line.
func (rec *Recorder) DrawLine(from, to dimen.Point, width dimen.Dimen, c color.Color) {
	rec.record(Op{Kind: OpLine, From: from, To: to, Width: width, Color: c})
}

// DrawText records text, positioned at its baseline.
func (rec *Recorder) DrawText(text string, f font.Font, at dimen.Point, c color.Color) {
	rec.record(Op{Kind: OpText, Text: text, Font: f, From: at, Color: c})
}

// DrawImage records an image.
func (rec *Recorder) DrawImage(handle interface{}, r dimen.Rect) {
	rec.record(Op{Kind: OpImage, Handle: handle, Rect: r})
}

// PushClip records a clip rectangle.
func (rec *Recorder) PushClip(r dimen.Rect) {
	rec.record(Op{Kind: OpPushClip, Rect: r})
	rec.clips.Push(r)
}

// PushClipExcluding records an excluded rectangle.
func (rec *Recorder) PushClipExcluding(r dimen.Rect) {
	rec.record(Op{Kind: OpPushClipExcluding, Rect: r})
	rec.clips.Push(r)
}

// PopClip records the end of a clip region. Unbalanced pops are traced
// and ignored.
func (rec *Recorder) PopClip() {
	if rec.clips == nil || rec.clips.Empty() {
		tracer().Errorf("recorder: pop from empty clip stack")
		return
	}
	rec.clips.Pop()
	rec.record(Op{Kind: OpPopClip})
}

// Depth returns the current depth of the clip stack.
func (rec *Recorder) Depth() int {
	if rec.clips == nil {
		return 0
	}
	return rec.clips.Size()
}

// Texts returns the texts drawn, in drawing order.
func (rec *Recorder) Texts() []string {
	var texts []string
	for _, op := range rec.Ops {
		if op.Kind == OpText {
			texts = append(texts, op.Text)
		}
	}
	return texts
}

// OpsOf returns the operations of a kind.
func (rec *Recorder) OpsOf(kind OpKind) []Op {
	var ops []Op
	for _, op := range rec.Ops {
		if op.Kind == kind {
			ops = append(ops, op)
		}
	}
	return ops
}
