package frame

import (
	"image/color"
	"strings"

	"github.com/npillmayer/cssbox/core/dimen"
	"github.com/npillmayer/cssbox/core/font"
	"github.com/npillmayer/cssbox/core/option"
	"github.com/npillmayer/cssbox/engine/style"
	"github.com/npillmayer/cssbox/engine/style/css"
)

// actuals caches actual values, derived from raw properties.
// A cache entry is None until first use and is reset whenever a property
// is set.
type actuals struct {
	margins      [4]option.Maybe[dimen.Dimen]
	paddings     [4]option.Maybe[dimen.Dimen]
	borders      [4]option.Maybe[dimen.Dimen]
	borderColors [4]option.Maybe[color.RGBA]
	textIndent   option.Maybe[dimen.Dimen]
	fontSize     option.Maybe[dimen.Dimen]
	font         option.Maybe[font.Font]
	lineHeight   option.Maybe[dimen.Dimen]
	wordSpacing  option.Maybe[dimen.Dimen]
	color        option.Maybe[color.RGBA]
	background   option.Maybe[color.RGBA]
}

func (a *actuals) reset() {
	*a = actuals{}
}

// margins, paddings and text-indent may be percentages of the box width.
func (a *actuals) resetWidthDependent() {
	for i := 0; i < 4; i++ {
		a.margins[i].Reset()
		a.paddings[i].Reset()
	}
	a.textIndent.Reset()
}

// Style returns the value of a property for a box. Unset properties are
// inherited from the parent if the property inherits, otherwise the
// initial value is returned. "inherit" forces inheritance.
func (b *Box) Style(key string) style.Property {
	if p, ok := b.props.Get(key); ok {
		if !p.Is("inherit") {
			if p.Is("initial") {
				return style.InitialValue(key)
			}
			return p
		}
		if parent := b.Parent(); parent != nil {
			return parent.Style(key)
		}
		return style.InitialValue(key)
	}
	if style.IsInherited(key) {
		if parent := b.Parent(); parent != nil {
			return parent.Style(key)
		}
	}
	return style.InitialValue(key)
}

// LocalStyle returns a property only if it is set for this box.
func (b *Box) LocalStyle(key string) (style.Property, bool) {
	return b.props.Get(key)
}

// Properties returns the properties set for a box.
func (b *Box) Properties() *style.PropertyMap {
	return b.props
}

// SetStyle sets a property. Shorthand properties are expanded.
// Cached actual values are invalidated, for inherited properties
// including those of all descendants.
func (b *Box) SetStyle(key string, value style.Property) {
	for _, kv := range style.Expand(key, value) {
		b.props.Set(kv.Key, kv.Value)
		b.invalidate(kv.Key)
	}
}

func (b *Box) invalidate(key string) {
	b.actuals.reset()
	switch key {
	case style.WhiteSpace, style.WordBreak:
		if b.hasText {
			b.splitText()
		}
	case style.FontFamily, style.FontSize, style.FontStyle, style.FontWeight, style.WordSpacing:
		b.measured = false
	}
	if !style.IsInherited(key) {
		return
	}
	for _, c := range b.children {
		if child := b.tree.Box(c); child != nil {
			child.invalidate(key)
		}
	}
	if m := b.Marker(); m != nil {
		m.invalidate(key)
	}
}

// Display returns the display mode of a box.
func (b *Box) Display() DisplayMode {
	return ParseDisplay(b.Style(style.Display))
}

// IsInline is true for inline and inline-block boxes.
func (b *Box) IsInline() bool {
	return b.Display().IsInline()
}

// IsBlock is true for display block.
func (b *Box) IsBlock() bool {
	return b.Display() == BlockMode
}

// IsFixed is true for boxes with position fixed.
func (b *Box) IsFixed() bool {
	return b.Position() == css.PositionFixed
}

// Position returns the positioning scheme of a box.
func (b *Box) Position() css.Position {
	return css.ParsePosition(b.Style(style.Position))
}

// WhiteSpace returns the white-space mode of a box.
func (b *Box) WhiteSpace() css.WhiteSpace {
	return css.ParseWhiteSpace(b.Style(style.WhiteSpace))
}

// WordBreak returns the word-break mode of a box.
func (b *Box) WordBreak() css.WordBreak {
	return css.ParseWordBreak(b.Style(style.WordBreak))
}

// TextAlign returns the horizontal alignment of lines.
func (b *Box) TextAlign() css.TextAlign {
	return css.ParseTextAlign(b.Style(style.TextAlign))
}

// VerticalAlign returns the vertical alignment of a box.
func (b *Box) VerticalAlign() css.VerticalAlign {
	return css.ParseVerticalAlign(b.Style(style.VerticalAlign))
}

// IsRTL is true for boxes with direction rtl.
func (b *Box) IsRTL() bool {
	return css.IsRTL(b.Style(style.Direction))
}

// IsVisible is false for boxes with visibility hidden or collapse.
func (b *Box) IsVisible() bool {
	return !css.IsHidden(b.Style(style.Visibility))
}

// ClipsOverflow is true for boxes with overflow hidden.
func (b *Box) ClipsOverflow() bool {
	return b.Style(style.Overflow).Is("hidden")
}

// HasExplicitHeight is true if height is set to something other than auto.
func (b *Box) HasExplicitHeight() bool {
	return !css.IsAuto(b.Style(style.Height))
}

// HasExplicitWidth is true if width is set to something other than auto.
func (b *Box) HasExplicitWidth() bool {
	return !css.IsAuto(b.Style(style.Width))
}

// --- Actual values ---------------------------------------------------------

// FontSize returns the computed font size.
func (b *Box) FontSize() dimen.Dimen {
	return b.actuals.fontSize.Lazy(func() dimen.Dimen {
		parentSize := b.tree.Params.FontSize
		if parent := b.Parent(); parent != nil {
			parentSize = parent.FontSize()
		}
		p, ok := b.props.Get(style.FontSize)
		if !ok || p.Is("inherit") {
			return parentSize
		}
		return css.FontSize(p, parentSize, b.tree.Params.FontSize)
	})
}

// FontDescriptor describes the font of a box.
func (b *Box) FontDescriptor() font.Descriptor {
	family := strings.TrimSpace(string(b.Style(style.FontFamily)))
	if family == "" {
		family = b.tree.Params.FontFamily
	}
	return font.Descriptor{
		Family: family,
		Size:   b.FontSize(),
		Style:  font.ParseStyle(string(b.Style(style.FontStyle))),
		Weight: font.ParseWeight(string(b.Style(style.FontWeight))),
	}
}

// Font returns the font of a box.
func (b *Box) Font() font.Font {
	return b.actuals.font.Lazy(func() font.Font {
		return b.tree.measurer().Font(b.FontDescriptor())
	})
}

// EmHeight is the height of the box's font.
func (b *Box) EmHeight() dimen.Dimen {
	return b.Font().Height()
}

func (b *Box) length(key string, hundredPercent dimen.Dimen) dimen.Dimen {
	return css.Resolve(b.Style(key), hundredPercent, b.EmHeight())
}

func (b *Box) margin(side int) dimen.Dimen {
	return b.actuals.margins[side].Lazy(func() dimen.Dimen {
		return b.length(style.Margins[side], b.size.W)
	})
}

// MarginTop returns the actual top margin. auto is 0.
func (b *Box) MarginTop() dimen.Dimen { return b.margin(Top) }

// MarginRight returns the actual right margin.
func (b *Box) MarginRight() dimen.Dimen { return b.margin(Right) }

// MarginBottom returns the actual bottom margin.
func (b *Box) MarginBottom() dimen.Dimen { return b.margin(Bottom) }

// MarginLeft returns the actual left margin.
func (b *Box) MarginLeft() dimen.Dimen { return b.margin(Left) }

func (b *Box) padding(side int) dimen.Dimen {
	return b.actuals.paddings[side].Lazy(func() dimen.Dimen {
		return b.length(style.Paddings[side], b.size.W)
	})
}

// PaddingTop returns the actual top padding.
func (b *Box) PaddingTop() dimen.Dimen { return b.padding(Top) }

// PaddingRight returns the actual right padding.
func (b *Box) PaddingRight() dimen.Dimen { return b.padding(Right) }

// PaddingBottom returns the actual bottom padding.
func (b *Box) PaddingBottom() dimen.Dimen { return b.padding(Bottom) }

// PaddingLeft returns the actual left padding.
func (b *Box) PaddingLeft() dimen.Dimen { return b.padding(Left) }

// BorderWidth returns the actual border width of a side. Borders with
// style none or hidden have a width of 0.
func (b *Box) BorderWidth(side int) dimen.Dimen {
	return b.actuals.borders[side].Lazy(func() dimen.Dimen {
		if !css.HasBorderStyle(b.Style(style.BorderStyles[side])) {
			return 0
		}
		return css.BorderWidth(b.Style(style.BorderWidths[side]), b.EmHeight())
	})
}

// BorderTopWidth returns the actual width of the top border.
func (b *Box) BorderTopWidth() dimen.Dimen { return b.BorderWidth(Top) }

// BorderRightWidth returns the actual width of the right border.
func (b *Box) BorderRightWidth() dimen.Dimen { return b.BorderWidth(Right) }

// BorderBottomWidth returns the actual width of the bottom border.
func (b *Box) BorderBottomWidth() dimen.Dimen { return b.BorderWidth(Bottom) }

// BorderLeftWidth returns the actual width of the left border.
func (b *Box) BorderLeftWidth() dimen.Dimen { return b.BorderWidth(Left) }

// BorderColor returns the color of a border side.
func (b *Box) BorderColor(side int) color.RGBA {
	return b.actuals.borderColors[side].Lazy(func() color.RGBA {
		return b.Style(style.BorderColors[side]).Color()
	})
}

// Color returns the text color.
func (b *Box) Color() color.RGBA {
	return b.actuals.color.Lazy(func() color.RGBA {
		return b.Style(style.Color).Color()
	})
}

// BackgroundColor returns the background color, possibly transparent.
func (b *Box) BackgroundColor() color.RGBA {
	return b.actuals.background.Lazy(func() color.RGBA {
		c, _ := style.ParseColor(b.Style(style.BackgroundColor))
		return c
	})
}

// ActualWidth returns the width property resolved against the box width.
// auto is 0.
func (b *Box) ActualWidth() dimen.Dimen {
	return b.length(style.Width, b.size.W)
}

// ActualHeight returns the height property resolved against the box
// height. auto is 0.
func (b *Box) ActualHeight() dimen.Dimen {
	return b.length(style.Height, b.size.H)
}

// MaxWidth returns the max-width property, if set.
func (b *Box) MaxWidth(hundredPercent dimen.Dimen) (dimen.Dimen, bool) {
	p := b.Style(style.MaxWidth)
	if p.IsEmpty() || p.Is("none") || !css.IsLength(p) {
		return 0, false
	}
	return b.length(style.MaxWidth, hundredPercent), true
}

// TextIndent returns the indentation of the first line.
func (b *Box) TextIndent() dimen.Dimen {
	return b.actuals.textIndent.Lazy(func() dimen.Dimen {
		return b.length(style.TextIndent, b.size.W)
	})
}

// LineHeight returns the actual line height.
func (b *Box) LineHeight() dimen.Dimen {
	return b.actuals.lineHeight.Lazy(func() dimen.Dimen {
		return css.LineHeight(b.Style(style.LineHeight), b.FontSize(), b.EmHeight())
	})
}

// WordSpacing returns the width of inter-word spacing: the width of
// a white space character plus the word-spacing property.
func (b *Box) WordSpacing() dimen.Dimen {
	return b.actuals.wordSpacing.Lazy(func() dimen.Dimen {
		ws := b.tree.measurer().WhitespaceWidth(b.Font())
		p := b.Style(style.WordSpacing)
		if !p.IsEmpty() && !p.Is("normal") {
			if f := strings.Fields(string(p)); len(f) > 0 {
				ws += css.Resolve(style.Property(f[0]), 1, b.EmHeight())
			}
		}
		return ws
	})
}

// BorderSpacing returns the horizontal and vertical table border spacing.
// Collapsed borders yield a horizontal spacing of -1.
func (b *Box) BorderSpacing() (h, v dimen.Dimen) {
	h, v = css.BorderSpacing(b.Style(style.BorderSpacing), b.EmHeight())
	if b.Style(style.BorderCollapse).Is("collapse") {
		h = -1
	}
	return
}

// HorizontalDecoration returns the sum of left and right margin, border
// and padding.
func (b *Box) HorizontalDecoration() dimen.Dimen {
	return b.MarginLeft() + b.BorderLeftWidth() + b.PaddingLeft() +
		b.PaddingRight() + b.BorderRightWidth() + b.MarginRight()
}

// ColSpan returns the colspan attribute, defaulting to 1.
func (b *Box) ColSpan() int {
	return b.intAttr("colspan")
}

// RowSpan returns the rowspan attribute, defaulting to 1.
func (b *Box) RowSpan() int {
	return b.intAttr("rowspan")
}

// Span returns the span attribute of columns, defaulting to 1.
func (b *Box) Span() int {
	return b.intAttr("span")
}

func (b *Box) intAttr(key string) int {
	v, ok := b.Attr(key)
	if !ok {
		return 1
	}
	return css.ParseInt(v)
}
