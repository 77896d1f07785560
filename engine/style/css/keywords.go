package css

import (
	"strings"

	"github.com/npillmayer/cssbox/engine/style"
	"github.com/npillmayer/uax/bidi"
)

// WhiteSpace is the CSS white-space mode.
type WhiteSpace uint8

// White-space modes.
const (
	WSNormal WhiteSpace = iota
	WSNoWrap
	WSPre
	WSPreWrap
	WSPreLine
)

// ParseWhiteSpace returns the white-space mode for a property value.
// Unknown values are treated as "normal".
func ParseWhiteSpace(p style.Property) WhiteSpace {
	switch strings.ToLower(strings.TrimSpace(string(p))) {
	case "nowrap":
		return WSNoWrap
	case "pre":
		return WSPre
	case "pre-wrap":
		return WSPreWrap
	case "pre-line":
		return WSPreLine
	}
	return WSNormal
}

// PreservesSpaces is true for modes which keep runs of white space.
func (ws WhiteSpace) PreservesSpaces() bool {
	return ws == WSPre || ws == WSPreWrap
}

// PreservesNewlines is true for modes which respect line feeds.
func (ws WhiteSpace) PreservesNewlines() bool {
	return ws == WSPre || ws == WSPreWrap || ws == WSPreLine
}

// Wraps is false for modes which never break lines at white space.
func (ws WhiteSpace) Wraps() bool {
	return ws != WSNoWrap && ws != WSPre
}

func (ws WhiteSpace) String() string {
	return [...]string{"normal", "nowrap", "pre", "pre-wrap", "pre-line"}[ws]
}

// TextAlign is the horizontal alignment of lines.
type TextAlign uint8

// Text alignment values. Start and end are mapped to left and right.
const (
	AlignLeft TextAlign = iota
	AlignRight
	AlignCenter
	AlignJustify
)

// ParseTextAlign returns the text alignment of a property value.
func ParseTextAlign(p style.Property) TextAlign {
	switch strings.ToLower(strings.TrimSpace(string(p))) {
	case "right", "end":
		return AlignRight
	case "center":
		return AlignCenter
	case "justify":
		return AlignJustify
	}
	return AlignLeft
}

// VerticalAlign is the vertical alignment of inline boxes and of table
// cell content.
type VerticalAlign uint8

// Vertical alignment values.
const (
	VAlignBaseline VerticalAlign = iota
	VAlignSub
	VAlignSuper
	VAlignTop
	VAlignMiddle
	VAlignBottom
	VAlignTextTop
	VAlignTextBottom
	VAlignLength // a length or percentage
)

// ParseVerticalAlign returns the vertical alignment of a property value.
func ParseVerticalAlign(p style.Property) VerticalAlign {
	switch strings.ToLower(strings.TrimSpace(string(p))) {
	case "", "baseline":
		return VAlignBaseline
	case "sub":
		return VAlignSub
	case "super":
		return VAlignSuper
	case "top":
		return VAlignTop
	case "middle":
		return VAlignMiddle
	case "bottom":
		return VAlignBottom
	case "text-top":
		return VAlignTextTop
	case "text-bottom":
		return VAlignTextBottom
	}
	if IsLength(p) {
		return VAlignLength
	}
	return VAlignBaseline
}

// Position is the CSS positioning scheme.
type Position uint8

// Positioning schemes.
const (
	PositionStatic Position = iota
	PositionRelative
	PositionAbsolute
	PositionFixed
)

// ParsePosition returns the positioning scheme of a property value.
func ParsePosition(p style.Property) Position {
	switch strings.ToLower(strings.TrimSpace(string(p))) {
	case "relative":
		return PositionRelative
	case "absolute":
		return PositionAbsolute
	case "fixed":
		return PositionFixed
	}
	return PositionStatic
}

// IsOutOfFlow is true for absolute and fixed positioning.
func (pos Position) IsOutOfFlow() bool {
	return pos == PositionAbsolute || pos == PositionFixed
}

// WordBreak is the CSS word-break mode.
type WordBreak uint8

// Word-break modes.
const (
	WordBreakNormal WordBreak = iota
	WordBreakAll
	WordBreakKeepAll
)

// ParseWordBreak returns the word-break mode of a property value.
func ParseWordBreak(p style.Property) WordBreak {
	switch strings.ToLower(strings.TrimSpace(string(p))) {
	case "break-all":
		return WordBreakAll
	case "keep-all":
		return WordBreakKeepAll
	}
	return WordBreakNormal
}

// ParseDirection returns the bidi direction of a direction property.
func ParseDirection(p style.Property) bidi.Direction {
	if p.Is("rtl") {
		return bidi.RightToLeft
	}
	return bidi.LeftToRight
}

// IsRTL is true for a direction property of "rtl".
func IsRTL(p style.Property) bool {
	return ParseDirection(p) == bidi.RightToLeft
}

// IsHidden is true for overflow or visibility values which hide content.
func IsHidden(p style.Property) bool {
	return p.Is("hidden") || p.Is("collapse")
}

// HasBorderStyle is false for border styles which suppress the border.
func HasBorderStyle(p style.Property) bool {
	return !(p.IsEmpty() || p.Is("none") || p.Is("hidden"))
}
