package style

import (
	"sort"
	"strings"
)

// Property is a raw CSS property value.
type Property string

// NullStyle is an unset property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty is true for unset values.
func (p Property) IsEmpty() bool {
	return p == NullStyle
}

// Is compares a property value to a keyword, ignoring case and surrounding
// white space.
func (p Property) Is(keyword string) bool {
	return strings.EqualFold(strings.TrimSpace(string(p)), keyword)
}

// Property keys known to layout.
const (
	Display           = "display"
	Position          = "position"
	Width             = "width"
	Height            = "height"
	MaxWidth          = "max-width"
	MarginTop         = "margin-top"
	MarginRight       = "margin-right"
	MarginBottom      = "margin-bottom"
	MarginLeft        = "margin-left"
	PaddingTop        = "padding-top"
	PaddingRight      = "padding-right"
	PaddingBottom     = "padding-bottom"
	PaddingLeft       = "padding-left"
	BorderTopWidth    = "border-top-width"
	BorderRightWidth  = "border-right-width"
	BorderBottomWidth = "border-bottom-width"
	BorderLeftWidth   = "border-left-width"
	BorderTopStyle    = "border-top-style"
	BorderRightStyle  = "border-right-style"
	BorderBottomStyle = "border-bottom-style"
	BorderLeftStyle   = "border-left-style"
	BorderTopColor    = "border-top-color"
	BorderRightColor  = "border-right-color"
	BorderBottomColor = "border-bottom-color"
	BorderLeftColor   = "border-left-color"
	BorderSpacing     = "border-spacing"
	BorderCollapse    = "border-collapse"
	Color             = "color"
	BackgroundColor   = "background-color"
	FontFamily        = "font-family"
	FontSize          = "font-size"
	FontStyle         = "font-style"
	FontWeight        = "font-weight"
	LineHeight        = "line-height"
	TextAlign         = "text-align"
	TextIndent        = "text-indent"
	TextDecoration    = "text-decoration"
	VerticalAlign     = "vertical-align"
	WhiteSpace        = "white-space"
	WordBreak         = "word-break"
	WordSpacing       = "word-spacing"
	Direction         = "direction"
	Visibility        = "visibility"
	Overflow          = "overflow"
	ListStyleType     = "list-style-type"
	ListStylePosition = "list-style-position"
	EmptyCells        = "empty-cells"
	PageBreakInside   = "page-break-inside"
)

// Four-way properties, starting at the top and travelling clockwise.
var (
	Margins      = [4]string{MarginTop, MarginRight, MarginBottom, MarginLeft}
	Paddings     = [4]string{PaddingTop, PaddingRight, PaddingBottom, PaddingLeft}
	BorderWidths = [4]string{BorderTopWidth, BorderRightWidth, BorderBottomWidth, BorderLeftWidth}
	BorderStyles = [4]string{BorderTopStyle, BorderRightStyle, BorderBottomStyle, BorderLeftStyle}
	BorderColors = [4]string{BorderTopColor, BorderRightColor, BorderBottomColor, BorderLeftColor}
)

var initialValues = map[string]Property{
	Display:           "inline",
	Position:          "static",
	Width:             "auto",
	Height:            "auto",
	MaxWidth:          "none",
	MarginTop:         "0",
	MarginRight:       "0",
	MarginBottom:      "0",
	MarginLeft:        "0",
	PaddingTop:        "0",
	PaddingRight:      "0",
	PaddingBottom:     "0",
	PaddingLeft:       "0",
	BorderTopWidth:    "medium",
	BorderRightWidth:  "medium",
	BorderBottomWidth: "medium",
	BorderLeftWidth:   "medium",
	BorderTopStyle:    "none",
	BorderRightStyle:  "none",
	BorderBottomStyle: "none",
	BorderLeftStyle:   "none",
	BorderTopColor:    "black",
	BorderRightColor:  "black",
	BorderBottomColor: "black",
	BorderLeftColor:   "black",
	BorderSpacing:     "0",
	BorderCollapse:    "separate",
	Color:             "black",
	BackgroundColor:   "transparent",
	FontFamily:        "",
	FontSize:          "medium",
	FontStyle:         "normal",
	FontWeight:        "normal",
	LineHeight:        "normal",
	TextAlign:         "left",
	TextIndent:        "0",
	TextDecoration:    "none",
	VerticalAlign:     "baseline",
	WhiteSpace:        "normal",
	WordBreak:         "normal",
	WordSpacing:       "normal",
	Direction:         "ltr",
	Visibility:        "visible",
	Overflow:          "visible",
	ListStyleType:     "disc",
	ListStylePosition: "outside",
	EmptyCells:        "show",
	PageBreakInside:   "auto",
}

var inherited = map[string]bool{
	BorderCollapse:    true,
	BorderSpacing:     true,
	Color:             true,
	Direction:         true,
	EmptyCells:        true,
	FontFamily:        true,
	FontSize:          true,
	FontStyle:         true,
	FontWeight:        true,
	LineHeight:        true,
	ListStylePosition: true,
	ListStyleType:     true,
	TextAlign:         true,
	TextIndent:        true,
	Visibility:        true,
	WhiteSpace:        true,
	WordBreak:         true,
	WordSpacing:       true,
}

// InitialValue returns the CSS initial value for a property key.
func InitialValue(key string) Property {
	return initialValues[key]
}

// IsInherited is true for properties which inherit by default.
func IsInherited(key string) bool {
	return inherited[key]
}

// IsKnown is true for property keys layout knows about.
func IsKnown(key string) bool {
	_, ok := initialValues[key]
	return ok
}

// PropertyMap holds the properties explicitly set for a box.
type PropertyMap struct {
	props map[string]Property
}

// NewPropertyMap creates an empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{props: make(map[string]Property)}
}

// Get returns a property value and a flag telling if it is set.
func (pmap *PropertyMap) Get(key string) (Property, bool) {
	if pmap == nil || pmap.props == nil {
		return NullStyle, false
	}
	p, ok := pmap.props[key]
	return p, ok
}

// Set sets a property. Setting NullStyle removes the property.
func (pmap *PropertyMap) Set(key string, value Property) {
	if pmap.props == nil {
		pmap.props = make(map[string]Property)
	}
	if value == NullStyle {
		delete(pmap.props, key)
		return
	}
	pmap.props[key] = value
}

// Size returns the number of properties set.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.props)
}

// Keys returns the keys of all properties set, sorted.
func (pmap *PropertyMap) Keys() []string {
	if pmap == nil {
		return nil
	}
	keys := make([]string, 0, len(pmap.props))
	for k := range pmap.props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (pmap *PropertyMap) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, k := range pmap.Keys() {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(string(pmap.props[k]))
	}
	b.WriteString("}")
	return b.String()
}
