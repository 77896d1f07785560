package style

import (
	"strings"
)

// KeyValue is a single property assignment.
type KeyValue struct {
	Key   string
	Value Property
}

// Expand expands CSS shorthand properties into longhand properties.
// Non-shorthand properties are returned unchanged. Expansion is lenient:
// a shorthand with too many values yields its leading values only.
func Expand(key string, value Property) []KeyValue {
	key = strings.ToLower(strings.TrimSpace(key))
	v := strings.TrimSpace(string(value))
	switch key {
	case "margin":
		return fourWay(Margins, v)
	case "padding":
		return fourWay(Paddings, v)
	case "border-width":
		return fourWay(BorderWidths, v)
	case "border-style":
		return fourWay(BorderStyles, v)
	case "border-color":
		return fourWay(BorderColors, v)
	case "border":
		return border([]int{0, 1, 2, 3}, v)
	case "border-top":
		return border([]int{0}, v)
	case "border-right":
		return border([]int{1}, v)
	case "border-bottom":
		return border([]int{2}, v)
	case "border-left":
		return border([]int{3}, v)
	case "list-style":
		return listStyle(v)
	case "background":
		return []KeyValue{{BackgroundColor, Property(firstColorLike(v))}}
	}
	return []KeyValue{{key, Property(v)}}
}

// fourWay distributes 1–4 values to top, right, bottom, left.
func fourWay(keys [4]string, v string) []KeyValue {
	f := strings.Fields(v)
	var t, r, b, l string
	switch len(f) {
	case 0:
		return nil
	case 1:
		t, r, b, l = f[0], f[0], f[0], f[0]
	case 2:
		t, r, b, l = f[0], f[1], f[0], f[1]
	case 3:
		t, r, b, l = f[0], f[1], f[2], f[1]
	default:
		t, r, b, l = f[0], f[1], f[2], f[3]
	}
	return []KeyValue{
		{keys[0], Property(t)}, {keys[1], Property(r)},
		{keys[2], Property(b)}, {keys[3], Property(l)},
	}
}

var borderStyleKeywords = map[string]bool{
	"none": true, "hidden": true, "dotted": true, "dashed": true, "solid": true,
	"double": true, "groove": true, "ridge": true, "inset": true, "outset": true,
}

var borderWidthKeywords = map[string]bool{"thin": true, "medium": true, "thick": true}

// border expands 'border' and 'border-<side>' for the given sides.
func border(sides []int, v string) []KeyValue {
	var width, bstyle, bcolor string
	for _, f := range fieldsOutsideParens(v) {
		lf := strings.ToLower(f)
		switch {
		case borderStyleKeywords[lf]:
			bstyle = lf
		case borderWidthKeywords[lf] || startsNumeric(lf):
			width = lf
		default:
			bcolor = f
		}
	}
	var kv []KeyValue
	for _, side := range sides {
		if width != "" {
			kv = append(kv, KeyValue{BorderWidths[side], Property(width)})
		}
		if bstyle != "" {
			kv = append(kv, KeyValue{BorderStyles[side], Property(bstyle)})
		}
		if bcolor != "" {
			kv = append(kv, KeyValue{BorderColors[side], Property(bcolor)})
		}
	}
	return kv
}

func listStyle(v string) []KeyValue {
	var kv []KeyValue
	for _, f := range strings.Fields(strings.ToLower(v)) {
		switch f {
		case "inside", "outside":
			kv = append(kv, KeyValue{ListStylePosition, Property(f)})
		default:
			if !strings.HasPrefix(f, "url(") {
				kv = append(kv, KeyValue{ListStyleType, Property(f)})
			}
		}
	}
	return kv
}

func firstColorLike(v string) string {
	for _, f := range fieldsOutsideParens(v) {
		if strings.HasPrefix(f, "url(") {
			continue
		}
		if _, ok := ParseColor(Property(f)); ok {
			return f
		}
	}
	return "transparent"
}

func startsNumeric(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+'
}

// fieldsOutsideParens splits at white space, keeping parenthesized groups
// like "rgb(1, 2, 3)" together.
func fieldsOutsideParens(v string) []string {
	var fields []string
	depth, start := 0, -1
	for i, r := range v {
		switch {
		case r == '(':
			depth++
		case r == ')':
			if depth > 0 {
				depth--
			}
		}
		isSpace := r == ' ' || r == '\t' || r == '\n' || r == '\r'
		if isSpace && depth == 0 {
			if start >= 0 {
				fields = append(fields, v[start:i])
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		fields = append(fields, v[start:])
	}
	return fields
}
