package style

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Transparent is a fully transparent color.
var Transparent = color.RGBA{}

// Color returns the color value of a property. Unparsable values result
// in black.
func (p Property) Color() color.RGBA {
	if c, ok := ParseColor(p); ok {
		return c
	}
	return color.RGBA{0, 0, 0, 0xff}
}

// ParseColor parses a CSS color value: a named color, "transparent",
// #rgb, #rrggbb, #rrggbbaa, rgb(…) or rgba(…).
func ParseColor(p Property) (color.RGBA, bool) {
	s := strings.ToLower(strings.TrimSpace(string(p)))
	switch {
	case s == "":
		return Transparent, false
	case s == "transparent":
		return Transparent, true
	case strings.HasPrefix(s, "#"):
		return parseHexColor(s[1:])
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseRGBFunc(s[5:len(s)-1], true)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseRGBFunc(s[4:len(s)-1], false)
	}
	if c, ok := colornames.Map[s]; ok {
		return c, true
	}
	tracer().Debugf("unknown color value %q", s)
	return Transparent, false
}

func parseHexColor(h string) (color.RGBA, bool) {
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]}) + "ff"
	case 6:
		h += "ff"
	case 8:
	default:
		return Transparent, false
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Transparent, false
	}
	return color.RGBA{uint8(n >> 24), uint8(n >> 16), uint8(n >> 8), uint8(n)}, true
}

func parseRGBFunc(args string, withAlpha bool) (color.RGBA, bool) {
	parts := strings.Split(args, ",")
	if (withAlpha && len(parts) != 4) || (!withAlpha && len(parts) != 3) {
		return Transparent, false
	}
	var c [4]uint8
	c[3] = 0xff
	for i := 0; i < 3; i++ {
		v := strings.TrimSpace(parts[i])
		var f float64
		var err error
		if strings.HasSuffix(v, "%") {
			f, err = strconv.ParseFloat(strings.TrimSuffix(v, "%"), 64)
			f = f * 255 / 100
		} else {
			f, err = strconv.ParseFloat(v, 64)
		}
		if err != nil {
			return Transparent, false
		}
		c[i] = clamp8(f)
	}
	if withAlpha {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return Transparent, false
		}
		c[3] = clamp8(a * 255)
	}
	// color.RGBA is alpha-premultiplied
	return color.RGBA{
		R: uint8(uint16(c[0]) * uint16(c[3]) / 0xff),
		G: uint8(uint16(c[1]) * uint16(c[3]) / 0xff),
		B: uint8(uint16(c[2]) * uint16(c[3]) / 0xff),
		A: c[3],
	}, true
}

func clamp8(f float64) uint8 {
	if f < 0 {
		return 0
	}
	if f > 255 {
		return 255
	}
	return uint8(f + 0.5)
}
