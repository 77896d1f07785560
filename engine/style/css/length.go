package css

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/cssbox/core/dimen"
	"github.com/npillmayer/cssbox/engine/style"
)

// ErrLengthFormat is returned for property values which are not a CSS length.
var ErrLengthFormat = errors.New("format error parsing length")

// Unit is a CSS length unit.
type Unit int8

// Units known to the length resolver.
const (
	NoUnit Unit = iota // unitless number, treated as pixels
	PX
	PT
	PC
	IN
	CM
	MM
	EM
	EX
	Percent
)

var unitNames = [...]string{"", "px", "pt", "pc", "in", "cm", "mm", "em", "ex", "%"}

func (u Unit) String() string {
	if int(u) < len(unitNames) {
		return unitNames[u]
	}
	return "?"
}

var unitMap = map[string]Unit{
	"":   NoUnit,
	"px": PX,
	"pt": PT,
	"pc": PC,
	"in": IN,
	"cm": CM,
	"mm": MM,
	"em": EM,
	"ex": EX,
	"%":  Percent,
}

var absoluteScale = map[Unit]dimen.Dimen{
	NoUnit: dimen.PX,
	PX:     dimen.PX,
	PT:     dimen.PT,
	PC:     dimen.PC,
	IN:     dimen.IN,
	CM:     dimen.CM,
	MM:     dimen.MM,
}

// Length is a parsed CSS length.
type Length struct {
	Number float64
	Unit   Unit
}

// IsPercentage is true for lengths given in percent.
func (l Length) IsPercentage() bool {
	return l.Unit == Percent
}

// IsRelative is true for lengths which need a reference size to be converted.
func (l Length) IsRelative() bool {
	return l.Unit == Percent || l.Unit == EM || l.Unit == EX
}

func (l Length) String() string {
	return strconv.FormatFloat(l.Number, 'f', -1, 64) + l.Unit.String()
}

// ToPixels converts a length to pixels. Percentages are relative to
// hundredPercent, em and ex are relative to emSize.
// ex is approximated as half an em.
func (l Length) ToPixels(hundredPercent, emSize dimen.Dimen) dimen.Dimen {
	n := dimen.Dimen(l.Number)
	switch l.Unit {
	case Percent:
		return n / 100 * hundredPercent
	case EM:
		return n * emSize
	case EX:
		return n * emSize / 2
	}
	return n * absoluteScale[l.Unit]
}

var lengthPattern = regexp.MustCompile(`^([+\-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+))(%|[a-z]{2})?$`)

// ParseLength parses a CSS length like
//
//	15px
//	80%
//	-1.5em
//	12      (unitless, taken as pixels)
//
// Units are case-insensitive.
func ParseLength(s string) (Length, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	m := lengthPattern.FindStringSubmatch(s)
	if m == nil {
		return Length{}, fmt.Errorf("%w: %q", ErrLengthFormat, s)
	}
	unit, ok := unitMap[m[2]]
	if !ok {
		return Length{}, fmt.Errorf("%w: unknown unit %q", ErrLengthFormat, m[2])
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Length{}, fmt.Errorf("%w: %v", ErrLengthFormat, err)
	}
	return Length{Number: n, Unit: unit}, nil
}

// Resolve converts a property value to pixels. Keywords and malformed
// values yield 0.
func Resolve(p style.Property, hundredPercent, emSize dimen.Dimen) dimen.Dimen {
	if p.IsEmpty() {
		return 0
	}
	l, err := ParseLength(string(p))
	if err != nil {
		tracer().Debugf("length %q resolves to 0", p)
		return 0
	}
	return l.ToPixels(hundredPercent, emSize)
}

// IsAuto is true for the "auto" keyword and for unset values.
func IsAuto(p style.Property) bool {
	return p.IsEmpty() || p.Is("auto")
}

// IsLength is true if p is a parsable length.
func IsLength(p style.Property) bool {
	_, err := ParseLength(string(p))
	return err == nil
}

// BorderWidth resolves a border-width value. Keywords thin, medium and
// thick are 1, 2 and 4 pixels.
func BorderWidth(p style.Property, emSize dimen.Dimen) dimen.Dimen {
	switch {
	case p.Is("thin"):
		return 1
	case p.Is("medium"):
		return 2
	case p.Is("thick"):
		return 4
	}
	return dimen.Abs(Resolve(p, 0, emSize))
}

var fontSizeKeywords = map[string]dimen.Dimen{
	"xx-small": 9,
	"x-small":  10,
	"small":    13,
	"medium":   16,
	"large":    18,
	"x-large":  24,
	"xx-large": 32,
}

// FontSize resolves a font-size value. Absolute keywords are scaled to
// the given medium size, larger and smaller step by a factor of 1.2 from
// the parent's size. em and % are relative to the parent's font size.
func FontSize(p style.Property, parentSize, mediumSize dimen.Dimen) dimen.Dimen {
	v := strings.ToLower(strings.TrimSpace(string(p)))
	if sz, ok := fontSizeKeywords[v]; ok {
		return sz * mediumSize / 16
	}
	switch v {
	case "":
		return parentSize
	case "larger":
		return parentSize * 1.2
	case "smaller":
		return parentSize / 1.2
	}
	l, err := ParseLength(v)
	if err != nil || l.Number < 0 {
		return parentSize
	}
	return l.ToPixels(parentSize, parentSize)
}

// LineHeight resolves a line-height value. "normal" yields the font
// height, unitless numbers are factors of the font size.
func LineHeight(p style.Property, fontSize, fontHeight dimen.Dimen) dimen.Dimen {
	if p.IsEmpty() || p.Is("normal") {
		return fontHeight
	}
	l, err := ParseLength(string(p))
	if err != nil {
		return fontHeight
	}
	if l.Unit == NoUnit {
		return dimen.Dimen(l.Number) * fontSize
	}
	return l.ToPixels(fontSize, fontSize)
}

// BorderSpacing parses the horizontal and vertical part of a
// border-spacing value.
func BorderSpacing(p style.Property, emSize dimen.Dimen) (h, v dimen.Dimen) {
	f := strings.Fields(string(p))
	switch len(f) {
	case 0:
		return 0, 0
	case 1:
		h = Resolve(style.Property(f[0]), 0, emSize)
		return h, h
	}
	return Resolve(style.Property(f[0]), 0, emSize), Resolve(style.Property(f[1]), 0, emSize)
}

// ParseInt parses an integer attribute value. Values which are not
// integers or are below 1 yield 1.
func ParseInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
