package frame

import (
	"bytes"
	"strings"

	"github.com/npillmayer/cssbox/engine/style"
)

// DisplayMode is a type for CSS property "display".
type DisplayMode uint16

// Flags for display mode (outer and inner).
const (
	NoMode            DisplayMode = iota   // unset or error condition
	DisplayNone       DisplayMode = 0x0001 // CSS outer display = none
	BlockMode         DisplayMode = 0x0002 // CSS block context (inner or outer)
	InlineMode        DisplayMode = 0x0004 // CSS inline context
	ListItemMode      DisplayMode = 0x0008 // CSS list-item display
	TableMode         DisplayMode = 0x0010 // CSS table display property (inner or outer)
	TableRowGroupMode DisplayMode = 0x0020 // table-row-group
	TableHeaderMode   DisplayMode = 0x0040 // table-header-group
	TableFooterMode   DisplayMode = 0x0080 // table-footer-group
	TableRowMode      DisplayMode = 0x0100 // table-row
	TableColGroupMode DisplayMode = 0x0200 // table-column-group
	TableColumnMode   DisplayMode = 0x0400 // table-column
	TableCellMode     DisplayMode = 0x0800 // table-cell
	TableCaptionMode  DisplayMode = 0x1000 // table-caption
)

var allDisplayModes = []DisplayMode{
	DisplayNone, BlockMode, InlineMode, ListItemMode, TableMode, TableRowGroupMode,
	TableHeaderMode, TableFooterMode, TableRowMode, TableColGroupMode, TableColumnMode,
	TableCellMode, TableCaptionMode,
}

var displayModeNames = map[DisplayMode]string{
	DisplayNone:       "none",
	BlockMode:         "block",
	InlineMode:        "inline",
	ListItemMode:      "list-item",
	TableMode:         "table",
	TableRowGroupMode: "table-row-group",
	TableHeaderMode:   "table-header-group",
	TableFooterMode:   "table-footer-group",
	TableRowMode:      "table-row",
	TableColGroupMode: "table-column-group",
	TableColumnMode:   "table-column",
	TableCellMode:     "table-cell",
	TableCaptionMode:  "table-caption",
}

// ParseDisplay returns the display mode for a display property value.
// Flex and grid containers are laid out as blocks. Unknown values result
// in inline display, the CSS initial value.
func ParseDisplay(p style.Property) DisplayMode {
	switch strings.ToLower(strings.TrimSpace(string(p))) {
	case "none":
		return DisplayNone
	case "block", "flow-root", "flex", "grid":
		return BlockMode
	case "inline-block", "inline-flex", "inline-grid":
		return InlineMode | BlockMode
	case "list-item":
		return ListItemMode
	case "table":
		return TableMode
	case "inline-table":
		return InlineMode | TableMode
	case "table-row-group":
		return TableRowGroupMode
	case "table-header-group":
		return TableHeaderMode
	case "table-footer-group":
		return TableFooterMode
	case "table-row":
		return TableRowMode
	case "table-column-group":
		return TableColGroupMode
	case "table-column":
		return TableColumnMode
	case "table-cell":
		return TableCellMode
	case "table-caption":
		return TableCaptionMode
	}
	return InlineMode
}

// Set sets a given atomic mode within this display mode.
func (disp *DisplayMode) Set(d DisplayMode) {
	*disp = (*disp) | d
}

// Contains checks if a display mode contains a given atomic mode.
// Returns false for d = NoMode.
func (disp DisplayMode) Contains(d DisplayMode) bool {
	return d != NoMode && (disp&d > 0)
}

// Overlaps returns true if a given display mode shares at least one atomic
// mode flag with disp (excluding NoMode).
func (disp DisplayMode) Overlaps(d DisplayMode) bool {
	for _, m := range allDisplayModes {
		if disp.Contains(m) && d.Contains(m) {
			return true
		}
	}
	return false
}

// IsInline is true for inline and inline-block boxes. Inline tables
// are laid out as tables and are not considered inline.
func (disp DisplayMode) IsInline() bool {
	return disp.Contains(InlineMode) && !disp.Contains(TableMode)
}

// IsBlockLike is true for modes which establish a block of their own:
// block, list-item, table, inline-table and table-cell.
func (disp DisplayMode) IsBlockLike() bool {
	if disp.Contains(InlineMode) && !disp.Contains(TableMode) {
		return false
	}
	return disp.Overlaps(BlockMode | ListItemMode | TableMode | TableCellMode)
}

// IsContainingBlock is true for modes which may serve as containing
// block: block, list-item, table and table-cell.
func (disp DisplayMode) IsContainingBlock() bool {
	if disp.Contains(InlineMode) {
		return false
	}
	return disp.Overlaps(BlockMode | ListItemMode | TableMode | TableCellMode)
}

func (disp DisplayMode) String() string {
	switch disp {
	case NoMode:
		return "NoMode"
	case InlineMode | BlockMode:
		return "inline-block"
	case InlineMode | TableMode:
		return "inline-table"
	}
	if s, ok := displayModeNames[disp]; ok {
		return s
	}
	return disp.FullString()
}

// FullString returns all atomic modes set in a display mode.
func (disp DisplayMode) FullString() string {
	var b bytes.Buffer
	first := true
	for _, m := range allDisplayModes {
		if disp.Contains(m) {
			if !first {
				b.WriteString(" ")
			}
			first = false
			b.WriteString(displayModeNames[m])
		}
	}
	return b.String()
}

// Symbol returns a Unicode symbol for a mode.
func (disp DisplayMode) Symbol() string {
	if disp == DisplayNone {
		return "□"
	} else if disp.Contains(TableCellMode) {
		return "▦"
	} else if disp.Contains(TableMode) {
		return "▥"
	} else if disp.Overlaps(TableRowMode | TableRowGroupMode | TableHeaderMode | TableFooterMode) {
		return "▤"
	} else if disp.Contains(ListItemMode) {
		return "▣"
	} else if disp.Contains(InlineMode) {
		return "►"
	} else if disp.Contains(BlockMode) {
		return "▩"
	}
	return "?"
}
