package frame

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/cssbox/engine/style"
)

// ListIndex returns the ordinal number of a list item among the list
// items of its parent. The parent's attributes "start" and "reversed"
// are respected. Reversed lists without a start value count down from
// the number of list items.
func (t *Tree) ListIndex(id BoxID) int {
	b := t.Box(id)
	if b == nil || b.Parent() == nil {
		return 1
	}
	list := b.Parent()
	_, reversed := list.Attr("reversed")
	index := 1
	if start, ok := list.Attr("start"); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(start)); err == nil {
			index = n
		}
	} else if reversed {
		index = 0
		for _, c := range list.ChildBoxes() {
			if c.Display() == ListItemMode {
				index++
			}
		}
	}
	for _, c := range list.ChildBoxes() {
		if c.id == id {
			return index
		}
		if c.Display() == ListItemMode {
			if reversed {
				index--
			} else {
				index++
			}
		}
	}
	return index
}

// MarkerText returns the text of a list marker for a list-style-type.
// An empty string is returned for list-style-type none.
func MarkerText(listStyle style.Property, index int) string {
	switch strings.ToLower(strings.TrimSpace(string(listStyle))) {
	case "none":
		return ""
	case "disc", "":
		return "•"
	case "circle":
		return "○"
	case "square":
		return "■"
	case "decimal":
		return strconv.Itoa(index) + "."
	case "decimal-leading-zero":
		return fmt.Sprintf("%02d.", index)
	}
	return AlphaNumber(index, string(listStyle)) + "."
}

// AlphaNumber converts a number to a list counter of a list-style-type:
// lower/upper alpha and latin, lower/upper roman, lower-greek, armenian,
// georgian, hebrew, hiragana, hiragana-iroha, katakana and katakana-iroha.
// Unknown styles yield lower-alpha counters. Numbers < 1 are
// rendered as decimal.
func AlphaNumber(n int, listStyle string) string {
	if n < 1 {
		return strconv.Itoa(n)
	}
	switch strings.ToLower(listStyle) {
	case "lower-roman":
		return roman(n, true)
	case "upper-roman":
		return roman(n, false)
	case "lower-greek":
		return bijective(n, greek)
	case "armenian":
		return additive(n, armenian)
	case "georgian":
		return additive(n, georgian)
	case "hebrew":
		return hebrewNumber(n)
	case "hiragana":
		return bijective(n, hiragana)
	case "hiragana-iroha":
		return bijective(n, hiraganaIroha)
	case "katakana":
		return bijective(n, katakana)
	case "katakana-iroha":
		return bijective(n, katakanaIroha)
	case "upper-alpha", "upper-latin":
		return bijective(n, latinUpper)
	}
	return bijective(n, latinLower)
}

var (
	latinLower    = []rune("abcdefghijklmnopqrstuvwxyz")
	latinUpper    = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	greek         = []rune("αβγδεζηθικλμνξοπρστυφχψω")
	hiragana      = []rune("あいうえおかきくけこさしすせそたちつてとなにぬねのはひふへほまみむめもやゆよらりるれろわゐゑをん")
	hiraganaIroha = []rune("いろはにほへとちりぬるをわかよたれそつねならむうゐのおくやまけふこえてあさきゆめみしゑひもせす")
	katakana      = []rune("アイウエオカキクケコサシスセソタチツテトナニヌネノハヒフヘホマミムメモヤユヨラリルレロワヰヱヲン")
	katakanaIroha = []rune("イロハニホヘトチリヌルヲワカヨタレソツネナラムウヰノオクヤマケフコエテアサキユメミシヱヒモセス")
)

// bijective renders n in bijective base len(alphabet): a, b, …, z, aa, ab, …
func bijective(n int, alphabet []rune) string {
	base := len(alphabet)
	var digits []rune
	for n > 0 {
		n--
		digits = append(digits, alphabet[n%base])
		n /= base
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

var romanValues = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"}, {100, "C"}, {90, "XC"},
	{50, "L"}, {40, "XL"}, {10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

func roman(n int, lower bool) string {
	var b strings.Builder
	for _, rv := range romanValues {
		for n >= rv.value {
			b.WriteString(rv.symbol)
			n -= rv.value
		}
	}
	if lower {
		return strings.ToLower(b.String())
	}
	return b.String()
}

// Place value tables: units, tens, hundreds, thousands.
var armenian = [4][]rune{
	[]rune("ԱԲԳԴԵԶԷԸԹ"),
	[]rune("ԺԻԼԽԾԿՀՁՂ"),
	[]rune("ՃՄՅՆՇՈՉՊՋ"),
	[]rune("ՌՍՎՏՐՑՒՓՔ"),
}

var georgian = [4][]rune{
	[]rune("აბგდევზჱთ"),
	[]rune("იკლმნჲოპჟ"),
	[]rune("რსტჳფქღყშ"),
	[]rune("ჩცძწჭხჴჯჰ"),
}

// additive renders n by place value, one letter per non-zero decimal digit.
// Numbers beyond the table are rendered as decimal.
func additive(n int, table [4][]rune) string {
	if n >= 10000 {
		return strconv.Itoa(n)
	}
	var digits []rune
	for level := 0; n > 0; level++ {
		if d := n % 10; d > 0 {
			digits = append([]rune{table[level][d-1]}, digits...)
		}
		n /= 10
	}
	return string(digits)
}

var hebrew = [3][]rune{
	[]rune("אבגדהוזחט"),
	[]rune("יכלמנסעפצ"),
	[]rune("קרשת"),
}

// hebrewNumber renders n with Hebrew numerals. Hundreds above 400 are
// composed of tav and a remainder, 15 and 16 are written as 9+6 and
// 9+7, and thousands are marked with a geresh.
func hebrewNumber(n int) string {
	var b strings.Builder
	if n >= 1000 {
		b.WriteString(hebrewNumber(n / 1000))
		b.WriteString("׳")
		n %= 1000
	}
	h := n / 100
	for h > 4 {
		b.WriteRune(hebrew[2][3])
		h -= 4
	}
	if h > 0 {
		b.WriteRune(hebrew[2][h-1])
	}
	n %= 100
	switch n {
	case 15:
		b.WriteString("טו")
		return b.String()
	case 16:
		b.WriteString("טז")
		return b.String()
	}
	if t := n / 10; t > 0 {
		b.WriteRune(hebrew[1][t-1])
	}
	if u := n % 10; u > 0 {
		b.WriteRune(hebrew[0][u-1])
	}
	return b.String()
}
