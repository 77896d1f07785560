package frame

import (
	"unicode"

	"github.com/npillmayer/cssbox/engine/style/css"
	"golang.org/x/text/width"
)

// SplitWords splits text into fragments, according to a white-space mode
// and a word-break mode:
//
//   - runs of white space are emitted for pre and pre-wrap, and dropped otherwise
//   - a word extends through a trailing hyphen
//   - East Asian wide characters and break-all yield one-character words
//   - line feeds are emitted as separate fragments for pre, pre-wrap and pre-line
//
// Fragments are not measured and have no owner.
func SplitWords(text string, ws css.WhiteSpace, wb css.WordBreak) []*Fragment {
	var words []*Fragment
	preserve := ws.PreservesSpaces()
	runes := []rune(text)
	n := len(runes)
	isSpace := func(i int) bool {
		return unicode.IsSpace(runes[i])
	}
	start := 0
	for start < n {
		for start < n && runes[start] == '\r' {
			start++
		}
		if start >= n {
			break
		}
		end := start
		for end < n && isSpace(end) && runes[end] != '\n' {
			end++
		}
		if end > start {
			if preserve {
				words = append(words, &Fragment{Text: string(runes[start:end])})
			}
		} else {
			breakAll := wb == css.WordBreakAll
			for end < n && !isSpace(end) && runes[end] != '-' && !breakAll && !isWide(runes[end]) {
				end++
			}
			if end < n && (runes[end] == '-' || breakAll || isWide(runes[end])) && !isSpace(end) {
				end++
			}
			if end > start {
				words = append(words, &Fragment{
					Text:        string(runes[start:end]),
					SpaceBefore: !preserve && start > 0 && len(words) == 0 && isSpace(start-1),
					SpaceAfter:  !preserve && end < n && isSpace(end),
				})
			}
		}
		if end < n && runes[end] == '\n' {
			end++
			if ws.PreservesNewlines() {
				words = append(words, &Fragment{Text: "\n"})
			}
		}
		start = end
	}
	return words
}

// isWide is true for East Asian wide and fullwidth characters, which
// may be broken between any two of them.
func isWide(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	}
	return false
}
