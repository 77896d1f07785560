package frame

import (
	"testing"

	"github.com/npillmayer/cssbox/engine/style/css"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func texts(words []*Fragment) []string {
	s := make([]string, len(words))
	for i, w := range words {
		s[i] = w.Text
	}
	return s
}

func TestSplitWordsPre(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.frame")
	defer teardown()
	//
	words := SplitWords("a\nb", css.WSPre, css.WordBreakNormal)
	assert.Equal(t, []string{"a", "\n", "b"}, texts(words))
	assert.True(t, words[1].IsLineBreak())
	words = SplitWords("a  b\r\n", css.WSPreWrap, css.WordBreakNormal)
	assert.Equal(t, []string{"a", "  ", "b", "\n"}, texts(words))
	assert.True(t, words[1].IsSpaces())
	words = SplitWords("a\nb", css.WSPreLine, css.WordBreakNormal)
	assert.Equal(t, []string{"a", "\n", "b"}, texts(words))
}

func TestSplitWordsNormal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.frame")
	defer teardown()
	//
	words := SplitWords("a   b", css.WSNormal, css.WordBreakNormal)
	assert.Equal(t, []string{"a", "b"}, texts(words))
	assert.True(t, words[0].SpaceAfter)
	assert.False(t, words[1].SpaceBefore)
	words = SplitWords("  x\ny ", css.WSNormal, css.WordBreakNormal)
	assert.Equal(t, []string{"x", "y"}, texts(words))
	assert.True(t, words[0].SpaceBefore)
	assert.True(t, words[1].SpaceAfter)
	words = SplitWords("well-known fact", css.WSNoWrap, css.WordBreakNormal)
	assert.Equal(t, []string{"well-", "known", "fact"}, texts(words))
}

func TestSplitWordsBreaking(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.frame")
	defer teardown()
	//
	words := SplitWords("abc", css.WSNormal, css.WordBreakAll)
	assert.Equal(t, []string{"a", "b", "c"}, texts(words))
	words = SplitWords("ab世界", css.WSNormal, css.WordBreakNormal)
	assert.Equal(t, []string{"ab世", "界"}, texts(words))
}

func TestSplitWordsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.frame")
	defer teardown()
	//
	text := " The quick\tbrown-fox\n jumps  "
	for _, ws := range []css.WhiteSpace{css.WSNormal, css.WSNoWrap, css.WSPre, css.WSPreWrap, css.WSPreLine} {
		a := SplitWords(text, ws, css.WordBreakNormal)
		b := SplitWords(text, ws, css.WordBreakNormal)
		assert.Equal(t, a, b, "mode %s", ws)
	}
}
