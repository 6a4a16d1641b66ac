package listkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeMarkup(t *testing.T) {
	assert.Equal(t, "A&lt;b&gt;", EscapeMarkup("A<b>"))
	assert.Equal(t, "a &amp; b", EscapeMarkup("a & b"))
	assert.Equal(t, "", EscapeMarkup(""))
	assert.Equal(t, "plain", EscapeMarkup("plain"))
}

func TestParseMarkup(t *testing.T) {
	t.Run("SmallSpan", func(t *testing.T) {
		lines := parseMarkup("title\n<small>sub</small>")
		require.Len(t, lines, 2)
		require.Len(t, lines[0], 1)
		assert.Equal(t, markupSpan{text: "title"}, lines[0][0])
		require.Len(t, lines[1], 1)
		assert.Equal(t, markupSpan{text: "sub", small: true}, lines[1][0])
	})

	t.Run("EmptySmallSpanProducesNoSpans", func(t *testing.T) {
		lines := parseMarkup("<small></small>")
		require.Len(t, lines, 1)
		assert.Empty(t, lines[0])
	})

	t.Run("EntitiesResolve", func(t *testing.T) {
		lines := parseMarkup("A&lt;b&gt; &amp; c")
		require.Len(t, lines, 1)
		require.Len(t, lines[0], 1)
		assert.Equal(t, "A<b> & c", lines[0][0].text)
	})

	t.Run("UnknownTagIsLiteral", func(t *testing.T) {
		lines := parseMarkup("a <big>b</big>")
		require.Len(t, lines, 1)
		text := ""
		for _, span := range lines[0] {
			text += span.text
		}
		assert.Equal(t, "a <big>b</big>", text)
	})

	t.Run("MixedSpansOnOneLine", func(t *testing.T) {
		lines := parseMarkup("x<small>y</small>z")
		require.Len(t, lines, 1)
		require.Len(t, lines[0], 3)
		assert.False(t, lines[0][0].small)
		assert.True(t, lines[0][1].small)
		assert.False(t, lines[0][2].small)
	})
}

func TestRenderMarkup(t *testing.T) {
	t.Run("TwoLines", func(t *testing.T) {
		buf := NewBuffer(20, 3)
		n := RenderMarkup(buf, 0, 0, 20, "title\n<small>sub</small>", DefaultStyle())
		assert.Equal(t, 2, n)
		assert.Equal(t, "title", buf.GetLine(0))
		assert.Equal(t, "sub", buf.GetLine(1))
	})

	t.Run("SmallRendersDim", func(t *testing.T) {
		buf := NewBuffer(20, 2)
		RenderMarkup(buf, 0, 0, 20, "t\n<small>s</small>", DefaultStyle())
		assert.False(t, buf.Get(0, 0).Style.Attr.Has(AttrDim))
		assert.True(t, buf.Get(0, 1).Style.Attr.Has(AttrDim))
	})

	t.Run("EscapedRunesRenderLiterally", func(t *testing.T) {
		buf := NewBuffer(20, 1)
		RenderMarkup(buf, 0, 0, 20, "A&lt;b&gt;", DefaultStyle())
		assert.Equal(t, "A<b>", buf.GetLine(0))
	})

	t.Run("ClipsAtMaxWidth", func(t *testing.T) {
		buf := NewBuffer(20, 1)
		RenderMarkup(buf, 0, 0, 3, "abcdef", DefaultStyle())
		assert.Equal(t, "abc", buf.GetLine(0))
	})
}

func TestMarkupExtent(t *testing.T) {
	t.Run("WidestLineWins", func(t *testing.T) {
		w, h := markupExtent("abc\n<small>abcdef</small>")
		assert.Equal(t, 6, w)
		assert.Equal(t, 2, h)
	})

	t.Run("WideRunes", func(t *testing.T) {
		w, h := markupExtent("日本\n<small></small>")
		assert.Equal(t, 4, w)
		assert.Equal(t, 2, h)
	})

	t.Run("EmptyMarkupIsOneEmptyLine", func(t *testing.T) {
		w, h := markupExtent("")
		assert.Equal(t, 0, w)
		assert.Equal(t, 1, h)
	})
}
