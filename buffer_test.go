package listkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuffer(t *testing.T) {
	t.Run("NewBufferIsEmpty", func(t *testing.T) {
		buf := NewBuffer(80, 24)
		assert.Equal(t, 80, buf.Width())
		assert.Equal(t, 24, buf.Height())
		assert.Equal(t, ' ', buf.Get(0, 0).Rune)
		assert.Equal(t, ' ', buf.Get(79, 23).Rune)
	})

	t.Run("OutOfBoundsAccess", func(t *testing.T) {
		buf := NewBuffer(10, 10)
		buf.Set(-1, 0, NewCell('x', DefaultStyle()))
		buf.Set(10, 10, NewCell('x', DefaultStyle()))
		assert.Equal(t, EmptyCell(), buf.Get(-1, 0))
		assert.Equal(t, EmptyCell(), buf.Get(10, 10))
	})

	t.Run("FillRect", func(t *testing.T) {
		buf := NewBuffer(10, 5)
		buf.FillRect(2, 1, 3, 2, NewCell('#', DefaultStyle()))
		assert.Equal(t, '#', buf.Get(2, 1).Rune)
		assert.Equal(t, '#', buf.Get(4, 2).Rune)
		assert.Equal(t, ' ', buf.Get(5, 1).Rune)
		assert.Equal(t, ' ', buf.Get(2, 3).Rune)
	})
}

func TestBufferWriteString(t *testing.T) {
	t.Run("Basic", func(t *testing.T) {
		buf := NewBuffer(20, 1)
		n := buf.WriteString(2, 0, "hello", DefaultStyle())
		assert.Equal(t, 5, n)
		assert.Equal(t, "  hello", buf.GetLine(0), "leading spaces are part of the line")
	})

	t.Run("ClipsAtBufferEdge", func(t *testing.T) {
		buf := NewBuffer(5, 1)
		n := buf.WriteString(0, 0, "abcdefgh", DefaultStyle())
		assert.Equal(t, 5, n)
		assert.Equal(t, "abcde", buf.GetLine(0))
	})

	t.Run("ClipsAtMaxWidth", func(t *testing.T) {
		buf := NewBuffer(20, 1)
		n := buf.WriteStringClipped(0, 0, "abcdefgh", DefaultStyle(), 3)
		assert.Equal(t, 3, n)
		assert.Equal(t, "abc", buf.GetLine(0))
	})

	t.Run("WideRunesTakeTwoCells", func(t *testing.T) {
		buf := NewBuffer(20, 1)
		n := buf.WriteString(0, 0, "日x", DefaultStyle())
		assert.Equal(t, 3, n)
		assert.Equal(t, '日', buf.Get(0, 0).Rune)
		assert.Equal(t, rune(0), buf.Get(1, 0).Rune, "placeholder behind a wide rune")
		assert.Equal(t, 'x', buf.Get(2, 0).Rune)
	})

	t.Run("WideRuneDoesNotSplitAtClip", func(t *testing.T) {
		buf := NewBuffer(20, 1)
		n := buf.WriteStringClipped(0, 0, "a日", DefaultStyle(), 2)
		assert.Equal(t, 1, n, "wide rune that does not fit is dropped whole")
		assert.Equal(t, "a", buf.GetLine(0))
	})
}

func TestBufferLines(t *testing.T) {
	t.Run("HLine", func(t *testing.T) {
		buf := NewBuffer(6, 2)
		buf.HLine(1, 0, 3, '-', DefaultStyle())
		assert.Equal(t, " ---", buf.GetLine(0))
		assert.Equal(t, "", buf.GetLine(1))
	})

	t.Run("VLine", func(t *testing.T) {
		buf := NewBuffer(3, 4)
		buf.VLine(1, 1, 2, '|', DefaultStyle())
		assert.Equal(t, "", buf.GetLine(0))
		assert.Equal(t, " |", buf.GetLine(1))
		assert.Equal(t, " |", buf.GetLine(2))
		assert.Equal(t, "", buf.GetLine(3))
	})

	t.Run("ClipAtEdges", func(t *testing.T) {
		buf := NewBuffer(4, 4)
		buf.HLine(2, 0, 10, '-', DefaultStyle())
		buf.VLine(0, 2, 10, '|', DefaultStyle())
		assert.Equal(t, "  --", buf.GetLine(0))
		assert.Equal(t, "|", buf.GetLine(3))
	})
}

func TestBufferBorder(t *testing.T) {
	buf := NewBuffer(4, 3)
	buf.DrawBorder(0, 0, 4, 3, BorderSingle, DefaultStyle())
	assert.Equal(t, "┌──┐", buf.GetLine(0))
	assert.Equal(t, "│  │", buf.GetLine(1))
	assert.Equal(t, "└──┘", buf.GetLine(2))
}

func TestBufferResize(t *testing.T) {
	buf := NewBuffer(10, 2)
	buf.WriteString(0, 0, "keep me", DefaultStyle())

	buf.Resize(4, 3)
	assert.Equal(t, "keep", buf.GetLine(0))
	assert.Equal(t, "", buf.GetLine(2))

	buf.Resize(10, 3)
	assert.Equal(t, "keep", buf.GetLine(0), "clipped content does not come back")
}
