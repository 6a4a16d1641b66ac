package listkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingFactory remembers what was requested from it.
type recordingFactory struct {
	name  string
	size  int
	calls int
	icon  Renderable
}

func (f *recordingFactory) Load(name string, size int) Renderable {
	f.name = name
	f.size = size
	f.calls++
	return f.icon
}

func TestDetailedRowMarkup(t *testing.T) {
	t.Run("EscapesTitle", func(t *testing.T) {
		row := NewDetailedRow(RowData{Title: "A<b>", Subtitle: ""}, nil)
		assert.Equal(t, "A&lt;b&gt;\n<small></small>", row.Markup())
	})

	t.Run("StructurePresentForEmptyFields", func(t *testing.T) {
		row := NewDetailedRow(RowData{}, nil)
		assert.Equal(t, "\n<small></small>", row.Markup())
	})

	t.Run("SubtitleEscaped", func(t *testing.T) {
		row := NewDetailedRow(RowData{Title: "t", Subtitle: "a & b"}, nil)
		assert.Equal(t, "t\n<small>a &amp; b</small>", row.Markup())
	})
}

func TestDetailedRowIcon(t *testing.T) {
	t.Run("NoIconReference", func(t *testing.T) {
		factory := &recordingFactory{}
		row := NewDetailedRow(RowData{Title: "t"}, factory)
		assert.False(t, row.HasIcon())
		assert.Zero(t, factory.calls, "factory untouched without an icon reference")
	})

	t.Run("BoundAtFixedSize", func(t *testing.T) {
		factory := &recordingFactory{icon: RuneImage{Rune: '♪'}}
		icon := &NamedIcon{Name: "note"}
		row := NewDetailedRow(RowData{Title: "t", Icon: icon}, factory)

		require.True(t, row.HasIcon())
		assert.Equal(t, "note", factory.name)
		assert.Equal(t, 32, factory.size)
	})

	t.Run("FactoryMayReturnNil", func(t *testing.T) {
		factory := &recordingFactory{}
		row := NewDetailedRow(RowData{Title: "t", Icon: &NamedIcon{Name: "missing"}}, factory)
		assert.False(t, row.HasIcon())
		assert.Equal(t, 1, factory.calls)
	})
}

func TestDetailedRowLayout(t *testing.T) {
	t.Run("TextOnlySize", func(t *testing.T) {
		row := NewDetailedRow(RowData{Title: "hello", Subtitle: "sub"}, nil)
		w, h := row.MinSize()
		assert.Equal(t, 5, w)
		assert.Equal(t, 2, h)
	})

	t.Run("IconAddsInsets", func(t *testing.T) {
		factory := &recordingFactory{icon: RuneImage{Rune: '♪'}}
		row := NewDetailedRow(RowData{Title: "hello", Icon: &NamedIcon{Name: "i"}}, factory)
		w, h := row.MinSize()
		// 6 + 1 + 6 around the icon glyph, then the text.
		assert.Equal(t, 6+1+6+5, w)
		assert.Equal(t, 2, h)
	})

	t.Run("GeometryInvalidBeforeLayout", func(t *testing.T) {
		row := NewDetailedRow(RowData{Title: "t"}, nil)
		assert.Equal(t, -1, row.Top())
	})

	t.Run("GeometryAfterAllocation", func(t *testing.T) {
		row := NewDetailedRow(RowData{Title: "t"}, nil)
		row.SetAllocation(Allocation{Y: 12, Width: 30, Height: 2})
		assert.Equal(t, 12, row.Top())
		assert.Equal(t, 2, row.AllocatedHeight())
	})
}

func TestDetailedRowRender(t *testing.T) {
	t.Run("TextOnly", func(t *testing.T) {
		row := NewDetailedRow(RowData{Title: "title", Subtitle: "sub"}, nil)
		row.SetConstraints(20, 0)

		buf := NewBuffer(20, 2)
		row.Render(buf, 0, 0)
		assert.Equal(t, "title", buf.GetLine(0))
		assert.Equal(t, "sub", buf.GetLine(1))
	})

	t.Run("IconThenText", func(t *testing.T) {
		factory := &recordingFactory{icon: RuneImage{Rune: '♪'}}
		row := NewDetailedRow(RowData{Title: "title", Subtitle: "sub", Icon: &NamedIcon{Name: "i"}}, factory)
		row.SetConstraints(30, 0)

		buf := NewBuffer(30, 2)
		row.Render(buf, 0, 0)
		assert.Equal(t, '♪', buf.Get(iconInset, 0).Rune)
		assert.Equal(t, 't', buf.Get(iconInset+1+iconInset, 0).Rune)
		assert.Equal(t, 's', buf.Get(iconInset+1+iconInset, 1).Rune)
	})

	t.Run("SubtitleRendersDim", func(t *testing.T) {
		row := NewDetailedRow(RowData{Title: "t", Subtitle: "s"}, nil)
		row.SetConstraints(20, 0)

		buf := NewBuffer(20, 2)
		row.Render(buf, 0, 0)
		assert.True(t, buf.Get(0, 1).Style.Attr.Has(AttrDim))
	})
}
