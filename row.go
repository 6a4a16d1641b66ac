package listkit

// RowData is the source record a detail row is built from.
type RowData struct {
	Title    string
	Subtitle string
	Icon     Icon // nil = no icon
}

const (
	// Icons resolve at a fixed size.
	// TODO: query the backend scale factor and request 64 on hidpi.
	iconNativeSize = 32

	// Horizontal inset around the icon cell.
	iconInset = 6
)

// DetailedRow is a two-line list row: title over a small subtitle, with
// an optional leading icon. Content is fixed at construction - there is
// no update path, a changed record means a new row.
type DetailedRow struct {
	Base

	markup string
	icon   Renderable // nil when the record has no icon
}

// NewDetailedRow builds a row from the record. The markup is escaped
// and assembled once; the icon, when present, is bound through the
// factory and resolved immediately.
func NewDetailedRow(data RowData, factory IconFactory) *DetailedRow {
	r := &DetailedRow{
		markup: rowMarkup(data.Title, data.Subtitle),
	}
	r.style = DefaultStyle()
	if data.Icon != nil {
		data.Icon.Bind(factory)
		r.icon = data.Icon.Native(iconNativeSize)
	}
	r.updateSize()
	return r
}

// rowMarkup assembles the combined markup. Empty title or subtitle stay
// in the structure as empty strings - the newline and small wrapper are
// always present.
func rowMarkup(title, subtitle string) string {
	return EscapeMarkup(title) + "\n" + smallOpen + EscapeMarkup(subtitle) + smallClose
}

// Markup returns the escaped combined markup.
func (r *DetailedRow) Markup() string {
	return r.markup
}

// HasIcon returns true when the record's icon resolved to a renderable.
func (r *DetailedRow) HasIcon() bool {
	return r.icon != nil
}

func (r *DetailedRow) updateSize() {
	textW, textH := markupExtent(r.markup)
	r.minW = textW
	r.minH = textH
	if r.icon != nil {
		iconW, iconH := r.icon.Size()
		r.minW += iconInset + iconW + iconInset
		if iconH > r.minH {
			r.minH = iconH
		}
	}
}

// Top returns the row's top edge in its container's content frame, or
// -1 before the first layout pass. Implements RowGeometry.
func (r *DetailedRow) Top() int {
	if !r.Allocated() {
		return -1
	}
	return r.Allocation().Y
}

// AllocatedHeight returns the row's allocated height in cells.
// Implements RowGeometry.
func (r *DetailedRow) AllocatedHeight() int {
	return r.Allocation().Height
}

// SetConstraints implements Component.
func (r *DetailedRow) SetConstraints(width, height int) {
	r.Base.SetConstraints(width, height)
	r.width = r.minW
	if width > 0 && r.width > width {
		r.width = width
	}
	r.height = r.minH
	if height > 0 && r.height > height {
		r.height = height
	}
}

// Render implements Component. Layout is [icon | text block]; with no
// icon only the text block is shown.
func (r *DetailedRow) Render(buf *Buffer, x, y int) {
	textX := x
	maxW := r.width
	if r.icon != nil {
		r.icon.Render(buf, x+iconInset, y)
		iconW, _ := r.icon.Size()
		textX += iconInset + iconW + iconInset
		maxW -= iconInset + iconW + iconInset
	}
	if maxW < 1 {
		return
	}
	RenderMarkup(buf, textX, y, maxW, r.markup, r.style)
}

// --- Fluent API ---

// Style sets the row's base style. The subtitle renders dim on top of it.
func (r *DetailedRow) Style(s Style) *DetailedRow {
	r.style = s
	return r
}
