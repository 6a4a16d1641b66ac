package listkit

// ListBox is a vertically scrollable container of rows. Rows are laid
// out top to bottom in a content frame that can be taller than the
// viewport; the shared Adjustment decides which slice of it is visible.
//
// A layout pass (SetConstraints) assigns every row an Allocation in the
// content frame and then fires allocation listeners, which is how
// deferred scroll requests learn that geometry became real.
type ListBox struct {
	BaseContainer

	adj *Adjustment

	allocListeners map[int]func()
	nextListener   int

	// Optional decoration
	border     *BorderStyle
	background *Color
}

// NewListBox creates an empty list box.
func NewListBox() *ListBox {
	l := &ListBox{adj: NewAdjustment(0, 0)}
	l.style = DefaultStyle()
	return l
}

// Add appends rows to the list.
func (l *ListBox) Add(rows ...Component) *ListBox {
	for _, row := range rows {
		row.SetParent(l)
		l.AddChild(row)
	}
	return l
}

// Remove removes a row and invalidates its geometry.
func (l *ListBox) Remove(row Component) {
	l.BaseContainer.Remove(row)
	if b, ok := row.(interface{ ClearAllocation() }); ok {
		b.ClearAllocation()
	}
}

// Adjustment returns the shared scroll state. Callers may read and
// write its value directly; the list clamps and re-renders from it.
func (l *ListBox) Adjustment() *Adjustment {
	return l.adj
}

// OnAllocate registers a listener fired after each layout pass, once
// every row has real geometry. Returns a handle for RemoveAllocListener.
func (l *ListBox) OnAllocate(fn func()) int {
	if l.allocListeners == nil {
		l.allocListeners = make(map[int]func())
	}
	l.nextListener++
	l.allocListeners[l.nextListener] = fn
	return l.nextListener
}

// RemoveAllocListener removes a previously registered listener.
// Safe to call from inside a firing listener.
func (l *ListBox) RemoveAllocListener(handle int) {
	delete(l.allocListeners, handle)
}

// RowTop returns the top edge of the row in the list's content frame,
// or -1 when the row has no geometry yet (no layout pass since it was
// added). This is the translate-coordinates primitive scroll targeting
// is built on.
func (l *ListBox) RowTop(row Component) int {
	if !row.Allocated() {
		return -1
	}
	return row.Allocation().Y
}

// ScrollBy moves the scroll offset by delta units, clamped.
func (l *ListBox) ScrollBy(delta float64) {
	l.adj.SetValue(l.adj.Value() + delta)
}

// SetConstraints implements Component. This is the layout pass: it
// sizes the viewport, stacks the rows in the content frame, updates the
// adjustment and fires allocation listeners.
func (l *ListBox) SetConstraints(width, height int) {
	l.Base.SetConstraints(width, height)

	innerW := width - l.padding*2
	innerH := height - l.padding*2
	if l.border != nil {
		innerW -= 2
		innerH -= 2
	}
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}

	y := 0
	for _, row := range l.children {
		row.SetConstraints(innerW, 0)
		_, rowH := row.Size()
		if rowH < 1 {
			_, rowH = row.MinSize()
		}
		row.SetAllocation(Allocation{X: 0, Y: y, Width: innerW, Height: rowH})
		y += rowH + l.gap
	}
	contentH := y
	if len(l.children) > 0 {
		contentH -= l.gap
	}

	l.width = width
	l.height = height

	l.adj.SetPageSize(float64(innerH))
	l.adj.SetUpper(float64(contentH))

	l.fireAllocListeners()
}

// fireAllocListeners notifies everyone waiting on geometry. Listeners
// may unregister themselves (or others) while firing.
func (l *ListBox) fireAllocListeners() {
	if len(l.allocListeners) == 0 {
		return
	}
	handles := make([]int, 0, len(l.allocListeners))
	for h := range l.allocListeners {
		handles = append(handles, h)
	}
	for _, h := range handles {
		if fn, ok := l.allocListeners[h]; ok {
			fn()
		}
	}
}

// MinSize implements Component.
func (l *ListBox) MinSize() (int, int) {
	w := 0
	for _, row := range l.children {
		rw, _ := row.MinSize()
		if rw > w {
			w = rw
		}
	}
	extra := l.padding * 2
	if l.border != nil {
		extra += 2
	}
	// One row of content is enough; the rest scrolls.
	h := 1
	if len(l.children) > 0 {
		_, h = l.children[0].MinSize()
	}
	return w + extra, h + extra
}

// Render implements Component. Rows are drawn shifted up by the current
// scroll offset; rows outside the viewport are skipped.
func (l *ListBox) Render(buf *Buffer, x, y int) {
	if l.background != nil {
		cell := NewCell(' ', DefaultStyle().Background(*l.background))
		buf.FillRect(x, y, l.width, l.height, cell)
	}
	if l.border != nil {
		buf.DrawBorder(x, y, l.width, l.height, *l.border, l.style)
	}

	contentX := x + l.padding
	contentY := y + l.padding
	if l.border != nil {
		contentX++
		contentY++
	}

	innerW := l.width - l.padding*2
	innerH := int(l.adj.PageSize())
	if l.border != nil {
		innerW -= 2
	}
	if innerW < 1 {
		innerW = 1
	}
	offset := int(l.adj.Value())

	// Rows draw into a viewport-sized strip so partially visible rows
	// clip at the edges instead of spilling over the border.
	strip := NewBuffer(innerW, innerH)
	if l.background != nil {
		strip.Fill(NewCell(' ', DefaultStyle().Background(*l.background)))
	}
	for _, row := range l.children {
		if !row.Allocated() {
			continue
		}
		alloc := row.Allocation()
		top := alloc.Y - offset
		if top+alloc.Height <= 0 || top >= innerH {
			continue
		}
		row.Render(strip, alloc.X, top)
	}
	for sy := 0; sy < innerH; sy++ {
		for sx := 0; sx < innerW; sx++ {
			buf.Set(contentX+sx, contentY+sy, strip.Get(sx, sy))
		}
	}
}

// --- Fluent API ---

func (l *ListBox) Gap(g int) *ListBox {
	l.gap = g
	return l
}

func (l *ListBox) Padding(p int) *ListBox {
	l.padding = p
	return l
}

func (l *ListBox) Border(b BorderStyle) *ListBox {
	l.border = &b
	return l
}

func (l *ListBox) Background(c Color) *ListBox {
	l.background = &c
	return l
}
