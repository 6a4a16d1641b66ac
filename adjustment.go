package listkit

// Adjustment holds the scroll state of a scrollable container: the
// current offset, the visible page size and the total scrollable extent,
// all in scroll units. It is shared mutable state - both the scroll
// animation and external actors (key handlers, resize) write Value, and
// neither locks it. Consumers that care about concurrent writes compare
// observed values across ticks instead.
type Adjustment struct {
	value    float64
	pageSize float64
	upper    float64

	listeners map[int]func()
	nextID    int
}

// NewAdjustment creates an adjustment with the given page size and upper
// bound and a zero offset.
func NewAdjustment(pageSize, upper float64) *Adjustment {
	return &Adjustment{pageSize: pageSize, upper: upper}
}

// Value returns the current scroll offset.
func (a *Adjustment) Value() float64 {
	return a.value
}

// SetValue sets the scroll offset, clamped to [0, Upper-PageSize].
// Change listeners fire only when the clamped value differs.
func (a *Adjustment) SetValue(v float64) {
	max := a.upper - a.pageSize
	if max < 0 {
		max = 0
	}
	if v < 0 {
		v = 0
	}
	if v > max {
		v = max
	}
	if v == a.value {
		return
	}
	a.value = v
	a.notify()
}

// PageSize returns the size of the visible region.
func (a *Adjustment) PageSize() float64 {
	return a.pageSize
}

// SetPageSize sets the size of the visible region and re-clamps the
// current offset.
func (a *Adjustment) SetPageSize(p float64) {
	if p == a.pageSize {
		return
	}
	a.pageSize = p
	a.clamp()
	a.notify()
}

// Upper returns the total scrollable extent.
func (a *Adjustment) Upper() float64 {
	return a.upper
}

// SetUpper sets the total scrollable extent and re-clamps the current
// offset.
func (a *Adjustment) SetUpper(u float64) {
	if u == a.upper {
		return
	}
	a.upper = u
	a.clamp()
	a.notify()
}

func (a *Adjustment) clamp() {
	max := a.upper - a.pageSize
	if max < 0 {
		max = 0
	}
	if a.value < 0 {
		a.value = 0
	}
	if a.value > max {
		a.value = max
	}
}

// OnChange registers a listener called after any state change.
// Returns a handle for RemoveChangeListener.
func (a *Adjustment) OnChange(fn func()) int {
	if a.listeners == nil {
		a.listeners = make(map[int]func())
	}
	a.nextID++
	a.listeners[a.nextID] = fn
	return a.nextID
}

// RemoveChangeListener removes a previously registered listener.
func (a *Adjustment) RemoveChangeListener(id int) {
	delete(a.listeners, id)
}

func (a *Adjustment) notify() {
	for _, fn := range a.listeners {
		fn()
	}
}
