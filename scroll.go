package listkit

import "math"

// Alignment selects where in the visible region a row should end up.
type Alignment int

const (
	AlignTop Alignment = iota
	AlignCenter
	AlignBottom
)

// String returns the alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignTop:
		return "top"
	case AlignCenter:
		return "center"
	case AlignBottom:
		return "bottom"
	}
	return "invalid"
}

func (a Alignment) valid() bool {
	return a == AlignTop || a == AlignCenter || a == AlignBottom
}

// RowGeometry is the view of a row the scroller needs: its allocated
// height and its top edge in the container's content frame. Top reports
// a negative value until a layout pass has assigned real geometry.
type RowGeometry interface {
	AllocatedHeight() int
	Top() int
}

// ScrollHost is the view of the scrollable container the scroller
// needs: the shared adjustment and allocation-complete notification.
type ScrollHost interface {
	Adjustment() *Adjustment
	// OnAllocate registers a listener fired after each layout pass and
	// returns a handle for RemoveAllocListener.
	OnAllocate(fn func()) int
	RemoveAllocListener(handle int)
}

const (
	scrollStep = 1.0
	scrollTol  = 1e-9
)

// scrollSession is the baseline carried between animation ticks: the
// offset and row height observed when the previous tick ran.
type scrollSession struct {
	lastValue float64
	rowHeight int
}

// scrollAction is what a tick decided to do.
type scrollAction int

const (
	scrollAborted scrollAction = iota
	scrollFinished
	scrollContinued
)

// advance decides one animation tick from the carried baseline and the
// current container state. It is a pure function: it returns the next
// baseline (nil when the animation ends), the action taken and the
// offset to write.
//
// With a prior baseline, three conditions abort: an offset that did not
// move at all (either we were clamped or something froze the adjustment
// - suspicious, so stop rather than loop), an offset that moved by more
// than one step plus tolerance (an external jump or drag), or a changed
// row height (a relayout). Note the first check is an exact comparison;
// a container that is perfectly static for one tick aborts too. That
// matches the behavior this was ported from and is deliberately kept.
func advance(prev *scrollSession, value, target float64, rowHeight int) (*scrollSession, scrollAction, float64) {
	if prev != nil {
		delta := math.Abs(value - prev.lastValue)
		if delta == 0 || delta > scrollStep+scrollTol || rowHeight != prev.rowHeight {
			return nil, scrollAborted, value
		}
	}

	// Snap when one step or less remains, so an animation over distance
	// d finishes in exactly ceil(d) ticks.
	distance := target - value
	if math.Abs(distance) <= scrollStep {
		return nil, scrollFinished, target
	}

	next := &scrollSession{lastValue: value, rowHeight: rowHeight}
	if distance > 0 {
		return next, scrollContinued, value + scrollStep
	}
	return next, scrollContinued, value - scrollStep
}

// Scroller animates a single row into view within its host container.
// It is a behavior attached to a row by composition, not a widget
// itself. All methods must run on the UI loop.
//
// A request defers until the row has real geometry, computes a target
// offset for the requested alignment, then steps the adjustment one
// unit per idle tick until the target is reached. Any external
// interference (user scroll, drag, relayout) detected at the start of a
// tick stops the animation permanently; only a fresh request resumes.
type Scroller struct {
	row   RowGeometry
	host  ScrollHost
	sched Scheduler

	// At most one outstanding allocation listener; 0 means none.
	allocListener int
	session       *scrollSession
	// Bumped on every request so ticks scheduled for a superseded
	// animation retire themselves.
	gen uint64
}

// NewScroller creates a scroller for the given row within the given
// host, scheduling animation ticks on sched.
func NewScroller(row RowGeometry, host ScrollHost, sched Scheduler) *Scroller {
	return &Scroller{row: row, host: host, sched: sched}
}

// ScrollToTop requests scrolling the row to the top of the visible region.
func (s *Scroller) ScrollToTop() { s.RequestScroll(AlignTop) }

// ScrollToCenter requests scrolling the row to the center of the visible region.
func (s *Scroller) ScrollToCenter() { s.RequestScroll(AlignCenter) }

// ScrollToBottom requests scrolling the row to the bottom of the visible region.
func (s *Scroller) ScrollToBottom() { s.RequestScroll(AlignBottom) }

// RequestScroll starts scrolling the row until it sits at the given
// alignment within the visible region. Returns false for an invalid
// alignment, leaving all state untouched. A request supersedes any
// in-flight animation or pending deferred request for this row.
//
// Interference never surfaces as an error: if the user scrolls or the
// container relayouts mid-animation, movement simply stops. Issue a new
// request to resume.
func (s *Scroller) RequestScroll(align Alignment) bool {
	if !align.valid() {
		return false
	}

	// Supersede whatever is in flight.
	s.gen++
	s.session = nil

	if s.row.Top() >= 0 {
		s.beginScroll(align)
	} else {
		// No geometry yet. Defer until the next layout pass assigns
		// some. Registering releases any previous listener first, so a
		// superseded deferred request cannot double-fire.
		align := align
		s.setAllocListener(s.host.OnAllocate(func() {
			s.beginScroll(align)
		}))
	}
	return true
}

// setAllocListener installs a listener handle, releasing any previous
// one first. Pass 0 to just release.
func (s *Scroller) setAllocListener(handle int) {
	if s.allocListener != 0 && s.allocListener != handle {
		s.host.RemoveAllocListener(s.allocListener)
	}
	s.allocListener = handle
}

// beginScroll computes the target offset for the alignment and schedules
// the first animation tick. Runs with valid geometry, either directly
// from RequestScroll or from the allocation listener.
func (s *Scroller) beginScroll(align Alignment) {
	s.setAllocListener(0)

	adj := s.host.Adjustment()
	rowTop := float64(s.row.Top())
	// Visible space left over once the row is on screen.
	slack := adj.PageSize() - float64(s.row.AllocatedHeight())

	var target float64
	switch align {
	case AlignTop:
		target = rowTop
	case AlignCenter:
		target = rowTop - slack/2
	case AlignBottom:
		target = rowTop - slack
	}

	if target <= 0 {
		// The row already satisfies the alignment toward the top.
		tracer.Trace().Float64("target", target).Stringer("align", align).
			Msg("scroll not needed")
		return
	}

	gen := s.gen
	tracer.Trace().Float64("target", target).Stringer("align", align).
		Msg("scroll scheduled")
	s.sched.ScheduleIdle(func() bool {
		return s.tick(gen, target)
	})
}

// tick runs one animation step. Returning true asks the scheduler to
// run it again on the next idle slot.
func (s *Scroller) tick(gen uint64, target float64) bool {
	if gen != s.gen {
		// A newer request superseded this animation.
		return false
	}

	adj := s.host.Adjustment()
	next, action, value := advance(s.session, adj.Value(), target, s.row.AllocatedHeight())
	s.session = next

	switch action {
	case scrollAborted:
		tracer.Trace().Float64("value", value).Float64("target", target).
			Msg("scroll aborted")
		return false
	case scrollFinished:
		adj.SetValue(value)
		tracer.Trace().Float64("target", target).Msg("scroll done")
		return false
	default:
		adj.SetValue(value)
		return true
	}
}

// Pending returns true while a deferred request or animation is alive.
func (s *Scroller) Pending() bool {
	return s.allocListener != 0 || s.session != nil
}
