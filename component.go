package listkit

// Component is the interface all UI components implement.
type Component interface {
	// Layout
	SetConstraints(width, height int) // Parent tells us available space
	MinSize() (width, height int)     // Minimum size we need
	Size() (width, height int)        // Our actual size after layout

	// Hierarchy
	Parent() Container
	SetParent(Container)

	// Geometry, valid only after the parent's layout pass
	SetAllocation(Allocation)
	Allocation() Allocation
	Allocated() bool

	// Rendering
	Render(buf *Buffer, x, y int)

	// Styling
	GetStyle() Style
	SetStyle(Style)
}

// Container is a component that can hold children.
type Container interface {
	Component
	Children() []Component
	Remove(child Component)
	Clear()
}

// Allocation is a component's rectangle in its container's content frame.
// X and Y are relative to the container's content origin, not the screen,
// so a scrolled-away row keeps a stable Y.
type Allocation struct {
	X, Y          int
	Width, Height int
}

// Base provides common functionality for all components.
// Embed this in your component structs.
type Base struct {
	parent        Container
	style         Style
	width, height int // Actual size
	minW, minH    int // Minimum size
	constraintW   int // Available width from parent
	constraintH   int // Available height from parent

	alloc    Allocation
	hasAlloc bool
}

// Parent returns the parent container.
func (b *Base) Parent() Container {
	return b.parent
}

// SetParent sets the parent container.
func (b *Base) SetParent(p Container) {
	b.parent = p
}

// GetStyle returns the component's style.
func (b *Base) GetStyle() Style {
	return b.style
}

// SetStyle sets the component's style.
func (b *Base) SetStyle(s Style) {
	b.style = s
}

// SetConstraints is called by parent to tell us available space.
func (b *Base) SetConstraints(width, height int) {
	b.constraintW = width
	b.constraintH = height
}

// Constraints returns the current constraints.
func (b *Base) Constraints() (width, height int) {
	return b.constraintW, b.constraintH
}

// MinSize returns the minimum size needed.
func (b *Base) MinSize() (int, int) {
	return b.minW, b.minH
}

// Size returns the actual size.
func (b *Base) Size() (int, int) {
	return b.width, b.height
}

// SetAllocation records the component's rectangle in its container's
// content frame and marks the geometry valid.
func (b *Base) SetAllocation(a Allocation) {
	b.alloc = a
	b.hasAlloc = true
}

// Allocation returns the last allocated rectangle. Meaningful only when
// Allocated reports true.
func (b *Base) Allocation() Allocation {
	return b.alloc
}

// Allocated returns true once a layout pass has assigned real geometry.
func (b *Base) Allocated() bool {
	return b.hasAlloc
}

// ClearAllocation invalidates the geometry, e.g. when the component is
// removed from its container.
func (b *Base) ClearAllocation() {
	b.alloc = Allocation{}
	b.hasAlloc = false
}

// BaseContainer provides common functionality for containers.
// Embed this in container structs.
type BaseContainer struct {
	Base
	children []Component

	gap     int // Space between children
	padding int // Padding inside container
}

// Children returns the child components.
func (c *BaseContainer) Children() []Component {
	return c.children
}

// AddChild adds a single child to the container.
// Concrete container types should wrap this with their own Add method
// and set themselves as the child's parent.
func (c *BaseContainer) AddChild(child Component) {
	c.children = append(c.children, child)
}

// Remove removes a child from the container.
func (c *BaseContainer) Remove(child Component) {
	for i, ch := range c.children {
		if ch == child {
			child.SetParent(nil)
			c.children = append(c.children[:i], c.children[i+1:]...)
			return
		}
	}
}

// Clear removes all children.
func (c *BaseContainer) Clear() {
	for _, child := range c.children {
		child.SetParent(nil)
	}
	c.children = c.children[:0]
}

// Gap returns the gap between children.
func (c *BaseContainer) Gap() int {
	return c.gap
}

// SetGap sets the gap between children.
func (c *BaseContainer) SetGap(g int) {
	c.gap = g
}

// Padding returns the padding.
func (c *BaseContainer) Padding() int {
	return c.padding
}

// SetPadding sets the padding.
func (c *BaseContainer) SetPadding(p int) {
	c.padding = p
}
