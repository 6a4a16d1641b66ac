package listkit

import "github.com/mattn/go-runewidth"

// Renderable is anything that can draw itself into a buffer and report
// its size in cells.
type Renderable interface {
	Size() (width, height int)
	Render(buf *Buffer, x, y int)
}

// IconFactory resolves an icon reference to a renderable at a requested
// size. Load returns nil when no renderable is available at that size.
type IconFactory interface {
	Load(name string, size int) Renderable
}

// IconFactoryFunc adapts a function to the IconFactory interface.
type IconFactoryFunc func(name string, size int) Renderable

// Load implements IconFactory.
func (f IconFactoryFunc) Load(name string, size int) Renderable {
	return f(name, size)
}

// Icon is an abstract icon reference. It stays unresolved until Bind
// supplies the factory that owns the actual resources.
type Icon interface {
	// Bind attaches the factory used to resolve the reference.
	Bind(factory IconFactory)
	// Native returns the renderable at the given size, or nil when the
	// icon is unbound or the factory has nothing at that size.
	Native(size int) Renderable
}

// NamedIcon is an Icon identified by name, resolved through whatever
// factory it is bound to.
type NamedIcon struct {
	Name    string
	factory IconFactory
}

// Bind implements Icon.
func (n *NamedIcon) Bind(factory IconFactory) {
	n.factory = factory
}

// Native implements Icon.
func (n *NamedIcon) Native(size int) Renderable {
	if n.factory == nil {
		return nil
	}
	return n.factory.Load(n.Name, size)
}

// RuneImage is a single-glyph renderable, the terminal stand-in for a
// raster icon.
type RuneImage struct {
	Rune  rune
	Style Style
}

// Size implements Renderable.
func (r RuneImage) Size() (int, int) {
	return runewidth.RuneWidth(r.Rune), 1
}

// Render implements Renderable.
func (r RuneImage) Render(buf *Buffer, x, y int) {
	buf.WriteString(x, y, string(r.Rune), r.Style)
}
