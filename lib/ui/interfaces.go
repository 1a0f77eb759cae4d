package ui

import (
	"github.com/gdamore/tcell/v2"
)

type Drawable interface {
	// Called when this renderable should draw itself
	Draw(ctx *Context)
	// Invalidates the drawable
	Invalidate()
}

type Interactive interface {
	// Returns true if the event was handled by this component
	Event(event tcell.Event) bool
	// Indicates whether or not this control will receive input events
	Focus(focus bool)
}

type DrawableInteractive interface {
	Drawable
	Interactive
}

// A drawable which contains other drawables
type Container interface {
	Drawable
	// Return all of the drawables which are children of this one (do not
	// recurse into your grandchildren).
	Children() []Drawable
}

// Receives mouse events with coordinates relative to its own origin
type MouseHandler interface {
	MouseEvent(localX int, localY int, event tcell.Event)
}

// Notified when the pointer moves over or away from the component. See
// Hover().
type Hoverable interface {
	MouseEnter()
	MouseLeave()
}
