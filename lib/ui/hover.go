package ui

import (
	"github.com/gdamore/tcell/v2"
)

// Pointer hover and wheel routing. Both are process wide and only touched
// from the main goroutine.

var (
	hovered      Hoverable
	pendingHover Hoverable
)

// Hover is called by a component while it handles a positional mouse event
// to claim the pointer. The innermost claimant of an event wins.
func Hover(h Hoverable) {
	pendingHover = h
}

func beginHover() {
	pendingHover = nil
}

// Sends leave/enter notifications if the claimant changed.
func commitHover() {
	next := pendingHover
	pendingHover = nil
	if next == hovered {
		return
	}
	prev := hovered
	hovered = next
	if prev != nil {
		prev.MouseLeave()
	}
	if next != nil {
		next.MouseEnter()
	}
}

type wheelBinding struct {
	owner   any
	handler func(event *tcell.EventMouse)
}

var wheel *wheelBinding

// BindWheel routes every wheel event to handler until UnbindWheel(owner) is
// called or another owner binds. Only one owner holds the wheel at a time.
func BindWheel(owner any, handler func(event *tcell.EventMouse)) {
	wheel = &wheelBinding{owner, handler}
}

// UnbindWheel releases the wheel if owner holds it.
func UnbindWheel(owner any) {
	if wheel != nil && wheel.owner == owner {
		wheel = nil
	}
}

// WheelOwner returns the current owner of the wheel scope, or nil.
func WheelOwner() any {
	if wheel == nil {
		return nil
	}
	return wheel.owner
}

func dispatchWheel(event *tcell.EventMouse) bool {
	if wheel == nil {
		return false
	}
	wheel.handler(event)
	return true
}
