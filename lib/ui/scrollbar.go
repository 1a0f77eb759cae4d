package ui

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// AutoScrollbar is a one column vertical scrollbar that hides itself when
// the whole content fits in the view. Its owner reports the visible
// fraction of the content with Set and is told where the user dragged the
// thumb through OnScroll.
type AutoScrollbar struct {
	first    float64
	last     float64
	hidden   bool
	onScroll func(fraction float64)

	height   int
	dragging bool
	grab     int

	TrackStyle tcell.Style
	ThumbStyle tcell.Style
}

func NewAutoScrollbar() *AutoScrollbar {
	return &AutoScrollbar{
		last:       1,
		hidden:     true,
		ThumbStyle: tcell.StyleDefault.Reverse(true),
	}
}

// Set receives the fractions of the content shown at the top and bottom of
// the view.
func (sb *AutoScrollbar) Set(first, last float64) {
	first = math.Max(0, math.Min(1, first))
	last = math.Max(first, math.Min(1, last))
	hidden := first <= 0 && last >= 1
	if first == sb.first && last == sb.last && hidden == sb.hidden {
		return
	}
	sb.first, sb.last, sb.hidden = first, last, hidden
	if hidden {
		sb.dragging = false
	}
	sb.Invalidate()
}

func (sb *AutoScrollbar) Fractions() (float64, float64) {
	return sb.first, sb.last
}

// Hidden reports whether the content fits and the bar is not shown.
func (sb *AutoScrollbar) Hidden() bool {
	return sb.hidden
}

func (sb *AutoScrollbar) OnScroll(fn func(fraction float64)) {
	sb.onScroll = fn
}

func (sb *AutoScrollbar) thumb(height int) (int, int) {
	top := int(sb.first * float64(height))
	size := int(math.Ceil(sb.last*float64(height))) - top
	if size < 1 {
		size = 1
	}
	if top+size > height {
		top = maxInt(0, height-size)
	}
	return top, size
}

func (sb *AutoScrollbar) Draw(ctx *Context) {
	sb.height = ctx.Height()
	if sb.hidden {
		return
	}
	ctx.Fill(0, 0, ctx.Width(), ctx.Height(), ' ', sb.TrackStyle)
	top, size := sb.thumb(ctx.Height())
	ctx.Fill(0, top, ctx.Width(), size, ' ', sb.ThumbStyle)
}

func (sb *AutoScrollbar) MouseEvent(localX int, localY int, event tcell.Event) {
	ev, ok := event.(*tcell.EventMouse)
	if !ok || sb.hidden || sb.height <= 0 {
		return
	}
	if ev.Buttons()&tcell.Button1 == 0 {
		sb.dragging = false
		return
	}
	top, size := sb.thumb(sb.height)
	if !sb.dragging {
		sb.dragging = true
		if localY >= top && localY < top+size {
			sb.grab = localY - top
		} else {
			// clicked on the track, center the thumb there
			sb.grab = size / 2
		}
	}
	if sb.onScroll != nil {
		sb.onScroll(float64(localY-sb.grab) / float64(sb.height))
	}
}

func (sb *AutoScrollbar) Invalidate() {
	Invalidate()
}
