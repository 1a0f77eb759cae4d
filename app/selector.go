package app

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"git.sr.ht/~lazyframe/lazyframe/lib/ui"
)

// Selector is a row of buttons sharing the available width. A button is
// chosen with a click or with Enter once focused with Left/Right.
type Selector struct {
	focus    int
	options  []string
	spans    []ui.Rect
	pressed  bool
	onChoose func(option string)

	DefaultStyle tcell.Style
	FocusedStyle tcell.Style
}

func NewSelector(options []string, focus int) *Selector {
	return &Selector{
		focus:        focus,
		options:      options,
		FocusedStyle: tcell.StyleDefault.Reverse(true),
	}
}

func (sel *Selector) Invalidate() {
	ui.Invalidate()
}

func (sel *Selector) Draw(ctx *ui.Context) {
	w, h := ctx.Width(), ctx.Height()
	ctx.Fill(0, 0, w, h, ' ', sel.DefaultStyle)
	sel.spans = sel.spans[:0]
	if len(sel.options) == 0 || h < 1 {
		return
	}

	width := w / len(sel.options)
	for i, option := range sel.options {
		span := ui.Rect{X: i * width, Width: width, Height: 1}
		if i == len(sel.options)-1 {
			// last button takes the rounding leftover
			span.Width = w - span.X
		}
		sel.spans = append(sel.spans, span)

		style := sel.DefaultStyle
		if sel.focus == i {
			style = sel.FocusedStyle
		}
		label := runewidth.Truncate("[ "+option+" ]", span.Width, "…")
		x := span.X + (span.Width-runewidth.StringWidth(label))/2
		ctx.Printf(x, 0, style, "%s", label)
	}
}

func (sel *Selector) OnChoose(fn func(option string)) *Selector {
	sel.onChoose = fn
	return sel
}

func (sel *Selector) Selected() string {
	return sel.options[sel.focus]
}

func (sel *Selector) choose(i int) {
	sel.focus = i
	sel.Invalidate()
	if sel.onChoose != nil {
		sel.onChoose(sel.options[i])
	}
}

func (sel *Selector) Focus(focus bool) {
}

func (sel *Selector) Event(event tcell.Event) bool {
	if event, ok := event.(*tcell.EventKey); ok {
		switch event.Key() {
		case tcell.KeyCtrlH:
			fallthrough
		case tcell.KeyLeft:
			if sel.focus > 0 {
				sel.focus--
				sel.Invalidate()
			}
			return true
		case tcell.KeyCtrlL:
			fallthrough
		case tcell.KeyRight:
			if sel.focus < len(sel.options)-1 {
				sel.focus++
				sel.Invalidate()
			}
			return true
		case tcell.KeyEnter:
			sel.choose(sel.focus)
			return true
		}
	}
	return false
}

// MouseEvent chooses the button under the pointer when the first button
// goes down. Drags and repeats do nothing until it is released.
func (sel *Selector) MouseEvent(localX int, localY int, event tcell.Event) {
	ev, ok := event.(*tcell.EventMouse)
	if !ok {
		return
	}
	if ev.Buttons()&tcell.Button1 == 0 {
		sel.pressed = false
		return
	}
	if sel.pressed {
		return
	}
	sel.pressed = true
	for i, span := range sel.spans {
		if span.Contains(localX, localY) {
			sel.choose(i)
			return
		}
	}
}
