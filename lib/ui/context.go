package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// A context allows you to draw in a sub-region of the terminal. Coordinates
// passed to its methods are relative to the context origin; cells outside
// the clip rectangle are dropped.
type Context struct {
	screen tcell.Screen
	rect   Rect
	clip   Rect
}

func NewContext(width, height int, screen tcell.Screen) *Context {
	r := Rect{0, 0, width, height}
	return &Context{screen, r, r}
}

func (ctx *Context) X() int {
	return ctx.rect.X
}

func (ctx *Context) Y() int {
	return ctx.rect.Y
}

func (ctx *Context) Width() int {
	return ctx.rect.Width
}

func (ctx *Context) Height() int {
	return ctx.rect.Height
}

func (ctx *Context) Size() (int, int) {
	return ctx.rect.Width, ctx.rect.Height
}

// Rect returns the absolute screen rectangle of this context.
func (ctx *Context) Rect() Rect {
	return ctx.rect
}

func (ctx *Context) Screen() tcell.Screen {
	return ctx.screen
}

func (ctx *Context) Subcontext(x, y, width, height int) *Context {
	if x < 0 || y < 0 {
		panic(fmt.Errorf("Attempted to create context with negative offset"))
	}
	return ctx.Offset(x, y, width, height)
}

// Offset is like Subcontext but accepts negative offsets. The new context
// is clipped to the parent, which lets partially scrolled content draw
// itself without knowing about the scroll position.
func (ctx *Context) Offset(x, y, width, height int) *Context {
	r := Rect{ctx.rect.X + x, ctx.rect.Y + y, width, height}
	return &Context{ctx.screen, r, ctx.clip.Intersect(r)}
}

func (ctx *Context) SetCell(x, y int, ch rune, style tcell.Style) {
	ctx.setContent(x, y, ch, nil, style)
}

func (ctx *Context) setContent(x, y int, ch rune, comb []rune, style tcell.Style) {
	if x >= ctx.rect.Width || y >= ctx.rect.Height {
		// no-op when dims are inadequate
		return
	}
	ax, ay := ctx.rect.X+x, ctx.rect.Y+y
	if !ctx.clip.Contains(ax, ay) {
		return
	}
	ctx.screen.SetContent(ax, ay, ch, comb, style)
}

func (ctx *Context) Printf(x, y int, style tcell.Style,
	format string, a ...interface{},
) int {
	width, height := ctx.Size()

	if x >= width || y >= height {
		// no-op when dims are inadequate
		return 0
	}

	str := fmt.Sprintf(format, a...)

	old_x := x
	printed := 0

	newline := func() bool {
		x = old_x
		y++
		return y < height
	}
	gr := uniseg.NewGraphemes(str)
	for gr.Next() {
		runes := gr.Runes()
		switch runes[0] {
		case '\n':
			if !newline() {
				return printed
			}
		case '\r':
			x = old_x
		default:
			w := runewidth.StringWidth(gr.Str())
			if x+w > width {
				if !newline() {
					return printed
				}
			}
			ctx.setContent(x, y, runes[0], runes[1:], style)
			x += w
			printed += w
		}
	}

	return printed
}

func (ctx *Context) Fill(x, y, width, height int, rune rune, style tcell.Style) {
	for ix := x; ix < x+width; ix++ {
		for iy := y; iy < y+height; iy++ {
			ctx.setContent(ix, iy, rune, nil, style)
		}
	}
}

func (ctx *Context) SetCursor(x, y int) {
	ctx.screen.ShowCursor(ctx.rect.X+x, ctx.rect.Y+y)
}

func (ctx *Context) HideCursor() {
	ctx.screen.HideCursor()
}
