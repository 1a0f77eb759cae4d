package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const defaultBorders = "││┌─┐└─┘"

// Box draws a one cell border around its content with an optional title
// embedded in the top edge.
type Box struct {
	content     Drawable
	title       string
	borders     []rune
	BorderStyle tcell.Style
	TitleStyle  tcell.Style
}

// NewBox wraps content. borders lists the left, right, top-left, top,
// top-right, bottom-left, bottom and bottom-right runes.
func NewBox(content Drawable, title, borders string) *Box {
	box := []rune(borders)
	if len(box) < 8 {
		box = []rune(defaultBorders)
	}
	return &Box{
		content: content,
		title:   title,
		borders: box,
	}
}

func (b *Box) Title() string {
	return b.title
}

func (b *Box) Children() []Drawable {
	return []Drawable{b.content}
}

func (b *Box) Draw(ctx *Context) {
	w := ctx.Width()
	h := ctx.Height()
	if w < 2 || h < 2 {
		return
	}

	box := b.borders
	ctx.Fill(0, 0, 1, h, box[0], b.BorderStyle)
	ctx.Fill(w-1, 0, 1, h, box[1], b.BorderStyle)

	ctx.Printf(0, 0, b.BorderStyle, "%c%s%c", box[2], strings.Repeat(string(box[3]), w-2), box[4])
	ctx.Printf(0, h-1, b.BorderStyle, "%c%s%c", box[5], strings.Repeat(string(box[6]), w-2), box[7])

	if b.title != "" && w > 4 {
		title := runewidth.Truncate(" "+b.title+" ", w-4, "…")
		ctx.Printf(2, 0, b.TitleStyle, "%s", title)
	}

	b.content.Draw(ctx.Subcontext(1, 1, w-2, h-2))
}

func (b *Box) Invalidate() {
	b.content.Invalidate()
}

func (b *Box) MouseEvent(localX int, localY int, event tcell.Event) {
	if content, ok := b.content.(MouseHandler); ok {
		content.MouseEvent(localX-1, localY-1, event)
	}
}

func (b *Box) Event(e tcell.Event) bool {
	if content, ok := b.content.(Interactive); ok {
		return content.Event(e)
	}
	return false
}

func (b *Box) Focus(focus bool) {
	if content, ok := b.content.(Interactive); ok {
		content.Focus(focus)
	}
}
