package app

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"git.sr.ht/~lazyframe/lazyframe/lib/log"
	"git.sr.ht/~lazyframe/lazyframe/lib/ui"
)

// StatusLine shows the most recent pushed message on the left and a
// summary computed at draw time on the right.
type StatusLine struct {
	sync.Mutex
	stack   []*StatusMessage
	summary func() string

	DefaultStyle tcell.Style
	ErrorStyle   tcell.Style
}

type StatusMessage struct {
	style   tcell.Style
	message string
}

func NewStatusLine(summary func() string) *StatusLine {
	return &StatusLine{
		summary:      summary,
		DefaultStyle: tcell.StyleDefault.Reverse(true),
		ErrorStyle:   tcell.StyleDefault.Reverse(true).Foreground(tcell.ColorRed),
	}
}

func (status *StatusLine) Invalidate() {
	ui.Invalidate()
}

func (status *StatusLine) Draw(ctx *ui.Context) {
	status.Lock()
	defer status.Unlock()
	width := ctx.Width()
	ctx.Fill(0, 0, width, ctx.Height(), ' ', status.DefaultStyle)

	var right string
	if status.summary != nil {
		right = runewidth.Truncate(status.summary(), width, "…")
	}
	rightWidth := runewidth.StringWidth(right)
	ctx.Printf(width-rightWidth, 0, status.DefaultStyle, "%s", right)

	if len(status.stack) != 0 {
		line := status.stack[len(status.stack)-1]
		space := width - rightWidth - 1
		if space > 0 {
			msg := runewidth.Truncate(line.message, space, "…")
			ctx.Printf(0, 0, line.style, "%s", msg)
		}
	}
}

// Message returns the text currently shown on the left, if any.
func (status *StatusLine) Message() string {
	status.Lock()
	defer status.Unlock()
	if len(status.stack) == 0 {
		return ""
	}
	return status.stack[len(status.stack)-1].message
}

func (status *StatusLine) Push(text string, expiry time.Duration) *StatusMessage {
	status.Lock()
	defer status.Unlock()
	log.Debugf("%s", text)
	msg := &StatusMessage{
		style:   status.DefaultStyle,
		message: text,
	}
	status.stack = append(status.stack, msg)
	go (func() {
		defer log.PanicHandler()

		time.Sleep(expiry)
		status.Lock()
		defer status.Unlock()
		for i, m := range status.stack {
			if m == msg {
				status.stack = append(status.stack[:i], status.stack[i+1:]...)
				break
			}
		}
		status.Invalidate()
	})()
	status.Invalidate()
	return msg
}

func (status *StatusLine) PushError(text string) *StatusMessage {
	log.Errorf("%s", text)
	msg := status.Push(text, 10*time.Second)
	msg.Color(status.ErrorStyle)
	return msg
}

func (status *StatusLine) Expire() {
	status.Lock()
	defer status.Unlock()
	status.stack = nil
}

func (msg *StatusMessage) Color(style tcell.Style) {
	msg.style = style
}
