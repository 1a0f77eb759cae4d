package ui

import (
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
)

const (
	// nominal state, UI is up to date
	CLEAN int32 = iota
	// UI render has been queued in Redraw channel
	DIRTY
)

// State of the UI. Any value other than 0 means the UI is in a dirty state.
// This should only be accessed via atomic operations to maintain thread safety
var uiState int32

var Callbacks = make(chan func(), 50)

// QueueFunc queues a function to be called in the main goroutine. This can be
// used to prevent race conditions from delayed functions
func QueueFunc(fn func()) {
	Callbacks <- fn
}

// Use a buffered channel of size 1 to avoid blocking callers of Invalidate()
var Redraw = make(chan bool, 1)

// Invalidate marks the entire UI as invalid and request a redraw as soon as
// possible. Invalidate can be called from any goroutine and will never block.
func Invalidate() {
	if atomic.SwapInt32(&uiState, DIRTY) != DIRTY {
		Redraw <- true
	}
}

// Closed by Exit() to stop the main loop.
var Quit = make(chan struct{})

var quitOnce sync.Once

func Exit() {
	quitOnce.Do(func() { close(Quit) })
}

type UI struct {
	Content DrawableInteractive
	Events  chan tcell.Event
	ctx     *Context
	screen  tcell.Screen
}

func Initialize(content DrawableInteractive) (*UI, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}

	state, err := newUI(content, screen)
	if err != nil {
		return nil, err
	}
	go state.screen.ChannelEvents(state.Events, Quit)

	return state, nil
}

func newUI(content DrawableInteractive, screen tcell.Screen) (*UI, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}

	screen.Clear()
	screen.HideCursor()
	screen.EnablePaste()

	width, height := screen.Size()

	state := UI{
		Content: content,
		screen:  screen,
		// Use unbuffered channels (always blocking unless somebody can
		// read immediately) We are merely using this as a proxy to
		// tcell screen internal event channel.
		Events: make(chan tcell.Event),
	}
	state.ctx = NewContext(width, height, screen)

	Invalidate()
	content.Focus(true)

	return &state, nil
}

func (state *UI) Close() {
	state.screen.Fini()
}

func (state *UI) Render() {
	if atomic.SwapInt32(&uiState, CLEAN) != CLEAN {
		state.Content.Draw(state.ctx)
		state.screen.Show()
	}
}

func (state *UI) EnableMouse() {
	state.screen.EnableMouse()
}

func (state *UI) HandleEvent(event tcell.Event) {
	switch event := event.(type) {
	case *tcell.EventResize:
		state.screen.Clear()
		width, height := event.Size()
		state.ctx = NewContext(width, height, state.screen)
		Invalidate()
	case *tcell.EventMouse:
		state.mouseEvent(event)
		return
	}
	state.Content.Event(event)
}

// Mouse events are first routed by position so that hover state is up to
// date, then wheel events go to whoever owns the wheel scope.
func (state *UI) mouseEvent(event *tcell.EventMouse) {
	x, y := event.Position()
	beginHover()
	if content, ok := state.Content.(MouseHandler); ok {
		content.MouseEvent(x, y, event)
	} else {
		state.Content.Event(event)
	}
	commitHover()
	if event.Buttons()&(tcell.WheelUp|tcell.WheelDown) != 0 {
		dispatchWheel(event)
	}
}
