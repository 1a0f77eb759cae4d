package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"git.sr.ht/~lazyframe/lazyframe/config"
	"git.sr.ht/~lazyframe/lazyframe/lib/log"
	"git.sr.ht/~lazyframe/lazyframe/lib/ui"
)

// label text used by the add button
const addedLabel = "Add Lbl"

// App is the root widget: the label frame above a button bar and a status
// line.
type App struct {
	grid       *ui.Grid
	labels     *LabelFrame
	buttons    *Selector
	statusline *StatusLine
	logger     log.Logger
}

func NewApp(conf *config.LazyConfig) *App {
	app := &App{logger: log.NewLogger("app", 3)}

	app.labels = NewLabelFrame(conf.Scroll.FrameConfig())
	app.buttons = NewSelector([]string{"add", "test"}, 0).
		OnChoose(app.choose)
	app.statusline = NewStatusLine(app.summary)

	app.grid = ui.NewGrid().Rows([]ui.GridSpec{
		{Strategy: ui.SIZE_WEIGHT, Size: ui.Const(1)},
		{Strategy: ui.SIZE_EXACT, Size: ui.Const(1)},
		{Strategy: ui.SIZE_EXACT, Size: ui.Const(1)},
	}).Columns([]ui.GridSpec{
		{Strategy: ui.SIZE_WEIGHT, Size: ui.Const(1)},
	})
	app.grid.AddChild(app.labels).At(0, 0)
	app.grid.AddChild(app.buttons).At(1, 0)
	app.grid.AddChild(app.statusline).At(2, 0)

	app.labels.Populate(conf.Ui.InitialLabels)
	return app
}

func (app *App) Labels() *LabelFrame {
	return app.labels
}

func (app *App) StatusLine() *StatusLine {
	return app.statusline
}

// Add appends a new label and brings it into view.
func (app *App) Add() {
	app.labels.AddLabel(addedLabel)
	app.labels.Frame().ScrollToBottom()
}

// Check reports the labels currently flagged visible.
func (app *App) Check() []string {
	visible := app.labels.Visible()
	for _, text := range visible {
		app.logger.Infof("%s: visible", text)
	}
	app.statusline.Push(fmt.Sprintf("%d visible: %s",
		len(visible), strings.Join(visible, ", ")), 10*time.Second)
	return visible
}

// ReloadScroll applies the settings of a reloaded configuration file that
// can change at run time.
func (app *App) ReloadScroll(conf *config.ScrollConfig) {
	start, end := app.labels.Frame().Tracker().Buffers()
	if start == conf.StartBuffer && end == conf.EndBuffer {
		return
	}
	app.logger.Infof("buffers %d/%d -> %d/%d",
		start, end, conf.StartBuffer, conf.EndBuffer)
	app.labels.Frame().SetBuffers(conf.StartBuffer, conf.EndBuffer)
	app.Invalidate()
}

func (app *App) choose(option string) {
	switch option {
	case "add":
		app.Add()
	case "test":
		app.Check()
	}
}

func (app *App) summary() string {
	shows, hides := app.labels.Transitions()
	window := "-"
	if start, end := app.labels.Frame().Tracker().Range(); start >= 0 {
		window = fmt.Sprintf("%d-%d", start, end)
	}
	return fmt.Sprintf("%d labels  window %s  +%d -%d",
		app.labels.Len(), window, shows, hides)
}

func (app *App) Invalidate() {
	ui.Invalidate()
}

func (app *App) Focus(focus bool) {
	app.buttons.Focus(focus)
}

func (app *App) Draw(ctx *ui.Context) {
	app.grid.Draw(ctx)
}

func (app *App) Event(event tcell.Event) bool {
	switch event := event.(type) {
	case *tcell.EventKey:
		frame := app.labels.Frame()
		switch event.Key() {
		case tcell.KeyCtrlC:
			ui.Exit()
		case tcell.KeyUp:
			frame.ScrollBy(-1)
		case tcell.KeyDown:
			frame.ScrollBy(1)
		case tcell.KeyHome:
			frame.ScrollTo(0)
		case tcell.KeyEnd:
			frame.ScrollToBottom()
		case tcell.KeyRune:
			switch event.Rune() {
			case 'a':
				app.Add()
			case 't':
				app.Check()
			case 'q':
				ui.Exit()
			default:
				return false
			}
		default:
			return app.buttons.Event(event)
		}
		return true
	case *tcell.EventMouse:
		x, y := event.Position()
		app.grid.MouseEvent(x, y, event)
		return true
	}
	return false
}

func (app *App) MouseEvent(localX int, localY int, event tcell.Event) {
	app.grid.MouseEvent(localX, localY, event)
}
