package app

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.sr.ht/~lazyframe/lazyframe/config"
	"git.sr.ht/~lazyframe/lazyframe/lib/ui"
)

type testScreen struct {
	tcell.SimulationScreen
	ctx *ui.Context
}

func newTestScreen(t *testing.T, width, height int) *testScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(width, height)
	return &testScreen{screen, ui.NewContext(width, height, screen)}
}

func (s *testScreen) row(y int) string {
	w, _ := s.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func newTestApp(t *testing.T, labels int) *App {
	t.Helper()
	conf, err := config.LoadConfigFromFile(filepath.Join(t.TempDir(), "none"))
	require.NoError(t, err)
	conf.Ui.InitialLabels = labels
	app := NewApp(conf)
	// settle passes are not needed, the screen never resizes here
	app.Labels().Frame().SetScheduler(func(time.Duration, func()) {})
	return app
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func click(x, y int) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone)
}

func release(x, y int) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone)
}

func TestAppInitialLayout(t *testing.T) {
	app := newTestApp(t, 5)
	screen := newTestScreen(t, 30, 12)
	assert.Empty(t, app.Labels().Visible(), "nothing is visible before layout")

	app.Draw(screen.ctx)

	assert.Equal(t, []string{
		"Label 0", "Label 1", "Label 2", "Label 3", "Label 4",
	}, app.Labels().Visible())
	shows, hides := app.Labels().Transitions()
	assert.Equal(t, 5, shows)
	assert.Equal(t, 0, hides)

	assert.True(t, strings.HasPrefix(screen.row(0), "┌─ Labels ─"))
	assert.Equal(t, "Label 0", string([]rune(screen.row(2))[11:18]))
	assert.Contains(t, screen.row(10), "[ add ]")
	assert.Contains(t, screen.row(10), "[ test ]")
	assert.True(t, strings.HasSuffix(screen.row(11), "5 labels  window 0-4  +5 -0"))
}

func TestAppAddScrollsToBottom(t *testing.T) {
	app := newTestApp(t, 5)
	screen := newTestScreen(t, 30, 12)
	app.Draw(screen.ctx)

	assert.True(t, app.Event(key('a')))

	frame := app.Labels().Frame()
	assert.Equal(t, 6, app.Labels().Len())
	assert.Equal(t, 4, frame.ScrollOffset())
	visible := app.Labels().Visible()
	require.Len(t, visible, 6)
	assert.Equal(t, "Add Lbl", visible[5])
	shows, hides := app.Labels().Transitions()
	assert.Equal(t, 6, shows)
	assert.Equal(t, 0, hides)
}

func TestAppScrollKeys(t *testing.T) {
	app := newTestApp(t, 20)
	screen := newTestScreen(t, 30, 12)
	app.Draw(screen.ctx)
	require.Len(t, app.Labels().Visible(), 7)

	app.Event(tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone))
	assert.Equal(t, []string{
		"Label 13", "Label 14", "Label 15", "Label 16",
		"Label 17", "Label 18", "Label 19",
	}, app.Labels().Visible())
	shows, hides := app.Labels().Transitions()
	assert.Equal(t, 14, shows)
	assert.Equal(t, 7, hides)

	app.Event(tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone))
	assert.Equal(t, 0, app.Labels().Frame().ScrollOffset())
	app.Event(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	assert.Equal(t, 2, app.Labels().Frame().ScrollOffset())
	app.Event(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	assert.Equal(t, 0, app.Labels().Frame().ScrollOffset())

	assert.False(t, app.Event(key('z')))
}

func TestAppButtons(t *testing.T) {
	app := newTestApp(t, 20)
	screen := newTestScreen(t, 30, 12)
	app.Draw(screen.ctx)

	app.MouseEvent(20, 10, click(20, 10))
	assert.Equal(t, "7 visible: Label 0, Label 1, Label 2, Label 3, Label 4, Label 5, Label 6",
		app.StatusLine().Message())

	// holding the button does not repeat
	app.MouseEvent(3, 10, click(3, 10))
	assert.Equal(t, 20, app.Labels().Len())

	app.MouseEvent(3, 10, release(3, 10))
	app.MouseEvent(3, 10, click(3, 10))
	assert.Equal(t, 21, app.Labels().Len())
	assert.Equal(t, "add", app.buttons.Selected())

	app.Event(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	assert.Equal(t, "test", app.buttons.Selected())
	app.Event(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	assert.True(t, strings.HasSuffix(app.StatusLine().Message(), "Add Lbl"))
}

func TestAppCheckKey(t *testing.T) {
	app := newTestApp(t, 3)
	screen := newTestScreen(t, 80, 12)
	app.Draw(screen.ctx)

	app.Event(key('t'))
	assert.Equal(t, "3 visible: Label 0, Label 1, Label 2", app.StatusLine().Message())

	app.Draw(screen.ctx)
	assert.True(t, strings.HasPrefix(screen.row(11), "3 visible: Label 0"))
}

func TestAppReloadScroll(t *testing.T) {
	app := newTestApp(t, 20)
	screen := newTestScreen(t, 30, 12)
	app.Draw(screen.ctx)
	app.Event(tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone))

	app.ReloadScroll(&config.ScrollConfig{StartBuffer: 0, EndBuffer: 0})
	assert.Equal(t, []string{
		"Label 16", "Label 17", "Label 18", "Label 19",
	}, app.Labels().Visible())
	start, end := app.Labels().Frame().Tracker().Buffers()
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}

func TestAppQuit(t *testing.T) {
	app := newTestApp(t, 0)
	assert.True(t, app.Event(key('q')))
	select {
	case <-ui.Quit:
	default:
		t.Fatal("q must exit")
	}
}
