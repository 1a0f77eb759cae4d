package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRoot struct {
	*Grid
	events []tcell.Event
}

func (r *testRoot) Event(e tcell.Event) bool {
	r.events = append(r.events, e)
	return true
}

func (r *testRoot) Focus(bool) {}

func drainRedraw() {
	select {
	case <-Redraw:
	default:
	}
}

// forces a full render without a main loop reading Redraw
func render(state *UI) {
	drainRedraw()
	Invalidate()
	drainRedraw()
	state.Render()
	drainRedraw()
}

func screenRow(s tcell.Screen, y, x0, x1 int) string {
	var sb strings.Builder
	for x := x0; x < x1; x++ {
		r, _, _, w := s.GetContent(x, y)
		sb.WriteRune(r)
		if w > 1 {
			x += w - 1
		}
	}
	return sb.String()
}

func reversed(s tcell.Screen, x, y int) bool {
	_, _, style, _ := s.GetContent(x, y)
	_, _, attrs := style.Decompose()
	return attrs&tcell.AttrReverse != 0
}

func newTestUI(t *testing.T, content Drawable) (*UI, *testRoot, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	grid := NewGrid().Rows([]GridSpec{
		{SIZE_EXACT, Const(1)},
		{SIZE_WEIGHT, Const(1)},
	}).Columns([]GridSpec{
		{SIZE_WEIGHT, Const(1)},
	})
	grid.AddChild(NewText("header", tcell.StyleDefault)).At(0, 0)
	grid.AddChild(content).At(1, 0)
	root := &testRoot{Grid: grid}

	state, err := newUI(root, screen)
	require.NoError(t, err)
	t.Cleanup(state.Close)
	screen.SetSize(20, 11)
	state.HandleEvent(tcell.NewEventResize(20, 11))
	return state, root, screen
}

func TestUIRenderFrame(t *testing.T) {
	frame, _, sched := newTestFrame(t, 20)
	state, root, screen := newTestUI(t, frame)
	require.Len(t, root.events, 1, "resize must reach the content")

	render(state)
	assert.Equal(t, CONFIGURE_PENDING, frame.State())
	assert.False(t, frame.Scrollbar().Hidden())
	sched.flush()
	render(state)

	assert.Equal(t, Rect{0, 1, 19, 10}, frame.view)
	assert.Equal(t, "header", strings.TrimSpace(screenRow(screen, 0, 0, 20)))
	assert.Equal(t, "  Label 0", screenRow(screen, 2, 0, 9))
	assert.Equal(t, "  Label 4", screenRow(screen, 10, 0, 9))
	assert.True(t, reversed(screen, 19, 1))
	assert.False(t, reversed(screen, 19, 10))
}

func TestUIWheelFollowsHover(t *testing.T) {
	frame, rec, sched := newTestFrame(t, 20)
	state, _, screen := newTestUI(t, frame)
	render(state)
	sched.flush()
	render(state)
	rec.reset()

	state.HandleEvent(tcell.NewEventMouse(4, 2, tcell.ButtonNone, tcell.ModNone))
	assert.Equal(t, frame, WheelOwner())

	state.HandleEvent(tcell.NewEventMouse(4, 2, tcell.WheelDown, tcell.ModNone))
	assert.Equal(t, 2, frame.ScrollOffset())
	assert.Equal(t, shows(8), rec.reset())
	render(state)
	assert.Equal(t, "  Label 1", screenRow(screen, 2, 0, 9))

	// off the frame the wheel does nothing
	state.HandleEvent(tcell.NewEventMouse(4, 0, tcell.WheelDown, tcell.ModNone))
	assert.Nil(t, WheelOwner())
	assert.Equal(t, 2, frame.ScrollOffset())
	assert.Empty(t, rec.events)

	// the scrollbar column is not part of the scrolled content
	state.HandleEvent(tcell.NewEventMouse(19, 5, tcell.WheelDown, tcell.ModNone))
	assert.Nil(t, WheelOwner())
	assert.Equal(t, 2, frame.ScrollOffset())
}

func TestUIWheelIgnoredWhenContentFits(t *testing.T) {
	frame, rec, sched := newTestFrame(t, 3)
	state, _, _ := newTestUI(t, frame)
	render(state)
	sched.flush()
	require.True(t, frame.Scrollbar().Hidden())
	rec.reset()
	passes := frame.passes

	state.HandleEvent(tcell.NewEventMouse(4, 2, tcell.ButtonNone, tcell.ModNone))
	state.HandleEvent(tcell.NewEventMouse(4, 2, tcell.WheelDown, tcell.ModNone))

	assert.Equal(t, frame, WheelOwner())
	assert.Equal(t, 0, frame.ScrollOffset())
	assert.Equal(t, passes, frame.passes)
	assert.Empty(t, rec.events)
}

func TestUIBindWheelReplacesOwner(t *testing.T) {
	resetInputScope(t)
	first, second := &struct{ n int }{}, &struct{ n int }{}
	BindWheel(first, func(*tcell.EventMouse) { first.n++ })
	BindWheel(second, func(*tcell.EventMouse) { second.n++ })

	UnbindWheel(first)
	assert.True(t, dispatchWheel(tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone)))
	assert.Equal(t, 0, first.n)
	assert.Equal(t, 1, second.n)

	UnbindWheel(second)
	assert.False(t, dispatchWheel(tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone)))
}

func TestExitIsIdempotent(t *testing.T) {
	Exit()
	Exit()
	select {
	case <-Quit:
	default:
		t.Fatal("Quit must be closed")
	}
}
