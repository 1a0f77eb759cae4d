package ui

import (
	"fmt"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collects settle passes instead of running them on a timer
type scheduler struct {
	delays  []time.Duration
	pending []func()
}

func (s *scheduler) after(d time.Duration, fn func()) {
	s.delays = append(s.delays, d)
	s.pending = append(s.pending, fn)
}

func (s *scheduler) flush() {
	pending := s.pending
	s.pending = nil
	for _, fn := range pending {
		fn()
	}
}

func resetInputScope(t *testing.T) {
	t.Helper()
	hovered, pendingHover, wheel = nil, nil, nil
	t.Cleanup(func() {
		hovered, pendingHover, wheel = nil, nil, nil
	})
}

// default config: one cell high rows with one cell of padding above, so
// leaf i sits on content row 2i+1
func newTestFrame(t *testing.T, n int) (*ScrollFrame, *recorder, *scheduler) {
	t.Helper()
	resetInputScope(t)
	rec := &recorder{}
	sched := &scheduler{}
	frame := NewScrollFrame(DefaultScrollFrameConfig(), rec.show, rec.hide)
	frame.SetScheduler(sched.after)
	for i := 0; i < n; i++ {
		frame.AddChild(NewText(fmt.Sprintf("Label %d", i), tcell.StyleDefault))
	}
	return frame, rec, sched
}

func TestFrameAddChildBeforeLayout(t *testing.T) {
	frame, rec, _ := newTestFrame(t, 3)

	start, end := frame.Tracker().Range()
	assert.Equal(t, -1, start)
	assert.Equal(t, -1, end)
	assert.Empty(t, rec.events)
	assert.Len(t, frame.Widgets(), 3)
	for i, w := range frame.Widgets() {
		assert.Equal(t, WIDGET_LEAF, w.Kind)
		assert.Equal(t, 3, w.Depth)
		assert.Equal(t, i, w.Index())
		assert.False(t, w.Visible)
	}
}

func TestFrameEmptyRecompute(t *testing.T) {
	frame, rec, sched := newTestFrame(t, 0)
	frame.Configure(Rect{0, 0, 20, 10})
	sched.flush()
	frame.ScrollToBottom()

	start, end := frame.Tracker().Range()
	assert.Equal(t, -1, start)
	assert.Equal(t, -1, end)
	assert.Empty(t, rec.events)
	assert.True(t, frame.Scrollbar().Hidden())
}

func TestFrameInitialObservation(t *testing.T) {
	frame, rec, _ := newTestFrame(t, 10)
	frame.ScrollTo(6)

	// rows 6..13 of the content: leaves 3 to 6
	frame.Configure(Rect{0, 0, 20, 8})

	start, end := frame.Tracker().Range()
	assert.Equal(t, 0, start)
	assert.Equal(t, 9, end)
	assert.Equal(t, shows(0, 1, 2, 3, 4, 5, 6, 7, 8, 9), rec.events)
	assert.Equal(t, 6, frame.ScrollOffset())
	assert.False(t, frame.Scrollbar().Hidden())
	first, last := frame.Scrollbar().Fractions()
	assert.InDelta(t, 0.3, first, 1e-9)
	assert.InDelta(t, 0.7, last, 1e-9)
}

func TestFrameAddChildExtendsWindow(t *testing.T) {
	frame, rec, _ := newTestFrame(t, 0)
	frame.Configure(Rect{0, 0, 20, 10})

	frame.AddChild(NewText("first", tcell.StyleDefault))
	assert.Equal(t, shows(0), rec.reset())

	for i := 1; i < 9; i++ {
		frame.AddChild(NewText("more", tcell.StyleDefault))
	}
	// leaves 0-4 fit, plus three ahead
	start, end := frame.Tracker().Range()
	assert.Equal(t, 0, start)
	assert.Equal(t, 7, end)
	assert.Equal(t, shows(1, 2, 3, 4, 5, 6, 7), rec.reset())
	assertInvariant(t, frame.Tracker())
}

func TestFrameScrollToBottom(t *testing.T) {
	frame, rec, _ := newTestFrame(t, 20)
	frame.Configure(Rect{0, 0, 20, 10})
	rec.reset()

	frame.ScrollToBottom()

	assert.Equal(t, 30, frame.ScrollOffset())
	start, end := frame.Tracker().Range()
	assert.Equal(t, 12, start)
	assert.Equal(t, 19, end)
	assert.Equal(t, append(hides(0, 1, 2, 3, 4, 5, 6, 7), shows(12, 13, 14, 15, 16, 17, 18, 19)...), rec.reset())
	assertInvariant(t, frame.Tracker())

	frame.ScrollToBottom()
	assert.Empty(t, rec.events)
}

func TestFrameHitTesting(t *testing.T) {
	frame, _, _ := newTestFrame(t, 3)
	frame.Configure(Rect{5, 2, 20, 10})

	leaf := frame.Containing(7, 3)
	require.NotNil(t, leaf)
	assert.Equal(t, WIDGET_LEAF, leaf.Kind)
	assert.Equal(t, 0, leaf.Index())

	// left padding and row padding belong to the content panel
	assert.Equal(t, WIDGET_NONROOT_CONTAINER, frame.Containing(5, 3).Kind)
	assert.Equal(t, 2, frame.Containing(5, 3).Depth)
	assert.Equal(t, 2, frame.Containing(7, 4).Depth)
	// below the content is the bare viewport
	assert.Equal(t, 1, frame.Containing(7, 10).Depth)
	assert.Nil(t, frame.Containing(4, 3))

	r, ok := frame.Geometry(frame.Widgets()[2])
	require.True(t, ok)
	assert.Equal(t, Rect{7, 7, 16, 1}, r)
	_, ok = frame.Geometry(newWidget(nil, WIDGET_LEAF, nil))
	assert.False(t, ok)
}

func TestFrameWheel(t *testing.T) {
	frame, rec, _ := newTestFrame(t, 20)
	frame.Configure(Rect{0, 0, 20, 10})
	require.Equal(t, shows(0, 1, 2, 3, 4, 5, 6, 7), rec.reset())

	frame.MouseEnter()
	assert.Equal(t, frame, WheelOwner())

	dispatchWheel(tcell.NewEventMouse(3, 3, tcell.WheelDown, tcell.ModNone))
	assert.Equal(t, 2, frame.ScrollOffset())
	assert.Equal(t, shows(8), rec.reset())

	dispatchWheel(tcell.NewEventMouse(3, 3, tcell.WheelUp, tcell.ModNone))
	assert.Equal(t, 0, frame.ScrollOffset())
	assert.Equal(t, hides(8), rec.reset())

	// already at the top
	dispatchWheel(tcell.NewEventMouse(3, 3, tcell.WheelUp, tcell.ModNone))
	assert.Equal(t, 0, frame.ScrollOffset())
	assert.Empty(t, rec.events)

	frame.MouseLeave()
	assert.Nil(t, WheelOwner())
	assert.False(t, dispatchWheel(tcell.NewEventMouse(3, 3, tcell.WheelDown, tcell.ModNone)))
	assert.Equal(t, 0, frame.ScrollOffset())
}

func TestFrameWheelIgnoredWhenContentFits(t *testing.T) {
	frame, rec, _ := newTestFrame(t, 2)
	frame.Configure(Rect{0, 0, 20, 10})
	require.True(t, frame.Scrollbar().Hidden())
	rec.reset()
	passes := frame.passes

	frame.MouseEnter()
	dispatchWheel(tcell.NewEventMouse(3, 3, tcell.WheelDown, tcell.ModNone))

	assert.Equal(t, 0, frame.ScrollOffset())
	assert.Equal(t, passes, frame.passes)
	assert.Empty(t, rec.events)
}

func TestFrameResizeDebounce(t *testing.T) {
	frame, _, sched := newTestFrame(t, 20)
	passes := frame.passes

	frame.Configure(Rect{0, 0, 20, 10})
	assert.Equal(t, CONFIGURE_PENDING, frame.State())
	frame.Configure(Rect{0, 0, 30, 12})
	frame.Configure(Rect{0, 0, 40, 14})
	assert.Equal(t, passes+1, frame.passes)
	require.Len(t, sched.pending, 1)
	assert.Equal(t, []time.Duration{75 * time.Millisecond}, sched.delays)

	sched.flush()
	assert.Equal(t, passes+2, frame.passes)
	assert.Equal(t, CONFIGURE_IDLE, frame.State())
	assert.Equal(t, Rect{0, 0, 40, 14}, frame.view)

	// a new burst starts a new cycle
	frame.Configure(Rect{0, 0, 40, 16})
	assert.Equal(t, passes+3, frame.passes)
	assert.Len(t, sched.pending, 1)
}

func TestFrameScrollbarDrag(t *testing.T) {
	frame, _, _ := newTestFrame(t, 20)
	frame.Configure(Rect{0, 0, 20, 10})
	frame.Scrollbar().height = 10

	// press on the track halfway down, thumb is 3 cells high
	frame.Scrollbar().MouseEvent(0, 5, tcell.NewEventMouse(0, 5, tcell.Button1, tcell.ModNone))
	assert.Equal(t, 16, frame.ScrollOffset())

	frame.Scrollbar().MouseEvent(0, 9, tcell.NewEventMouse(0, 9, tcell.Button1, tcell.ModNone))
	assert.Equal(t, 30, frame.ScrollOffset())

	frame.Scrollbar().MouseEvent(0, 9, tcell.NewEventMouse(0, 9, tcell.ButtonNone, tcell.ModNone))
	frame.Scrollbar().MouseEvent(0, 0, tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))
	assert.Equal(t, 0, frame.ScrollOffset())
	assertInvariant(t, frame.Tracker())
}

func TestFrameSetBuffers(t *testing.T) {
	frame, rec, _ := newTestFrame(t, 20)
	frame.Configure(Rect{0, 0, 20, 10})
	rec.reset()

	frame.SetBuffers(0, 0)
	assert.Equal(t, hides(5, 6, 7), rec.reset())
	start, end := frame.Tracker().Range()
	assert.Equal(t, 0, start)
	assert.Equal(t, 4, end)
}
