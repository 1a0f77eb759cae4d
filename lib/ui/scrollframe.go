package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"git.sr.ht/~lazyframe/lazyframe/lib/log"
)

type ConfigureState int

const (
	// geometry is up to date
	CONFIGURE_IDLE ConfigureState = iota
	// first pass done, settle pass scheduled
	CONFIGURE_PENDING
	// settle pass running
	CONFIGURE_SETTLING
)

type ScrollFrameConfig struct {
	StartBuffer int
	EndBuffer   int
	// delay between the immediate and the settle pass after a resize
	SettleDelay time.Duration
	// cells scrolled per wheel notch, 0 means one row
	ScrollStep  int
	Probe       ProbeMode
	ProbeStride int
	ProbeInset  int
	Padding     Padding
	ItemHeight  int
}

func DefaultScrollFrameConfig() ScrollFrameConfig {
	return ScrollFrameConfig{
		StartBuffer: 3,
		EndBuffer:   3,
		SettleDelay: 75 * time.Millisecond,
		Probe:       PROBE_SCAN,
		ProbeStride: 1,
		Padding:     Padding{Top: 1, Left: 2, Right: 2},
		ItemHeight:  1,
	}
}

// ScrollFrame shows a vertical list of leaves through a scrollable viewport
// and keeps track of which of them are visible. The frame is made of a
// viewport, the content panel scrolled inside it, and an AutoScrollbar in
// the rightmost column.
//
// Every event that may change what is on screen (resize, wheel, scrollbar
// drag, new child) settles the layout, probes the viewport edges and lets
// the VisibilityTracker notify leaves entering or leaving the window.
type ScrollFrame struct {
	root      *Widget
	viewport  *Widget
	content   *Widget
	panel     *Panel
	tracker   *VisibilityTracker
	probe     *ViewportProbe
	scrollbar *AutoScrollbar
	conf      ScrollFrameConfig

	// absolute frame rectangle from the last Draw
	rect Rect
	// absolute viewport rectangle the layout was computed for
	view Rect
	// latest viewport rectangle received while configuring
	pending Rect
	state   ConfigureState
	scroll  int
	region  int
	passes  int

	after  func(d time.Duration, fn func())
	logger log.Logger
}

func NewScrollFrame(
	conf ScrollFrameConfig, onShow, onHide func(w *Widget),
) *ScrollFrame {
	s := &ScrollFrame{
		conf:      conf,
		scrollbar: NewAutoScrollbar(),
		logger:    log.NewLogger("frame", 3),
	}
	s.root = newWidget(s, WIDGET_ROOT_CONTAINER, nil)
	s.viewport = newWidget(nil, WIDGET_NONROOT_CONTAINER, s.root)
	s.panel = NewPanel(nil, conf.Padding, conf.ItemHeight)
	s.content = newWidget(nil, WIDGET_NONROOT_CONTAINER, s.viewport)
	s.panel.record = s.content
	s.panel.OnBoundsChanged(s.updateScrollRegion)

	s.tracker = NewVisibilityTracker(conf.StartBuffer, conf.EndBuffer,
		onShow, onHide)
	s.probe = NewViewportProbe(s, conf.Probe)
	s.probe.Stride = conf.ProbeStride
	s.probe.Inset = conf.ProbeInset
	s.probe.LeftPad = conf.Padding.Left

	s.scrollbar.OnScroll(s.onScrollbar)
	s.after = func(d time.Duration, fn func()) {
		time.AfterFunc(d, func() { QueueFunc(fn) })
	}
	return s
}

// SetScheduler replaces the function used to run the settle pass later.
// fn must eventually be called on the main goroutine.
func (s *ScrollFrame) SetScheduler(after func(d time.Duration, fn func())) {
	s.after = after
}

func (s *ScrollFrame) Tracker() *VisibilityTracker {
	return s.tracker
}

func (s *ScrollFrame) Scrollbar() *AutoScrollbar {
	return s.scrollbar
}

// Widgets returns the leaves in insertion order.
func (s *ScrollFrame) Widgets() []*Widget {
	return s.tracker.widgets
}

func (s *ScrollFrame) State() ConfigureState {
	return s.state
}

func (s *ScrollFrame) ScrollOffset() int {
	return s.scroll
}

// SetBuffers changes the look-behind/look-ahead sizes and re-evaluates
// the window with them.
func (s *ScrollFrame) SetBuffers(startBuffer, endBuffer int) {
	s.conf.StartBuffer, s.conf.EndBuffer = startBuffer, endBuffer
	s.tracker.SetBuffers(startBuffer, endBuffer)
	s.recompute()
}

// AddChild appends content as a new leaf at the bottom of the list.
func (s *ScrollFrame) AddChild(content Drawable) *Widget {
	w := newWidget(content, WIDGET_LEAF, s.content)
	s.tracker.Append(w)
	s.panel.Append(w)
	s.Settle()
	s.recompute()
	s.Invalidate()
	return w
}

func (s *ScrollFrame) ScrollToBottom() {
	s.Settle()
	s.setScroll(s.maxScroll())
	s.recompute()
}

// ScrollTo moves the top of the viewport to the given content offset.
func (s *ScrollFrame) ScrollTo(offset int) {
	s.Settle()
	s.setScroll(offset)
	s.recompute()
}

// ScrollBy scrolls by a number of scroll steps, negative is up.
func (s *ScrollFrame) ScrollBy(steps int) {
	s.Settle()
	s.setScroll(s.scroll + steps*s.step())
	s.recompute()
}

func (s *ScrollFrame) step() int {
	if s.conf.ScrollStep > 0 {
		return s.conf.ScrollStep
	}
	return s.panel.Pitch()
}

func (s *ScrollFrame) maxScroll() int {
	return maxInt(0, s.region-s.view.Height)
}

func (s *ScrollFrame) setScroll(offset int) {
	offset = maxInt(0, minInt(offset, s.maxScroll()))
	if offset != s.scroll {
		s.scroll = offset
		s.Invalidate()
	}
	s.updateScrollbar()
}

// Settle performs pending layout so that geometry queries are valid.
func (s *ScrollFrame) Settle() {
	s.panel.Settle()
}

// called by the panel when its bounds change
func (s *ScrollFrame) updateScrollRegion(bounds Rect) {
	s.region = bounds.Bottom()
	s.setScroll(s.scroll)
}

func (s *ScrollFrame) updateScrollbar() {
	if s.region <= 0 || s.view.Height <= 0 {
		s.scrollbar.Set(0, 1)
		return
	}
	region := float64(s.region)
	s.scrollbar.Set(float64(s.scroll)/region,
		float64(s.scroll+s.view.Height)/region)
}

func (s *ScrollFrame) onScrollbar(fraction float64) {
	s.ScrollTo(int(fraction * float64(s.region)))
}

func (s *ScrollFrame) recompute() {
	s.passes++
	s.tracker.Recompute(s)
}

// FindEdge settles the layout and probes one edge of the viewport.
func (s *ScrollFrame) FindEdge(edge Edge) *Widget {
	s.Settle()
	return s.probe.FindEdge(edge, s.view.X, s.view.Y, s.view.Height,
		s.panel.Pitch())
}

// Containing reports the frame element drawn at the absolute screen cell,
// or nil if the cell is outside the frame.
func (s *ScrollFrame) Containing(x, y int) *Widget {
	if !s.view.Contains(x, y) {
		if s.rect.Contains(x, y) {
			return s.root
		}
		return nil
	}
	cx, cy := x-s.view.X, y-s.view.Y+s.scroll
	if w := s.panel.ChildAt(cx, cy); w != nil {
		return w
	}
	if s.panel.Bounds().Contains(cx, cy) {
		return s.content
	}
	return s.viewport
}

// Geometry returns the absolute screen rectangle of a frame element as of
// the last settled layout.
func (s *ScrollFrame) Geometry(w *Widget) (Rect, bool) {
	switch w {
	case s.root:
		return s.rect, true
	case s.viewport:
		return s.view, true
	case s.content:
		return s.panel.Bounds().Translate(s.view.X, s.view.Y-s.scroll), true
	}
	r, ok := s.panel.Geometry(w)
	if !ok {
		return Rect{}, false
	}
	return r.Translate(s.view.X, s.view.Y-s.scroll), true
}

// Configure tells the frame its viewport moved or was resized. The first
// call of a burst is applied at once; later ones are coalesced into a
// single settle pass run after SettleDelay.
func (s *ScrollFrame) Configure(view Rect) {
	s.pending = view
	if s.state != CONFIGURE_IDLE {
		s.logger.Tracef("configure %s coalesced", view)
		return
	}
	s.state = CONFIGURE_PENDING
	s.configure(view)
	s.after(s.conf.SettleDelay, s.settle)
}

func (s *ScrollFrame) settle() {
	s.state = CONFIGURE_SETTLING
	s.configure(s.pending)
	s.state = CONFIGURE_IDLE
}

func (s *ScrollFrame) configure(view Rect) {
	s.logger.Tracef("configure %s", view)
	s.view = view
	s.panel.SetWidth(view.Width)
	s.Settle()
	s.setScroll(s.scroll)
	s.recompute()
}

func (s *ScrollFrame) MouseEnter() {
	BindWheel(s, s.onWheel)
}

func (s *ScrollFrame) MouseLeave() {
	UnbindWheel(s)
}

func (s *ScrollFrame) onWheel(event *tcell.EventMouse) {
	if s.scrollbar.Hidden() {
		return
	}
	switch {
	case event.Buttons()&tcell.WheelUp != 0:
		s.ScrollBy(-1)
	case event.Buttons()&tcell.WheelDown != 0:
		s.ScrollBy(1)
	}
}

func (s *ScrollFrame) MouseEvent(localX int, localY int, event tcell.Event) {
	if !s.scrollbar.Hidden() && localX == s.rect.Width-1 {
		s.scrollbar.MouseEvent(0, localY, event)
		return
	}
	x, y := s.rect.X+localX, s.rect.Y+localY
	if !s.view.Contains(x, y) {
		return
	}
	cx, cy := x-s.view.X, y-s.view.Y+s.scroll
	if !s.panel.Bounds().Contains(cx, cy) {
		return
	}
	Hover(s)
	if w := s.panel.ChildAt(cx, cy); w != nil {
		if content, ok := w.Content.(MouseHandler); ok {
			r, _ := s.panel.Geometry(w)
			content.MouseEvent(cx-r.X, cy-r.Y, event)
		}
	}
}

func (s *ScrollFrame) Draw(ctx *Context) {
	s.rect = ctx.Rect()
	view := s.rect
	if !s.scrollbar.Hidden() {
		view.Width--
	}
	if view != s.view {
		s.Configure(view)
	}
	s.Settle()

	ctx.Fill(0, 0, ctx.Width(), ctx.Height(), ' ', tcell.StyleDefault)
	width := minInt(view.Width, s.panel.Width())
	vctx := ctx.Offset(0, 0, width, view.Height)
	for _, w := range s.panel.Rows(s.scroll, view.Height) {
		r, _ := s.panel.Geometry(w)
		if r.X >= width || r.Width <= 0 {
			continue
		}
		w.Content.Draw(vctx.Offset(r.X, r.Y-s.scroll,
			minInt(r.Width, width-r.X), r.Height))
	}
	if !s.scrollbar.Hidden() {
		s.scrollbar.Draw(ctx.Subcontext(ctx.Width()-1, 0, 1, ctx.Height()))
	}
}

func (s *ScrollFrame) Invalidate() {
	Invalidate()
}
