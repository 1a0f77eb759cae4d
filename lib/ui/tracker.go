package ui

import (
	"fmt"

	"git.sr.ht/~lazyframe/lazyframe/lib/log"
)

type Edge int

const (
	EDGE_TOP Edge = iota
	EDGE_BOTTOM
)

func (e Edge) String() string {
	if e == EDGE_TOP {
		return "top"
	}
	return "bottom"
}

// EdgeFinder returns the leaf showing at one edge of the viewport, or nil
// when nothing conclusive is there.
type EdgeFinder interface {
	FindEdge(edge Edge) *Widget
}

// VisibilityTracker keeps an ordered list of leaves and the window of
// indices currently considered visible. The window is the observed range
// widened by startBuffer before and endBuffer after, clamped to the list.
//
// Callbacks run synchronously, once per state transition, in ascending
// index order. They must not panic.
type VisibilityTracker struct {
	widgets     []*Widget
	start       int
	end         int
	startBuffer int
	endBuffer   int
	initialized bool
	onShow      func(w *Widget)
	onHide      func(w *Widget)
	logger      log.Logger
}

func NewVisibilityTracker(
	startBuffer, endBuffer int, onShow, onHide func(w *Widget),
) *VisibilityTracker {
	t := &VisibilityTracker{
		start:  -1,
		end:    -1,
		onShow: onShow,
		onHide: onHide,
		logger: log.NewLogger("tracker", 3),
	}
	t.SetBuffers(startBuffer, endBuffer)
	return t
}

// SetBuffers changes the look-behind and look-ahead sizes. Negative values
// are treated as zero. The new sizes apply from the next update.
func (t *VisibilityTracker) SetBuffers(startBuffer, endBuffer int) {
	t.startBuffer = maxInt(0, startBuffer)
	t.endBuffer = maxInt(0, endBuffer)
}

func (t *VisibilityTracker) Buffers() (int, int) {
	return t.startBuffer, t.endBuffer
}

// Append adds a leaf at the end of the list and returns its index.
func (t *VisibilityTracker) Append(w *Widget) int {
	w.index = len(t.widgets)
	t.widgets = append(t.widgets, w)
	return w.index
}

func (t *VisibilityTracker) Len() int {
	return len(t.widgets)
}

func (t *VisibilityTracker) At(i int) *Widget {
	return t.widgets[i]
}

// Range returns the current window, (-1, -1) until the first observation.
func (t *VisibilityTracker) Range() (int, int) {
	return t.start, t.end
}

// IndexOf returns the index of w in the list, or -1 if w does not belong
// to it.
func (t *VisibilityTracker) IndexOf(w *Widget) int {
	if w == nil || w.index < 0 || w.index >= len(t.widgets) ||
		t.widgets[w.index] != w {
		return -1
	}
	return w.index
}

// Visible returns the leaves inside the current window.
func (t *VisibilityTracker) Visible() []*Widget {
	if !t.initialized {
		return nil
	}
	return t.widgets[t.start : t.end+1]
}

// Recompute probes both viewport edges and updates the window. An
// inconclusive top probe leaves everything untouched; an inconclusive
// bottom probe means the content does not reach the bottom edge, so the
// last leaf is used.
func (t *VisibilityTracker) Recompute(finder EdgeFinder) {
	if len(t.widgets) == 0 {
		return
	}

	top := finder.FindEdge(EDGE_TOP)
	if !top.IsLeaf() {
		t.logger.Tracef("top probe inconclusive")
		return
	}
	topIndex := t.IndexOf(top)
	if topIndex < 0 {
		t.inconsistent(top)
		return
	}

	bottomIndex := len(t.widgets) - 1
	if bottom := finder.FindEdge(EDGE_BOTTOM); bottom.IsLeaf() {
		bottomIndex = t.IndexOf(bottom)
		if bottomIndex < 0 {
			t.inconsistent(bottom)
			return
		}
	}

	t.Update(topIndex, bottomIndex)
}

func (t *VisibilityTracker) inconsistent(w *Widget) {
	if debugChecks {
		panic(fmt.Errorf("probed widget %s is not tracked", w))
	}
	t.logger.Debugf("ignoring untracked widget %s", w)
}

// Update moves the window to cover [observedStart, observedEnd] plus the
// buffers, notifying every leaf whose state changes.
func (t *VisibilityTracker) Update(observedStart, observedEnd int) {
	n := len(t.widgets)
	if n == 0 {
		return
	}
	if observedEnd < observedStart {
		observedEnd = observedStart
	}

	start := minInt(maxInt(0, observedStart-t.startBuffer), n-1)
	end := maxInt(minInt(n-1, observedEnd+t.endBuffer), start)

	if !t.initialized {
		t.initialized = true
		t.start, t.end = start, end
		t.logger.Debugf("initial window %d-%d", start, end)
		for i := start; i <= end; i++ {
			t.show(i)
		}
		return
	}

	prevStart, prevEnd := t.start, t.end
	t.start, t.end = start, end
	if start != prevStart || end != prevEnd {
		t.logger.Debugf("window %d-%d -> %d-%d",
			prevStart, prevEnd, start, end)
	}

	if start > prevEnd || end < prevStart {
		// no overlap: walk both windows once in index order
		for i := minInt(start, prevStart); i <= maxInt(end, prevEnd); i++ {
			wasIn := i >= prevStart && i <= prevEnd
			isIn := i >= start && i <= end
			switch {
			case wasIn && !isIn:
				t.hide(i)
			case isIn && !wasIn:
				t.show(i)
			}
		}
		return
	}

	if start < prevStart {
		for i := start; i < prevStart; i++ {
			t.show(i)
		}
	} else {
		for i := prevStart; i < start; i++ {
			t.hide(i)
		}
	}

	if end < prevEnd {
		for i := end + 1; i <= prevEnd; i++ {
			t.hide(i)
		}
	} else {
		for i := prevEnd + 1; i <= end; i++ {
			t.show(i)
		}
	}
}

func (t *VisibilityTracker) show(i int) {
	w := t.widgets[i]
	w.Visible = true
	if t.onShow != nil {
		t.onShow(w)
	}
}

func (t *VisibilityTracker) hide(i int) {
	w := t.widgets[i]
	w.Visible = false
	if t.onHide != nil {
		t.onHide(w)
	}
}
