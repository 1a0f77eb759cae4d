package ui

import (
	"sync/atomic"
)

// Invalidatable can be embedded by drawables that want to be told when
// they are invalidated in addition to scheduling a redraw.
type Invalidatable struct {
	onInvalidate atomic.Value
}

func (i *Invalidatable) OnInvalidate(f func(d Drawable)) {
	i.onInvalidate.Store(f)
}

func (i *Invalidatable) DoInvalidate(d Drawable) {
	if f, ok := i.onInvalidate.Load().(func(d Drawable)); ok && f != nil {
		f(d)
	}
	Invalidate()
}
