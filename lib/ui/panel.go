package ui

// Padding around each row of a Panel, in cells.
type Padding struct {
	Top   int
	Left  int
	Right int
}

// Panel stacks leaves vertically, one fixed-height row each, and remembers
// where it put them. Layout is lazy: changes mark the panel dirty and
// Settle() computes the geometry. All coordinates are relative to the
// panel origin.
type Panel struct {
	record     *Widget
	rows       []*Widget
	geometry   []Rect
	padding    Padding
	itemHeight int
	width      int
	bounds     Rect
	dirty      bool
	onBounds   func(bounds Rect)
}

func NewPanel(record *Widget, padding Padding, itemHeight int) *Panel {
	return &Panel{
		record:     record,
		padding:    padding,
		itemHeight: maxInt(1, itemHeight),
	}
}

// OnBoundsChanged registers fn to be called from Settle() whenever the
// panel bounds differ from the previous settle.
func (p *Panel) OnBoundsChanged(fn func(bounds Rect)) {
	p.onBounds = fn
}

func (p *Panel) Append(w *Widget) {
	p.rows = append(p.rows, w)
	p.dirty = true
}

func (p *Panel) SetWidth(width int) {
	if width != p.width {
		p.width = width
		p.dirty = true
	}
}

func (p *Panel) Width() int {
	return p.width
}

// Pitch is the vertical distance between the tops of two rows.
func (p *Panel) Pitch() int {
	return p.itemHeight + p.padding.Top
}

func (p *Panel) Dirty() bool {
	return p.dirty
}

// Settle performs any pending layout.
func (p *Panel) Settle() {
	if !p.dirty {
		return
	}
	p.dirty = false

	pitch := p.Pitch()
	width := maxInt(0, p.width-p.padding.Left-p.padding.Right)
	p.geometry = p.geometry[:0]
	for i := range p.rows {
		p.geometry = append(p.geometry, Rect{
			X:      p.padding.Left,
			Y:      i*pitch + p.padding.Top,
			Width:  width,
			Height: p.itemHeight,
		})
	}

	bounds := Rect{Width: maxInt(0, p.width), Height: len(p.rows) * pitch}
	if bounds != p.bounds {
		p.bounds = bounds
		if p.onBounds != nil {
			p.onBounds(bounds)
		}
	}
}

func (p *Panel) Bounds() Rect {
	return p.bounds
}

// ChildAt returns the leaf covering the panel-relative cell, or nil.
func (p *Panel) ChildAt(x, y int) *Widget {
	if y < 0 || len(p.geometry) == 0 {
		return nil
	}
	i := y / p.Pitch()
	if i >= len(p.geometry) || !p.geometry[i].Contains(x, y) {
		return nil
	}
	return p.rows[i]
}

// Geometry returns the panel-relative rectangle of a row.
func (p *Panel) Geometry(w *Widget) (Rect, bool) {
	i := w.Index()
	if i < 0 || i >= len(p.geometry) || p.rows[i] != w {
		return Rect{}, false
	}
	return p.geometry[i], true
}

// Rows returns the rows intersecting [top, top+height).
func (p *Panel) Rows(top, height int) []*Widget {
	if len(p.geometry) == 0 || height <= 0 {
		return nil
	}
	pitch := p.Pitch()
	first := maxInt(0, top/pitch)
	last := minInt(len(p.rows)-1, (top+height-1)/pitch)
	if first > last {
		return nil
	}
	return p.rows[first : last+1]
}
