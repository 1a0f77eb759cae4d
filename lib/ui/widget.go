package ui

import "fmt"

type WidgetKind int

const (
	WIDGET_ROOT_CONTAINER WidgetKind = iota
	WIDGET_NONROOT_CONTAINER
	WIDGET_LEAF
)

func (k WidgetKind) String() string {
	switch k {
	case WIDGET_ROOT_CONTAINER:
		return "root"
	case WIDGET_NONROOT_CONTAINER:
		return "container"
	case WIDGET_LEAF:
		return "leaf"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Widget is the record a ScrollFrame keeps for every element it manages.
// Records are created by the frame and never change kind or position.
type Widget struct {
	Content Drawable
	Kind    WidgetKind
	// Distance from the root container.
	Depth int
	// Visibility as last observed by the tracker.
	Visible bool

	index int
}

func newWidget(content Drawable, kind WidgetKind, parent *Widget) *Widget {
	w := &Widget{Content: content, Kind: kind, index: -1}
	if parent != nil {
		w.Depth = parent.Depth + 1
	}
	return w
}

// Index returns the position of a leaf in its frame, -1 for containers.
func (w *Widget) Index() int {
	return w.index
}

func (w *Widget) IsLeaf() bool {
	return w != nil && w.Kind == WIDGET_LEAF
}

func (w *Widget) String() string {
	if w.Kind == WIDGET_LEAF {
		return fmt.Sprintf("%s#%d", w.Kind, w.index)
	}
	return fmt.Sprintf("%s@%d", w.Kind, w.Depth)
}
