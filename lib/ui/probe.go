package ui

import "fmt"

type ProbeMode int

const (
	// sample a single cell just inside the edge
	PROBE_POINT ProbeMode = iota
	// scan inward from the edge until a leaf is hit
	PROBE_SCAN
)

func ParseProbeMode(value string) (ProbeMode, error) {
	switch value {
	case "point":
		return PROBE_POINT, nil
	case "scan":
		return PROBE_SCAN, nil
	}
	return 0, fmt.Errorf("%s: invalid probe mode, expected point or scan", value)
}

func (m ProbeMode) String() string {
	if m == PROBE_POINT {
		return "point"
	}
	return "scan"
}

// Locator answers which widget occupies a screen cell. Implementations
// only answer from settled layout.
type Locator interface {
	Containing(x, y int) *Widget
}

// ViewportProbe finds the first and last substantially visible leaf of a
// viewport by sampling screen cells. It keeps no scroll bookkeeping of its
// own and relies only on what the Locator reports.
type ViewportProbe struct {
	Mode ProbeMode
	// distance between two samples of a scan
	Stride int
	// how far inside the viewport edges sampling starts
	Inset int
	// horizontal distance from the viewport edge to the leaves
	LeftPad int

	locator Locator
}

func NewViewportProbe(locator Locator, mode ProbeMode) *ViewportProbe {
	return &ViewportProbe{Mode: mode, Stride: 1, locator: locator}
}

// FindEdge returns the leaf at the given edge of the viewport whose top-left
// corner is (originX, originY). pitch is the distance between two rows and
// bounds how far a scan goes. Samples never leave the viewport.
func (p *ViewportProbe) FindEdge(
	edge Edge, originX, originY, height, pitch int,
) *Widget {
	if height <= 0 {
		return nil
	}
	x := originX + p.LeftPad + p.Inset
	top, bottom := originY, originY+height-1

	span := 0
	if p.Mode == PROBE_SCAN {
		span = pitch + p.Inset
	}
	stride := maxInt(1, p.Stride)

	for d := 0; d <= span; d += stride {
		y := top + p.Inset + d
		if edge == EDGE_BOTTOM {
			y = bottom - p.Inset - d
		}
		if y < top || y > bottom {
			break
		}
		if w := p.locator.Containing(x, y); w.IsLeaf() {
			return w
		}
	}
	return nil
}
