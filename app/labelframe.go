package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"git.sr.ht/~lazyframe/lazyframe/lib/log"
	"git.sr.ht/~lazyframe/lazyframe/lib/ui"
)

// LabelFrame is a bordered scroll frame holding one centered text label per
// row. It logs every label entering or leaving the visible window.
type LabelFrame struct {
	box    *ui.Box
	frame  *ui.ScrollFrame
	style  tcell.Style
	shows  int
	hides  int
	logger log.Logger
}

func NewLabelFrame(conf ui.ScrollFrameConfig) *LabelFrame {
	lf := &LabelFrame{logger: log.NewLogger("labels", 3)}
	lf.frame = ui.NewScrollFrame(conf, lf.setVisible, lf.setHidden)
	lf.box = ui.NewBox(lf.frame, "Labels", "")
	return lf
}

func (lf *LabelFrame) Frame() *ui.ScrollFrame {
	return lf.frame
}

func (lf *LabelFrame) AddLabel(text string) *ui.Widget {
	label := ui.NewText(text, lf.style).Strategy(ui.TEXT_CENTER)
	return lf.frame.AddChild(label)
}

// Populate adds count labels named "Label 0" to "Label <count-1>".
func (lf *LabelFrame) Populate(count int) {
	for i := 0; i < count; i++ {
		lf.AddLabel(fmt.Sprintf("Label %d", i))
	}
}

func labelText(w *ui.Widget) string {
	if s, ok := w.Content.(fmt.Stringer); ok {
		return s.String()
	}
	return w.String()
}

func (lf *LabelFrame) setVisible(w *ui.Widget) {
	lf.shows++
	lf.logger.Infof("'%s' set visible", labelText(w))
}

func (lf *LabelFrame) setHidden(w *ui.Widget) {
	lf.hides++
	lf.logger.Infof("'%s' set hidden", labelText(w))
}

// Visible returns the text of every label currently flagged visible.
func (lf *LabelFrame) Visible() []string {
	var labels []string
	for _, w := range lf.frame.Widgets() {
		if w.Visible {
			labels = append(labels, labelText(w))
		}
	}
	return labels
}

func (lf *LabelFrame) Len() int {
	return len(lf.frame.Widgets())
}

// Transitions returns how many show and hide notifications were sent.
func (lf *LabelFrame) Transitions() (int, int) {
	return lf.shows, lf.hides
}

func (lf *LabelFrame) Draw(ctx *ui.Context) {
	lf.box.Draw(ctx)
}

func (lf *LabelFrame) Invalidate() {
	ui.Invalidate()
}

func (lf *LabelFrame) MouseEvent(localX int, localY int, event tcell.Event) {
	lf.box.MouseEvent(localX, localY, event)
}
