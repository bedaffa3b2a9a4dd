package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// Tappable wraps a canvas object and runs a callback when it is tapped.
// Used for the color swatches and the help icon.
type Tappable struct {
	widget.BaseWidget
	Content  fyne.CanvasObject
	OnTapped func()
}

// NewTappable wraps content with a primary-tap handler.
func NewTappable(content fyne.CanvasObject, onTapped func()) *Tappable {
	t := &Tappable{Content: content, OnTapped: onTapped}
	t.ExtendBaseWidget(t)
	return t
}

func (t *Tappable) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.Content)
}

func (t *Tappable) Tapped(_ *fyne.PointEvent) {
	if t.OnTapped != nil {
		t.OnTapped()
	}
}
