package banner

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"EasiAuto/config"
)

// Banner geometry. The stripe tile matches the original artwork: a
// slanted 16 px band inside a 40x32 tile.
const (
	Height           = 140
	StripeTileWidth  = 40
	StripeTileHeight = 32
	StripeBandWidth  = 16
	RuleThickness    = 4
	TextSize         = 36
	minWidth         = 160
)

// Banner is the scrolling warning overlay: a striped band at the top
// and bottom and a marquee text in between, advanced by its own frame
// clock. It retains its last-drawn state when stopped.
type Banner struct {
	widget.BaseWidget

	cfg     config.BannerConfig
	marquee *Marquee
	clock   *Clock

	stripe   image.Image
	textSize fyne.Size
}

// New creates a banner from a config snapshot. The text width is
// measured once and cached; the clock is created stopped.
func New(cfg config.BannerConfig) *Banner {
	b := &Banner{
		cfg:    cfg,
		clock:  NewClock(cfg.Fps),
		stripe: buildStripeImage(cfg.FgColor),
	}

	b.textSize = fyne.MeasureText(cfg.Text, TextSize, fyne.TextStyle{Bold: true})
	b.marquee = &Marquee{
		StripeWidth: StripeTileWidth,
		TextWidth:   int(b.textSize.Width),
		Speed:       cfg.TextSpeed,
	}

	b.ExtendBaseWidget(b)
	return b
}

// Start begins the frame clock. Starting a running banner does nothing.
func (b *Banner) Start() {
	b.clock.Start(func() {
		fyne.Do(b.step)
	})
}

// Stop halts the frame clock; the banner keeps its last-drawn state.
func (b *Banner) Stop() {
	b.clock.Stop()
}

// Running reports whether the banner is animating.
func (b *Banner) Running() bool {
	return b.clock.Running()
}

// step runs on the UI goroutine, once per clock tick.
func (b *Banner) step() {
	b.marquee.Advance()
	b.Refresh()
}

// CreateRenderer builds the renderer that tiles the stripe bands and
// text copies across the current viewport.
func (b *Banner) CreateRenderer() fyne.WidgetRenderer {
	r := &bannerRenderer{
		b:          b,
		bg:         canvas.NewRectangle(b.cfg.BgColor),
		topRule:    canvas.NewRectangle(b.cfg.FgColor),
		bottomRule: canvas.NewRectangle(b.cfg.FgColor),
	}
	r.relayout(fyne.NewSize(minWidth, Height))
	return r
}

type bannerRenderer struct {
	b *Banner

	bg          *canvas.Rectangle
	topRule     *canvas.Rectangle
	bottomRule  *canvas.Rectangle
	topTiles    []*canvas.Image
	bottomTiles []*canvas.Image
	texts       []*canvas.Text

	size    fyne.Size
	objects []fyne.CanvasObject
}

func (r *bannerRenderer) Layout(size fyne.Size) {
	r.relayout(size)
}

func (r *bannerRenderer) MinSize() fyne.Size {
	return fyne.NewSize(minWidth, Height)
}

func (r *bannerRenderer) Refresh() {
	r.relayout(r.size)
	canvas.Refresh(r.b)
}

func (r *bannerRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *bannerRenderer) Destroy() {
	r.b.clock.Stop()
}

// relayout repositions every canvas object for the current marquee
// state, growing the tile and text pools as the viewport demands.
func (r *bannerRenderer) relayout(size fyne.Size) {
	r.size = size
	m := r.b.marquee
	width := int(size.Width)

	r.bg.Move(fyne.NewPos(0, 0))
	r.bg.Resize(size)

	stripeXs := m.StripePositions(width)
	for len(r.topTiles) < len(stripeXs) {
		r.topTiles = append(r.topTiles, newStripeTile(r.b.stripe))
		r.bottomTiles = append(r.bottomTiles, newStripeTile(r.b.stripe))
	}
	bottomY := size.Height - StripeTileHeight
	for i, tile := range r.topTiles {
		bottom := r.bottomTiles[i]
		if i >= len(stripeXs) {
			tile.Hide()
			bottom.Hide()
			continue
		}
		x := float32(stripeXs[i])
		tile.Move(fyne.NewPos(x, 0))
		tile.Show()
		bottom.Move(fyne.NewPos(x, bottomY))
		bottom.Show()
	}

	r.topRule.Move(fyne.NewPos(0, StripeTileHeight))
	r.topRule.Resize(fyne.NewSize(size.Width, RuleThickness))
	r.bottomRule.Move(fyne.NewPos(0, bottomY-RuleThickness))
	r.bottomRule.Resize(fyne.NewSize(size.Width, RuleThickness))

	textXs := m.TextPositions(width)
	for len(r.texts) < len(textXs) {
		t := canvas.NewText(r.b.cfg.Text, r.b.cfg.TextColor)
		t.TextSize = TextSize
		t.TextStyle.Bold = true
		r.texts = append(r.texts, t)
	}
	textY := size.Height/2 - r.b.textSize.Height/2 + float32(r.b.cfg.YOffset)
	for i, t := range r.texts {
		if i >= len(textXs) {
			t.Hide()
			continue
		}
		t.Move(fyne.NewPos(float32(textXs[i]), textY))
		t.Show()
	}

	r.objects = r.objects[:0]
	r.objects = append(r.objects, r.bg)
	for _, tile := range r.topTiles {
		r.objects = append(r.objects, tile)
	}
	for _, tile := range r.bottomTiles {
		r.objects = append(r.objects, tile)
	}
	r.objects = append(r.objects, r.topRule, r.bottomRule)
	for _, t := range r.texts {
		r.objects = append(r.objects, t)
	}
}

func newStripeTile(img image.Image) *canvas.Image {
	tile := canvas.NewImageFromImage(img)
	tile.FillMode = canvas.ImageFillStretch
	tile.Resize(fyne.NewSize(StripeTileWidth, StripeTileHeight))
	return tile
}
