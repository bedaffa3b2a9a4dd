// Package banner contains the warning banner: the marquee scroll model,
// the frame clock that advances it, and the Fyne widget that draws the
// stripe bands and the scrolling text.
package banner

// Marquee is the scroll-position model for one banner. It knows nothing
// about drawing; the widget renderer asks it where the stripe tiles and
// text copies go.
//
// Invariants: the stripe offset stays within [0, StripeWidth); the text
// position stays within [-TextWidth, 0] so apparent motion is continuous
// across wraparound.
type Marquee struct {
	// StripeWidth is the width of one stripe tile in pixels.
	StripeWidth int
	// TextWidth is the cached pixel width of one copy of the text.
	// Zero means there is no text to scroll.
	TextWidth int
	// Speed is the scroll distance per tick. Zero keeps the text
	// static, negative scrolls it the other way.
	Speed int

	offset int
	textX  int
}

// Offset returns the stripe pattern's horizontal offset.
func (m *Marquee) Offset() int { return m.offset }

// TextX returns the text's horizontal position.
func (m *Marquee) TextX() int { return m.textX }

// Advance moves the marquee by one tick: the stripe pattern shifts one
// pixel and the text moves by Speed, re-based by whole text widths once
// it has fully left the viewport edge.
func (m *Marquee) Advance() {
	if m.StripeWidth > 0 {
		m.offset = (m.offset + 1) % m.StripeWidth
	}

	m.textX -= m.Speed
	if m.TextWidth <= 0 {
		// Empty text: nothing to wrap against, leave the position alone.
		return
	}
	for m.textX < -m.TextWidth {
		m.textX += m.TextWidth
	}
	for m.textX > 0 {
		m.textX -= m.TextWidth
	}
}

// StripePositions returns the x positions of the stripe tiles needed to
// cover a viewport of the given width, left to right.
func (m *Marquee) StripePositions(viewportWidth int) []int {
	if m.StripeWidth <= 0 || viewportWidth <= 0 {
		return nil
	}
	var xs []int
	for x := -m.offset; x < viewportWidth; x += m.StripeWidth {
		xs = append(xs, x)
	}
	return xs
}

// TextPositions returns the x positions of the text copies needed to
// cover a viewport of the given width. Empty text yields none.
func (m *Marquee) TextPositions(viewportWidth int) []int {
	if m.TextWidth <= 0 || viewportWidth <= 0 {
		return nil
	}
	var xs []int
	for x := m.textX; x < viewportWidth; x += m.TextWidth {
		xs = append(xs, x)
	}
	return xs
}
