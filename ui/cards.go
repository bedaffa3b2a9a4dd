// Package ui contains the setting cards, the settings panel, the
// warning dialog glue and the main window layout.
//
// Every setting card follows the same binding contract: when the user
// changes the control, the card writes to the config item first and
// then emits its outward On…Changed callback with the committed
// (possibly clamped) value. External item changes refresh the display
// without re-emitting; the refresh path is guarded so programmatic
// updates never loop back through the user-change handler.
package ui

import (
	"image/color"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"EasiAuto/config"
	"EasiAuto/i18n"
)

const (
	cardCornerRadius = 6
	spinEntryWidth   = 80
	sliderWidth      = 180
)

var cardBackground = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x14}

// SettingCard is the shared frame of every setting card: an optional
// icon, a title, an optional content line and a trailing control.
// With isItem set the card renders as a plain list row without the
// card background.
type SettingCard struct {
	widget.BaseWidget

	hasIcon  bool
	icon     *widget.Icon
	title    *widget.Label
	content  *widget.Label
	isItem   bool
	trailing fyne.CanvasObject
}

// initCard fills in the shared frame. Variants call this before adding
// their control and extending the base widget.
func (c *SettingCard) initCard(icon fyne.Resource, title, content string, isItem bool) {
	c.hasIcon = icon != nil
	if c.hasIcon {
		c.icon = widget.NewIcon(icon)
	}
	c.title = widget.NewLabel(title)
	c.content = widget.NewLabel(content)
	if content == "" {
		c.content.Hide()
	}
	c.isItem = isItem
}

// SetTitle updates the card's title.
func (c *SettingCard) SetTitle(title string) {
	c.title.SetText(title)
}

// SetContent updates the card's content line, hiding it when empty.
func (c *SettingCard) SetContent(content string) {
	c.content.SetText(content)
	if content == "" {
		c.content.Hide()
	} else {
		c.content.Show()
	}
}

// HasIcon reports whether the card was built with an icon.
func (c *SettingCard) HasIcon() bool { return c.hasIcon }

// CreateRenderer lays the card out: icon and labels on the left, the
// variant's control on the right, over a rounded background unless the
// card is a list item.
func (c *SettingCard) CreateRenderer() fyne.WidgetRenderer {
	labels := container.NewVBox(c.title, c.content)
	var left fyne.CanvasObject = labels
	if c.hasIcon {
		left = container.NewHBox(container.NewCenter(c.icon), labels)
	}

	row := container.New(layout.NewBorderLayout(nil, nil, left, c.trailing), left)
	if c.trailing != nil {
		row.Add(c.trailing)
	}

	if c.isItem {
		return widget.NewSimpleRenderer(row)
	}
	bg := canvas.NewRectangle(cardBackground)
	bg.CornerRadius = cardCornerRadius
	return widget.NewSimpleRenderer(container.NewStack(bg, container.NewPadded(row)))
}

// SwitchSettingCard is a boolean card with an On/Off check, optionally
// bound to a bool item.
type SwitchSettingCard struct {
	SettingCard

	item     *config.Item[bool]
	check    *widget.Check
	suppress bool

	// OnCheckedChanged fires after a user change has been committed.
	OnCheckedChanged func(bool)
}

// NewSwitchSettingCard creates a switch card. A nil item leaves the
// card unbound: it keeps purely local state.
func NewSwitchSettingCard(icon fyne.Resource, title, content string, item *config.Item[bool], isItem bool) *SwitchSettingCard {
	c := &SwitchSettingCard{item: item}
	c.initCard(icon, title, content, isItem)

	c.check = widget.NewCheck(i18n.T("Off"), c.onChanged)
	c.trailing = c.check

	if item != nil {
		c.apply(item.Get())
		item.OnChanged(c.apply)
	}

	c.ExtendBaseWidget(c)
	return c
}

func (c *SwitchSettingCard) onChanged(checked bool) {
	if c.suppress {
		return
	}
	if c.item != nil {
		c.item.Set(checked)
		checked = c.item.Get()
	}
	c.setLabel(checked)
	if c.OnCheckedChanged != nil {
		c.OnCheckedChanged(checked)
	}
}

func (c *SwitchSettingCard) apply(checked bool) {
	c.suppress = true
	c.setLabel(checked)
	c.check.SetChecked(checked)
	c.suppress = false
}

func (c *SwitchSettingCard) setLabel(checked bool) {
	if checked {
		c.check.Text = i18n.T("On")
	} else {
		c.check.Text = i18n.T("Off")
	}
	c.check.Refresh()
}

// SetValue sets the card's value, routing through the item when bound.
func (c *SwitchSettingCard) SetValue(checked bool) {
	if c.item != nil {
		c.item.Set(checked)
		return
	}
	c.apply(checked)
}

// Value returns the displayed value.
func (c *SwitchSettingCard) Value() bool { return c.check.Checked }

// SpinSettingCard is an integer card with a numeric entry and -/+
// steppers. The range comes from the bound RangeItem, or from SetRange
// for unbound cards.
type SpinSettingCard struct {
	SettingCard

	item     *config.RangeItem
	hasRange bool
	min, max int
	value    int

	entry *widget.Entry
	down  *widget.Button
	up    *widget.Button

	// OnValueChanged fires after a user change has been committed.
	OnValueChanged func(int)
}

// NewSpinSettingCard creates a numeric card. A nil item leaves the card
// unbound; SetRange can still clamp it locally.
func NewSpinSettingCard(icon fyne.Resource, title, content string, item *config.RangeItem, isItem bool) *SpinSettingCard {
	c := &SpinSettingCard{item: item}
	c.initCard(icon, title, content, isItem)

	c.entry = widget.NewEntry()
	c.entry.OnSubmitted = func(text string) {
		v, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			// Not a number: restore the last committed value.
			c.apply(c.value)
			return
		}
		c.commit(v)
	}
	c.down = widget.NewButton("-", func() { c.commit(c.value - 1) })
	c.up = widget.NewButton("+", func() { c.commit(c.value + 1) })

	sizer := canvas.NewRectangle(color.Transparent)
	sizer.SetMinSize(fyne.NewSize(spinEntryWidth, 0))
	c.trailing = container.NewHBox(c.down, container.NewStack(sizer, c.entry), c.up)

	if item != nil {
		c.min, c.max = item.Range()
		c.hasRange = true
		c.apply(item.Get())
		item.OnChanged(c.apply)
	} else {
		c.apply(0)
	}

	c.ExtendBaseWidget(c)
	return c
}

// SetRange overrides the card's local clamp range.
func (c *SpinSettingCard) SetRange(min, max int) {
	if max < min {
		min, max = max, min
	}
	c.min, c.max = min, max
	c.hasRange = true
}

func (c *SpinSettingCard) clampLocal(v int) int {
	if !c.hasRange {
		return v
	}
	if v < c.min {
		return c.min
	}
	if v > c.max {
		return c.max
	}
	return v
}

func (c *SpinSettingCard) commit(v int) {
	v = c.clampLocal(v)
	if c.item != nil {
		c.item.Set(v)
		v = c.item.Get()
	}
	c.apply(v)
	if c.OnValueChanged != nil {
		c.OnValueChanged(v)
	}
}

func (c *SpinSettingCard) apply(v int) {
	c.value = v
	c.entry.SetText(strconv.Itoa(v))
}

// SetValue sets the card's value, routing through the item when bound.
func (c *SpinSettingCard) SetValue(v int) {
	if c.item != nil {
		c.item.Set(v)
		c.apply(c.item.Get())
		return
	}
	c.apply(c.clampLocal(v))
}

// Value returns the last committed value.
func (c *SpinSettingCard) Value() int { return c.value }

// EditSettingCard is a free-text card, optionally bound to a string
// item. Changes commit per keystroke, like the original line edit.
type EditSettingCard struct {
	SettingCard

	item     *config.Item[string]
	entry    *widget.Entry
	suppress bool

	// OnTextChanged fires after a user change has been committed.
	OnTextChanged func(string)
}

// NewEditSettingCard creates a text card. An empty placeholder falls
// back to the bound item's default value.
func NewEditSettingCard(icon fyne.Resource, title, content string, item *config.Item[string], placeholder string, isItem bool) *EditSettingCard {
	c := &EditSettingCard{item: item}
	c.initCard(icon, title, content, isItem)

	c.entry = widget.NewEntry()
	c.entry.OnChanged = c.onChanged
	if placeholder != "" {
		c.entry.SetPlaceHolder(placeholder)
	} else if item != nil {
		c.entry.SetPlaceHolder(item.Default())
	}

	sizer := canvas.NewRectangle(color.Transparent)
	sizer.SetMinSize(fyne.NewSize(sliderWidth, 0))
	c.trailing = container.NewStack(sizer, c.entry)

	if item != nil {
		c.apply(item.Get())
		item.OnChanged(c.apply)
	}

	c.ExtendBaseWidget(c)
	return c
}

func (c *EditSettingCard) onChanged(text string) {
	if c.suppress {
		return
	}
	if c.item != nil {
		c.item.Set(text)
	}
	if c.OnTextChanged != nil {
		c.OnTextChanged(text)
	}
}

func (c *EditSettingCard) apply(text string) {
	c.suppress = true
	c.entry.SetText(text)
	c.suppress = false
}

// SetValue sets the card's text, routing through the item when bound.
func (c *EditSettingCard) SetValue(text string) {
	if c.item != nil {
		c.item.Set(text)
		c.apply(c.item.Get())
		return
	}
	c.apply(text)
}

// Value returns the displayed text.
func (c *EditSettingCard) Value() string { return c.entry.Text }

// ColorSettingCard shows a color swatch that opens the picker dialog.
// The item is mandatory: the color doubles as the picker's identity, so
// there is no unbound mode.
type ColorSettingCard struct {
	SettingCard

	item   *config.Item[color.NRGBA]
	swatch *canvas.Rectangle

	// OnColorChanged fires after a picked color has been committed.
	OnColorChanged func(color.NRGBA)
}

// NewColorSettingCard creates a color card bound to item, opening the
// picker dialog over win.
func NewColorSettingCard(item *config.Item[color.NRGBA], icon fyne.Resource, title, content string, isItem bool, win fyne.Window) *ColorSettingCard {
	c := &ColorSettingCard{item: item}
	c.initCard(icon, title, content, isItem)

	c.swatch = canvas.NewRectangle(item.Get())
	c.swatch.CornerRadius = cardCornerRadius
	c.swatch.SetMinSize(fyne.NewSize(48, 24))
	c.trailing = container.NewCenter(NewTappable(c.swatch, func() {
		c.openPicker(win)
	}))

	item.OnChanged(c.apply)

	c.ExtendBaseWidget(c)
	return c
}

func (c *ColorSettingCard) openPicker(win fyne.Window) {
	d := dialog.NewColorPicker(c.title.Text, "", func(picked color.Color) {
		c.commit(toNRGBA(picked))
	}, win)
	d.Advanced = true
	d.Show()
}

func (c *ColorSettingCard) commit(v color.NRGBA) {
	c.item.Set(v)
	v = c.item.Get()
	if c.OnColorChanged != nil {
		c.OnColorChanged(v)
	}
}

func (c *ColorSettingCard) apply(v color.NRGBA) {
	c.swatch.FillColor = v
	c.swatch.Refresh()
}

// SetValue sets the card's color through the item.
func (c *ColorSettingCard) SetValue(v color.NRGBA) {
	c.item.Set(v)
}

// Value returns the bound item's color.
func (c *ColorSettingCard) Value() color.NRGBA { return c.item.Get() }

// RangeSettingCard is a slider card. The item is mandatory; range and
// initial value always come from it.
type RangeSettingCard struct {
	SettingCard

	item       *config.RangeItem
	slider     *widget.Slider
	valueLabel *widget.Label
	suppress   bool

	// OnValueChanged fires after a user change has been committed.
	OnValueChanged func(int)
}

// NewRangeSettingCard creates a slider card bound to item.
func NewRangeSettingCard(item *config.RangeItem, icon fyne.Resource, title, content string, isItem bool) *RangeSettingCard {
	c := &RangeSettingCard{item: item}
	c.initCard(icon, title, content, isItem)

	min, max := item.Range()
	c.slider = widget.NewSlider(float64(min), float64(max))
	c.slider.Step = 1
	c.slider.Value = float64(item.Get())
	c.slider.OnChanged = c.onChanged

	c.valueLabel = widget.NewLabel(strconv.Itoa(item.Get()))

	sizer := canvas.NewRectangle(color.Transparent)
	sizer.SetMinSize(fyne.NewSize(sliderWidth, 0))
	c.trailing = container.NewHBox(c.valueLabel, container.NewStack(sizer, c.slider))

	item.OnChanged(c.apply)

	c.ExtendBaseWidget(c)
	return c
}

func (c *RangeSettingCard) onChanged(f float64) {
	if c.suppress {
		return
	}
	v := int(f)
	c.item.Set(v)
	v = c.item.Get()
	c.valueLabel.SetText(strconv.Itoa(v))
	if c.OnValueChanged != nil {
		c.OnValueChanged(v)
	}
}

func (c *RangeSettingCard) apply(v int) {
	c.suppress = true
	c.slider.SetValue(float64(v))
	c.valueLabel.SetText(strconv.Itoa(v))
	c.suppress = false
}

// SetValue sets the card's value through the item.
func (c *RangeSettingCard) SetValue(v int) {
	c.item.Set(v)
	c.apply(c.item.Get())
}

// Value returns the bound item's value.
func (c *RangeSettingCard) Value() int { return c.item.Get() }

// toNRGBA converts any color to non-premultiplied NRGBA for storage in
// a color item.
func toNRGBA(c color.Color) color.NRGBA {
	if n, ok := c.(color.NRGBA); ok {
		return n
	}
	r, g, b, a := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
