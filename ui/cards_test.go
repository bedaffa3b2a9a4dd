package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"EasiAuto/config"
)

func TestSwitchCardBound(t *testing.T) {
	test.NewApp()
	s := config.NewStore()
	item := config.NewItem(s, "flag", false)

	card := NewSwitchSettingCard(nil, "Flag", "", item, true)
	var events []bool
	card.OnCheckedChanged = func(v bool) { events = append(events, v) }

	card.check.SetChecked(true)

	assert.True(t, item.Get())
	assert.Equal(t, []bool{true}, events)
	assert.True(t, card.Value())
}

func TestSwitchCardFollowsExternalChange(t *testing.T) {
	test.NewApp()
	s := config.NewStore()
	item := config.NewItem(s, "flag", true)

	card := NewSwitchSettingCard(nil, "Flag", "", item, true)
	var events int
	card.OnCheckedChanged = func(bool) { events++ }

	item.Set(false)

	assert.False(t, card.Value())
	// A store-originated change refreshes the display without re-emitting.
	assert.Zero(t, events)
}

func TestSwitchCardUnbound(t *testing.T) {
	test.NewApp()
	card := NewSwitchSettingCard(nil, "Local", "", nil, true)
	var events []bool
	card.OnCheckedChanged = func(v bool) { events = append(events, v) }

	card.check.SetChecked(true)

	assert.True(t, card.Value())
	assert.Equal(t, []bool{true}, events)

	card.SetValue(false)
	assert.False(t, card.Value())
}

func TestSpinCardClampRoundTrip(t *testing.T) {
	test.NewApp()
	s := config.NewStore()
	item := config.NewRangeItem(s, "n", 50, 0, 100)

	card := NewSpinSettingCard(nil, "Number", "", item, true)
	var events []int
	card.OnValueChanged = func(v int) { events = append(events, v) }

	card.entry.SetText("150")
	card.entry.OnSubmitted("150")

	// The store holds the clamped value and the display converges to it.
	assert.Equal(t, 100, item.Get())
	assert.Equal(t, "100", card.entry.Text)
	assert.Equal(t, []int{100}, events)
}

func TestSpinCardSteppers(t *testing.T) {
	test.NewApp()
	s := config.NewStore()
	item := config.NewRangeItem(s, "n", 10, 0, 100)

	card := NewSpinSettingCard(nil, "Number", "", item, true)
	test.Tap(card.up)
	assert.Equal(t, 11, item.Get())
	test.Tap(card.down)
	test.Tap(card.down)
	assert.Equal(t, 9, item.Get())
}

func TestSpinCardInvalidInputRestoresValue(t *testing.T) {
	test.NewApp()
	s := config.NewStore()
	item := config.NewRangeItem(s, "n", 10, 0, 100)

	card := NewSpinSettingCard(nil, "Number", "", item, true)
	var events int
	card.OnValueChanged = func(int) { events++ }

	card.entry.SetText("abc")
	card.entry.OnSubmitted("abc")

	assert.Equal(t, "10", card.entry.Text)
	assert.Equal(t, 10, item.Get())
	assert.Zero(t, events)
}

func TestSpinCardUnboundWithLocalRange(t *testing.T) {
	test.NewApp()
	card := NewSpinSettingCard(nil, "Local", "", nil, true)
	card.SetRange(0, 10)

	card.entry.SetText("50")
	card.entry.OnSubmitted("50")
	assert.Equal(t, 10, card.Value())

	card.SetValue(-3)
	assert.Equal(t, 0, card.Value())
}

func TestEditCardBound(t *testing.T) {
	test.NewApp()
	s := config.NewStore()
	item := config.NewItem(s, "text", "initial")

	card := NewEditSettingCard(nil, "Text", "", item, "", true)
	require.Equal(t, "initial", card.Value())

	var events []string
	card.OnTextChanged = func(v string) { events = append(events, v) }

	card.entry.SetText("updated")
	assert.Equal(t, "updated", item.Get())
	assert.Equal(t, []string{"updated"}, events)

	// External change refreshes without emitting.
	item.Set("external")
	assert.Equal(t, "external", card.Value())
	assert.Len(t, events, 1)
}

func TestEditCardPlaceholderFallsBackToDefault(t *testing.T) {
	test.NewApp()
	s := config.NewStore()
	item := config.NewItem(s, "text", "the default")

	card := NewEditSettingCard(nil, "Text", "", item, "", true)
	assert.Equal(t, "the default", card.entry.PlaceHolder)

	other := config.NewItem(s, "text2", "unused")
	card2 := NewEditSettingCard(nil, "Text", "", other, "type here", true)
	assert.Equal(t, "type here", card2.entry.PlaceHolder)
}

func TestEditCardUnbound(t *testing.T) {
	test.NewApp()
	card := NewEditSettingCard(nil, "Local", "", nil, "hint", true)
	var events []string
	card.OnTextChanged = func(v string) { events = append(events, v) }

	card.entry.SetText("hello")
	assert.Equal(t, "hello", card.Value())
	assert.Equal(t, []string{"hello"}, events)
}

func TestRangeCardSlider(t *testing.T) {
	test.NewApp()
	s := config.NewStore()
	item := config.NewRangeItem(s, "n", 30, 0, 100)

	card := NewRangeSettingCard(item, nil, "Slider", "", true)
	var events []int
	card.OnValueChanged = func(v int) { events = append(events, v) }

	card.slider.SetValue(70)

	assert.Equal(t, 70, item.Get())
	assert.Equal(t, "70", card.valueLabel.Text)
	assert.Equal(t, []int{70}, events)

	item.Set(90)
	assert.Equal(t, float64(90), card.slider.Value)
	assert.Equal(t, "90", card.valueLabel.Text)
	assert.Len(t, events, 1)
}

func TestColorCardCommitsPickedColor(t *testing.T) {
	test.NewApp()
	s := config.NewStore()
	red := color.NRGBA{R: 0xff, A: 0xff}
	blue := color.NRGBA{B: 0xff, A: 0xff}
	item := config.NewItem(s, "color", red)

	win := test.NewWindow(nil)
	defer win.Close()

	card := NewColorSettingCard(item, nil, "Color", "", true, win)
	var events []color.NRGBA
	card.OnColorChanged = func(v color.NRGBA) { events = append(events, v) }

	card.commit(blue)

	assert.Equal(t, blue, item.Get())
	assert.Equal(t, blue, card.Value())
	assert.Equal(t, []color.NRGBA{blue}, events)

	item.Set(red)
	assert.Equal(t, red, card.swatch.FillColor)
	assert.Len(t, events, 1)
}

func TestSettingCardIconFlag(t *testing.T) {
	test.NewApp()
	withIcon := NewSwitchSettingCard(theme.InfoIcon(), "A", "", nil, false)
	assert.True(t, withIcon.HasIcon())

	without := NewSwitchSettingCard(nil, "B", "with content", nil, false)
	assert.False(t, without.HasIcon())
}

func TestBuildBannerSettingsBindsAllItems(t *testing.T) {
	test.NewApp()
	s := config.NewStore()
	items := config.NewBannerItems(s, config.BannerDefaults{Fps: 30})

	win := test.NewWindow(nil)
	defer win.Close()

	panel := BuildBannerSettings(items, win)
	require.NotNil(t, panel)

	// Every banner key is registered and reachable through the store.
	for _, key := range []string{
		config.KeyBannerEnabled, config.KeyBannerText, config.KeyBannerTextFont,
		config.KeyBannerTextSpeed, config.KeyBannerYOffset, config.KeyBannerFps,
		config.KeyBannerBgColor, config.KeyBannerFgColor, config.KeyBannerTextColor,
	} {
		_, err := s.Get(key)
		require.NoError(t, err, key)
	}
}
