package config

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeItemClampsOnSet(t *testing.T) {
	s := NewStore()
	it := NewRangeItem(s, "n", 50, 0, 100)

	it.Set(150)
	assert.Equal(t, 100, it.Get())

	it.Set(-5)
	assert.Equal(t, 0, it.Get())

	it.Set(42)
	assert.Equal(t, 42, it.Get())
}

func TestRangeItemClampsDefault(t *testing.T) {
	s := NewStore()
	it := NewRangeItem(s, "n", 500, 0, 100)
	assert.Equal(t, 100, it.Get())
	assert.Equal(t, 100, it.Default())
}

func TestSetEqualValueProducesNoNotification(t *testing.T) {
	s := NewStore()
	it := NewRangeItem(s, "n", 50, 0, 100)

	var calls int
	it.OnChanged(func(int) { calls++ })

	it.Set(150)
	require.Equal(t, 100, it.Get())
	require.Equal(t, 1, calls)

	// The clamped value is already held: no further notification.
	it.Set(150)
	assert.Equal(t, 1, calls)
	it.Set(100)
	assert.Equal(t, 1, calls)
}

func TestListenersFireInRegistrationOrder(t *testing.T) {
	s := NewStore()
	it := NewItem(s, "msg", "")

	var order []int
	for i := 0; i < 5; i++ {
		i := i
		it.OnChanged(func(string) { order = append(order, i) })
	}

	it.Set("changed")
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestStoreGetSetSubscribe(t *testing.T) {
	s := NewStore()
	NewRangeItem(s, "n", 50, 0, 100)

	var seen []any
	require.NoError(t, s.Subscribe("n", func(v any) { seen = append(seen, v) }))

	require.NoError(t, s.Set("n", 150))
	v, err := s.Get("n")
	require.NoError(t, err)
	assert.Equal(t, 100, v)
	assert.Equal(t, []any{100}, seen)

	// Setting the held value again notifies nobody.
	require.NoError(t, s.Set("n", 100))
	assert.Len(t, seen, 1)
}

func TestStoreUnknownKey(t *testing.T) {
	s := NewStore()

	_, err := s.Get("missing")
	assert.ErrorIs(t, err, ErrUnknownKey)

	assert.ErrorIs(t, s.Set("missing", 1), ErrUnknownKey)
	assert.ErrorIs(t, s.Subscribe("missing", func(any) {}), ErrUnknownKey)

	_, err = s.Default("missing")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestStoreSetTypeMismatch(t *testing.T) {
	s := NewStore()
	NewItem(s, "msg", "hello")

	err := s.Set("msg", 42)
	assert.ErrorIs(t, err, ErrTypeMismatch)

	v, err := s.Get("msg")
	require.NoError(t, err)
	assert.Equal(t, "hello", v)
}

func TestStoreKeysSorted(t *testing.T) {
	s := NewStore()
	NewItem(s, "b", 0)
	NewItem(s, "a", 0)
	NewItem(s, "c", 0)
	assert.Equal(t, []string{"a", "b", "c"}, s.Keys())
}

func TestDuplicateKeyPanics(t *testing.T) {
	s := NewStore()
	NewItem(s, "dup", 0)
	assert.Panics(t, func() { NewItem(s, "dup", "") })
}

type fakeReader map[string][]byte

func (r fakeReader) ReadFile(name string) ([]byte, error) {
	data, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("open %s: file does not exist", name)
	}
	return data, nil
}

func TestLoadBannerDefaults(t *testing.T) {
	reader := fakeReader{
		"assets/banner_defaults.json": []byte(`{
			"Enabled": true,
			"Text": "caution",
			"TextFont": "Noto Sans",
			"TextSpeed": 3,
			"YOffset": -4,
			"Fps": 25,
			"BgColor": "#ffd900",
			"FgColor": "#1e1e1e",
			"TextColor": "#80ff0000"
		}`),
	}

	d, err := LoadBannerDefaults(reader)
	require.NoError(t, err)
	assert.Equal(t, "caution", d.Text)
	assert.Equal(t, 25, d.Fps)

	s := NewStore()
	items := NewBannerItems(s, d)
	cfg := items.Snapshot()
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xd9, B: 0x00, A: 0xff}, cfg.BgColor)
	assert.Equal(t, color.NRGBA{R: 0xff, A: 0x80}, cfg.TextColor)
	assert.Equal(t, 3, cfg.TextSpeed)
	assert.True(t, items.Enabled.Get())
}

func TestLoadBannerDefaultsMissingFile(t *testing.T) {
	_, err := LoadBannerDefaults(fakeReader{})
	assert.Error(t, err)
}

func TestLoadBannerDefaultsBadColor(t *testing.T) {
	reader := fakeReader{
		"assets/banner_defaults.json": []byte(`{"Fps": 30, "BgColor": "nope", "FgColor": "#000000", "TextColor": "#000000"}`),
	}
	_, err := LoadBannerDefaults(reader)
	assert.Error(t, err)
}

func TestLoadBannerDefaultsLiftsZeroFps(t *testing.T) {
	reader := fakeReader{
		"assets/banner_defaults.json": []byte(`{"BgColor": "#000000", "FgColor": "#000000", "TextColor": "#000000"}`),
	}
	d, err := LoadBannerDefaults(reader)
	require.NoError(t, err)
	assert.Equal(t, MinFps, d.Fps)
}

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.NRGBA
	}{
		{"#ffd900", color.NRGBA{R: 0xff, G: 0xd9, B: 0x00, A: 0xff}},
		{"1e1e1e", color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}},
		{"#80102030", color.NRGBA{A: 0x80, R: 0x10, G: 0x20, B: 0x30}},
	}
	for _, tc := range cases {
		got, err := ParseHexColor(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	for _, bad := range []string{"", "#12345", "#ggffff", "#1234567890"} {
		_, err := ParseHexColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestFormatHexColorRoundTrip(t *testing.T) {
	for _, c := range []color.NRGBA{
		{R: 0xff, G: 0xd9, B: 0x00, A: 0xff},
		{A: 0x80, R: 0x10, G: 0x20, B: 0x30},
	} {
		got, err := ParseHexColor(FormatHexColor(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}

func TestSnapshotReflectsClampedWrites(t *testing.T) {
	s := NewStore()
	items := NewBannerItems(s, BannerDefaults{Fps: 30})

	items.TextSpeed.Set(MaxTextSpeed + 100)
	items.Fps.Set(0)

	cfg := items.Snapshot()
	assert.Equal(t, MaxTextSpeed, cfg.TextSpeed)
	assert.Equal(t, MinFps, cfg.Fps)
}
