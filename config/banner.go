package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// AppContentReader defines the interface for reading content from the
// embedded file system.
type AppContentReader interface {
	ReadFile(name string) ([]byte, error)
}

// Banner item keys. The host persists these; it should treat the key
// strings as stable.
const (
	KeyBannerEnabled   = "banner.enabled"
	KeyBannerText      = "banner.text"
	KeyBannerTextFont  = "banner.textFont"
	KeyBannerTextSpeed = "banner.textSpeed"
	KeyBannerYOffset   = "banner.yOffset"
	KeyBannerFps       = "banner.fps"
	KeyBannerBgColor   = "banner.bgColor"
	KeyBannerFgColor   = "banner.fgColor"
	KeyBannerTextColor = "banner.textColor"
)

// Ranges for the numeric banner items. Fps starts at 1: the tick
// interval is 1000/fps ms, so zero is never representable.
const (
	MinTextSpeed = -20
	MaxTextSpeed = 20
	MinYOffset   = -48
	MaxYOffset   = 48
	MinFps       = 1
	MaxFps       = 120
)

// BannerConfig is a point-in-time snapshot of the banner items,
// consumed by the banner widget at construction.
type BannerConfig struct {
	Text      string
	TextFont  string
	TextSpeed int
	YOffset   int
	Fps       int
	BgColor   color.NRGBA
	FgColor   color.NRGBA
	TextColor color.NRGBA
}

// BannerItems holds the typed items backing the banner settings panel.
type BannerItems struct {
	Enabled   *Item[bool]
	Text      *Item[string]
	TextFont  *Item[string]
	TextSpeed *RangeItem
	YOffset   *RangeItem
	Fps       *RangeItem
	BgColor   *Item[color.NRGBA]
	FgColor   *Item[color.NRGBA]
	TextColor *Item[color.NRGBA]
}

// NewBannerItems registers one item per banner field on the store,
// seeded from the given defaults.
func NewBannerItems(s *Store, d BannerDefaults) *BannerItems {
	return &BannerItems{
		Enabled:   NewItem(s, KeyBannerEnabled, d.Enabled),
		Text:      NewItem(s, KeyBannerText, d.Text),
		TextFont:  NewItem(s, KeyBannerTextFont, d.TextFont),
		TextSpeed: NewRangeItem(s, KeyBannerTextSpeed, d.TextSpeed, MinTextSpeed, MaxTextSpeed),
		YOffset:   NewRangeItem(s, KeyBannerYOffset, d.YOffset, MinYOffset, MaxYOffset),
		Fps:       NewRangeItem(s, KeyBannerFps, d.Fps, MinFps, MaxFps),
		BgColor:   NewItem(s, KeyBannerBgColor, d.bgColor),
		FgColor:   NewItem(s, KeyBannerFgColor, d.fgColor),
		TextColor: NewItem(s, KeyBannerTextColor, d.textColor),
	}
}

// Snapshot returns the current values as a BannerConfig.
func (bi *BannerItems) Snapshot() BannerConfig {
	return BannerConfig{
		Text:      bi.Text.Get(),
		TextFont:  bi.TextFont.Get(),
		TextSpeed: bi.TextSpeed.Get(),
		YOffset:   bi.YOffset.Get(),
		Fps:       bi.Fps.Get(),
		BgColor:   bi.BgColor.Get(),
		FgColor:   bi.FgColor.Get(),
		TextColor: bi.TextColor.Get(),
	}
}

// BannerDefaults is the JSON shape of assets/banner_defaults.json.
// Colors are hex strings there and parsed on load.
type BannerDefaults struct {
	Enabled   bool   `json:"Enabled"`
	Text      string `json:"Text"`
	TextFont  string `json:"TextFont"`
	TextSpeed int    `json:"TextSpeed"`
	YOffset   int    `json:"YOffset"`
	Fps       int    `json:"Fps"`
	BgColor   string `json:"BgColor"`
	FgColor   string `json:"FgColor"`
	TextColor string `json:"TextColor"`

	bgColor   color.NRGBA
	fgColor   color.NRGBA
	textColor color.NRGBA
}

// LoadBannerDefaults loads the banner defaults from the embedded
// assets.
func LoadBannerDefaults(reader AppContentReader) (BannerDefaults, error) {
	var d BannerDefaults
	data, err := reader.ReadFile("assets/banner_defaults.json")
	if err != nil {
		return d, fmt.Errorf("read banner defaults: %w", err)
	}
	if err := json.Unmarshal(data, &d); err != nil {
		return d, fmt.Errorf("unmarshal banner defaults: %w", err)
	}
	if d.Fps < MinFps {
		d.Fps = MinFps
	}
	for _, c := range []struct {
		hex string
		dst *color.NRGBA
	}{
		{d.BgColor, &d.bgColor},
		{d.FgColor, &d.fgColor},
		{d.TextColor, &d.textColor},
	} {
		parsed, err := ParseHexColor(c.hex)
		if err != nil {
			return d, err
		}
		*c.dst = parsed
	}
	return d, nil
}

// ParseHexColor parses "#RRGGBB" or "#AARRGGBB" into an NRGBA color.
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	switch len(hex) {
	case 6:
		return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	case 8:
		return color.NRGBA{A: uint8(v >> 24), R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
	}
	return color.NRGBA{}, fmt.Errorf("parse color %q: want #RRGGBB or #AARRGGBB", s)
}

// FormatHexColor renders a color as the hex form ParseHexColor accepts,
// for the host's persistence layer.
func FormatHexColor(c color.NRGBA) string {
	if c.A != 0xff {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.A, c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
