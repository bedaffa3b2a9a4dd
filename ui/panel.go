package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"EasiAuto/config"
	"EasiAuto/i18n"
)

// BuildBannerSettings assembles the banner configuration panel: one
// card per banner item, rendered as list rows under a section header.
func BuildBannerSettings(items *config.BannerItems, win fyne.Window) fyne.CanvasObject {
	header := widget.NewLabelWithStyle(i18n.T("Warning banner"), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	cards := []fyne.CanvasObject{
		NewSwitchSettingCard(theme.VisibilityIcon(), i18n.T("Show banner while running"), "", items.Enabled, true),
		NewEditSettingCard(theme.DocumentCreateIcon(), i18n.T("Banner text"), "", items.Text, "", true),
		NewEditSettingCard(nil, i18n.T("Text font"), i18n.T("Preferred font family"), items.TextFont, "sans-serif", true),
		NewRangeSettingCard(items.TextSpeed, theme.MediaFastForwardIcon(), i18n.T("Scroll speed"), "", true),
		NewSpinSettingCard(nil, i18n.T("Vertical offset"), "", items.YOffset, true),
		NewSpinSettingCard(nil, i18n.T("Frame rate"), "", items.Fps, true),
		NewColorSettingCard(items.BgColor, theme.ColorPaletteIcon(), i18n.T("Background color"), "", true, win),
		NewColorSettingCard(items.FgColor, nil, i18n.T("Stripe color"), "", true, win),
		NewColorSettingCard(items.TextColor, nil, i18n.T("Text color"), "", true, win),
	}

	rows := container.NewVBox(header)
	for i, card := range cards {
		if i > 0 {
			rows.Add(widget.NewSeparator())
		}
		rows.Add(card)
	}
	return rows
}
