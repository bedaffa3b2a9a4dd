package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"EasiAuto/config"
	"EasiAuto/control"
	"EasiAuto/i18n"
)

// App is the interface the ui package needs from the application layer.
type App interface {
	Items() *config.BannerItems
	EnqueueCommand(cmd control.Command)
	ShowAboutDialog()
}

// CreateMainWindow builds the configuration window: the banner settings
// panel above the run controls.
func CreateMainWindow(a App, fyneApp fyne.App) fyne.Window {
	title := fyneApp.Metadata().Name
	if title == "" {
		title = "EasiAuto"
	}
	w := fyneApp.NewWindow(title)

	panel := BuildBannerSettings(a.Items(), w)
	scroll := container.NewVScroll(container.NewPadded(panel))
	scroll.SetMinSize(fyne.NewSize(460, 420))

	w.SetContent(container.NewVBox(scroll, buildFooter(a)))
	w.Resize(fyne.NewSize(480, 520))
	w.SetFixedSize(true)
	return w
}

func buildFooter(a App) fyne.CanvasObject {
	runButton := widget.NewButton(i18n.T("Run"), func() {
		a.EnqueueCommand(control.Command{Type: control.CmdRunLogin})
	})
	runButton.Importance = widget.HighImportance

	hideButton := widget.NewButton(i18n.T("Hide banner"), func() {
		a.EnqueueCommand(control.Command{Type: control.CmdHideBanner})
	})

	aboutIcon := widget.NewIcon(theme.QuestionIcon())
	helpButton := NewTappable(aboutIcon, a.ShowAboutDialog)

	leftContent := container.NewVBox(
		layout.NewSpacer(),
		helpButton,
	)

	buttons := container.NewHBox(
		layout.NewSpacer(),
		runButton,
		hideButton,
		layout.NewSpacer(),
	)

	return container.New(
		layout.NewBorderLayout(nil, nil, leftContent, nil),
		leftContent,
		buttons,
	)
}
