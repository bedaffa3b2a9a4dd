package main

import (
	"embed"

	"fyne.io/fyne/v2/app"

	"EasiAuto/ui"
)

//go:embed assets/*
var content embed.FS

func main() {
	fyneApp := app.New()
	fyneApp.Settings().SetTheme(ui.NewWarningTheme())

	a := NewAppManager(fyneApp, content)

	w := ui.CreateMainWindow(a, fyneApp)
	a.mainWindow = w

	w.SetOnClosed(func() {
		a.hideBanner()
		a.Shutdown()
	})

	w.ShowAndRun()
}
