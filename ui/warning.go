package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"EasiAuto/i18n"
	"EasiAuto/prompt"
)

// WarningDialog is the pre-run confirmation dialog. Its buttons drive
// the countdown's Confirm/Cancel and its message line follows the
// countdown's ticks.
type WarningDialog struct {
	dialog  dialog.Dialog
	message *widget.Label
}

// ShowWarningDialog builds the dialog over win, wires it to cd and
// shows it. Call it from the flow goroutine, before cd.Start; closing
// the dialog by any other means counts as cancel.
func ShowWarningDialog(win fyne.Window, cd *prompt.Countdown) *WarningDialog {
	title := widget.NewLabelWithStyle(i18n.T("About to run whiteboard auto login"),
		fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	message := widget.NewLabel("")
	message.Alignment = fyne.TextAlignCenter

	d := dialog.NewCustomConfirm("EasiAuto", i18n.T("Run now"), i18n.T("Cancel"),
		container.NewVBox(title, message), func(confirmed bool) {
			if confirmed {
				cd.Confirm()
			} else {
				cd.Cancel()
			}
		}, win)

	cd.OnTick = func(remaining int) {
		fyne.Do(func() {
			message.SetText(fmt.Sprintf(i18n.T("Continuing in %d seconds"), remaining))
		})
	}

	fyne.Do(d.Show)
	return &WarningDialog{dialog: d, message: message}
}

// Hide dismisses the dialog. Safe to call from the flow goroutine.
func (w *WarningDialog) Hide() {
	fyne.Do(w.dialog.Hide)
}
