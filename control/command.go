// Package control defines lightweight command messages used by the UI
// to request actions from the application command loop. The command
// loop centralizes the run/banner lifecycle so only one flow is ever
// in flight.
package control

// CommandType enumerates supported command operations.
type CommandType int

const (
	// CmdRunLogin starts the pre-run warning flow: alert, countdown
	// dialog and, on confirm, the banner overlay.
	CmdRunLogin CommandType = iota
	// CmdShowBanner shows the banner overlay without the prompt.
	CmdShowBanner
	// CmdHideBanner stops and closes the banner overlay.
	CmdHideBanner
)

// Command is the message sent from the UI to the application command
// loop. The optional Reply channel can be used to confirm completion
// back to the sender.
type Command struct {
	Type  CommandType
	Reply chan error
}
