// Package main contains the application wiring and the AppManager which
// coordinates the config store, the settings window, the warning flow
// and the banner overlay. A single command-loop goroutine serializes
// the run/banner lifecycle so only one flow is ever in flight; all
// widget state is touched on the UI goroutine via fyne.Do.
package main

import (
	"context"
	"embed"
	"encoding/json"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"EasiAuto/banner"
	"EasiAuto/config"
	"EasiAuto/control"
	"EasiAuto/i18n"
	"EasiAuto/prompt"
	"EasiAuto/ui"
)

// AppManager is the main application struct, holding all state.
type AppManager struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	content    embed.FS

	store *config.Store
	items *config.BannerItems

	cmdCh     chan control.Command
	cmdCtx    context.Context
	cmdCancel context.CancelFunc

	flowLock   sync.Mutex
	flowActive bool

	// bannerWindow and bannerWidget are touched on the UI goroutine only.
	bannerWindow fyne.Window
	bannerWidget *banner.Banner

	speakerLock sync.Mutex
	audioReady  bool
}

// NewAppManager creates the application manager: config store seeded
// from the embedded defaults, audio, and the command loop.
func NewAppManager(fyneApp fyne.App, content embed.FS) *AppManager {
	defaults, err := config.LoadBannerDefaults(content)
	if err != nil {
		log.Fatalf("Failed to load banner defaults: %v", err)
	}

	a := &AppManager{
		fyneApp: fyneApp,
		content: content,
		store:   config.NewStore(),
	}
	a.items = config.NewBannerItems(a.store, defaults)
	a.initAudio()

	a.cmdCh = make(chan control.Command, 16)
	a.cmdCtx, a.cmdCancel = context.WithCancel(context.Background())
	go a.commandLoop()

	return a
}

// Items returns the banner configuration items.
func (a *AppManager) Items() *config.BannerItems {
	return a.items
}

// Store returns the configuration store. The host's persistence layer
// walks it with Keys/Get/Subscribe.
func (a *AppManager) Store() *config.Store {
	return a.store
}

// EnqueueCommand posts a command to the internal command loop. If the
// channel stays full for a short timeout, the command is dropped and
// logged rather than blocking the UI.
func (a *AppManager) EnqueueCommand(cmd control.Command) {
	select {
	case a.cmdCh <- cmd:
	case <-time.After(150 * time.Millisecond):
		log.Printf("EnqueueCommand timeout: dropping command")
	}
}

func (a *AppManager) commandLoop() {
	for {
		select {
		case <-a.cmdCtx.Done():
			return
		case cmd := <-a.cmdCh:
			switch cmd.Type {
			case control.CmdRunLogin:
				a.startLoginFlow()
			case control.CmdShowBanner:
				fyne.Do(a.showBanner)
			case control.CmdHideBanner:
				fyne.Do(a.hideBanner)
			}
			if cmd.Reply != nil {
				select {
				case cmd.Reply <- nil:
				default:
				}
			}
		}
	}
}

// startLoginFlow launches the warning flow unless one is already
// running.
func (a *AppManager) startLoginFlow() {
	a.flowLock.Lock()
	if a.flowActive {
		a.flowLock.Unlock()
		return
	}
	a.flowActive = true
	a.flowLock.Unlock()

	go a.runLoginFlow()
}

// runLoginFlow is the pre-run sequence: audible alert, countdown
// dialog, then the banner overlay when confirmed. It runs on its own
// goroutine and blocks in Countdown.Start until the user decides or
// the countdown expires.
func (a *AppManager) runLoginFlow() {
	defer func() {
		a.flowLock.Lock()
		a.flowActive = false
		a.flowLock.Unlock()
	}()

	a.PlayAlert()

	cd := prompt.New()
	d := ui.ShowWarningDialog(a.mainWindow, cd)
	result := cd.Start(prompt.DefaultTimeout)
	d.Hide()

	if result != prompt.ResultConfirmed {
		return
	}

	var enabled bool
	fyne.DoAndWait(func() {
		enabled = a.items.Enabled.Get()
	})
	if enabled {
		fyne.Do(a.showBanner)
	}
}

// showBanner opens the banner overlay window with a snapshot of the
// current banner items and starts its clock. UI goroutine only.
func (a *AppManager) showBanner() {
	if a.bannerWindow != nil {
		return
	}

	cfg := a.items.Snapshot()
	b := banner.New(cfg)

	w := a.fyneApp.NewWindow("EasiAuto")
	w.SetContent(b)
	w.Resize(fyne.NewSize(960, banner.Height))
	w.SetOnClosed(func() {
		b.Stop()
		a.bannerWindow = nil
		a.bannerWidget = nil
	})

	a.bannerWindow = w
	a.bannerWidget = b
	w.Show()
	b.Start()
}

// hideBanner stops and closes the banner overlay. UI goroutine only.
func (a *AppManager) hideBanner() {
	if a.bannerWindow == nil {
		return
	}
	a.bannerWidget.Stop()
	a.bannerWindow.Close()
}

// ShowAboutDialog shows the localized about text from the embedded
// assets.
func (a *AppManager) ShowAboutDialog() {
	bytes, err := a.content.ReadFile("assets/dialogue_about.json")
	if err != nil {
		dialog.ShowError(err, a.mainWindow)
		return
	}

	var dialogues map[string]string
	if err := json.Unmarshal(bytes, &dialogues); err != nil {
		dialog.ShowError(err, a.mainWindow)
		return
	}
	contentText, ok := dialogues[i18n.GetLang()]
	if !ok {
		contentText = dialogues["en"]
	}

	text := widget.NewLabel(contentText)
	text.Wrapping = fyne.TextWrapWord

	dialog.ShowCustom(i18n.T("About EasiAuto"), i18n.T("Close"), text, a.mainWindow)
}

// Shutdown stops the command loop and allows background goroutines to
// exit.
func (a *AppManager) Shutdown() {
	if a.cmdCancel != nil {
		a.cmdCancel()
	}
}
