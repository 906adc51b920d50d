// Package main provides the entry point for the Line Fitter application.
package main

import (
	"log"
	"time"

	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"

	"line-fitter/internal/app"
	"line-fitter/internal/version"
	"line-fitter/ui/mainwindow"
	"line-fitter/ui/prefs"
)

const appTitle = "Line Fitter"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s", appTitle, version.Version)

	fyneApp := fyneapp.NewWithID("io.linefitter.app")
	fyneApp.Settings().SetTheme(&app.LineFitterTheme{})

	appPrefs := prefs.Load()

	state := app.NewState()
	state.SetSnap(appPrefs.Bool("snapToGrid", true))

	win := mainwindow.New(fyneApp, state, appPrefs)

	setupHotReload(win)

	win.ShowAndRun()

	win.SavePreferences()
}

// setupHotReload configures automatic restart detection when the binary is recompiled.
func setupHotReload(win *mainwindow.MainWindow) {
	reloader := app.NewHotReloader(2 * time.Second)
	if reloader == nil {
		log.Println("Hot reload: unable to determine executable path")
		return
	}

	log.Printf("Hot reload: watching %s (modified %s)",
		reloader.ExecPath(), reloader.Baseline().Format("15:04:05"))

	reloader.OnTick(func() {
		win.SavePreferences()
	})

	reloader.OnNewBinary(func() {
		log.Println("Hot reload: newer binary detected")
		dialog.ShowConfirm("New Version Available",
			"The application binary has been updated.\nRestart now?",
			func(restart bool) {
				if restart {
					log.Println("Hot reload: saving preferences before restart...")
					win.SavePreferences()
					log.Println("Hot reload: restarting...")
					if err := reloader.Restart(); err != nil {
						log.Printf("Hot reload: restart failed: %v", err)
					}
					return
				}
				reloader.ResetBaseline()
				reloader.Start()
			}, win.Window)
	})

	reloader.Start()
}
