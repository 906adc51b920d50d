// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"image/png"
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"line-fitter/internal/app"
	"line-fitter/internal/render"
	"line-fitter/internal/version"
	"line-fitter/ui/canvas"
	"line-fitter/ui/panels"
	"line-fitter/ui/prefs"
)

const (
	prefKeyWindowWidth   = "windowWidth"
	prefKeyWindowHeight  = "windowHeight"
	prefKeyLastExportDir = "lastExportDirectory"

	// exportSize is the square pixel size of exported plot images.
	exportSize = 1600
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app       fyne.App
	state     *app.State
	prefs     *prefs.Prefs
	plot      *canvas.PlotCanvas
	panel     *panels.ControlPanel
	statusBar *widget.Label
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State, appPrefs *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow("Line Fitter")

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  appPrefs,
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()

	w := float32(appPrefs.Float(prefKeyWindowWidth, 1000))
	h := float32(appPrefs.Float(prefKeyWindowHeight, 700))
	mw.Resize(fyne.NewSize(w, h))

	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.plot = canvas.NewPlotCanvas(mw.state)

	mw.panel = panels.NewControlPanel(mw.state, mw.prefs)
	mw.panel.SetWindow(mw.Window)

	mw.statusBar = widget.NewLabel("Ready")

	// Main layout: controls | plot
	split := container.NewHSplit(
		container.NewVScroll(mw.panel.Container()),
		mw.plot,
	)
	split.SetOffset(0.28)

	content := container.NewBorder(
		nil,                               // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		split,                             // center
	)

	mw.SetContent(content)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Export Plot...", mw.onExportPlot),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo Last Point", func() { mw.state.UndoLast() }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Clear All Points...", mw.onClearAll),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Zoom In", func() { mw.plot.ZoomIn() }),
		fyne.NewMenuItem("Zoom Out", func() { mw.plot.ZoomOut() }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Reset View", func() { mw.state.ResetView() }),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, viewMenu, helpMenu))
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventDataChanged, func(data interface{}) {
		if f, ok := data.(render.Frame); ok {
			mw.updateStatus(fmt.Sprintf("%d point(s)  —  %s", len(f.Points), f.Loss))
		}
	})

	mw.state.On(app.EventViewReset, func(interface{}) {
		mw.updateStatus("View reset")
	})
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

// SavePreferences stores window settings and writes the preferences file.
func (mw *MainWindow) SavePreferences() {
	size := mw.Canvas().Size()
	mw.prefs.SetFloat(prefKeyWindowWidth, float64(size.Width))
	mw.prefs.SetFloat(prefKeyWindowHeight, float64(size.Height))
	if err := mw.prefs.Save(); err != nil {
		log.Printf("Failed to save preferences: %v", err)
	}
}

func (mw *MainWindow) onClearAll() {
	if mw.state.PointCount() == 0 {
		return
	}
	dialog.ShowConfirm("Clear All", "Remove all points?", func(ok bool) {
		mw.state.ClearAll(ok)
	}, mw.Window)
}

func (mw *MainWindow) onExportPlot() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()

		path := writer.URI().Path()
		mw.prefs.SetString(prefKeyLastExportDir, filepath.Dir(path))

		img := mw.plot.Snapshot(exportSize)
		if err := png.Encode(writer, img); err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.updateStatus("Plot exported: " + filepath.Base(path))
	}, mw.Window)
	fd.SetFileName("line-fit.png")
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".png"}))
	if loc := mw.lastExportDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

// lastExportDir returns the last export directory as a ListableURI, or nil.
func (mw *MainWindow) lastExportDir() fyne.ListableURI {
	path := mw.prefs.String(prefKeyLastExportDir)
	if path == "" {
		return nil
	}
	listable, err := storage.ListerForURI(storage.NewFileURI(path))
	if err != nil {
		return nil
	}
	return listable
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About Line Fitter",
		fmt.Sprintf("Line Fitter %s\nBuilt %s (%s)\n\nClick to place points, then fit y = m·x + b.",
			version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}
