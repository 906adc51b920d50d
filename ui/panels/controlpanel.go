// Package panels provides the control side panel.
package panels

import (
	"errors"
	"fmt"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"line-fitter/internal/app"
	"line-fitter/internal/fit"
	"line-fitter/internal/model"
	"line-fitter/internal/render"
	"line-fitter/ui/prefs"
)

const prefKeySnap = "snapToGrid"

// ControlPanel holds the point list and the line controls: snap toggle,
// undo/delete/clear buttons, m and b entries, fit, and the equation and
// loss readouts.
type ControlPanel struct {
	state     *app.State
	prefs     *prefs.Prefs
	window    fyne.Window
	container fyne.CanvasObject

	snapCheck  *widget.Check
	pointsList *widget.List

	// labels mirrors the published point list; selected tracks the
	// checked rows for Delete Selected.
	labels   []string
	selected map[int]bool

	mEntry    *widget.Entry
	bEntry    *widget.Entry
	eqLabel   *widget.Label
	lossLabel *widget.Label
}

// NewControlPanel creates the panel bound to the session state.
func NewControlPanel(state *app.State, appPrefs *prefs.Prefs) *ControlPanel {
	cp := &ControlPanel{
		state:    state,
		prefs:    appPrefs,
		selected: make(map[int]bool),
	}

	cp.snapCheck = widget.NewCheck("Snap to integer grid", func(v bool) {
		cp.state.SetSnap(v)
		cp.prefs.SetBool(prefKeySnap, v)
	})
	cp.snapCheck.SetChecked(state.SnapToGrid())

	cp.pointsList = widget.NewList(
		func() int { return len(cp.labels) },
		func() fyne.CanvasObject { return widget.NewCheck("(0.00, 0.00)", nil) },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			check := obj.(*widget.Check)
			check.OnChanged = nil
			check.Text = cp.labels[id]
			check.SetChecked(cp.selected[id])
			check.Refresh()
			check.OnChanged = func(v bool) {
				if v {
					cp.selected[id] = true
				} else {
					delete(cp.selected, id)
				}
			}
		},
	)

	undoBtn := widget.NewButton("Undo Last", func() { cp.state.UndoLast() })
	deleteBtn := widget.NewButton("Delete Selected", cp.onDeleteSelected)
	clearBtn := widget.NewButton("Clear All", cp.onClearAll)

	cp.mEntry = widget.NewEntry()
	cp.mEntry.SetText("1.0")
	cp.mEntry.OnSubmitted = func(string) { cp.onUpdateLine() }
	cp.bEntry = widget.NewEntry()
	cp.bEntry.SetText("0.0")
	cp.bEntry.OnSubmitted = func(string) { cp.onUpdateLine() }

	updateBtn := widget.NewButton("Update Line", cp.onUpdateLine)
	fitBtn := widget.NewButton("Fit Line (Least Squares)", cp.onFitLine)
	resetBtn := widget.NewButton("Reset View", func() { cp.state.ResetView() })

	frame := state.Frame()
	cp.eqLabel = widget.NewLabel(frame.Equation)
	cp.lossLabel = widget.NewLabel(frame.Loss)

	lineForm := widget.NewForm(
		widget.NewFormItem("m (slope)", cp.mEntry),
		widget.NewFormItem("b (intercept)", cp.bEntry),
	)

	cp.container = container.NewVBox(
		widget.NewLabel("Click on the graph to add a point."),
		cp.snapCheck,
		widget.NewLabel("Points (x, y):"),
		container.NewGridWrap(fyne.NewSize(200, 240), cp.pointsList),
		container.NewGridWithColumns(3, undoBtn, deleteBtn, clearBtn),
		widget.NewLabelWithStyle("Line: y = m·x + b", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		lineForm,
		container.NewGridWithColumns(2, updateBtn, fitBtn),
		cp.eqLabel,
		cp.lossLabel,
		resetBtn,
	)

	state.On(app.EventDataChanged, func(data interface{}) {
		if f, ok := data.(render.Frame); ok {
			cp.applyFrame(f)
		}
	})
	state.On(app.EventLineChanged, func(data interface{}) {
		if f, ok := data.(render.Frame); ok {
			cp.mEntry.SetText(fmt.Sprintf("%.3f", f.M))
			cp.bEntry.SetText(fmt.Sprintf("%.3f", f.B))
		}
	})

	return cp
}

// Container returns the panel container.
func (cp *ControlPanel) Container() fyne.CanvasObject {
	return cp.container
}

// SetWindow sets the parent window for dialogs.
func (cp *ControlPanel) SetWindow(w fyne.Window) {
	cp.window = w
}

// applyFrame refreshes the list and readouts from a published frame.
func (cp *ControlPanel) applyFrame(f render.Frame) {
	cp.labels = f.PointLabels
	for id := range cp.selected {
		if id >= len(cp.labels) {
			delete(cp.selected, id)
		}
	}
	cp.pointsList.Refresh()
	cp.eqLabel.SetText(f.Equation)
	cp.lossLabel.SetText(f.Loss)
}

func (cp *ControlPanel) onDeleteSelected() {
	if len(cp.selected) == 0 {
		return
	}
	indices := make([]int, 0, len(cp.selected))
	for id := range cp.selected {
		indices = append(indices, id)
	}
	sort.Ints(indices)
	cp.selected = make(map[int]bool)
	cp.state.DeleteSelected(indices)
}

func (cp *ControlPanel) onClearAll() {
	if cp.state.PointCount() == 0 {
		return
	}
	dialog.ShowConfirm("Clear All", "Remove all points?", func(ok bool) {
		cp.state.ClearAll(ok)
	}, cp.window)
}

func (cp *ControlPanel) onUpdateLine() {
	err := cp.state.UpdateLineFromInputs(cp.mEntry.Text, cp.bEntry.Text)
	if err == nil {
		return
	}
	if errors.Is(err, model.ErrInvalidParameter) {
		dialog.ShowInformation("Invalid Input",
			"Please enter numeric values for m and b.", cp.window)
		return
	}
	dialog.ShowError(err, cp.window)
}

func (cp *ControlPanel) onFitLine() {
	err := cp.state.FitLine()
	switch {
	case err == nil:
	case errors.Is(err, fit.ErrInsufficientData):
		dialog.ShowInformation("Need More Points",
			"Add at least two points to fit a line.", cp.window)
	case errors.Is(err, fit.ErrDegenerateFit):
		dialog.ShowInformation("Vertical Line",
			"All points share the same x value; a slope cannot be fit.", cp.window)
	default:
		dialog.ShowError(err, cp.window)
	}
}
