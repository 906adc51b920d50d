// Package canvas provides the interactive plot widget: a rastered graph
// with grid, axes, scatter, and the current line, plus pan and zoom.
package canvas

import (
	"image"
	"math"
	"strconv"
	"sync"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	xdraw "golang.org/x/image/draw"

	"line-fitter/internal/app"
	"line-fitter/internal/render"
	"line-fitter/pkg/geometry"
)

const (
	zoomStep = 1.25

	// snapshotBase is the off-screen render size for PNG export.
	snapshotBase = 1000
)

// PlotCanvas displays the session's points and line over a coordinate
// grid. Tapping adds a point, dragging pans, and the scroll wheel zooms
// about the cursor. It repaints whenever the session publishes a frame.
type PlotCanvas struct {
	widget.BaseWidget

	state  *app.State
	raster *fynecanvas.Raster

	mu    sync.Mutex
	frame render.Frame
	view  geometry.Rect
}

// NewPlotCanvas creates a plot bound to the session state.
func NewPlotCanvas(state *app.State) *PlotCanvas {
	pc := &PlotCanvas{
		state: state,
		frame: state.Frame(),
		view:  DefaultView,
	}
	pc.raster = fynecanvas.NewRaster(pc.draw)
	pc.raster.SetMinSize(fyne.NewSize(480, 480))
	pc.ExtendBaseWidget(pc)

	state.On(app.EventDataChanged, func(data interface{}) {
		frame, ok := data.(render.Frame)
		if !ok {
			return
		}
		pc.mu.Lock()
		pc.frame = frame
		pc.mu.Unlock()
		pc.Refresh()
	})
	state.On(app.EventViewReset, func(interface{}) {
		pc.mu.Lock()
		pc.view = DefaultView
		pc.mu.Unlock()
		pc.Refresh()
	})

	return pc
}

func (pc *PlotCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(pc.raster)
}

// Tapped adds a point at the clicked data position. Clicks that map
// outside the data bounds are dropped by the session.
func (pc *PlotCanvas) Tapped(ev *fyne.PointEvent) {
	size := pc.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return
	}
	// Reject positions outside the widget; Fyne can deliver them.
	if ev.Position.X < 0 || ev.Position.Y < 0 ||
		ev.Position.X > size.Width || ev.Position.Y > size.Height {
		return
	}

	p := pixelToData(float64(ev.Position.X), float64(ev.Position.Y),
		pc.currentView(), float64(size.Width), float64(size.Height))
	pc.state.AddPointAt(p.X, p.Y)
}

// Dragged pans the view with the pointer.
func (pc *PlotCanvas) Dragged(ev *fyne.DragEvent) {
	size := pc.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return
	}

	pc.mu.Lock()
	dx := -float64(ev.Dragged.DX) / float64(size.Width) * pc.view.Width
	dy := float64(ev.Dragged.DY) / float64(size.Height) * pc.view.Height
	pc.view = pc.view.Translated(dx, dy)
	pc.mu.Unlock()
	pc.Refresh()
}

func (pc *PlotCanvas) DragEnd() {}

// Scrolled zooms about the cursor position.
func (pc *PlotCanvas) Scrolled(ev *fyne.ScrollEvent) {
	size := pc.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return
	}

	factor := zoomStep
	if ev.Scrolled.DY > 0 {
		factor = 1 / zoomStep
	}
	at := pixelToData(float64(ev.Position.X), float64(ev.Position.Y),
		pc.currentView(), float64(size.Width), float64(size.Height))
	pc.zoomAbout(at, factor)
}

// ZoomIn zooms about the view center. Used by the View menu.
func (pc *PlotCanvas) ZoomIn() {
	pc.zoomAbout(pc.currentView().Center(), 1/zoomStep)
}

// ZoomOut zooms out about the view center.
func (pc *PlotCanvas) ZoomOut() {
	pc.zoomAbout(pc.currentView().Center(), zoomStep)
}

// Snapshot renders the current frame off-screen at the given square pixel
// size, for PNG export. No display is required.
func (pc *PlotCanvas) Snapshot(size int) *image.RGBA {
	pc.mu.Lock()
	frame := pc.frame
	view := pc.view
	pc.mu.Unlock()

	base := image.NewRGBA(image.Rect(0, 0, snapshotBase, snapshotBase))
	renderPlot(base, frame, view)
	if size == snapshotBase {
		return base
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), base, base.Bounds(), xdraw.Over, nil)
	return dst
}

func (pc *PlotCanvas) currentView() geometry.Rect {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.view
}

func (pc *PlotCanvas) zoomAbout(at geometry.Point2D, factor float64) {
	pc.mu.Lock()
	pc.view = clampView(pc.view.ScaledAbout(at, factor))
	pc.mu.Unlock()
	pc.Refresh()
}

// draw is the raster generator.
func (pc *PlotCanvas) draw(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return img
	}

	pc.mu.Lock()
	frame := pc.frame
	view := pc.view
	pc.mu.Unlock()

	renderPlot(img, frame, view)
	return img
}

// renderPlot paints one frame into the image: grid, axes, tick labels,
// the sampled line, then the scatter on top.
func renderPlot(img *image.RGBA, frame render.Frame, view geometry.Rect) {
	b := img.Bounds()
	w := float64(b.Dx())
	h := float64(b.Dy())

	fillBackground(img)

	step := gridStep(view, w)
	for gx := math.Ceil(view.X/step) * step; gx <= view.MaxX(); gx += step {
		px, _ := dataToPixel(geometry.NewPoint2D(gx, view.Y), view, w, h)
		drawVLine(img, int(math.Round(px)), colorGrid, 1)
	}
	for gy := math.Ceil(view.Y/step) * step; gy <= view.MaxY(); gy += step {
		_, py := dataToPixel(geometry.NewPoint2D(0, gy), view, w, h)
		drawHLine(img, int(math.Round(py)), colorGrid, 1)
	}

	origin := geometry.NewPoint2D(0, 0)
	axisPx, axisPy := dataToPixel(origin, view, w, h)
	if origin.X >= view.X && origin.X <= view.MaxX() {
		drawVLine(img, int(math.Round(axisPx)), colorAxis, 2)
	}
	if origin.Y >= view.Y && origin.Y <= view.MaxY() {
		drawHLine(img, int(math.Round(axisPy)), colorAxis, 2)
	}

	drawTickLabels(img, view, step, w, h)

	for i := 1; i < len(frame.LineXs); i++ {
		x0, y0 := dataToPixel(geometry.NewPoint2D(frame.LineXs[i-1], frame.LineYs[i-1]), view, w, h)
		x1, y1 := dataToPixel(geometry.NewPoint2D(frame.LineXs[i], frame.LineYs[i]), view, w, h)
		if !segmentVisible(y0, y1, h) {
			continue
		}
		drawSegment(img, x0, y0, x1, y1, colorLine, 2)
	}

	for _, p := range frame.Points {
		px, py := dataToPixel(p, view, w, h)
		fillCircle(img, int(math.Round(px)), int(math.Round(py)), 4, colorPoint)
	}
}

// segmentVisible reports whether any part of a segment's y range overlaps
// the surface. The x samples always span the view horizontally, but steep
// lines leave it vertically.
func segmentVisible(y0, y1, h float64) bool {
	lo := math.Min(y0, y1)
	hi := math.Max(y0, y1)
	return hi >= 0 && lo <= h
}

// gridStep picks the grid spacing in data units so lines stay readable at
// any zoom level.
func gridStep(view geometry.Rect, w float64) float64 {
	pxPerUnit := w / view.Width
	switch {
	case pxPerUnit >= 12:
		return 1
	case pxPerUnit >= 3:
		return 5
	default:
		return 10
	}
}

// drawTickLabels labels the grid lines along both axes. Labels hug the
// zero axes and clamp to the surface edge when an axis scrolls out of view.
func drawTickLabels(img *image.RGBA, view geometry.Rect, step float64, w, h float64) {
	axisPx, axisPy := dataToPixel(geometry.NewPoint2D(0, 0), view, w, h)

	labelY := clampInt(int(axisPy)+tickLabelPad, tickLabelPad, int(h)-glyphHeight-tickLabelPad)
	for gx := math.Ceil(view.X/step) * step; gx <= view.MaxX(); gx += step {
		if math.Abs(gx) < step/2 {
			continue
		}
		px, _ := dataToPixel(geometry.NewPoint2D(gx, 0), view, w, h)
		label := formatTick(gx)
		drawText(img, label, int(math.Round(px))-textWidth(label)/2, labelY, colorTickLabel)
	}

	for gy := math.Ceil(view.Y/step) * step; gy <= view.MaxY(); gy += step {
		if math.Abs(gy) < step/2 {
			continue
		}
		_, py := dataToPixel(geometry.NewPoint2D(0, gy), view, w, h)
		label := formatTick(gy)
		labelX := clampInt(int(axisPx)-textWidth(label)-tickLabelPad,
			tickLabelPad, int(w)-textWidth(label)-tickLabelPad)
		drawText(img, label, labelX, int(math.Round(py))-glyphHeight/2, colorTickLabel)
	}
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
