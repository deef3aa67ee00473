// gradedit is an interactive demo of the gradient editor core.
//
// It opens a window with a horizontal gradient strip and draggable stop
// handles:
//
//	drag handle        move stop
//	mouse wheel        zoom (shift+wheel or arrow keys: pan)
//	A                  add a stop under the cursor
//	D                  duplicate the selected stop
//	X / Delete         remove the selected stop
//	S                  save colormap.json next to the binary
package main

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gogradient/gradedit"
)

const (
	screenW = 900
	screenH = 260

	stripX = 40
	stripY = 60
	stripW = 820
	stripH = 80

	handleY      = stripY + stripH + 18
	handleRadius = 7
	hitRadius    = 10
)

// Game drives the editor with mouse and keyboard input and paints its
// state each frame.
type Game struct {
	ed       *gradedit.Editor
	strip    *ebiten.Image
	dirty    bool
	dragging string
	status   string
}

func NewGame() *Game {
	scheme, _ := gradedit.SchemeByName("sunset")
	ed := gradedit.NewEditor(scheme.Map,
		gradedit.WithViewSize(gradedit.Size{Width: stripW, Height: stripH}))
	return &Game{ed: ed, dirty: true}
}

func (g *Game) Update() error {
	g.handleWheel()
	g.handleKeys()
	g.handleMouse()
	return nil
}

func (g *Game) handleWheel() {
	_, dy := ebiten.Wheel()
	if dy == 0 {
		return
	}
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		g.ed.SetPan(g.ed.Pan() + dy*0.05)
	} else {
		g.ed.SetZoom(g.ed.Zoom() + dy*0.25)
	}
	g.dirty = true
}

func (g *Game) handleKeys() {
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.ed.SetPan(g.ed.Pan() - 0.01)
		g.dirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.ed.SetPan(g.ed.Pan() + 0.01)
		g.dirty = true
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		x, _ := ebiten.CursorPosition()
		pos := g.ed.Geometry().GradientPosition(float64(x - stripX))
		stop := g.ed.AddStop(pos)
		if err := g.ed.SelectStop(stop.ID); err != nil {
			g.status = err.Error()
			return
		}
		g.status = fmt.Sprintf("added stop at %.3f", stop.Position)
		g.dirty = true

	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		sel, ok := g.ed.SelectedStop()
		if !ok {
			g.status = "nothing selected"
			return
		}
		dup, err := g.ed.DuplicateStop(sel.ID)
		if err != nil {
			g.status = err.Error()
			return
		}
		if err := g.ed.SelectStop(dup.ID); err != nil {
			g.status = err.Error()
			return
		}
		g.status = fmt.Sprintf("duplicated to %.3f", dup.Position)
		g.dirty = true

	case inpututil.IsKeyJustPressed(ebiten.KeyX) || inpututil.IsKeyJustPressed(ebiten.KeyDelete):
		sel, ok := g.ed.SelectedStop()
		if !ok {
			g.status = "nothing selected"
			return
		}
		if err := g.ed.RemoveStop(sel.ID); err != nil {
			g.status = err.Error()
			return
		}
		g.status = "stop removed"
		g.dirty = true

	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		data, err := gradedit.EncodeColorMap(g.ed.ColorMap())
		if err != nil {
			g.status = err.Error()
			return
		}
		if err := os.WriteFile("colormap.json", data, 0o644); err != nil {
			g.status = err.Error()
			return
		}
		g.status = "saved colormap.json"
	}
}

func (g *Game) handleMouse() {
	x, y := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if id, ok := g.handleAt(x, y); ok {
			g.dragging = id
			if err := g.ed.SelectStop(id); err != nil {
				g.status = err.Error()
			}
		}
	}

	if g.dragging != "" {
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			pos := g.ed.Geometry().GradientPosition(float64(x - stripX))
			if err := g.ed.MoveStop(g.dragging, pos); err != nil {
				g.status = err.Error()
			}
			g.dirty = true
		} else {
			g.dragging = ""
		}
	}
}

// handleAt hit-tests the stop handles, preferring the closest one.
func (g *Game) handleAt(x, y int) (string, bool) {
	if math.Abs(float64(y-handleY)) > hitRadius {
		return "", false
	}
	geom := g.ed.Geometry()
	bestID := ""
	bestDist := math.MaxFloat64
	for _, s := range g.ed.ColorMap().SortedStops() {
		off, ok := geom.HandleOffset(s.Position)
		if !ok {
			continue
		}
		d := math.Abs(float64(x) - (stripX + off.X))
		if d <= hitRadius && d < bestDist {
			bestID = s.ID
			bestDist = d
		}
	}
	return bestID, bestID != ""
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.dirty || g.strip == nil {
		g.strip = ebiten.NewImageFromImage(gradedit.RenderStrip(g.ed.ColorMap(), g.ed.Geometry()))
		g.dirty = false
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(stripX, stripY)
	screen.DrawImage(g.strip, op)

	geom := g.ed.Geometry()
	sel, hasSel := g.ed.SelectedStop()
	for _, s := range g.ed.ColorMap().SortedStops() {
		off, ok := geom.HandleOffset(s.Position)
		if !ok {
			continue
		}
		cx := float32(stripX + off.X)
		cy := float32(handleY)
		vector.DrawFilledCircle(screen, cx, cy, handleRadius, s.Spec.First().NRGBA(), true)
		if s.Spec.IsDual() {
			vector.DrawFilledCircle(screen, cx+3, cy, handleRadius/2, s.Spec.Second().NRGBA(), true)
		}
		if hasSel && sel.ID == s.ID {
			vector.StrokeCircle(screen, cx, cy, handleRadius+3, 2, gradedit.White.NRGBA(), true)
		} else {
			vector.StrokeCircle(screen, cx, cy, handleRadius, 1, gradedit.Black.NRGBA(), true)
		}
	}

	start, end := geom.VisibleRange()
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("zoom %.2f  pan %.2f  window %.3f..%.3f  |  drag handles, wheel zoom, shift+wheel pan, A add, D dup, X del, S save",
			g.ed.Zoom(), g.ed.Pan(), start, end), 8, 8)
	if g.status != "" {
		ebitenutil.DebugPrintAt(screen, g.status, 8, screenH-20)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

func main() {
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("gradedit demo")
	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
