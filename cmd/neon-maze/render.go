package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/neon-maze/core"
	"github.com/lixenwraith/neon-maze/engine"
	"github.com/lixenwraith/neon-maze/game"
	"github.com/lixenwraith/neon-maze/maze"
)

var (
	styleWall    = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleFloor   = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleEnemy   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	stylePickup  = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	styleCollect = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleGoal    = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleTrail   = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	styleSpark   = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleBanner  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// hudRows is the screen space reserved above the maze view.
const hudRows = 2

func (f *frontend) render() {
	f.screen.Clear()

	w := f.ctx.World()
	mazeRes := engine.MustGetResource[*engine.MazeResource](w.Resources)
	snap := f.ctx.HUD()
	width, height := f.screen.Size()

	if mazeRes.Grid != nil {
		offX, offY := f.viewOffset(mazeRes.Grid, width, height-hudRows)

		f.drawGrid(mazeRes, offX, offY, width, height)
		f.drawEntities(w, offX, offY, width, height)
	}

	f.drawHUD(snap, width)
	f.screen.Show()
}

// viewOffset returns the grid coordinate drawn at the view's top-left.
// Centered mode follows the player; full view pins the grid origin.
func (f *frontend) viewOffset(grid *maze.Grid, viewW, viewH int) (int, int) {
	if f.fullView {
		return 0, 0
	}

	player := f.ctx.Player()
	pos, ok := f.ctx.World().Positions.Get(player)
	if !ok {
		return 0, 0
	}
	cell := maze.WorldToGrid(pos.Vec3)
	return cell.X - viewW/2, cell.Y - viewH/2
}

func (f *frontend) drawGrid(mazeRes *engine.MazeResource, offX, offY, width, height int) {
	grid := mazeRes.Grid
	for sy := hudRows; sy < height; sy++ {
		gy := offY + sy - hudRows
		for sx := 0; sx < width; sx++ {
			gx := offX + sx
			if !grid.InBounds(gx, gy) || !mazeRes.IsVisited(gx, gy) {
				continue // fog
			}
			if grid.IsWall(gx, gy) {
				f.screen.SetContent(sx, sy, '█', nil, styleWall)
			} else {
				f.screen.SetContent(sx, sy, '·', nil, styleFloor)
			}
		}
	}
}

func (f *frontend) drawEntities(w *engine.World, offX, offY, width, height int) {
	put := func(x, z float64, ch rune, style tcell.Style) {
		cell := maze.WorldToGrid(core.Vec3{X: x, Z: z})
		sx := cell.X - offX
		sy := cell.Y - offY + hudRows
		if sx >= 0 && sx < width && sy >= hudRows && sy < height {
			f.screen.SetContent(sx, sy, ch, nil, style)
		}
	}

	for _, e := range w.Trails.All() {
		if pos, ok := w.Positions.Get(e); ok {
			put(pos.X, pos.Z, '·', styleTrail)
		}
	}
	for _, e := range w.Collectibles.All() {
		if pos, ok := w.Positions.Get(e); ok {
			put(pos.X, pos.Z, '*', styleCollect)
		}
	}
	for _, e := range w.PowerUps.All() {
		if pos, ok := w.Positions.Get(e); ok {
			put(pos.X, pos.Z, '?', stylePickup)
		}
	}
	for _, e := range w.Goals.All() {
		if pos, ok := w.Positions.Get(e); ok {
			put(pos.X, pos.Z, 'X', styleGoal)
		}
	}
	for _, e := range w.Enemies.All() {
		if pos, ok := w.Positions.Get(e); ok {
			put(pos.X, pos.Z, 'W', styleEnemy)
		}
	}
	for _, e := range w.Particles.All() {
		p, ok := w.Particles.Get(e)
		if !ok || !p.Active {
			continue
		}
		if pos, ok := w.Positions.Get(e); ok {
			put(pos.X, pos.Z, '+', styleSpark)
		}
	}

	player := f.ctx.Player()
	if pos, ok := w.Positions.Get(player); ok {
		ch := '@'
		if pos.Y > 0.1 {
			ch = 'A' // airborne
		}
		put(pos.X, pos.Z, ch, stylePlayer)
	}
}

func (f *frontend) drawHUD(snap game.HUDSnapshot, width int) {
	flags := []byte("      ")
	if snap.BoostActive {
		flags[0] = 'B'
	}
	if snap.SpeedBoost {
		flags[1] = 'S'
	}
	if snap.Shield {
		flags[2] = 'I'
	}
	if snap.Multiplier {
		flags[3] = 'x'
	}
	if f.muted {
		flags[5] = 'M'
	}
	line := fmt.Sprintf("SCORE %-8d LVL %-3d HP %-4d EN %-5.1f T %4ds @%d,%d %s",
		snap.Score, snap.Level, snap.Health, snap.Energy,
		int(snap.Elapsed.Seconds()), snap.PlayerCell.X, snap.PlayerCell.Y, flags)
	drawText(f.screen, 0, 0, line, styleHUD)

	if banner := phaseLabel(snap.Phase); banner != "" {
		drawText(f.screen, (width-len(banner))/2, 1, banner, styleBanner)
	}
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}
