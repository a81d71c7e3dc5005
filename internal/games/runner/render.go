package runner

import (
	"fmt"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner/sim"
)

const hudHeight = 2

// panelWidth returns the width of one grid panel including its border.
func (g *Game) panelWidth() int {
	return sim.GridSize*g.cellWidth() + 2
}

// panelHeight returns the height of one grid panel including its border.
func (g *Game) panelHeight() int {
	return sim.GridSize*g.cellHeight() + 2
}

func (g *Game) cellWidth() int {
	if g.cfg.Render.CellWidth > 0 {
		return g.cfg.Render.CellWidth
	}
	return 4
}

func (g *Game) cellHeight() int {
	if g.cfg.Render.CellHeight > 0 {
		return g.cfg.Render.CellHeight
	}
	return 2
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.loadErr != nil {
		g.renderOverlay(dst, "Failed to start", g.loadErr.Error())
		return
	}
	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderPanels(dst)
	g.renderHelp(dst)

	switch {
	case g.session.Finished() && g.session.Outcome() == sim.OutcomeCompleted:
		g.renderOverlay(dst, "Course complete!", fmt.Sprintf("Total reward: %d", g.session.TotalReward()))
	case g.session.Finished():
		g.renderOverlay(dst, "Crashed!", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	var hud string
	if g.session != nil {
		hud = fmt.Sprintf(" %s | Reward: %d  Moves: %d/%d",
			g.Title(), g.session.TotalReward(), g.session.Moves(), len(g.course.Slices))
		if g.hasLast {
			hud += fmt.Sprintf("  Last: %s %+d", g.lastAction, g.lastReward)
		}
	} else {
		hud = " " + g.Title()
	}

	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderPanels draws the resolution grid (the slice the next move resolves
// against) and the lookahead grid side by side. During the scroll animation
// the lookahead panel slides toward the resolution panel's slot.
func (g *Game) renderPanels(dst *core.Screen) {
	pw := g.panelWidth()
	gap := 4
	totalW := 2*pw + gap
	left := (dst.Width() - totalW) / 2
	top := hudHeight + 1

	window := sim.Window{}
	var pos sim.Position
	active := !g.session.Finished()
	if active {
		window = g.session.State().Window()
		pos = g.session.State().Position()
	}

	// Lookahead slides left toward the resolution slot as the animation
	// counts down. Presentation only.
	slide := 0
	if g.scrollAnim > 0 && g.cfg.Render.ScrollTicks > 0 {
		slide = (pw + gap) * g.scrollAnim / g.cfg.Render.ScrollTicks
	}

	g.renderGridPanel(dst, left, top, window.Resolution, "NOW")
	g.renderGridPanel(dst, left+pw+gap-slide, top, window.Lookahead, "NEXT")

	if active {
		g.renderPlayer(dst, left, top, pos)
	}
}

// renderGridPanel draws one 3x3 slice with a border and label.
func (g *Game) renderGridPanel(dst *core.Screen, x, y int, slot sim.Slot, label string) {
	pw := g.panelWidth()
	ph := g.panelHeight()

	dst.DrawText(x+1, y, label)
	dst.DrawBox(core.NewRect(x, y+1, pw, ph))

	if !slot.Present {
		dst.DrawTextColored(x+2, y+1+ph/2, "finish", core.ColorBrightGreen)
		return
	}

	cw, ch := g.cellWidth(), g.cellHeight()
	for row := 0; row < sim.GridSize; row++ {
		for col := 0; col < sim.GridSize; col++ {
			cx := x + 1 + col*cw
			cy := y + 2 + row*ch
			if slot.Grid.At(row, col) != 0 {
				for dy := 0; dy < ch; dy++ {
					for dx := 0; dx < cw; dx++ {
						dst.SetColored(cx+dx, cy+dy, '█', core.ColorRed)
					}
				}
			} else {
				dst.SetColored(cx+cw/2, cy+ch/2, '·', core.ColorGray)
			}
		}
	}
}

// renderPlayer draws the player marker inside the resolution panel.
func (g *Game) renderPlayer(dst *core.Screen, panelX, panelY int, pos sim.Position) {
	cw, ch := g.cellWidth(), g.cellHeight()
	px := panelX + 1 + pos.Col*cw + cw/2
	py := panelY + 2 + pos.Row*ch + ch/2
	dst.SetColored(px, py, '@', core.ColorBrightYellow)
}

// renderHelp draws the key hints under the panels.
func (g *Game) renderHelp(dst *core.Screen) {
	help := "←/→ lane  ↑ jump  ↓ duck  enter stay  p pause  q quit"
	dst.DrawTextCentered(dst.Height()-1, help)
}

// renderOverlay draws a centered boxed message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
