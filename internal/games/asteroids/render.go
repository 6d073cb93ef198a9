package asteroids

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/sim"
)

const separator = '─'

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}
	if g.err != nil {
		dst.DrawTextCentered(dst.Height()/2, g.err.Error())
		return
	}

	g.renderHUD(dst)

	field := g.stage.Screen()
	if field.Width() != dst.Width() || field.Height() != dst.Height()-hudRows {
		g.stage.Resize(dst.Width(), max(dst.Height()-hudRows, 1))
		g.stage.DrawSprites()
	}
	dst.Blit(g.stage.Screen(), 0, hudRows)

	g.renderOverlay(dst)
}

// renderHUD draws score, lives and wave above a separator line.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.snap.Score))

	if g.snap.State != sim.StateAttract || g.started {
		lives := fmt.Sprintf("Lives: %s", strings.Repeat("▲", max(g.snap.Lives, 0)))
		dst.DrawTextCentered(0, lives)
		wave := fmt.Sprintf("Wave: %d", g.snap.Level)
		dst.DrawText(dst.Width()-len(wave)-1, 0, wave)
	}

	for x := range dst.Width() {
		dst.Set(x, 1, separator)
	}
	if g.snap.Ship.InHyperspace {
		tag := " HYPERSPACE "
		dst.DrawTextColored((dst.Width()-len(tag))/2, 1, tag, core.ColorShip)
	}
	if g.snap.Saucer.Present {
		tag := " SAUCER "
		if g.snap.Saucer.Size == sim.SaucerSmall {
			tag = " SMALL SAUCER "
		}
		dst.DrawTextColored(2, 1, tag, core.ColorSaucer)
	}
}

// renderOverlay draws state messages over the playfield.
func (g *Game) renderOverlay(dst *core.Screen) {
	if g.mode == ModeDemo {
		dst.DrawTextCentered(dst.Height()-1, "DEMO - autopilot flying")
		if g.snap.State == sim.StateAttract && g.started {
			g.drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  restarting...", g.snap.Score))
		}
		return
	}

	switch {
	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case g.snap.State == sim.StateAttract && g.started:
		g.drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press ENTER to play again", g.snap.Score))
	case g.snap.State == sim.StateAttract:
		g.drawCenteredBox(dst, "A S T E R O I D S", "Press ENTER to start")
	case g.snap.State == sim.StateExploding && g.snap.Lives > 0:
		dst.DrawTextCentered(dst.Height()-1, "Get ready...")
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
