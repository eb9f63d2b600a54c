package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

var (
	styleText   = tcell.StyleDefault
	styleTitle  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleHead   = tcell.StyleDefault.Foreground(tcell.ColorLime)
	styleBody   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleFood   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleAlert  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// draw renders the active screen
func (a *App) draw() {
	a.screen.Clear()

	switch a.current {
	case ScreenTitle:
		a.drawTitle()
	case ScreenBoard:
		a.drawBoard()
	case ScreenGameOver:
		a.drawGameOver()
	}

	a.screen.Show()
}

func (a *App) drawTitle() {
	w, h := a.screen.Size()
	y := h/2 - 3

	a.drawCentered(w, y, constants.TitleText, styleTitle)
	a.drawCentered(w, y+1, constants.TitleCredit, styleDim)
	a.drawCentered(w, y+3, fmt.Sprintf(constants.HighScoreLabel, a.highScore), styleText)
	a.drawCentered(w, y+4, a.musicLabel(), styleDim)
	a.drawCentered(w, y+6, constants.TitlePlayHint, styleText)
}

func (a *App) drawBoard() {
	size := a.cfg.BoardSize
	left := constants.BoardOriginX
	top := constants.BoardOriginY
	right := left + size*constants.CellWidth + 1
	bottom := top + size + 1

	status := fmt.Sprintf(constants.ScoreLabel, a.state.Score())
	a.drawText(left, 1, status, styleText)
	a.drawText(right-len([]rune(a.musicLabel()))+1, 1, a.musicLabel(), styleDim)
	if a.frames != nil {
		if n := a.frames.Count(); n > 0 {
			a.drawText(left+len(status)+3, 1, fmt.Sprintf(constants.SpectatorsLabel, n), styleDim)
		}
	}

	a.drawFrame(left, top, right, bottom)

	// Food first so a head on the same cell stays visible
	a.drawCell(a.state.Food, constants.GlyphFood, styleFood)
	for i := len(a.state.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			a.drawCell(a.state.Snake[i], constants.GlyphSnakeHead, styleHead)
		} else {
			a.drawCell(a.state.Snake[i], constants.GlyphSnakeBody, styleBody)
		}
	}

	a.drawText(left, bottom+1, constants.BoardHint, styleDim)
}

func (a *App) drawGameOver() {
	w, h := a.screen.Size()
	y := h/2 - 3

	a.drawCentered(w, y, constants.GameOverText, styleAlert)
	a.drawCentered(w, y+2, fmt.Sprintf(constants.YourScoreLabel, a.lastScore), styleText)
	a.drawCentered(w, y+3, fmt.Sprintf(constants.HighScoreLabel, a.highScore), styleText)
	a.drawCentered(w, y+5, constants.GameOverHint, styleDim)
}

// drawCell fills one board cell, CellWidth columns wide
func (a *App) drawCell(p core.Position, glyph rune, style tcell.Style) {
	if !p.InBounds(a.cfg.BoardSize) {
		return
	}
	x := constants.BoardOriginX + 1 + p.X*constants.CellWidth
	y := constants.BoardOriginY + 1 + p.Y
	for i := 0; i < constants.CellWidth; i++ {
		a.screen.SetContent(x+i, y, glyph, nil, style)
	}
}

func (a *App) drawFrame(left, top, right, bottom int) {
	for x := left + 1; x < right; x++ {
		a.screen.SetContent(x, top, constants.GlyphBorderH, nil, styleBorder)
		a.screen.SetContent(x, bottom, constants.GlyphBorderH, nil, styleBorder)
	}
	for y := top + 1; y < bottom; y++ {
		a.screen.SetContent(left, y, constants.GlyphBorderV, nil, styleBorder)
		a.screen.SetContent(right, y, constants.GlyphBorderV, nil, styleBorder)
	}
	a.screen.SetContent(left, top, constants.GlyphCornerTL, nil, styleBorder)
	a.screen.SetContent(right, top, constants.GlyphCornerTR, nil, styleBorder)
	a.screen.SetContent(left, bottom, constants.GlyphCornerBL, nil, styleBorder)
	a.screen.SetContent(right, bottom, constants.GlyphCornerBR, nil, styleBorder)
}

func (a *App) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (a *App) drawCentered(width, y int, text string, style tcell.Style) {
	x := max((width-len([]rune(text)))/2, 0)
	a.drawText(x, y, text, style)
}

func (a *App) musicLabel() string {
	if a.music.IsPlaying() {
		return constants.MusicOnLabel
	}
	return constants.MusicOffLabel
}
