// Package preview draws glow layouts on a terminal screen, one character per
// grid cell, so zone authors can eyeball borders without starting the game.
package preview

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/udisondev/zoneglow/internal/border"
	"github.com/udisondev/zoneglow/internal/layout"
)

// Styles per corner type.
var (
	styleTitle    = tcell.StyleDefault.Bold(true)
	styleStraight = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleCorner   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleEndCap   = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
)

// Glyph returns the character drawn for a tile of the given corner type and rotation.
// Corners are drawn by their outgoing direction on a north-up map.
func Glyph(corner border.CornerType, rotation int) rune {
	switch corner {
	case border.EndCap:
		return '•'
	case border.InsideCorner:
		// Поворот налево: из входящего направления в исходящее.
		switch rotation {
		case 0:
			return '└'
		case 90:
			return '┘'
		case 180:
			return '┐'
		default:
			return '┌'
		}
	case border.OutsideCorner:
		switch rotation {
		case 0:
			return '┌'
		case 90:
			return '└'
		case 180:
			return '┘'
		default:
			return '┐'
		}
	default:
		if rotation == 90 || rotation == 270 {
			return '│'
		}
		return '─'
	}
}

func styleFor(corner border.CornerType) tcell.Style {
	switch corner {
	case border.InsideCorner, border.OutsideCorner:
		return styleCorner
	case border.EndCap:
		return styleEndCap
	default:
		return styleStraight
	}
}

// Render clears screen and draws l with its title on the first row.
// The map is north-up: larger Z is drawn higher. Cells outside the screen are clipped.
func Render(screen tcell.Screen, l layout.Layout) {
	screen.Clear()

	s := l.Summary()
	title := fmt.Sprintf("%s  nodes=%d straight=%d inside=%d outside=%d endcap=%d",
		l.ZoneID, s.Nodes, s.Straight, s.InsideCorner, s.OutsideCorner, s.EndCap)
	drawText(screen, 0, 0, title, styleTitle)

	minCell, maxCell, ok := l.Bounds()
	if !ok {
		drawText(screen, 0, 1, "(empty layout)", tcell.StyleDefault)
		screen.Show()
		return
	}

	width, height := screen.Size()
	for _, n := range l.Nodes {
		x := int(n.Cell.X - minCell.X)
		y := 1 + int(maxCell.Z-n.Cell.Z)
		if x >= width || y >= height {
			continue
		}
		screen.SetContent(x, y, Glyph(n.Corner, n.Rotation), nil, styleFor(n.Corner))
	}

	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	width, _ := screen.Size()
	for _, r := range text {
		if x >= width {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// Show opens the terminal, renders l and waits for any key press.
func Show(l layout.Layout) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	Render(screen, l)
	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventKey:
			return nil
		case *tcell.EventResize:
			screen.Sync()
			Render(screen, l)
		case nil:
			return nil
		}
	}
}
