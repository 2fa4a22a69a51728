package ui

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

type cellKind int

const (
	cellRuler cellKind = iota
	cellBorder
	cellPlayer
	cellRoom
)

// mapCell is one column of a map row.
type mapCell struct {
	text string
	kind cellKind
	room *world.Room
}

// roomGlyphs are the map symbols of visited rooms.
var roomGlyphs = [world.RoomTypeCount]string{
	world.RoomEmpty:    ".",
	world.RoomItem:     "+",
	world.RoomPit:      "O",
	world.RoomTrap:     "X",
	world.RoomEnemy:    "E",
	world.RoomTreasure: "*",
	world.RoomSpawn:    "H",
}

// RoomGlyph returns the map symbol for a room, '?' until it is visited.
func RoomGlyph(r *world.Room) string {
	if !r.Visited {
		return "?"
	}
	return roomGlyphs[r.Type()]
}

// mapCells lays out the map top row first. Row and column -2 hold the
// axis rulers, -1 and the far edge hold the border.
func mapCells(d *world.Dungeon, p *entity.Player) [][]mapCell {
	rows := make([][]mapCell, 0, d.Height+3)
	for y := d.Height; y >= -2; y-- {
		row := make([]mapCell, 0, d.Width+3)
		for x := -2; x <= d.Width; x++ {
			pos := world.Vec2{X: x, Y: y}
			var c mapCell
			switch {
			case y < -1:
				c = mapCell{text: " ", kind: cellRuler}
				if x >= 0 && x < d.Width {
					c.text = strconv.Itoa(x)
				}
			case x < -1:
				c = mapCell{text: " ", kind: cellRuler}
				if y >= 0 && y < d.Height {
					c.text = strconv.Itoa(y)
				}
			case y < 0 || y >= d.Height:
				c = mapCell{text: "-", kind: cellBorder}
			case x < 0 || x >= d.Width:
				c = mapCell{text: "|", kind: cellBorder}
			case pos == p.Position.Current:
				c = mapCell{text: string(p.Orientation().Glyph()), kind: cellPlayer}
			default:
				room := d.Room(pos)
				c = mapCell{text: RoomGlyph(room), kind: cellRoom, room: room}
			}
			row = append(row, c)
		}
		rows = append(rows, row)
	}
	return rows
}

// RenderMap draws the explored dungeon as text, highest row first.
//
//	  - - - - -
//	2 | ? ? ? |
//	1 | ? ^ ? |
//	0 | ? H ? |
//	  - - - - -
//	    0 1 2
func RenderMap(d *world.Dungeon, p *entity.Player) []string {
	cells := mapCells(d, p)
	lines := make([]string, len(cells))
	for i, row := range cells {
		texts := make([]string, len(row))
		for j, c := range row {
			texts[j] = c.text
		}
		lines[i] = strings.Join(texts, " ")
	}
	return lines
}

// Renderer handles drawing the map pane to the screen.
type Renderer struct {
	screen *Screen
	rooms  *gamedata.RoomRegistry
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, rooms *gamedata.RoomRegistry) *Renderer {
	return &Renderer{screen: screen, rooms: rooms}
}

// MapSize returns the width and height the map pane needs.
func MapSize(d *world.Dungeon) (width, height int) {
	return 2*d.Width + 5, d.Height + 3
}

// DrawMap draws the map with its top-left corner at (left, top).
func (r *Renderer) DrawMap(left, top int, d *world.Dungeon, p *entity.Player) {
	for i, row := range mapCells(d, p) {
		x := left
		for _, c := range row {
			x += r.screen.DrawText(x, top+i, c.text, r.cellStyle(c)) + 1
		}
	}
}

// cellStyle returns the appropriate style for a map cell.
func (r *Renderer) cellStyle(c mapCell) tcell.Style {
	switch c.kind {
	case cellRuler:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case cellBorder:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	case cellPlayer:
		return tcell.StyleDefault.
			Foreground(tcell.ColorYellow).
			Bold(true)
	case cellRoom:
		if !c.room.Visited {
			return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
		}
		return tcell.StyleDefault.Foreground(r.rooms.Color(c.room.Type()))
	default:
		return tcell.StyleDefault
	}
}

// RenderMessage displays a line of text starting at (x, y) and returns
// the number of columns it used.
func (r *Renderer) RenderMessage(msg string, x, y int, style tcell.Style) int {
	return r.screen.DrawText(x, y, msg, style)
}

// textWidth is the display width of s.
func textWidth(s string) int {
	return runewidth.StringWidth(s)
}
