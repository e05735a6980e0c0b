package game

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Fleet-Skirmish/internal/engine"
)

const (
	logPanelWidth = 400
	logMaxEntries = 120
	logLineHeight = 15
	logCharWidth  = 7 // basicfont.Face7x13 advance
	logPadX       = 14
)

// uiFace is the monospace face used for every on-screen string.
var uiFace = text.NewGoXFace(basicfont.Face7x13)

// LogEntry is a single line in the message panel.
type LogEntry struct {
	Turn    int
	Faction engine.Faction
	Neutral bool // game-wide message, no faction colour
	Message string
}

// MessageLog is a ring buffer of recent messages rendered beside the board.
// The engine's EventLog keeps the full history; this only keeps what fits on screen.
type MessageLog struct {
	entries []LogEntry
	head    int
	count   int
}

// NewMessageLog creates a message log with a fixed capacity.
func NewMessageLog() *MessageLog {
	return &MessageLog{
		entries: make([]LogEntry, logMaxEntries),
	}
}

// Add appends an entry to the log.
func (ml *MessageLog) Add(e LogEntry) {
	ml.entries[ml.head] = e
	ml.head = (ml.head + 1) % logMaxEntries
	if ml.count < logMaxEntries {
		ml.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (ml *MessageLog) Recent() []LogEntry {
	result := make([]LogEntry, ml.count)
	for i := 0; i < ml.count; i++ {
		idx := (ml.head - ml.count + i + logMaxEntries) % logMaxEntries
		result[i] = ml.entries[idx]
	}
	return result
}

// Len returns how many entries are held.
func (ml *MessageLog) Len() int {
	return ml.count
}

// wrapText splits s into lines of at most width characters, breaking on spaces
// where possible.
func wrapText(s string, width int) []string {
	if width <= 0 || len(s) <= width {
		return []string{s}
	}
	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(s) {
		for len(word) > width {
			if cur.Len() > 0 {
				lines = append(lines, cur.String())
				cur.Reset()
			}
			lines = append(lines, word[:width])
			word = word[width:]
		}
		if cur.Len() > 0 && cur.Len()+1+len(word) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

func factionColor(f engine.Faction) color.RGBA {
	if f == engine.FactionGreen {
		return color.RGBA{R: 70, G: 190, B: 90, A: 255}
	}
	return color.RGBA{R: 210, G: 70, B: 70, A: 255}
}

// Draw renders the message panel on the right side of the screen, newest at the bottom.
func (ml *MessageLog) Draw(screen *ebiten.Image, panelX int, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), float32(panelH), color.RGBA{R: 10, G: 14, B: 20, A: 248}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 50, G: 70, B: 90, A: 255}, false)

	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), 20, color.RGBA{R: 20, G: 30, B: 40, A: 255}, false)
	drawText(screen, "ACTION LOG", panelX+8, 4, color.White)
	vector.StrokeLine(screen, float32(panelX), 20, float32(panelX+logPanelWidth), 20, 1.0, color.RGBA{R: 50, G: 80, B: 100, A: 200}, false)

	// Lay out every entry as wrapped lines, then keep the tail that fits.
	type row struct {
		text    string
		dot     bool
		col     color.RGBA
		recent  bool
		neutral bool
	}
	entries := ml.Recent()
	maxChars := (logPanelWidth - logPadX - 8) / logCharWidth
	var rows []row
	for i, e := range entries {
		recent := i >= len(entries)-3
		for j, line := range wrapText(e.Message, maxChars) {
			rows = append(rows, row{
				text:    line,
				dot:     j == 0,
				col:     factionColor(e.Faction),
				recent:  recent,
				neutral: e.Neutral,
			})
		}
	}
	maxVisible := (panelH - 28) / logLineHeight
	if len(rows) > maxVisible {
		rows = rows[len(rows)-maxVisible:]
	}

	y := 26
	for _, r := range rows {
		if r.recent {
			vector.FillRect(screen, float32(panelX+2), float32(y), float32(logPanelWidth-4), float32(logLineHeight), color.RGBA{R: 30, G: 40, B: 55, A: 160}, false)
		}
		if r.dot && !r.neutral {
			vector.FillRect(screen, float32(panelX+5), float32(y+5), 3, 5, r.col, false)
		}
		txt := color.RGBA{R: 170, G: 175, B: 180, A: 255}
		if r.recent {
			txt = color.RGBA{R: 240, G: 240, B: 240, A: 255}
		}
		drawText(screen, r.text, panelX+logPadX, y+1, txt)
		y += logLineHeight
	}
}

// drawText draws s with its top-left corner at (x, y).
func drawText(screen *ebiten.Image, s string, x, y int, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, uiFace, op)
}
