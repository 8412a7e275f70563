//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package screen

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	"github.com/timburks/goyo/commander"
	"github.com/timburks/goyo/editor"
	goyo "github.com/timburks/goyo/types"
)

const (
	titleText    = "御行  scratch"
	encodingText = "UTF-8"
	modeText     = "EDIT MODE"
)

// Alt chords arrive as one key event with ModAlt set, so a lone
// Esc is the only event that decodes to KeyEsc. termbox drops
// InputAlt when InputEsc is also set.
const inputMode = termbox.InputAlt

// The Screen draws the state of a Commander's buffer.
type Screen struct {
	size goyo.Size // screen size
	view *editor.View
}

func NewScreen() (*Screen, error) {
	// Open the terminal.
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("initializing terminal: %w", err)
	}
	termbox.SetInputMode(inputMode)
	termbox.SetOutputMode(termbox.Output256)
	return &Screen{view: editor.NewView(goyo.Size{})}, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Size() goyo.Size {
	return s.size
}

func (s *Screen) SetCell(col, row int, c rune, fg, bg goyo.Color) int {
	termbox.SetCell(col, row, c, termbox.Attribute(fg), termbox.Attribute(bg))
	return runewidth.RuneWidth(c)
}

func (s *Screen) Render(c *commander.Commander) error {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return fmt.Errorf("clearing screen: %w", err)
	}
	s.size.Cols, s.size.Rows = termbox.Size()
	b := c.Buffer()

	// title bar, body, status bar
	DrawBar(s, 0, titleText, encodingText)
	body := bodySize(s.size)
	s.view.SetSize(body)
	origin := goyo.Point{Row: 1, Col: 0}
	frame := s.view.Render(b, origin, s)
	cursor := b.Cursor()
	DrawBar(s, s.size.Rows-1, modeText, fmt.Sprintf("%d/%d", cursor.Row+1, b.RowCount()))

	if body.Rows > 0 {
		termbox.SetCursor(origin.Col+frame.Cursor.Col, origin.Row+frame.Cursor.Row)
	} else {
		termbox.HideCursor()
	}
	if err := termbox.Flush(); err != nil {
		return fmt.Errorf("flushing screen: %w", err)
	}
	return nil
}

// the body is everything between the title and status bars
func bodySize(size goyo.Size) goyo.Size {
	body := size
	body.Rows -= 2
	if body.Rows < 0 {
		body.Rows = 0
	}
	return body
}

// DrawBar fills row with the bar color, with left at the left edge and
// right against the right edge. Left wins when they overlap.
func DrawBar(d goyo.Display, row int, left, right string) {
	width := d.Size().Cols
	if row < 0 || row >= d.Size().Rows {
		return
	}
	for x := 0; x < width; x++ {
		d.SetCell(x, row, ' ', goyo.ColorBarText, goyo.ColorBar)
	}
	leftEnd := drawString(d, 0, row, left, width)
	if start := width - runewidth.StringWidth(right); start >= leftEnd {
		drawString(d, start, row, right, width)
	}
}

func drawString(d goyo.Display, x, row int, text string, width int) int {
	for _, ch := range text {
		if x+runewidth.RuneWidth(ch) > width {
			break
		}
		x += d.SetCell(x, row, ch, goyo.ColorBarText, goyo.ColorBar)
	}
	return x
}

// GetNextEvent blocks until the terminal reports an event.
func (s *Screen) GetNextEvent() goyo.Event {
	return translate(termbox.PollEvent())
}

func translate(event termbox.Event) goyo.Event {
	switch event.Type {
	case termbox.EventKey:
		e := goyo.Event{Type: goyo.EventKey, Ch: event.Ch}
		if event.Ch == 0 {
			e.Key = key(event.Key)
		}
		if event.Mod&termbox.ModAlt != 0 {
			e.Mod |= goyo.ModAlt
		}
		return e
	case termbox.EventResize:
		return goyo.Event{Type: goyo.EventResize}
	case termbox.EventError:
		return goyo.Event{Type: goyo.EventError, Err: event.Err}
	default:
		return goyo.Event{Type: goyo.EventOther}
	}
}

func key(k termbox.Key) goyo.Key {
	switch k {
	case termbox.KeyArrowDown:
		return goyo.KeyArrowDown
	case termbox.KeyArrowLeft:
		return goyo.KeyArrowLeft
	case termbox.KeyArrowRight:
		return goyo.KeyArrowRight
	case termbox.KeyArrowUp:
		return goyo.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return goyo.KeyBackspace
	case termbox.KeyCtrlC:
		return goyo.KeyCtrlC
	case termbox.KeyEnter:
		return goyo.KeyEnter
	case termbox.KeyEsc:
		return goyo.KeyEsc
	case termbox.KeySpace:
		return goyo.KeySpace
	case termbox.KeyTab:
		return goyo.KeyTab
	default:
		return goyo.KeyUnsupported
	}
}
