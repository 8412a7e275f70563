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
package editor

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/mattn/go-runewidth"

	goyo "github.com/timburks/goyo/types"
)

// GutterWidth is the width of the line number column: three digits
// followed by three spaces. Buffers with 1000 or more rows widen it
// by one column per extra digit.
const GutterWidth = 6

const gutterPadding = "   "

// width of the line number column for a buffer with rows rows
func gutterWidth(rows int) int {
	digits := len(strconv.Itoa(rows))
	if digits < GutterWidth-len(gutterPadding) {
		digits = GutterWidth - len(gutterPadding)
	}
	return digits + len(gutterPadding)
}

// A FrameLine is one visible row of the buffer.
type FrameLine struct {
	Label string // 1-based line number, right-aligned
	Text  string
	Class LineClass
}

// A Frame is what a View shows for a buffer: the visible lines and
// the cursor position relative to the body origin.
type Frame struct {
	Lines  []FrameLine
	Cursor goyo.Point
	Gutter int // width of every Label
}

// A View shows a buffer in a rectangular body region.
type View struct {
	size goyo.Size
}

func NewView(size goyo.Size) *View {
	return &View{size: size}
}

func (v *View) SetSize(size goyo.Size) {
	v.size = size
}

// Offset returns the index of the first visible row: the smallest
// offset that keeps the cursor row onscreen.
func (v *View) Offset(b *Buffer) int {
	if v.size.Rows <= 0 {
		return 0
	}
	if offset := b.Cursor().Row - v.size.Rows + 1; offset > 0 {
		return offset
	}
	return 0
}

// Layout computes the frame for b. It depends only on the buffer
// state and the view size.
func (v *View) Layout(b *Buffer) Frame {
	offset := v.Offset(b)
	frame := Frame{Gutter: gutterWidth(b.RowCount())}
	digits := frame.Gutter - len(gutterPadding)
	for i := offset; i < b.RowCount() && i-offset < v.size.Rows; i++ {
		text := b.Line(i)
		frame.Lines = append(frame.Lines, FrameLine{
			Label: fmt.Sprintf("%*d", digits, i+1) + gutterPadding,
			Text:  text,
			Class: Classify(text),
		})
	}
	cursor := b.Cursor()
	frame.Cursor = goyo.Point{Row: cursor.Row - offset, Col: frame.Gutter + cursor.Col}
	return frame
}

// Render draws b into display with its top left corner at origin and
// returns the frame that was drawn.
func (v *View) Render(b *Buffer, origin goyo.Point, display goyo.Display) Frame {
	frame := v.Layout(b)
	for i, line := range frame.Lines {
		col := v.drawText(display, origin, origin.Col, origin.Row+i, line.Label, goyo.ColorLineNumber)
		v.drawText(display, origin, col, origin.Row+i, line.Text, line.Class.Color())
	}
	return frame
}

// draw text starting at col, clipped to the right edge of the view
func (v *View) drawText(display goyo.Display, origin goyo.Point, col, row int, text string, color goyo.Color) int {
	right := origin.Col + v.size.Cols
	for _, c := range text {
		if unicode.IsControl(c) {
			c = ' '
		}
		if col+runewidth.RuneWidth(c) > right {
			break
		}
		col += display.SetCell(col, row, c, color, goyo.ColorDefault)
	}
	return col
}
