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
	"strings"

	goyo "github.com/timburks/goyo/types"
)

// A Buffer holds the text being edited and the cursor.
// It always has at least one row, and the cursor always
// addresses a valid insertion point in that row.
type Buffer struct {
	rows   []*Row
	cursor goyo.Point
}

func NewBuffer() *Buffer {
	return &Buffer{rows: []*Row{NewRow("")}}
}

// NewBufferFromLines creates a buffer holding lines with the cursor
// clamped into range.
func NewBufferFromLines(lines []string, cursor goyo.Point) *Buffer {
	b := &Buffer{rows: make([]*Row, 0, len(lines))}
	for _, line := range lines {
		b.rows = append(b.rows, NewRow(line))
	}
	if len(b.rows) == 0 {
		b.rows = append(b.rows, NewRow(""))
	}
	b.cursor.Row = clamp(cursor.Row, 0, len(b.rows)-1)
	b.cursor.Col = clamp(cursor.Col, 0, b.rows[b.cursor.Row].Length())
	return b
}

func (b *Buffer) Cursor() goyo.Point {
	return b.cursor
}

func (b *Buffer) RowCount() int {
	return len(b.rows)
}

func (b *Buffer) RowLength(i int) int {
	if i < 0 || i >= len(b.rows) {
		return 0
	}
	return b.rows[i].Length()
}

func (b *Buffer) Line(i int) string {
	if i < 0 || i >= len(b.rows) {
		return ""
	}
	return b.rows[i].String()
}

func (b *Buffer) Lines() []string {
	lines := make([]string, len(b.rows))
	for i, row := range b.rows {
		lines[i] = row.String()
	}
	return lines
}

func (b *Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}

// Validate reports the first broken invariant, if any.
func (b *Buffer) Validate() error {
	if len(b.rows) == 0 {
		return fmt.Errorf("buffer has no rows")
	}
	if b.cursor.Row < 0 || b.cursor.Row >= len(b.rows) {
		return fmt.Errorf("cursor row %d outside [0, %d)", b.cursor.Row, len(b.rows))
	}
	if n := b.rows[b.cursor.Row].Length(); b.cursor.Col < 0 || b.cursor.Col > n {
		return fmt.Errorf("cursor column %d outside [0, %d] on row %d", b.cursor.Col, n, b.cursor.Row)
	}
	return nil
}

func (b *Buffer) currentRow() *Row {
	return b.rows[b.cursor.Row]
}

// InsertChar inserts c at the cursor and moves past it.
func (b *Buffer) InsertChar(c rune) {
	b.currentRow().InsertChar(b.cursor.Col, c)
	b.cursor.Col++
}

// DeleteBackward removes the character before the cursor. At the start of
// a row it joins the row onto the end of the previous one.
func (b *Buffer) DeleteBackward() {
	if b.cursor.Col > 0 {
		b.cursor.Col--
		b.currentRow().DeleteChar(b.cursor.Col)
		return
	}
	if b.cursor.Row == 0 {
		return
	}
	previous := b.rows[b.cursor.Row-1]
	joinPoint := previous.Length()
	previous.Join(b.currentRow())
	b.rows = append(b.rows[:b.cursor.Row], b.rows[b.cursor.Row+1:]...)
	b.cursor.Row--
	b.cursor.Col = joinPoint
}

// SplitLine breaks the current row at the cursor and moves the cursor
// to the start of the new row.
func (b *Buffer) SplitLine() {
	after := b.currentRow().Split(b.cursor.Col)
	row := b.cursor.Row + 1
	b.rows = append(b.rows, nil)
	copy(b.rows[row+1:], b.rows[row:])
	b.rows[row] = after
	b.cursor = goyo.Point{Row: row, Col: 0}
}

func (b *Buffer) MoveLeft() {
	if b.cursor.Col > 0 {
		b.cursor.Col--
	}
}

func (b *Buffer) MoveRight() {
	if b.cursor.Col < b.currentRow().Length() {
		b.cursor.Col++
	}
}

// MoveUp and MoveDown pull the column back into the new row.
// No goal column survives a run of vertical moves.
func (b *Buffer) MoveUp() {
	if b.cursor.Row > 0 {
		b.cursor.Row--
		b.keepCursorInRow()
	}
}

func (b *Buffer) MoveDown() {
	if b.cursor.Row < len(b.rows)-1 {
		b.cursor.Row++
		b.keepCursorInRow()
	}
}

func (b *Buffer) keepCursorInRow() {
	if n := b.currentRow().Length(); b.cursor.Col > n {
		b.cursor.Col = n
	}
}

// Apply performs a decoded command. Quit and ignored commands do nothing.
func (b *Buffer) Apply(cmd goyo.Command) {
	switch cmd.Kind {
	case goyo.CommandCharacter:
		b.InsertChar(cmd.Ch)
	case goyo.CommandBackwardDelete:
		b.DeleteBackward()
	case goyo.CommandSplitLine:
		b.SplitLine()
	case goyo.CommandMoveLeft:
		b.MoveLeft()
	case goyo.CommandMoveRight:
		b.MoveRight()
	case goyo.CommandMoveUp:
		b.MoveUp()
	case goyo.CommandMoveDown:
		b.MoveDown()
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
