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
	"reflect"
	"testing"

	goyo "github.com/timburks/goyo/types"
)

func setup(t *testing.T, lines []string, col, row int) *Buffer {
	t.Helper()
	b := NewBufferFromLines(lines, goyo.Point{Row: row, Col: col})
	if cursor := b.Cursor(); cursor.Row != row || cursor.Col != col {
		t.Fatalf("Setup cursor was clamped to %+v", cursor)
	}
	return b
}

func final(t *testing.T, b *Buffer, lines []string, col, row int) {
	t.Helper()
	if err := b.Validate(); err != nil {
		t.Errorf("Invalid buffer: %v", err)
	}
	if got := b.Lines(); !reflect.DeepEqual(got, lines) {
		t.Errorf("Unexpected lines: %q, expected %q", got, lines)
	}
	if cursor := b.Cursor(); cursor != (goyo.Point{Row: row, Col: col}) {
		t.Errorf("Unexpected cursor: (%d,%d), expected (%d,%d)", cursor.Col, cursor.Row, col, row)
	}
}

func TestNewBuffer(t *testing.T) {
	b := NewBuffer()
	final(t, b, []string{""}, 0, 0)
	if b.RowCount() != 1 {
		t.Errorf("Invalid row count: %d", b.RowCount())
	}
}

func TestNewBufferFromLinesClampsCursor(t *testing.T) {
	b := NewBufferFromLines(nil, goyo.Point{Row: 3, Col: 3})
	final(t, b, []string{""}, 0, 0)

	b = NewBufferFromLines([]string{"abc", "de"}, goyo.Point{Row: 9, Col: 9})
	final(t, b, []string{"abc", "de"}, 2, 1)

	b = NewBufferFromLines([]string{"abc"}, goyo.Point{Row: -1, Col: -1})
	final(t, b, []string{"abc"}, 0, 0)
}

func TestInsertChar(t *testing.T) {
	b := setup(t, []string{"ac"}, 1, 0)
	b.InsertChar('b')
	final(t, b, []string{"abc"}, 2, 0)
	b.InsertChar('d')
	final(t, b, []string{"abdc"}, 3, 0)

	b = NewBuffer()
	for _, c := range "hello, 世界" {
		b.InsertChar(c)
	}
	final(t, b, []string{"hello, 世界"}, 9, 0)
}

func TestDeleteBackward(t *testing.T) {
	b := setup(t, []string{"abc"}, 2, 0)
	b.DeleteBackward()
	final(t, b, []string{"ac"}, 1, 0)
	b.DeleteBackward()
	final(t, b, []string{"c"}, 0, 0)
	// nothing before the first position
	b.DeleteBackward()
	final(t, b, []string{"c"}, 0, 0)
}

func TestDeleteBackwardJoinsLines(t *testing.T) {
	b := setup(t, []string{"ab", "cd"}, 0, 1)
	b.DeleteBackward()
	final(t, b, []string{"abcd"}, 2, 0)

	b = setup(t, []string{"one", "", "three"}, 0, 2)
	b.DeleteBackward()
	final(t, b, []string{"one", "three"}, 0, 1)
	b.DeleteBackward()
	final(t, b, []string{"onethree"}, 3, 0)
}

func TestSplitLine(t *testing.T) {
	b := setup(t, []string{"abc"}, 3, 0)
	b.SplitLine()
	final(t, b, []string{"abc", ""}, 0, 1)

	b = setup(t, []string{"abc", "xyz"}, 1, 0)
	b.SplitLine()
	final(t, b, []string{"a", "bc", "xyz"}, 0, 1)

	b = setup(t, []string{"abc"}, 0, 0)
	b.SplitLine()
	final(t, b, []string{"", "abc"}, 0, 1)
}

func TestSplitLineDoesNotShareStorage(t *testing.T) {
	b := setup(t, []string{"abcdef"}, 3, 0)
	b.SplitLine()
	b.MoveUp()
	b.MoveRight()
	b.MoveRight()
	b.MoveRight()
	b.InsertChar('X')
	b.InsertChar('Y')
	final(t, b, []string{"abcXY", "def"}, 5, 0)
}

func TestHorizontalMotion(t *testing.T) {
	b := setup(t, []string{"ab", "cd"}, 0, 1)
	for i := 0; i < 3; i++ {
		b.MoveLeft()
		final(t, b, []string{"ab", "cd"}, 0, 1)
	}
	b.MoveRight()
	final(t, b, []string{"ab", "cd"}, 1, 1)
	for i := 0; i < 3; i++ {
		b.MoveRight()
		final(t, b, []string{"ab", "cd"}, 2, 1)
	}
}

func TestVerticalMotion(t *testing.T) {
	b := setup(t, []string{"", ""}, 0, 1)
	b.MoveUp()
	final(t, b, []string{"", ""}, 0, 0)
	b.MoveUp()
	final(t, b, []string{"", ""}, 0, 0)
	b.MoveDown()
	final(t, b, []string{"", ""}, 0, 1)
	b.MoveDown()
	final(t, b, []string{"", ""}, 0, 1)
}

func TestVerticalMotionClampsColumn(t *testing.T) {
	b := setup(t, []string{"x", "abc"}, 1, 0)
	b.MoveDown()
	final(t, b, []string{"x", "abc"}, 1, 1)

	b = setup(t, []string{"abcdef", "ab", "abcdef"}, 5, 0)
	b.MoveDown()
	final(t, b, []string{"abcdef", "ab", "abcdef"}, 2, 1)
	// the column is not remembered across vertical moves
	b.MoveDown()
	final(t, b, []string{"abcdef", "ab", "abcdef"}, 2, 2)
	b.MoveUp()
	b.MoveUp()
	final(t, b, []string{"abcdef", "ab", "abcdef"}, 2, 0)
}

func TestSplitThenDeleteRestores(t *testing.T) {
	for col := 0; col <= 5; col++ {
		b := setup(t, []string{"first", "hello", "last"}, col, 1)
		b.SplitLine()
		b.DeleteBackward()
		final(t, b, []string{"first", "hello", "last"}, col, 1)
	}
}

func TestInsertThenDeleteRestores(t *testing.T) {
	for col := 0; col <= 5; col++ {
		b := setup(t, []string{"hello"}, col, 0)
		b.InsertChar('!')
		b.DeleteBackward()
		final(t, b, []string{"hello"}, col, 0)
	}
}

func TestApply(t *testing.T) {
	b := NewBuffer()
	commands := []goyo.Command{
		{Kind: goyo.CommandCharacter, Ch: 'a'},
		{Kind: goyo.CommandCharacter, Ch: 'b'},
		{Kind: goyo.CommandSplitLine},
		{Kind: goyo.CommandCharacter, Ch: 'c'},
		{Kind: goyo.CommandMoveUp},
		{Kind: goyo.CommandMoveRight},
		{Kind: goyo.CommandBackwardDelete},
		{Kind: goyo.CommandMoveDown},
		{Kind: goyo.CommandMoveRight},
		{Kind: goyo.CommandQuit},
		{Kind: goyo.CommandIgnored},
	}
	for _, cmd := range commands {
		b.Apply(cmd)
	}
	final(t, b, []string{"a", "c"}, 1, 1)
}

func TestQueriesOutOfRange(t *testing.T) {
	b := setup(t, []string{"abc"}, 0, 0)
	if n := b.RowLength(4); n != 0 {
		t.Errorf("Unexpected row length: %d", n)
	}
	if n := b.RowLength(-1); n != 0 {
		t.Errorf("Unexpected row length: %d", n)
	}
	if s := b.Line(1); s != "" {
		t.Errorf("Unexpected line: %q", s)
	}
	if s := b.String(); s != "abc" {
		t.Errorf("Unexpected text: %q", s)
	}
}

func TestLinesIsACopy(t *testing.T) {
	b := setup(t, []string{"abc"}, 0, 0)
	lines := b.Lines()
	lines[0] = "changed"
	if b.Line(0) != "abc" {
		t.Errorf("Buffer changed through Lines: %q", b.Line(0))
	}
}

func TestValidate(t *testing.T) {
	b := &Buffer{}
	if err := b.Validate(); err == nil {
		t.Errorf("Expected an error for a buffer without rows")
	}
	b = &Buffer{rows: []*Row{NewRow("ab")}, cursor: goyo.Point{Row: 1}}
	if err := b.Validate(); err == nil {
		t.Errorf("Expected an error for a row out of range")
	}
	b = &Buffer{rows: []*Row{NewRow("ab")}, cursor: goyo.Point{Col: 3}}
	if err := b.Validate(); err == nil {
		t.Errorf("Expected an error for a column out of range")
	}
}
