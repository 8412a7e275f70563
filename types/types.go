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

// Package types holds the vocabulary shared by the editor, the commander
// and the screen.
package types

import "fmt"

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// A Color is a termbox attribute in 256-color output mode,
// where attribute n selects palette entry n-1.
type Color uint16

const (
	ColorDefault    Color = 0x00
	ColorLineNumber Color = 0xf3 // grey 242
	ColorComment    Color = 0x6d // 108, a muted green
	ColorText       Color = 0xfe // grey 253
	ColorBar        Color = 0xed // grey 236
	ColorBarText    Color = 0x10 // bright white
)

// Logical keys. Printable characters arrive as KeyNone with Event.Ch set.
type Key int

const (
	KeyNone Key = iota
	KeyEsc
	KeyEnter
	KeyBackspace
	KeyTab
	KeySpace
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyCtrlC
	KeyUnsupported
)

// Modifier flags. The terminal reports control chords as distinct keys.
type Modifier int

const (
	ModAlt Modifier = 1 << iota
)

type EventType int

const (
	EventKey EventType = iota
	EventResize
	EventError
	EventOther
)

// An Event is a single decoded terminal event.
type Event struct {
	Type EventType
	Key  Key
	Ch   rune
	Mod  Modifier
	Err  error
}

type CommandKind int

const (
	CommandIgnored CommandKind = iota
	CommandCharacter
	CommandBackwardDelete
	CommandSplitLine
	CommandMoveLeft
	CommandMoveRight
	CommandMoveUp
	CommandMoveDown
	CommandQuit
)

var commandNames = map[CommandKind]string{
	CommandIgnored:        "ignored",
	CommandCharacter:      "character",
	CommandBackwardDelete: "backward-delete",
	CommandSplitLine:      "split-line",
	CommandMoveLeft:       "move-left",
	CommandMoveRight:      "move-right",
	CommandMoveUp:         "move-up",
	CommandMoveDown:       "move-down",
	CommandQuit:           "quit",
}

func (k CommandKind) String() string {
	if name, ok := commandNames[k]; ok {
		return name
	}
	return fmt.Sprintf("command(%d)", int(k))
}

// A Command is a logical action decoded from an Event.
// Ch is only meaningful for CommandCharacter.
type Command struct {
	Kind CommandKind
	Ch   rune
}

func (c Command) String() string {
	if c.Kind == CommandCharacter {
		return fmt.Sprintf("%s %q", c.Kind, c.Ch)
	}
	return c.Kind.String()
}

// A Display is a grid of character cells.
type Display interface {
	// SetCell draws c at (col, row) and returns the number of columns it occupies.
	SetCell(col, row int, c rune, fg, bg Color) int
	Size() Size
}
