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
package commander

import (
	"fmt"
	"log"
	"unicode"

	"github.com/timburks/goyo/editor"
	goyo "github.com/timburks/goyo/types"
)

// The Commander converts user input into commands for the Buffer.
type Commander struct {
	buffer  *editor.Buffer
	running bool
	debug   bool         // log every decoded command
	last    goyo.Command // most recently decoded command
}

func NewCommander(b *editor.Buffer) *Commander {
	return &Commander{buffer: b, running: true}
}

func (c *Commander) SetDebug(debug bool) {
	c.debug = debug
}

func (c *Commander) IsRunning() bool {
	return c.running
}

func (c *Commander) Buffer() *editor.Buffer {
	return c.buffer
}

func (c *Commander) LastCommand() goyo.Command {
	return c.last
}

// ProcessEvent decodes event and applies it. Quit stops the commander
// and never reaches the buffer. Only a failed terminal read is an error.
func (c *Commander) ProcessEvent(event goyo.Event) error {
	if event.Type == goyo.EventError {
		return fmt.Errorf("reading terminal event: %w", event.Err)
	}
	cmd := Decode(event)
	c.last = cmd
	if c.debug {
		log.Printf("event=%+v command=%s cursor=%+v", event, cmd, c.buffer.Cursor())
	}
	switch cmd.Kind {
	case goyo.CommandQuit:
		c.running = false
	case goyo.CommandIgnored:
	default:
		c.buffer.Apply(cmd)
	}
	return nil
}

// Decode maps a terminal event to a command. Anything it does not
// recognize is ignored.
func Decode(event goyo.Event) goyo.Command {
	if event.Type != goyo.EventKey {
		return goyo.Command{Kind: goyo.CommandIgnored}
	}
	switch event.Key {
	case goyo.KeyEsc, goyo.KeyCtrlC:
		return goyo.Command{Kind: goyo.CommandQuit}
	case goyo.KeyBackspace:
		return goyo.Command{Kind: goyo.CommandBackwardDelete}
	case goyo.KeyEnter:
		return goyo.Command{Kind: goyo.CommandSplitLine}
	case goyo.KeySpace:
		return goyo.Command{Kind: goyo.CommandCharacter, Ch: ' '}
	case goyo.KeyArrowLeft:
		return goyo.Command{Kind: goyo.CommandMoveLeft}
	case goyo.KeyArrowRight:
		return goyo.Command{Kind: goyo.CommandMoveRight}
	case goyo.KeyArrowUp:
		return goyo.Command{Kind: goyo.CommandMoveUp}
	case goyo.KeyArrowDown:
		return goyo.Command{Kind: goyo.CommandMoveDown}
	case goyo.KeyNone:
		return decodeCharacter(event)
	}
	return goyo.Command{Kind: goyo.CommandIgnored}
}

func decodeCharacter(event goyo.Event) goyo.Command {
	ch := event.Ch
	if ch == 0 || event.Mod&goyo.ModAlt != 0 || !unicode.IsPrint(ch) {
		return goyo.Command{Kind: goyo.CommandIgnored}
	}
	if ch == 'q' {
		return goyo.Command{Kind: goyo.CommandQuit}
	}
	return goyo.Command{Kind: goyo.CommandCharacter, Ch: ch}
}
