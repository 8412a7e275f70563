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
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/timburks/goyo/commander"
	"github.com/timburks/goyo/editor"
	"github.com/timburks/goyo/screen"
	goyo "github.com/timburks/goyo/types"
)

// A terminal draws the commander's buffer and reports input events.
type terminal interface {
	Render(c *commander.Commander) error
	GetNextEvent() goyo.Event
}

func main() {
	os.Exit(run())
}

func run() int {
	// Open a log file. Without one, log output is dropped so that
	// nothing is written over the screen.
	log.SetOutput(io.Discard)
	if f, err := openLog(); err == nil {
		log.SetOutput(f)
		defer f.Close()
	}

	// The commander converts user inputs into commands for the buffer.
	c := commander.NewCommander(editor.NewBuffer())
	c.SetDebug(os.Getenv("GOYO_DEBUG") != "")

	// Create a screen to manage display.
	s, err := screen.NewScreen()
	if err != nil {
		log.Output(1, err.Error())
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	err = loop(s, c)
	s.Close()
	return exitStatus(err)
}

func exitStatus(err error) int {
	if err != nil {
		log.Output(1, err.Error())
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// Run the main event loop until the commander stops.
func loop(s terminal, c *commander.Commander) error {
	for c.IsRunning() {
		if err := s.Render(c); err != nil {
			return err
		}
		if err := c.ProcessEvent(s.GetNextEvent()); err != nil {
			return err
		}
	}
	return nil
}

func openLog() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(home, ".goyolog"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
}
