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
	"strings"
	"unicode"

	goyo "github.com/timburks/goyo/types"
)

// A LineClass decides how a whole line is colored.
type LineClass int

const (
	LinePlain LineClass = iota
	LineComment
)

const commentPrefix = "//"

// Classify marks lines whose first non-blank characters open a // comment.
func Classify(line string) LineClass {
	if strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), commentPrefix) {
		return LineComment
	}
	return LinePlain
}

func (c LineClass) Color() goyo.Color {
	if c == LineComment {
		return goyo.ColorComment
	}
	return goyo.ColorText
}
