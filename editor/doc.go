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

// Package editor implements the text buffer of goyo.
// A Buffer is an ordered list of rows and a cursor; every edit and
// motion leaves the cursor on a valid insertion point, so none of the
// buffer operations can fail. A View lays a buffer out for display
// with a line number gutter and draws it into any Display.
package editor
