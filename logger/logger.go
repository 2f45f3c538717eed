// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package logger is a very simple log, used by the hardware packages to
// record conditions that are not fatal to the emulation but which a host or
// debugger may want to surface (an unknown opcode, an unrecognised bus
// address). It intentionally does not touch stdout/stderr directly so that
// a host embedding the core controls where entries go and when.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

type entry struct {
	tag     string
	message string
}

func (e entry) String() string {
	return fmt.Sprintf("%s: %s", e.tag, e.message)
}

var (
	mu      sync.Mutex
	entries []entry
)

// Log records a message under the given tag.
func Log(tag string, message string) {
	mu.Lock()
	defer mu.Unlock()
	entries = append(entries, entry{tag: tag, message: message})
}

// Logf is Log() with fmt.Sprintf formatting of message.
func Logf(tag string, message string, args ...interface{}) {
	Log(tag, fmt.Sprintf(message, args...))
}

// Write writes every logged entry to w, one per line, oldest first.
func Write(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	for _, e := range entries {
		fmt.Fprintf(w, "%s\n", e)
	}
}

// Tail writes the most recent n entries to w, oldest first. A request for
// more entries than exist, or for zero entries, is not an error.
func Tail(w io.Writer, n int) {
	mu.Lock()
	defer mu.Unlock()

	if n <= 0 {
		return
	}
	start := len(entries) - n
	if start < 0 {
		start = 0
	}
	for _, e := range entries[start:] {
		fmt.Fprintf(w, "%s\n", e)
	}
}

// Clear empties the log.
func Clear() {
	mu.Lock()
	defer mu.Unlock()
	entries = nil
}

// String returns the entire log as a single newline-separated string.
func String() string {
	var s strings.Builder
	Write(&s)
	return s.String()
}
